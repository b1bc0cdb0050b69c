// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

// XYY is the CIE xyY space: chromaticity coordinates x and y,
// and the luminance Y at the scale of the space.
type XYY struct {
	scale float64
}

// NewXYY returns the xyY space at the given scale, which must be 1 or 100.
func NewXYY(scale float64) (*XYY, error) {
	if err := CheckScale(scale); err != nil {
		return nil, err
	}
	return &XYY{scale: scale}, nil
}

func (s *XYY) Name() string {
	if s.scale == 1 {
		return "xyY1"
	}
	return "xyY100"
}

func (s *XYY) Labels() [3]string  { return [3]string{"x", "y", "Y"} }
func (s *XYY) LightnessAxis() int { return 2 }
func (s *XYY) Scale() float64     { return s.scale }

// FromXYZ100 maps black, which has no chromaticity, to (0, 0, 0).
func (s *XYY) FromXYZ100(xyz Vec3) Vec3 {
	lum := xyz[1] * s.scale / 100
	sum := xyz[0] + xyz[1] + xyz[2]
	if sum == 0 {
		return Vec3{0, 0, lum}
	}
	return Vec3{xyz[0] / sum, xyz[1] / sum, lum}
}

func (s *XYY) ToXYZ100(c Vec3) Vec3 {
	y := c[2] * 100 / s.scale
	if c[1] == 0 {
		return Vec3{0, y, 0}
	}
	k := y / c[1]
	return Vec3{k * c[0], y, k * (1 - c[0] - c[1])}
}
