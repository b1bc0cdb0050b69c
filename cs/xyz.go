// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

// XYZ is the identity family that anchors the hub: its transforms
// only rescale between the hub and its own scale of 1 or 100.
type XYZ struct {
	scale float64
}

// NewXYZ returns the XYZ space at the given scale, which must be 1 or 100.
func NewXYZ(scale float64) (*XYZ, error) {
	if err := CheckScale(scale); err != nil {
		return nil, err
	}
	return &XYZ{scale: scale}, nil
}

// XYZ1 returns the XYZ space with the reference white luminance at 1.
func XYZ1() *XYZ { return &XYZ{scale: 1} }

// XYZ100 returns the XYZ space with the reference white luminance at 100.
func XYZ100() *XYZ { return &XYZ{scale: 100} }

func (s *XYZ) Name() string {
	if s.scale == 1 {
		return "XYZ1"
	}
	return "XYZ100"
}

func (s *XYZ) Labels() [3]string  { return [3]string{"X", "Y", "Z"} }
func (s *XYZ) LightnessAxis() int { return NoLightness }
func (s *XYZ) Scale() float64     { return s.scale }

func (s *XYZ) FromXYZ100(xyz Vec3) Vec3 {
	if s.scale == 100 {
		return xyz
	}
	return xyz.DivScalar(100)
}

func (s *XYZ) ToXYZ100(c Vec3) Vec3 {
	if s.scale == 100 {
		return c
	}
	return c.MulScalar(100)
}
