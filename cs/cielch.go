// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import "math"

// CIELCH is the lightness, chroma, hue form of [CIELAB],
// with the hue in degrees in [0, 360).
type CIELCH struct {
	lab CIELAB
}

// NewCIELCH returns the CIELCH space relative to the given XYZ100 white point.
func NewCIELCH(whitePoint Vec3) (*CIELCH, error) {
	if err := CheckWhitePoint(whitePoint); err != nil {
		return nil, err
	}
	return &CIELCH{lab: CIELAB{WhitePoint: whitePoint}}, nil
}

func (s *CIELCH) Name() string       { return "CIELCH" }
func (s *CIELCH) Labels() [3]string  { return [3]string{"L*", "C*", "h"} }
func (s *CIELCH) LightnessAxis() int { return 0 }
func (s *CIELCH) Scale() float64     { return 100 }

func (s *CIELCH) FromXYZ100(xyz Vec3) Vec3 {
	lab := s.lab.FromXYZ100(xyz)
	return Vec3{lab[0], math.Hypot(lab[1], lab[2]), SanitizeDegrees(radToDeg(math.Atan2(lab[2], lab[1])))}
}

func (s *CIELCH) ToXYZ100(c Vec3) Vec3 {
	sin, cos := math.Sincos(degToRad(c[2]))
	return s.lab.ToXYZ100(Vec3{c[0], c[1] * cos, c[1] * sin})
}

// SanitizeDegrees ensures that the given angle in degrees is in [0, 360).
func SanitizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }
