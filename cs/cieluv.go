// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

// CIELUV is the CIE 1976 L*u*v* space relative to a white point.
type CIELUV struct {
	WhitePoint Vec3

	// chromaticity u', v' of the white point
	un, vn float64
}

// NewCIELUV returns the CIELUV space relative to the given XYZ100 white point.
func NewCIELUV(whitePoint Vec3) (*CIELUV, error) {
	if err := CheckWhitePoint(whitePoint); err != nil {
		return nil, err
	}
	s := &CIELUV{WhitePoint: whitePoint}
	d := whitePoint[0] + 15*whitePoint[1] + 3*whitePoint[2]
	s.un = 4 * whitePoint[0] / d
	s.vn = 9 * whitePoint[1] / d
	return s, nil
}

func (s *CIELUV) Name() string       { return "CIELUV" }
func (s *CIELUV) Labels() [3]string  { return [3]string{"L*", "u*", "v*"} }
func (s *CIELUV) LightnessAxis() int { return 0 }
func (s *CIELUV) Scale() float64     { return 100 }

func (s *CIELUV) FromXYZ100(xyz Vec3) Vec3 {
	l := 116*LABCompress(xyz[1]/s.WhitePoint[1]) - 16
	d := xyz[0] + 15*xyz[1] + 3*xyz[2]
	if d == 0 {
		return Vec3{l, 0, 0}
	}
	u := 4 * xyz[0] / d
	v := 9 * xyz[1] / d
	return Vec3{l, 13 * l * (u - s.un), 13 * l * (v - s.vn)}
}

func (s *CIELUV) ToXYZ100(c Vec3) Vec3 {
	if c[0] == 0 {
		return Vec3{}
	}
	y := s.WhitePoint[1] * LABUncompress((c[0]+16)/116)
	u := c[1]/(13*c[0]) + s.un
	v := c[2]/(13*c[0]) + s.vn
	return Vec3{y * 9 * u / (4 * v), y, y * (12 - 3*u - 20*v) / (4 * v)}
}
