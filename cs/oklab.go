// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import "math"

// OKLab is the perceptual Oklab space of Björn Ottosson,
// defined on XYZ relative to a D65 white of luminance 1.
type OKLab struct{}

var (
	oklabM1 = Mat3{
		{0.8189330101, 0.3618667424, -0.1288597137},
		{0.0329845436, 0.9293118715, 0.0361456387},
		{0.0482003018, 0.2643662691, 0.6338517070},
	}
	oklabM2 = Mat3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	oklabM1Inv = oklabM1.MustInverse()
	oklabM2Inv = oklabM2.MustInverse()
)

// NewOKLab returns the Oklab space.
func NewOKLab() *OKLab { return &OKLab{} }

func (s *OKLab) Name() string       { return "OKLAB" }
func (s *OKLab) Labels() [3]string  { return [3]string{"L", "a", "b"} }
func (s *OKLab) LightnessAxis() int { return 0 }
func (s *OKLab) Scale() float64     { return 1 }

func (s *OKLab) FromXYZ100(xyz Vec3) Vec3 {
	lms := oklabM1.MulVec(xyz.DivScalar(100))
	for i := range lms {
		lms[i] = math.Cbrt(lms[i])
	}
	return oklabM2.MulVec(lms)
}

func (s *OKLab) ToXYZ100(c Vec3) Vec3 {
	lms := oklabM2Inv.MulVec(c)
	for i, v := range lms {
		lms[i] = v * v * v
	}
	return oklabM1Inv.MulVec(lms).MulScalar(100)
}
