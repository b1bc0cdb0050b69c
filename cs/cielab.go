// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import "math"

// CIELAB is the CIE 1976 L*a*b* space relative to a white point.
type CIELAB struct {
	WhitePoint Vec3
}

// NewCIELAB returns the CIELAB space relative to the given XYZ100
// white point. Use [WhiteD65] for the usual reference.
func NewCIELAB(whitePoint Vec3) (*CIELAB, error) {
	if err := CheckWhitePoint(whitePoint); err != nil {
		return nil, err
	}
	return &CIELAB{WhitePoint: whitePoint}, nil
}

func (s *CIELAB) Name() string       { return "CIELAB" }
func (s *CIELAB) Labels() [3]string  { return [3]string{"L*", "a*", "b*"} }
func (s *CIELAB) LightnessAxis() int { return 0 }
func (s *CIELAB) Scale() float64     { return 100 }

func (s *CIELAB) FromXYZ100(xyz Vec3) Vec3 {
	fx := LABCompress(xyz[0] / s.WhitePoint[0])
	fy := LABCompress(xyz[1] / s.WhitePoint[1])
	fz := LABCompress(xyz[2] / s.WhitePoint[2])
	return Vec3{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

func (s *CIELAB) ToXYZ100(c Vec3) Vec3 {
	fy := (c[0] + 16) / 116
	fx := fy + c[1]/500
	fz := fy - c[2]/200
	return Vec3{
		s.WhitePoint[0] * LABUncompress(fx),
		s.WhitePoint[1] * LABUncompress(fy),
		s.WhitePoint[2] * LABUncompress(fz),
	}
}

const (
	labDelta  = 6.0 / 29.0
	labDelta3 = labDelta * labDelta * labDelta
)

// LABCompress is the compressive nonlinearity of CIELAB applied to a
// white-relative tristimulus value.
func LABCompress(t float64) float64 {
	if t > labDelta3 {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(f float64) float64 {
	if f > labDelta {
		return f * f * f
	}
	return 3 * labDelta * labDelta * (f - 4.0/29.0)
}

// LToY converts CIE L* lightness to white-relative luminance Y (0-100).
func LToY(l float64) float64 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL converts white-relative luminance Y (0-100) to CIE L* lightness.
func YToL(y float64) float64 {
	return 116*LABCompress(y/100) - 16
}
