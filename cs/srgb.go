// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

// SRGBLinear is the linear (not gamma encoded) sRGB space on a scale
// of 0-1 for in-gamut colors. Out of gamut colors have components
// outside of that range and are not clipped.
type SRGBLinear struct{}

var (
	// xyzToSRGB is the XYZ (D65, Y of white = 1) to linear sRGB matrix.
	xyzToSRGB = Mat3{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
	srgbToXYZ = xyzToSRGB.MustInverse()
)

// NewSRGBLinear returns the linear sRGB space.
func NewSRGBLinear() *SRGBLinear { return &SRGBLinear{} }

func (s *SRGBLinear) Name() string       { return "SRGBLinear" }
func (s *SRGBLinear) Labels() [3]string  { return [3]string{"R", "G", "B"} }
func (s *SRGBLinear) LightnessAxis() int { return NoLightness }
func (s *SRGBLinear) Scale() float64     { return 1 }

func (s *SRGBLinear) FromXYZ100(xyz Vec3) Vec3 {
	return xyzToSRGB.MulVec(xyz.DivScalar(100))
}

func (s *SRGBLinear) ToXYZ100(c Vec3) Vec3 {
	return srgbToXYZ.MulVec(c).MulScalar(100)
}
