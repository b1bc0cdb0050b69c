// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cs

import "math"

var (
	// cam16M is the CAM16 transform from XYZ to cone-like responses.
	cam16M = Mat3{
		{0.401288, 0.650173, -0.051461},
		{-0.250268, 1.204414, 0.045854},
		{-0.002079, 0.048952, 0.953127},
	}
	cam16MInv = cam16M.MustInverse()
)

// CAM represents a point in the cam16 color model along 6 dimensions
// representing the perceived hue, colorfulness, and brightness,
// similar to HSL but much more well-calibrated to actual human subjective judgments.
type CAM struct {

	// hue (h) is the spectral identity of the color (red, green, blue etc) in degrees (0-360)
	Hue float64

	// chroma (C) is the colorfulness or saturation of the color -- greyscale colors have no chroma, and fully saturated ones have high chroma
	Chroma float64

	// colorfulness (M) is the absolute chromatic intensity
	Colorfulness float64

	// saturation (s) is the colorfulness relative to brightness
	Saturation float64

	// brightness (Q) is the apparent amount of light from the color, which is not a simple function of actual light energy emitted
	Brightness float64

	// lightness (J) is the brightness relative to a reference white, which varies as a function of chroma and hue
	Lightness float64
}

// CAMFromXYZ returns CAM values from given XYZ100 color coordinates,
// under the given viewing conditions.
func CAMFromXYZ(xyz Vec3, vw *View) *CAM {
	rgbA := vw.adapt(cam16M.MulVec(xyz))
	redVgreen := (11*rgbA[0] - 12*rgbA[1] + rgbA[2]) / 11
	yellowVblue := (rgbA[0] + rgbA[1] - 2*rgbA[2]) / 9
	grey := (40*rgbA[0] + 20*rgbA[1] + rgbA[2]) / 20
	greyNorm := (20*rgbA[0] + 20*rgbA[1] + 21*rgbA[2]) / 20

	hue := SanitizeDegrees(radToDeg(math.Atan2(yellowVblue, redVgreen)))
	// achromatic response to color
	ac := grey * vw.NBB

	// CAM16 lightness and brightness
	J := 100 * math.Pow(ac/vw.AW, vw.C*vw.Z)
	Q := (4 / vw.C) * math.Sqrt(J/100) * (vw.AW + 4) * (vw.FLRoot)

	huePrime := hue
	if hue < 20.14 {
		huePrime += 360
	}
	eHue := 0.25 * (math.Cos(huePrime*math.Pi/180+2) + 3.8)
	p1 := 50000 / 13 * eHue * vw.NC * vw.NCB
	t := p1 * math.Hypot(redVgreen, yellowVblue) / (greyNorm + 0.305)
	alpha := math.Pow(t, 0.9) * math.Pow(1.64-math.Pow(0.29, vw.BgYToWhiteY), 0.73)

	// CAM16 chroma, colorfulness, saturation
	C := alpha * math.Sqrt(J/100)
	M := C * vw.FLRoot
	s := 50 * math.Sqrt((alpha*vw.C)/(vw.AW+4))
	return &CAM{Hue: hue, Chroma: C, Colorfulness: M, Saturation: s, Brightness: Q, Lightness: J}
}

// CAMFromJCH returns CAM values from the given lightness (j), chroma (c),
// and hue (h) values under the given viewing conditions
func CAMFromJCH(j, c, h float64, vw *View) *CAM {
	cam := &CAM{Lightness: j, Chroma: c, Hue: h}
	cam.Brightness = (4 / vw.C) *
		math.Sqrt(cam.Lightness/100) *
		(vw.AW + 4) *
		(vw.FLRoot)
	cam.Colorfulness = cam.Chroma * vw.FLRoot
	alpha := 0.0
	if cam.Lightness != 0 {
		alpha = cam.Chroma / math.Sqrt(cam.Lightness/100)
	}
	cam.Saturation = 50 * math.Sqrt((alpha*vw.C)/(vw.AW+4))
	return cam
}

// CAMFromUCS returns CAM values from the given CAM16-UCS coordinates
// (jstar, astar, and bstar), using the given viewing conditions
func CAMFromUCS(ucs Vec3, vw *View) *CAM {
	m := math.Hypot(ucs[1], ucs[2])
	M := math.Expm1(m*0.0228) / 0.0228
	c := M / vw.FLRoot
	h := SanitizeDegrees(radToDeg(math.Atan2(ucs[2], ucs[1])))
	j := ucs[0] / (1 - (ucs[0]-100)*0.007)
	return CAMFromJCH(j, c, h, vw)
}

// UCS returns the CAM16-UCS components based on the the CAM values
func (cam *CAM) UCS() Vec3 {
	j := (1 + 100*0.007) * cam.Lightness / (1 + 0.007*cam.Lightness)
	m := math.Log1p(0.0228*cam.Colorfulness) / 0.0228
	sin, cos := math.Sincos(degToRad(cam.Hue))
	return Vec3{j, m * cos, m * sin}
}

// XYZ returns the CAM color as XYZ100 coordinates
// under the given viewing conditions.
func (cam *CAM) XYZ(vw *View) Vec3 {
	alpha := 0.0
	if cam.Chroma != 0 && cam.Lightness != 0 {
		alpha = cam.Chroma / math.Sqrt(cam.Lightness/100)
	}

	t := math.Pow(
		alpha/
			math.Pow(
				1.64-
					math.Pow(0.29, vw.BgYToWhiteY),
				0.73),
		1.0/0.9)

	hSin, hCos := math.Sincos(degToRad(cam.Hue))

	eHue := 0.25 * (math.Cos(degToRad(cam.Hue)+2) + 3.8)
	ac := vw.AW * math.Pow(cam.Lightness/100, 1/vw.C/vw.Z)
	p1 := eHue * (50000 / 13) * vw.NC * vw.NCB

	p2 := ac / vw.NBB

	gamma := 23 *
		(p2 + 0.305) *
		t /
		(23*p1 + 11*t*hCos + 108*t*hSin)
	a := gamma * hCos
	b := gamma * hSin
	rgbA := Vec3{
		(460*p2 + 451*a + 288*b) / 1403,
		(460*p2 - 891*a - 261*b) / 1403,
		(460*p2 - 220*a - 6300*b) / 1403,
	}
	return cam16MInv.MulVec(vw.unadapt(rgbA))
}

// CAM16UCS is the CAM16 uniform color space (J', a', b') of Li et al. 2017
// under fixed viewing conditions.
type CAM16UCS struct {
	View *View
}

// NewCAM16UCS returns the CAM16-UCS space under the given viewing
// conditions; a nil view uses [NewStdView].
func NewCAM16UCS(vw *View) *CAM16UCS {
	if vw == nil {
		vw = NewStdView()
	}
	return &CAM16UCS{View: vw}
}

func (s *CAM16UCS) Name() string       { return "CAM16UCS" }
func (s *CAM16UCS) Labels() [3]string  { return [3]string{"J'", "a'", "b'"} }
func (s *CAM16UCS) LightnessAxis() int { return 0 }
func (s *CAM16UCS) Scale() float64     { return 100 }

func (s *CAM16UCS) FromXYZ100(xyz Vec3) Vec3 {
	return CAMFromXYZ(xyz, s.View).UCS()
}

func (s *CAM16UCS) ToXYZ100(c Vec3) Vec3 {
	return CAMFromUCS(c, s.View).XYZ(s.View)
}
