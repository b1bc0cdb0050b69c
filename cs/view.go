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

import (
	"math"
	"sync"
)

// View represents viewing conditions under which a color is being perceived,
// which greatly affects the subjective perception.  Defaults represent the
// standard defined such conditions, under which the CAM16 computations operate.
type View struct {

	// white point illumination, in XYZ100; typically [WhiteD65]
	WhitePoint Vec3

	// the ambient light strength in lux
	Luminance float64 `default:"200"`

	// the average L* lightness of 10 degrees around the color in question
	BgLuminance float64 `default:"50"`

	// the brightness of the entire environment, from 0 (dark) to 2 (average)
	Surround float64 `default:"2"`

	// whether the person's eyes have adapted to the lighting
	Adapted bool `default:"false"`

	// computed from Luminance
	AdaptingLuminance float64 `display:"-"`

	// ratio of background to white luminance
	BgYToWhiteY float64 `display:"-"`

	// achromatic response to the white point
	AW float64 `display:"-"`

	// luminance level induction factor
	NBB float64 `display:"-"`

	// luminance level induction factor
	NCB float64 `display:"-"`

	// exponential nonlinearity
	C float64 `display:"-"`

	// chromatic induction factor
	NC float64 `display:"-"`

	// luminance-level adaptation factor, based on the HuntLiLuo03 equations
	FL float64 `display:"-"`

	// FL to the 1/4 power
	FLRoot float64 `display:"-"`

	// base exponential nonlinearity
	Z float64 `display:"-"`

	// cone responses to white point, adjusted for discounting
	RGBD Vec3 `display:"-"`
}

// NewView returns a new view with all parameters initialized based on given major params
func NewView(whitePoint Vec3, lum, bgLum, surround float64, adapt bool) (*View, error) {
	if err := CheckWhitePoint(whitePoint); err != nil {
		return nil, err
	}
	vw := &View{WhitePoint: whitePoint, Luminance: lum, BgLuminance: bgLum, Surround: surround, Adapted: adapt}
	vw.Update()
	return vw, nil
}

var (
	stdView     *View
	stdViewOnce sync.Once
)

// NewStdView returns the standard viewing conditions: a D65 white point,
// 200 lux, a background of L* 50 and an average surround.
// The view is created once and shared; it must not be modified.
func NewStdView() *View {
	stdViewOnce.Do(func() {
		stdView = &View{WhitePoint: WhiteD65, Luminance: 200, BgLuminance: 50, Surround: 2}
		stdView.Update()
	})
	return stdView
}

// Update updates all the computed values based on main parameters
func (vw *View) Update() {
	vw.AdaptingLuminance = (vw.Luminance / math.Pi) * (LToY(50) / 100)
	// A background of pure black is non-physical and leads to infinities that
	// represent the idea that any color viewed in pure black can't be seen.
	vw.BgLuminance = math.Max(0.1, vw.BgLuminance)

	// Transform test illuminant white in XYZ to 'cone'/'rgb' responses
	rgbW := cam16M.MulVec(vw.WhitePoint)

	// Scale input surround, domain (0, 2), to CAM16 surround, domain (0.8, 1.0)
	vw.Surround = clamp(vw.Surround, 0, 2)
	f := 0.8 + (vw.Surround / 10)
	// "Exponential non-linearity"
	if f >= 0.9 {
		vw.C = lerp(0.59, 0.69, ((f - 0.9) * 10))
	} else {
		vw.C = lerp(0.525, 0.59, ((f - 0.8) * 10))
	}
	// Calculate degree of adaptation to illuminant
	d := 1.0
	if !vw.Adapted {
		d = f * (1 - ((1 / 3.6) * math.Exp((-vw.AdaptingLuminance-42)/92)))
	}

	// Per Li et al, if D is greater than 1 or less than 0, set it to 1 or 0.
	d = clamp(d, 0, 1)

	// chromatic induction factor
	vw.NC = f

	// Cone responses to the whitePoint, r/g/b/W, adjusted for discounting.
	// Fairchild's Color Appearance Models (3rd edition) notes that this
	// uses 100 as luminance rather than the Y of the reference white.
	for i := range 3 {
		vw.RGBD[i] = d*(100/rgbW[i]) + 1 - d
	}

	// Factor used in calculating meaningful factors
	k := 1 / (5*vw.AdaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4

	// Luminance-level adaptation factor
	vw.FL = (k4 * vw.AdaptingLuminance) +
		(0.1 * k4F * k4F * math.Cbrt(5*vw.AdaptingLuminance))

	vw.FLRoot = math.Pow(vw.FL, 0.25)

	// Intermediate factor, ratio of background relative luminance to white relative luminance
	n := LToY(vw.BgLuminance) / vw.WhitePoint[1]
	vw.BgYToWhiteY = n

	// Base exponential nonlinearity
	// note Schlomer 2018 has a typo and uses 1.58, the correct factor is 1.48
	vw.Z = 1.48 + math.Sqrt(n)

	// Luminance-level induction factors
	vw.NBB = 0.725 / math.Pow(n, 0.2)
	vw.NCB = vw.NBB

	// Discounted cone responses to the white point, adjusted for post-saturation
	// adaptation perceptual nonlinearities.
	rgbA := vw.adapt(rgbW)

	vw.AW = ((40*rgbA[0] + 20*rgbA[1] + rgbA[2]) / 20) * vw.NBB
}

// adapt applies discounting and the luminance-level response
// compression to the given cone responses.
func (vw *View) adapt(rgb Vec3) Vec3 {
	var res Vec3
	for i, v := range rgb {
		d := vw.RGBD[i] * v
		f := math.Pow(vw.FL*math.Abs(d)/100, 0.42)
		res[i] = math.Copysign(1, d) * 400 * f / (f + 27.13)
	}
	return res
}

// unadapt is the inverse of adapt.
func (vw *View) unadapt(rgbA Vec3) Vec3 {
	var res Vec3
	for i, a := range rgbA {
		base := math.Max(0, (27.13*math.Abs(a))/(400-math.Abs(a)))
		c := math.Copysign(1, a) * (100 / vw.FL) * math.Pow(base, 1/0.42)
		res[i] = c / vw.RGBD[i]
	}
	return res
}

func clamp(v, lo, hi float64) float64 { return math.Min(math.Max(v, lo), hi) }

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
