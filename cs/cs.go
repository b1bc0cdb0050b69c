// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cs provides color spaces that interconvert through a single
// canonical hub, XYZ100 (CIE 1931 tristimulus values with the luminance
// of the reference white at 100).
//
// Every [Space] only knows how to convert to and from the hub; a
// conversion between two spaces is always the composition
// to.FromXYZ100(from.ToXYZ100(c)) (see [Convert]), so the number of
// transforms grows linearly with the number of spaces.
package cs

import (
	"math"

	"cogentcore.org/colorimetry/base/errors"
)

// Vec3 is a tristimulus vector or a set of color space coordinates.
type Vec3 [3]float64

// NoLightness is returned by [Space.LightnessAxis] for spaces
// without a designated lightness axis.
const NoLightness = -1

// Space is a color space that converts to and from the XYZ100 hub.
// Implementations have no mutable state and are safe for concurrent use.
type Space interface {
	// Name is the canonical name of the space.
	Name() string

	// Labels are the names of the three axes, in order.
	Labels() [3]string

	// LightnessAxis is the index of the lightness axis,
	// or [NoLightness].
	LightnessAxis() int

	// Scale is the magnitude convention (1 or 100) of the tristimulus
	// values that the space operates on internally.
	Scale() float64

	// FromXYZ100 converts XYZ100 tristimulus values to coordinates.
	FromXYZ100(xyz Vec3) Vec3

	// ToXYZ100 converts coordinates to XYZ100 tristimulus values.
	ToXYZ100(c Vec3) Vec3
}

// WhiteD65 is the CIE 1931 2° white point of illuminant D65, in XYZ100.
var WhiteD65 = Vec3{95.047, 100, 108.883}

// Convert converts the given coordinates from one space to another
// through the hub.
func Convert(from, to Space, c Vec3) Vec3 {
	return to.FromXYZ100(from.ToXYZ100(c))
}

// Chromatic returns the coordinates without the lightness axis of the
// space, if it has one.
func Chromatic(s Space, c Vec3) []float64 {
	k := s.LightnessAxis()
	if k == NoLightness {
		return []float64{c[0], c[1], c[2]}
	}
	res := make([]float64, 0, 2)
	for i, v := range c {
		if i != k {
			res = append(res, v)
		}
	}
	return res
}

// CheckScale returns an [errors.ErrConfiguration] error unless
// the scale is 1 or 100.
func CheckScale(scale float64) error {
	if scale != 1 && scale != 100 {
		return errors.Configurationf("scale must be 1 or 100, not %g", scale)
	}
	return nil
}

// CheckWhitePoint returns an [errors.ErrConfiguration] error unless
// the white point is finite with a positive luminance.
func CheckWhitePoint(wp Vec3) error {
	if !wp.IsFinite() || wp[1] <= 0 {
		return errors.Configurationf("invalid white point %v", wp)
	}
	return nil
}

// IsFinite returns whether all components are finite.
func (v Vec3) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// MulScalar returns the vector scaled by s.
func (v Vec3) MulScalar(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// DivScalar returns the vector divided by s.
func (v Vec3) DivScalar(s float64) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}
