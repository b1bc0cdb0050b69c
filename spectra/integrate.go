// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import (
	"slices"

	"cogentcore.org/colorimetry/base/errors"
	"cogentcore.org/colorimetry/cs"
	"gonum.org/v1/gonum/floats"
)

const (
	// VisibleMin and VisibleMax bound the visible range, 360 to 830 nm,
	// that every integration must cover. A union grid passes when it
	// starts below VisibleMin+1 and ends above VisibleMax-1.
	VisibleMin = 360.0
	VisibleMax = 830.0
)

// ToXYZ100 returns the XYZ100 tristimulus values of the given spectrum
// seen by the given observer. A nil observer is the CIE 1931 standard
// observer ([CIE1931]).
//
// Both functions are interpolated linearly onto the sorted union of
// their wavelength grids, holding each at its end values outside of its
// own domain. The products are integrated with the trapezoid rule:
// every grid point is weighted by half the sum of its neighboring
// spacings. If the union grid does not cover the visible range the
// result is an [errors.ErrDomain] error. A malformed spectrum or
// observer is an [errors.ErrData] error.
func ToXYZ100(s *Spectrum, observer *Observer) (cs.Vec3, error) {
	if err := s.Validate(); err != nil {
		return cs.Vec3{}, err
	}
	if observer == nil {
		var err error
		observer, err = CIE1931()
		if err != nil {
			return cs.Vec3{}, err
		}
	} else if err := observer.Validate(); err != nil {
		return cs.Vec3{}, err
	}
	lambda := unionGrid(s.Lambda, observer.Lambda)
	if lambda[0] >= VisibleMin+1 || lambda[len(lambda)-1] <= VisibleMax-1 {
		return cs.Vec3{}, errors.Domainf("%s with %s covers [%g, %g] nm, which does not span the visible range [%g, %g] nm",
			s.Name, observer.Name, lambda[0], lambda[len(lambda)-1], VisibleMin, VisibleMax)
	}

	weighted := resample(lambda, s.Lambda, s.Values)
	floats.Mul(weighted, trapezoidWeights(lambda))

	var xyz cs.Vec3
	for i, ch := range observer.Values {
		xyz[i] = 100 * floats.Dot(resample(lambda, observer.Lambda, ch), weighted)
	}
	if !xyz.IsFinite() {
		return cs.Vec3{}, errors.Domainf("%s with %s: non-finite tristimulus values %v", s.Name, observer.Name, xyz)
	}
	return xyz, nil
}

// WhitePoint returns the white point of the given illuminant for the
// given observer (nil for [CIE1931]): its tristimulus values
// normalized to Y = 100.
func WhitePoint(illuminant *Spectrum, observer *Observer) (cs.Vec3, error) {
	xyz, err := ToXYZ100(illuminant, observer)
	if err != nil {
		return xyz, err
	}
	if xyz[1] == 0 {
		return cs.Vec3{}, errors.Domainf("%s has zero luminance", illuminant.Name)
	}
	return xyz.MulScalar(100 / xyz[1]), nil
}

// unionGrid returns the sorted union of the given wavelengths,
// without duplicates.
func unionGrid(a, b []float64) []float64 {
	res := slices.Concat(a, b)
	slices.Sort(res)
	return slices.Compact(res)
}

// trapezoidWeights returns the integration weight of each grid point,
// half of the spacing to the left plus half of the spacing to the right.
func trapezoidWeights(lambda []float64) []float64 {
	w := make([]float64, len(lambda))
	for i := 1; i < len(lambda); i++ {
		d := lambda[i] - lambda[i-1]
		w[i] += d / 2
		w[i-1] += d / 2
	}
	return w
}
