// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stress provides the STRESS (standardized residual sum of
// squares) statistic of García et al. (2007), which measures the
// disagreement between observed and expected values, up to a scale
// factor, on a 0 to 100 scale where 0 is perfect agreement.
package stress

import (
	"math"

	"cogentcore.org/colorimetry/base/errors"
	"gonum.org/v1/gonum/floats"
)

// Scale returns the optimal factor c that scales the expected values
// onto the observed ones in the least-squares sense, Σoe / Σe².
func Scale(observed, expected []float64) (float64, error) {
	if err := check(observed, expected); err != nil {
		return 0, err
	}
	ee := floats.Dot(expected, expected)
	if ee == 0 {
		return 0, errors.Domainf("stress: all expected values are zero")
	}
	return floats.Dot(observed, expected) / ee, nil
}

// STRESS returns 100 sqrt(Σ(o - c e)² / Σ(c e)²) for the optimal scale
// c given by [Scale]. The inputs must have the same nonzero length.
// Zero expected values, or a non-finite result, are an
// [errors.ErrDomain] error.
func STRESS(observed, expected []float64) (float64, error) {
	c, err := Scale(observed, expected)
	if err != nil {
		return 0, err
	}
	ce := make([]float64, len(expected))
	floats.ScaleTo(ce, c, expected)
	den := floats.Dot(ce, ce)
	if den == 0 {
		return 0, errors.Domainf("stress: observed values are orthogonal to expected values")
	}
	num := floats.Distance(observed, ce, 2)
	res := 100 * num / math.Sqrt(den)
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return 0, errors.Domainf("stress: non-finite result %g", res)
	}
	return res, nil
}

func check(observed, expected []float64) error {
	if len(observed) != len(expected) {
		return errors.Configurationf("stress: %d observed values but %d expected", len(observed), len(expected))
	}
	if len(observed) == 0 {
		return errors.Configurationf("stress: no values")
	}
	return nil
}
