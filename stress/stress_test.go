// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stress

import (
	"math"
	"testing"

	"cogentcore.org/colorimetry/base/errors"
	"cogentcore.org/colorimetry/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSTRESS(t *testing.T) {
	s, err := STRESS([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	tolassert.EqualTol(t, 0, s, 1e-12)

	c, err := Scale([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	tolassert.EqualTol(t, 0.5, c, 1e-15)

	// c = 1, residual (0, 1), scaled expected (1, 0)
	s, err = STRESS([]float64{1, 1}, []float64{1, 0})
	require.NoError(t, err)
	tolassert.EqualTol(t, 100, s, 1e-12)

	// c = 1, residual (-1, 1), scaled expected (1, 1)
	s, err = STRESS([]float64{0, 2}, []float64{1, 1})
	require.NoError(t, err)
	tolassert.EqualTol(t, 100, s, 1e-12)

	s, err = STRESS([]float64{1, 2, 4}, []float64{1, 2, 3})
	require.NoError(t, err)
	c = 17.0 / 14
	num := math.Pow(1-c, 2) + math.Pow(2-2*c, 2) + math.Pow(4-3*c, 2)
	tolassert.EqualTol(t, 100*math.Sqrt(num/(14*c*c)), s, 1e-12)
}

func TestSTRESSScaleInvariant(t *testing.T) {
	o := []float64{1.2, 0.7, 3.3, 2.1}
	e := []float64{1, 1, 3, 2}
	s1, err := STRESS(o, e)
	require.NoError(t, err)
	e10 := []float64{10, 10, 30, 20}
	s2, err := STRESS(o, e10)
	require.NoError(t, err)
	tolassert.EqualTol(t, s1, s2, 1e-12)
	assert.Greater(t, s1, 0.0)
}

func TestSTRESSErrors(t *testing.T) {
	_, err := STRESS([]float64{1}, []float64{1, 2})
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
	_, err = STRESS(nil, nil)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
	_, err = STRESS([]float64{1, 2}, []float64{0, 0})
	assert.True(t, errors.Is(err, errors.ErrDomain))
	_, err = STRESS([]float64{1, -1}, []float64{1, 1})
	assert.True(t, errors.Is(err, errors.ErrDomain))
	_, err = STRESS([]float64{math.NaN(), 1}, []float64{1, 1})
	assert.True(t, errors.Is(err, errors.ErrDomain))
}
