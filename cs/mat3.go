// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import (
	"cogentcore.org/colorimetry/base/errors"
	"gonum.org/v1/gonum/mat"
)

// Mat3 is a 3x3 row-major matrix of a linear color transform.
type Mat3 [3][3]float64

// MulVec returns the product of the matrix and the column vector v.
func (m *Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Dense returns the matrix as a gonum dense matrix.
func (m *Mat3) Dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}

// Inverse returns the inverse of the matrix. A singular or
// ill-conditioned matrix is an [errors.ErrConfiguration] error.
func (m *Mat3) Inverse() (Mat3, error) {
	var inv mat.Dense
	if err := inv.Inverse(m.Dense()); err != nil {
		return Mat3{}, errors.Configurationf("matrix is not invertible: %w", err)
	}
	var res Mat3
	for i := range 3 {
		for j := range 3 {
			res[i][j] = inv.At(i, j)
		}
	}
	return res, nil
}

// MustInverse returns the inverse of a matrix known to be invertible,
// panicking otherwise. It is used for the fixed transforms of the
// built-in spaces.
func (m *Mat3) MustInverse() Mat3 {
	return errors.Must1(m.Inverse())
}
