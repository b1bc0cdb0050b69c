// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import (
	"cogentcore.org/colorimetry/base/errors"
	"gonum.org/v1/gonum/mat"
)

// FromXYZ100All converts a batch of XYZ100 values to coordinates
// in the given space, pointwise.
func FromXYZ100All(s Space, xyz []Vec3) []Vec3 {
	res := make([]Vec3, len(xyz))
	for i, v := range xyz {
		res[i] = s.FromXYZ100(v)
	}
	return res
}

// ToXYZ100All converts a batch of coordinates in the given space
// to XYZ100 values, pointwise.
func ToXYZ100All(s Space, c []Vec3) []Vec3 {
	res := make([]Vec3, len(c))
	for i, v := range c {
		res[i] = s.ToXYZ100(v)
	}
	return res
}

// ConvertAll converts a batch of coordinates from one space to another.
func ConvertAll(from, to Space, c []Vec3) []Vec3 {
	res := make([]Vec3, len(c))
	for i, v := range c {
		res[i] = Convert(from, to, v)
	}
	return res
}

// FromXYZ100Dense converts a 3xN matrix of XYZ100 values, one color
// per column, to a 3xN matrix of coordinates in the given space.
func FromXYZ100Dense(s Space, m mat.Matrix) (*mat.Dense, error) {
	return applyDense(s.FromXYZ100, m)
}

// ToXYZ100Dense converts a 3xN matrix of coordinates in the given space,
// one color per column, to a 3xN matrix of XYZ100 values.
func ToXYZ100Dense(s Space, m mat.Matrix) (*mat.Dense, error) {
	return applyDense(s.ToXYZ100, m)
}

func applyDense(f func(Vec3) Vec3, m mat.Matrix) (*mat.Dense, error) {
	r, c := m.Dims()
	if r != 3 {
		return nil, errors.Configurationf("batch must have 3 rows, not %d", r)
	}
	res := mat.NewDense(3, c, nil)
	for j := range c {
		v := f(Vec3{m.At(0, j), m.At(1, j), m.At(2, j)})
		for i := range 3 {
			res.Set(i, j, v[i])
		}
	}
	return res, nil
}
