// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// Equal asserts that the given two numbers are about equal to each other,
// using a default tolerance of 0.001.
func Equal[T constraints.Float](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal to each other,
// using the given tolerance value. Two NaN values are equal; a NaN and
// a number are not.
func EqualTol[T constraints.Float](t assert.TestingT, expected T, actual, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	e, a := float64(expected), float64(actual)
	if e == a || (math.IsNaN(e) && math.IsNaN(a)) {
		return true
	}
	if !(math.Abs(a-e) <= float64(tolerance)) {
		return assert.Fail(t, fmt.Sprintf("Not equal within %v: \n"+
			"expected: %v\n"+
			"actual  : %v", tolerance, expected, actual), msgAndArgs...)
	}
	return true
}

// EqualRel asserts that the given two numbers are about equal to each other,
// using the given tolerance relative to the magnitude of the expected value.
// Values of magnitude below 1 are compared with the absolute tolerance.
func EqualRel[T constraints.Float](t assert.TestingT, expected T, actual, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	scale := math.Max(1, math.Abs(float64(expected)))
	return EqualTol(t, expected, actual, T(float64(tolerance)*scale), msgAndArgs...)
}

// EqualSlice asserts that the given slices have the same length and are
// elementwise about equal, using the given relative tolerance.
func EqualSlice[T constraints.Float](t assert.TestingT, expected []T, actual []T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	ok := true
	for i := range expected {
		ok = EqualRel(t, expected[i], actual[i], tolerance, msgAndArgs...) && ok
	}
	return ok
}
