// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import (
	"sync"
	"testing"
	"testing/fstest"

	"cogentcore.org/colorimetry/base/errors"
	"cogentcore.org/colorimetry/base/tolassert"
	"cogentcore.org/colorimetry/cs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func assertVec(t *testing.T, expected, actual cs.Vec3, tol float64) {
	t.Helper()
	for i := range expected {
		tolassert.EqualTol(t, expected[i], actual[i], tol, "component %d", i)
	}
}

func TestCIE1931(t *testing.T) {
	obs, err := CIE1931()
	require.NoError(t, err)
	require.Len(t, obs.Lambda, 471)
	assert.Equal(t, 360.0, obs.Lambda[0])
	assert.Equal(t, 830.0, obs.Lambda[470])
	assert.Equal(t, 555.0, obs.Lambda[195])
	assert.Equal(t, 1.0, obs.Values[1][195])

	var wg sync.WaitGroup
	res := make([]*Observer, 8)
	for i := range res {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res[i] = errors.Must1(CIE1931())
		}()
	}
	wg.Wait()
	for _, o := range res {
		assert.Same(t, obs, o)
	}
}

func TestD65WhitePoint(t *testing.T) {
	wp, err := WhitePoint(D65(), nil)
	require.NoError(t, err)
	assertVec(t, cs.WhiteD65, wp, 1e-2)
	assertVec(t, cs.Vec3{95.04884987021084, 100, 108.89198457341904}, wp, 1e-8)

	xyz, err := ToXYZ100(D65(), nil)
	require.NoError(t, err)
	assertVec(t, cs.Vec3{1004391.6509488332, 1056710.9989445738, 1150673.5779563475}, xyz, 1e-4)
}

func TestWhitePoints(t *testing.T) {
	a, err := A(1)
	require.NoError(t, err)
	f2, err := F2()
	require.NoError(t, err)
	tests := []struct {
		name string
		ill  *Spectrum
		want cs.Vec3
	}{
		{"A", a, cs.Vec3{109.8504263382461, 100, 35.58587702147136}},
		{"D50", D50(), cs.Vec3{96.42485437008727, 100, 82.51691454348648}},
		{"D55", D55(), cs.Vec3{95.68437453498774, 100, 92.14307381448971}},
		{"D75", D75(), cs.Vec3{94.97426778756197, 100, 122.63250384100198}},
		{"E", E(), cs.Vec3{100.01491388450388, 100, 100.06651007012411}},
		{"F2", f2, cs.Vec3{99.14678540877708, 100, 67.31877288786114}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp, err := WhitePoint(tt.ill, nil)
			require.NoError(t, err)
			assertVec(t, tt.want, wp, 1e-8)
			if pub, ok := WhitePointsCIE1931[tt.name]; ok {
				assertVec(t, pub, wp, 1e-2)
			}
		})
	}
}

func TestDaylightCoefficients(t *testing.T) {
	tests := []struct {
		nominal, m1, m2 float64
	}{
		{5000, -1.039, 0.363},
		{5500, -0.785, -0.198},
		{6500, -0.295, -0.689},
		{7500, 0.145, -0.76},
	}
	for _, tt := range tests {
		m1, m2, err := DaylightCoefficients(tt.nominal)
		require.NoError(t, err)
		tolassert.EqualTol(t, tt.m1, m1, 1e-12)
		tolassert.EqualTol(t, tt.m2, m2, 1e-12)
	}

	for _, nominal := range []float64{3990, 25000, 0, -6500} {
		_, err := D(nominal)
		assert.True(t, errors.Is(err, errors.ErrDomain), "nominal %g", nominal)
	}
	_, err := D(4000)
	assert.NoError(t, err)
}

func TestD65Values(t *testing.T) {
	d := D65()
	assert.Equal(t, "D65", d.Name)
	require.Len(t, d.Lambda, 54)
	assert.Equal(t, 300.0, d.Lambda[0])
	assert.Equal(t, 830.0, d.Lambda[53])
	want := map[int]float64{0: 0.0341, 1: 3.2945, 2: 20.236, 8: 49.9755, 10: 82.7549}
	for i, v := range want {
		tolassert.EqualTol(t, v, d.Values[i], 1e-9, "index %d", i)
	}
	tolassert.EqualTol(t, 100, errors.Must1(D50().At(560)), 1e-12)
	tolassert.EqualTol(t, (d.Values[0]+d.Values[1])/2, errors.Must1(d.At(305)), 1e-12)
}

func TestA(t *testing.T) {
	a := StdA()
	require.Len(t, a.Lambda, 531)
	tolassert.EqualTol(t, 100, errors.Must1(a.At(560)), 1e-9)
	assert.Equal(t, 830.0, a.Lambda[530])

	a5, err := A(5)
	require.NoError(t, err)
	require.Len(t, a5.Lambda, 107)
	assert.Equal(t, 830.0, a5.Lambda[106])

	for _, iv := range []float64{0, -1} {
		_, err := A(iv)
		assert.True(t, errors.Is(err, errors.ErrConfiguration), "interval %g", iv)
	}
}

func TestPlanckian(t *testing.T) {
	p, err := Planckian(5000)
	require.NoError(t, err)
	// Wien's displacement law puts the peak at 579.6 nm.
	assert.Equal(t, 580.0, p.Lambda[floats.MaxIdx(p.Values)])

	_, err = Planckian(0)
	assert.True(t, errors.Is(err, errors.ErrDomain))
}

func TestDomain(t *testing.T) {
	lambda := Linspace(400, 700, 31)
	obs, err := NewObserver("narrow", lambda, [3][]float64{make([]float64, 31), make([]float64, 31), make([]float64, 31)})
	require.NoError(t, err)
	s, err := NewSpectrum("narrow", lambda, make([]float64, 31))
	require.NoError(t, err)
	_, err = ToXYZ100(s, obs)
	assert.True(t, errors.Is(err, errors.ErrDomain))

	// 360.5 and 829.5 nm are within the tolerance of the visible range.
	s, err = NewSpectrum("wide", []float64{360.5, 829.5}, []float64{1, 1})
	require.NoError(t, err)
	_, err = ToXYZ100(s, obs)
	assert.NoError(t, err)

	// grids that miss either end of the visible range by a whole nanometer
	for _, r := range [][2]float64{{370, 830}, {360, 820}} {
		l := []float64{r[0], r[1]}
		o, err := NewObserver("short", l, [3][]float64{{1, 1}, {1, 1}, {1, 1}})
		require.NoError(t, err)
		s, err := NewSpectrum("short", l, []float64{1, 1})
		require.NoError(t, err)
		_, err = ToXYZ100(s, o)
		assert.True(t, errors.Is(err, errors.ErrDomain), "%v", r)
	}

	// zero luminance
	s, err = NewSpectrum("black", []float64{300, 830}, []float64{0, 0})
	require.NoError(t, err)
	_, err = WhitePoint(s, nil)
	assert.True(t, errors.Is(err, errors.ErrDomain))
}

func TestClampedInterpolation(t *testing.T) {
	// A constant spectrum given only on 500..600 nm is held at its end
	// values and so integrates like a constant over the whole observer.
	s, err := NewSpectrum("flat", []float64{500, 600}, []float64{100, 100})
	require.NoError(t, err)
	got, err := ToXYZ100(s, nil)
	require.NoError(t, err)
	full, err := NewSpectrum("full", []float64{360, 830}, []float64{100, 100})
	require.NoError(t, err)
	want, err := ToXYZ100(full, nil)
	require.NoError(t, err)
	assertVec(t, want, got, 1e-9)
}

func TestInvalidSpectrum(t *testing.T) {
	_, err := NewSpectrum("dup", []float64{400, 400, 500}, []float64{1, 2, 3})
	assert.True(t, errors.Is(err, errors.ErrData))
	_, err = NewSpectrum("dec", []float64{500, 400}, []float64{1, 2})
	assert.True(t, errors.Is(err, errors.ErrData))
	_, err = NewSpectrum("len", []float64{400, 500}, []float64{1})
	assert.True(t, errors.Is(err, errors.ErrData))
	_, err = NewSpectrum("short", []float64{400}, []float64{1})
	assert.True(t, errors.Is(err, errors.ErrData))

	// struct literals bypass the constructors
	bad := &Spectrum{Name: "literal", Lambda: []float64{300, 830}, Values: []float64{1}}
	_, err = ToXYZ100(bad, nil)
	assert.True(t, errors.Is(err, errors.ErrData))
	_, err = WhitePoint(bad, nil)
	assert.True(t, errors.Is(err, errors.ErrData))
	_, err = bad.At(500)
	assert.True(t, errors.Is(err, errors.ErrData))

	obs := &Observer{Name: "literal", Lambda: []float64{300, 830}, Values: [3][]float64{{1, 1}, {1}, {1, 1}}}
	_, err = ToXYZ100(D65(), obs)
	assert.True(t, errors.Is(err, errors.ErrData))
	obs = &Observer{Name: "literal", Lambda: []float64{830, 300}, Values: [3][]float64{{1, 1}, {1, 1}, {1, 1}}}
	_, err = ToXYZ100(D65(), obs)
	assert.True(t, errors.Is(err, errors.ErrData))
}

func TestDocuments(t *testing.T) {
	fsys := fstest.MapFS{
		"good.json":    {Data: []byte(`{"lambda": [380, 390], "num": 2, "values": [1, 2]}`)},
		"count.json":   {Data: []byte(`{"lambda": [380, 390], "num": 3, "values": [1, 2]}`)},
		"range.json":   {Data: []byte(`{"lambda": [390, 380], "num": 2, "values": [1, 2]}`)},
		"header.json":  {Data: []byte(`{"lambda": [380], "num": 2, "values": [1, 2]}`)},
		"unknown.json": {Data: []byte(`{"lambda": [380, 390], "num": 2, "vals": [1, 2]}`)},
		"syntax.json":  {Data: []byte(`{"lambda": [380, 390],`)},
	}
	d, err := readDocument(fsys, "good.json")
	require.NoError(t, err)
	s, err := d.spectrum()
	require.NoError(t, err)
	assert.Equal(t, "good.json", s.Name)
	assert.Equal(t, []float64{380, 390}, s.Lambda)

	d, err = readDocument(fsys, "count.json")
	require.NoError(t, err)
	_, err = d.spectrum()
	assert.True(t, errors.Is(err, errors.ErrData))

	for _, name := range []string{"range.json", "header.json", "unknown.json", "syntax.json", "missing.json"} {
		_, err := readDocument(fsys, name)
		assert.True(t, errors.Is(err, errors.ErrData), name)
	}
}
