// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spectra integrates spectral power distributions against
// color-matching functions to obtain XYZ100 tristimulus values, and
// synthesizes the standard CIE illuminants.
//
// All wavelengths are in nanometers.
package spectra

import (
	"math"

	"cogentcore.org/colorimetry/base/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Spectrum is a scalar function sampled over wavelength, such as the
// relative spectral power distribution of an illuminant.
// Spectra are read-only once created.
type Spectrum struct {

	// Name describes the spectrum, e.g. "D65".
	Name string

	// Lambda are the wavelengths in nm, strictly increasing.
	Lambda []float64

	// Values are the function values at each wavelength.
	Values []float64
}

// Observer is a set of three color-matching functions sampled over
// a common wavelength grid. Observers are read-only once created.
type Observer struct {

	// Name describes the observer.
	Name string

	// Lambda are the wavelengths in nm, strictly increasing.
	Lambda []float64

	// Values are the x̄, ȳ and z̄ functions at each wavelength.
	Values [3][]float64
}

// NewSpectrum returns a new spectrum after validating that the
// wavelengths are strictly increasing and match the values.
// Invalid input is an [errors.ErrData] error.
func NewSpectrum(name string, lambda, values []float64) (*Spectrum, error) {
	s := &Spectrum{Name: name, Lambda: lambda, Values: values}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewObserver returns a new observer after validating its domain
// and each of its channels.
func NewObserver(name string, lambda []float64, values [3][]float64) (*Observer, error) {
	o := &Observer{Name: name, Lambda: lambda, Values: values}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate returns an [errors.ErrData] error if the spectrum has fewer
// than two samples, a value count that differs from its wavelength
// count, a non-finite sample, or wavelengths that are not strictly
// increasing. Spectra built as struct literals are validated by every
// operation that reads them.
func (s *Spectrum) Validate() error {
	return checkDomain(s.Name, s.Lambda, s.Values)
}

// Validate is [Spectrum.Validate] applied to each channel.
func (o *Observer) Validate() error {
	for i, v := range o.Values {
		if err := checkDomain(o.Name, o.Lambda, v); err != nil {
			return errors.Dataf("channel %d: %w", i, err)
		}
	}
	return nil
}

func checkDomain(name string, lambda, values []float64) error {
	if len(lambda) < 2 {
		return errors.Dataf("%s: need at least 2 wavelengths, have %d", name, len(lambda))
	}
	if len(values) != len(lambda) {
		return errors.Dataf("%s: %d values for %d wavelengths", name, len(values), len(lambda))
	}
	for i, l := range lambda {
		if math.IsNaN(l) || math.IsInf(l, 0) || math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			return errors.Dataf("%s: non-finite sample at index %d", name, i)
		}
		if i > 0 && l <= lambda[i-1] {
			return errors.Dataf("%s: wavelengths not strictly increasing at index %d (%g after %g)", name, i, l, lambda[i-1])
		}
	}
	return nil
}

// Linspace returns n evenly spaced wavelengths from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	return floats.Span(make([]float64, n), start, stop)
}

// At returns the value of the spectrum at the given wavelength,
// interpolated linearly and held at the end values outside its domain.
func (s *Spectrum) At(lambda float64) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(s.Lambda, s.Values); err != nil {
		return 0, errors.AsData(err, s.Name)
	}
	return pl.Predict(lambda), nil
}

// resample evaluates the function given by the samples (xs, ys) at each
// of the given wavelengths. Outside of xs the end values are held.
// The samples must have passed [checkDomain].
func resample(lambda, xs, ys []float64) []float64 {
	var pl interp.PiecewiseLinear
	errors.Must(pl.Fit(xs, ys))
	res := make([]float64, len(lambda))
	for i, l := range lambda {
		res[i] = pl.Predict(l)
	}
	return res
}
