// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import (
	"fmt"
	"math"

	"cogentcore.org/colorimetry/base/errors"
	"cogentcore.org/colorimetry/cs"
)

// Physical constants in SI units.
const (
	SpeedOfLight = 299792458.0
	Planck       = 6.62607004e-34
	Boltzmann    = 1.38064852e-23
)

// WhitePointsCIE1931 are the published white points of the standard
// illuminants for the CIE 1931 2° observer.
var WhitePointsCIE1931 = map[string]cs.Vec3{
	"A":   {109.850, 100, 35.585},
	"C":   {98.074, 100, 118.232},
	"D50": {96.422, 100, 82.521},
	"D55": {95.682, 100, 92.149},
	"D65": cs.WhiteD65,
	"D75": {94.972, 100, 122.638},
}

// WhitePointsCIE1964 are the published white points of the standard
// illuminants for the CIE 1964 10° observer.
var WhitePointsCIE1964 = map[string]cs.Vec3{
	"A":   {111.144, 100, 35.200},
	"C":   {97.285, 100, 116.145},
	"D50": {96.720, 100, 81.427},
	"D55": {95.799, 100, 90.926},
	"D65": {94.811, 100, 107.304},
	"D75": {94.416, 100, 120.641},
}

// grid returns the wavelengths from start up to but not including stop,
// in steps of the given interval.
func grid(start, stop, interval float64) []float64 {
	n := int(math.Ceil((stop - start) / interval))
	lambda := make([]float64, n)
	for i := range lambda {
		lambda[i] = start + float64(i)*interval
	}
	return lambda
}

// Planckian returns the spectral radiance of a black body at the given
// temperature in K, from 300 to 830 nm at 1 nm, following Planck's law.
func Planckian(temperature float64) (*Spectrum, error) {
	if !(temperature > 0) || math.IsInf(temperature, 0) {
		return nil, errors.Domainf("invalid temperature %g K", temperature)
	}
	lambda := grid(300, 831, 1)
	c1 := 2 * math.Pi * Planck * SpeedOfLight * SpeedOfLight
	c2 := Planck * SpeedOfLight / Boltzmann
	values := make([]float64, len(lambda))
	for i, l := range lambda {
		m := l * 1e-9
		values[i] = c1 / math.Pow(m, 5) / math.Expm1(c2/m/temperature)
	}
	return NewSpectrum(fmt.Sprintf("Planckian %gK", temperature), lambda, values)
}

// A returns the CIE standard illuminant A, representing domestic
// tungsten-filament lighting, from 300 nm up to 831 nm in steps of the
// given interval in nm. It is a Planckian radiator normalized to 100
// at 560 nm. A non-positive interval is an [errors.ErrConfiguration] error.
func A(interval float64) (*Spectrum, error) {
	if !(interval > 0) || math.IsInf(interval, 0) {
		return nil, errors.Configurationf("illuminant A: invalid interval %g nm", interval)
	}
	const (
		c2        = 1.435e-2
		colorTemp = 2848
		ref       = 560e-9
	)
	lambda := grid(300, 831, interval)
	values := make([]float64, len(lambda))
	for i, l := range lambda {
		m := l * 1e-9
		values[i] = 100 * math.Pow(ref/m, 5) * math.Expm1(c2/(colorTemp*ref)) / math.Expm1(c2/(colorTemp*m))
	}
	return NewSpectrum("A", lambda, values)
}

// StdA returns the CIE standard illuminant A at 1 nm.
func StdA() *Spectrum {
	return errors.Must1(A(1))
}

// DaylightCoefficients returns the M1 and M2 coefficients of the CIE
// daylight illuminant of the given nominal correlated color temperature
// in K, rounded to three decimals. The temperature is first corrected by
// 1.4388/1.4380 for the revised value of c2; the result must lie within
// [4000, 25000] K, or it is an [errors.ErrDomain] error.
func DaylightCoefficients(nominal float64) (m1, m2 float64, err error) {
	tcp := nominal * 1.4388 / 1.4380

	var xd float64
	switch {
	case 4000 <= tcp && tcp <= 7000:
		xd = ((-4.6070e9/tcp+2.9678e6)/tcp+0.09911e3)/tcp + 0.244063
	case 7000 < tcp && tcp <= 25000:
		xd = ((-2.0064e9/tcp+1.9018e6)/tcp+0.24748e3)/tcp + 0.237040
	default:
		return 0, 0, errors.Domainf("daylight temperature %g K (corrected %g K) is outside of [4000, 25000] K", nominal, tcp)
	}
	yd := (-3*xd+2.87)*xd - 0.275

	den := 0.0241 + 0.2562*xd - 0.7341*yd
	m1 = (-1.3515 - 1.7703*xd + 5.9114*yd) / den
	m2 = (0.0300 - 31.4424*xd + 30.0717*yd) / den
	return round3(m1), round3(m2), nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// D returns the CIE daylight illuminant of the given nominal correlated
// color temperature in K, as S0 + M1 S1 + M2 S2 over the 10 nm basis
// grid from 300 to 830 nm.
func D(nominal float64) (*Spectrum, error) {
	m1, m2, err := DaylightCoefficients(nominal)
	if err != nil {
		return nil, err
	}
	doc, err := documents.Get("d.json")
	if err != nil {
		return nil, err
	}
	lambda, s, err := doc.daylightBasis()
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(lambda))
	for i := range values {
		values[i] = s[0][i] + m1*s[1][i] + m2*s[2][i]
	}
	return NewSpectrum(fmt.Sprintf("D%g", math.Round(nominal/100)), lambda, values)
}

// D50 returns the CIE illuminant D50, mid-morning or mid-afternoon daylight.
func D50() *Spectrum { return errors.Must1(D(5000)) }

// D55 returns the CIE illuminant D55.
func D55() *Spectrum { return errors.Must1(D(5500)) }

// D65 returns the CIE standard illuminant D65, average daylight.
func D65() *Spectrum { return errors.Must1(D(6500)) }

// D75 returns the CIE illuminant D75, north sky daylight.
func D75() *Spectrum { return errors.Must1(D(7500)) }

// E returns the hypothetical equal-energy illuminant E, with a relative
// spectral power of 100 at every wavelength from 300 to 830 nm.
func E() *Spectrum {
	lambda := grid(300, 831, 1)
	values := make([]float64, len(lambda))
	for i := range values {
		values[i] = 100
	}
	return errors.Must1(NewSpectrum("E", lambda, values))
}

// F2 returns the CIE illuminant F2, cool white fluorescent,
// from 380 to 780 nm at 5 nm.
func F2() (*Spectrum, error) {
	doc, err := documents.Get("f2.json")
	if err != nil {
		return nil, err
	}
	return doc.spectrum()
}
