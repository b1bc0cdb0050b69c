// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import (
	"embed"
	"io/fs"
	"math"
	"slices"

	"cogentcore.org/colorimetry/base/errors"
	"cogentcore.org/colorimetry/base/iox/jsonx"
	"cogentcore.org/colorimetry/base/resource"
)

//go:embed data/*.json
var dataFS embed.FS

// document is a tabulated function document. Its wavelengths are Num
// evenly spaced points from Lambda[0] to Lambda[1] inclusive, and it has
// exactly one of the value sets.
type document struct {
	Name   string      `json:"name"`
	Lambda []float64   `json:"lambda"`
	Num    int         `json:"num"`
	Values []float64   `json:"values"`
	S      [][]float64 `json:"s"`
	XYZ    [][]float64 `json:"xyz"`
}

// wavelengths validates the header of the document and returns its grid.
func (d *document) wavelengths() ([]float64, error) {
	if len(d.Lambda) != 2 {
		return nil, errors.Dataf("%s: lambda must be [start, stop], not %v", d.Name, d.Lambda)
	}
	start, stop := d.Lambda[0], d.Lambda[1]
	if d.Num < 2 || !(stop > start) || math.IsInf(stop-start, 0) {
		return nil, errors.Dataf("%s: invalid range [%g, %g] with %d points", d.Name, start, stop, d.Num)
	}
	return Linspace(start, stop, d.Num), nil
}

// channels checks that the document has n channels of Num values each.
func (d *document) channels(vals [][]float64, n int) error {
	if len(vals) != n {
		return errors.Dataf("%s: %d channels, need %d", d.Name, len(vals), n)
	}
	for i, v := range vals {
		if len(v) != d.Num {
			return errors.Dataf("%s: channel %d has %d values, need %d", d.Name, i, len(v), d.Num)
		}
	}
	return nil
}

// readDocument reads and validates the named document from the given
// filesystem. Any failure is an [errors.ErrData] error.
func readDocument(fsys fs.FS, name string) (*document, error) {
	d := &document{}
	if err := jsonx.OpenFS(d, fsys, name); err != nil {
		return nil, errors.AsData(err, name)
	}
	if d.Name == "" {
		d.Name = name
	}
	if _, err := d.wavelengths(); err != nil {
		return nil, err
	}
	return d, nil
}

var documents = resource.NewCache("spectra documents", func(name string) (*document, error) {
	return readDocument(dataFS, "data/"+name)
})

// spectrum returns the single-channel spectrum of the document.
func (d *document) spectrum() (*Spectrum, error) {
	lambda, err := d.wavelengths()
	if err != nil {
		return nil, err
	}
	if err := d.channels([][]float64{d.Values}, 1); err != nil {
		return nil, err
	}
	return NewSpectrum(d.Name, lambda, slices.Clone(d.Values))
}

// observer returns the color-matching functions of the document.
func (d *document) observer() (*Observer, error) {
	lambda, err := d.wavelengths()
	if err != nil {
		return nil, err
	}
	if err := d.channels(d.XYZ, 3); err != nil {
		return nil, err
	}
	return NewObserver(d.Name, lambda, [3][]float64{d.XYZ[0], d.XYZ[1], d.XYZ[2]})
}

// daylightBasis returns the S0, S1 and S2 basis functions of the document.
func (d *document) daylightBasis() ([]float64, [3][]float64, error) {
	lambda, err := d.wavelengths()
	if err != nil {
		return nil, [3][]float64{}, err
	}
	if err := d.channels(d.S, 3); err != nil {
		return nil, [3][]float64{}, err
	}
	return lambda, [3][]float64{d.S[0], d.S[1], d.S[2]}, nil
}

var observers = resource.NewCache("observers", func(name string) (*Observer, error) {
	d, err := documents.Get(name)
	if err != nil {
		return nil, err
	}
	return d.observer()
})

// CIE1931 returns the CIE 1931 2° standard observer, tabulated from
// 360 to 830 nm at 1 nm by Sprague interpolation of the CIE 5 nm table.
// It matches the 5 nm table exactly at multiples of 5 nm; between them
// it can differ from the CIE 1 nm table by about 1%. It is loaded once
// and shared, so it must not be modified.
func CIE1931() (*Observer, error) {
	return observers.Get("cie-1931-2.json")
}
