// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datasets

import (
	"fmt"
	"log/slog"

	"cogentcore.org/colorimetry/base/errors"
	"cogentcore.org/colorimetry/cs"
	"cogentcore.org/colorimetry/stress"
	"gonum.org/v1/gonum/floats"
)

// EllipseRecord is one discrimination ellipse: colors on its boundary
// were judged to differ from the center color by the same amount.
type EllipseRecord struct {

	// Center is the XYZ100 center color.
	Center cs.Vec3

	// Boundary are XYZ100 colors on the boundary.
	Boundary []cs.Vec3
}

// Ellipses is a color-difference dataset, such as MacAdam (1942).
// In a perceptually uniform space every ellipse is a circle of the
// same radius. Loaded datasets are shared and must not be modified.
type Ellipses struct {

	// Name identifies the dataset.
	Name string

	// Records are the ellipses.
	Records []EllipseRecord
}

// EllipseGeometry is an ellipse dataset mapped into the chromatic plane
// of a color space.
type EllipseGeometry struct {

	// Space is the name of the space.
	Space string

	// Ellipses are the mapped ellipses.
	Ellipses []EllipseShape
}

// EllipseShape is one ellipse in the chromatic plane.
type EllipseShape struct {
	Center   []float64
	Boundary [][]float64
}

// Geometry maps the dataset into the chromatic plane of the given space.
func (e *Ellipses) Geometry(space cs.Space) (*EllipseGeometry, error) {
	if len(e.Records) == 0 {
		return nil, errors.Domainf("ellipses %q: no records", e.Name)
	}
	g := &EllipseGeometry{Space: space.Name(), Ellipses: make([]EllipseShape, len(e.Records))}
	for i, r := range e.Records {
		if len(r.Boundary) == 0 {
			return nil, errors.Domainf("ellipses %q: record %d has no boundary colors", e.Name, i)
		}
		c, err := chromatic(space, r.Center)
		if err != nil {
			return nil, err
		}
		sh := EllipseShape{Center: c, Boundary: make([][]float64, len(r.Boundary))}
		for j, xyz := range r.Boundary {
			if sh.Boundary[j], err = chromatic(space, xyz); err != nil {
				return nil, err
			}
		}
		g.Ellipses[i] = sh
	}
	return g, nil
}

// Stress returns the ellipse stress of the space: the distances from each
// center to its boundary colors are compared with a constant, so that
// the stress is zero if and only if all ellipses are circles of the
// same radius.
func (e *Ellipses) Stress(space cs.Space) (float64, error) {
	g, err := e.Geometry(space)
	if err != nil {
		return 0, err
	}
	var observed, expected []float64
	for _, sh := range g.Ellipses {
		for _, b := range sh.Boundary {
			observed = append(observed, floats.Distance(b, sh.Center, 2))
			expected = append(expected, 1)
		}
	}
	s, err := stress.STRESS(observed, expected)
	if err != nil {
		return 0, fmt.Errorf("ellipses %q in %s: %w", e.Name, space.Name(), err)
	}
	slog.Debug("ellipse stress", "dataset", e.Name, "space", space.Name(), "stress", s)
	return s, nil
}

// Plot hands the geometry of the dataset in the given space to the plotter.
// A nil plotter is an [errors.ErrConfiguration] error.
func (e *Ellipses) Plot(space cs.Space, p Plotter) error {
	if p == nil {
		return errors.Configurationf("ellipses %q: nil plotter", e.Name)
	}
	g, err := e.Geometry(space)
	if err != nil {
		return err
	}
	return p.PlotEllipses(g)
}
