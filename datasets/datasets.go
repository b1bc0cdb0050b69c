// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datasets scores color spaces against psychophysical datasets.
// A dataset maps its colors into a candidate space through XYZ100 and
// measures, with the [stress.STRESS] statistic, how far the geometry it
// finds there is from the geometry that the observers judged.
package datasets

import (
	"cogentcore.org/colorimetry/base/errors"
	"cogentcore.org/colorimetry/cs"
)

// Evaluator is a dataset that can score and plot a color space.
type Evaluator interface {

	// Stress returns the disagreement of the space with the dataset,
	// from 0 (perfect agreement) upward.
	Stress(space cs.Space) (float64, error)

	// Plot hands the geometry of the dataset in the space to the plotter.
	Plot(space cs.Space, p Plotter) error
}

// Plotter renders dataset geometry. Rendering is up to the implementation.
type Plotter interface {
	PlotHueLinearity(g *HueGeometry) error
	PlotEllipses(g *EllipseGeometry) error
}

// chromatic maps the given XYZ100 color into the space and returns its
// coordinates without the lightness axis. Non-finite coordinates are an
// [errors.ErrDomain] error.
func chromatic(space cs.Space, xyz cs.Vec3) ([]float64, error) {
	c := space.FromXYZ100(xyz)
	if !c.IsFinite() {
		return nil, errors.Domainf("%s maps %v to non-finite %v", space.Name(), xyz, c)
	}
	return cs.Chromatic(space, c), nil
}
