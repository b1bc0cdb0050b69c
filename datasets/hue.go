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

// HueRecord is one group of a hue-linearity dataset: colors that were
// judged to have the same hue as the reference color.
type HueRecord struct {

	// Reference is the XYZ100 anchor color of the group.
	Reference cs.Vec3

	// Same are the XYZ100 colors of the same perceived hue.
	Same []cs.Vec3
}

// HueLinearity is a constant-hue dataset, such as those of Ebner and
// Fairchild (1998) or Hung and Berns (1995). In a perfectly hue-linear
// space, every color of a group lies on the straight line from the white
// point through the reference color of the group.
// Loaded datasets are shared and must not be modified.
type HueLinearity struct {

	// Name identifies the dataset.
	Name string

	// WhitePoint is the XYZ100 white point of the experiment.
	WhitePoint cs.Vec3

	// Records are the constant-hue groups.
	Records []HueRecord
}

// HueGeometry is a hue-linearity dataset mapped into the chromatic plane
// of a color space.
type HueGeometry struct {

	// Space is the name of the space.
	Space string

	// WhitePoint are the chromatic coordinates of the white point.
	WhitePoint []float64

	// Lines are the constant-hue groups.
	Lines []HueLine
}

// HueLine is one constant-hue group in the chromatic plane.
type HueLine struct {

	// Anchor are the chromatic coordinates of the reference color.
	Anchor []float64

	// Direction is the unit vector from the white point to the anchor.
	Direction []float64

	// Points are the chromatic coordinates of the colors of the group.
	Points [][]float64
}

// Geometry maps the dataset into the chromatic plane of the given space.
// An empty dataset or group, a reference color that coincides with the
// white point, or a non-finite mapped color are [errors.ErrDomain] errors.
func (h *HueLinearity) Geometry(space cs.Space) (*HueGeometry, error) {
	if len(h.Records) == 0 {
		return nil, errors.Domainf("hue linearity %q: no records", h.Name)
	}
	wp, err := chromatic(space, h.WhitePoint)
	if err != nil {
		return nil, err
	}
	g := &HueGeometry{Space: space.Name(), WhitePoint: wp, Lines: make([]HueLine, len(h.Records))}
	for i, r := range h.Records {
		if len(r.Same) == 0 {
			return nil, errors.Domainf("hue linearity %q: record %d has no colors", h.Name, i)
		}
		anchor, err := chromatic(space, r.Reference)
		if err != nil {
			return nil, err
		}
		dir := make([]float64, len(anchor))
		floats.SubTo(dir, anchor, wp)
		n := floats.Norm(dir, 2)
		if n == 0 {
			return nil, errors.Domainf("hue linearity %q: reference of record %d coincides with the white point in %s", h.Name, i, space.Name())
		}
		floats.Scale(1/n, dir)
		ln := HueLine{Anchor: anchor, Direction: dir, Points: make([][]float64, len(r.Same))}
		for j, xyz := range r.Same {
			if ln.Points[j], err = chromatic(space, xyz); err != nil {
				return nil, err
			}
		}
		g.Lines[i] = ln
	}
	return g, nil
}

// Stress returns the hue-linearity stress of the space. For each color
// the offset v from the white point is compared with its orthogonal
// projection onto the line of its group, so that the stress is
// 100 sqrt(Σ|v - proj|² / Σ|proj|²): zero if and only if every color
// lies on its line.
func (h *HueLinearity) Stress(space cs.Space) (float64, error) {
	g, err := h.Geometry(space)
	if err != nil {
		return 0, err
	}
	var observed, expected []float64
	for _, ln := range g.Lines {
		for _, p := range ln.Points {
			v := make([]float64, len(p))
			floats.SubTo(v, p, g.WhitePoint)
			proj := make([]float64, len(p))
			floats.ScaleTo(proj, floats.Dot(v, ln.Direction), ln.Direction)
			observed = append(observed, v...)
			expected = append(expected, proj...)
		}
	}
	s, err := stress.STRESS(observed, expected)
	if err != nil {
		return 0, fmt.Errorf("hue linearity %q in %s: %w", h.Name, space.Name(), err)
	}
	slog.Debug("hue linearity stress", "dataset", h.Name, "space", space.Name(), "stress", s)
	return s, nil
}

// Plot hands the geometry of the dataset in the given space to the plotter.
// A nil plotter is an [errors.ErrConfiguration] error.
func (h *HueLinearity) Plot(space cs.Space, p Plotter) error {
	if p == nil {
		return errors.Configurationf("hue linearity %q: nil plotter", h.Name)
	}
	g, err := h.Geometry(space)
	if err != nil {
		return err
	}
	return p.PlotHueLinearity(g)
}
