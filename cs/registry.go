// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import (
	"slices"
	"strings"
	"sync"

	"cogentcore.org/colorimetry/base/errors"
	"github.com/iancoleman/strcase"
)

// Options are the construction parameters of a named space.
// Spaces ignore the options that do not apply to them.
type Options struct {

	// Scale is the tristimulus scale (1 or 100) of the XYZ and xyY families;
	// zero selects the default of the space.
	Scale float64

	// WhitePoint is the XYZ100 white point of white-relative spaces;
	// the zero value selects [WhiteD65].
	WhitePoint Vec3

	// View is the viewing conditions of appearance model spaces;
	// nil selects [NewStdView].
	View *View
}

// Factory creates a space from the given options.
type Factory func(opts Options) (Space, error)

type registration struct {
	name    string
	factory Factory
}

var (
	registryMu sync.RWMutex
	registry   = map[string]registration{}
)

// registryKey normalizes a space name, so that "CIELAB", "cielab",
// "CieLab" and "cie-lab" all resolve to the same factory.
func registryKey(name string) string {
	return strings.ReplaceAll(strcase.ToSnake(name), "_", "")
}

// Register adds a named space factory, replacing any existing
// factory with the same normalized name.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[registryKey(name)] = registration{name: name, factory: f}
}

// New returns a new space of the given registered name.
// An unknown name or invalid options are an [errors.ErrConfiguration] error.
func New(name string, opts Options) (Space, error) {
	registryMu.RLock()
	r, ok := registry[registryKey(name)]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.Configurationf("unknown color space %q", name)
	}
	return r.factory(opts)
}

// Names returns the names of all registered spaces, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for _, r := range registry {
		names = append(names, r.name)
	}
	slices.Sort(names)
	return names
}

func (o *Options) scaleOr(def float64) float64 {
	if o.Scale == 0 {
		return def
	}
	return o.Scale
}

func (o *Options) whitePoint() Vec3 {
	if o.WhitePoint == (Vec3{}) {
		return WhiteD65
	}
	return o.WhitePoint
}

// fixedScale returns an error if a scale other than the only
// one supported by a space is requested.
func (o *Options) fixedScale(name string, scale float64) error {
	if o.Scale == 0 || o.Scale == scale {
		return nil
	}
	if err := CheckScale(o.Scale); err != nil {
		return err
	}
	return errors.Configurationf("%s only supports scale %g, not %g", name, scale, o.Scale)
}

func init() {
	Register("XYZ", func(o Options) (Space, error) { return NewXYZ(o.scaleOr(100)) })
	Register("XYZ1", func(o Options) (Space, error) {
		if err := o.fixedScale("XYZ1", 1); err != nil {
			return nil, err
		}
		return XYZ1(), nil
	})
	Register("XYZ100", func(o Options) (Space, error) {
		if err := o.fixedScale("XYZ100", 100); err != nil {
			return nil, err
		}
		return XYZ100(), nil
	})
	Register("xyY", func(o Options) (Space, error) { return NewXYY(o.scaleOr(1)) })
	Register("CIELAB", func(o Options) (Space, error) {
		if err := o.fixedScale("CIELAB", 100); err != nil {
			return nil, err
		}
		return NewCIELAB(o.whitePoint())
	})
	Register("CIELCH", func(o Options) (Space, error) {
		if err := o.fixedScale("CIELCH", 100); err != nil {
			return nil, err
		}
		return NewCIELCH(o.whitePoint())
	})
	Register("CIELUV", func(o Options) (Space, error) {
		if err := o.fixedScale("CIELUV", 100); err != nil {
			return nil, err
		}
		return NewCIELUV(o.whitePoint())
	})
	Register("OKLAB", func(o Options) (Space, error) {
		if err := o.fixedScale("OKLAB", 1); err != nil {
			return nil, err
		}
		return NewOKLab(), nil
	})
	Register("SRGBLinear", func(o Options) (Space, error) {
		if err := o.fixedScale("SRGBLinear", 1); err != nil {
			return nil, err
		}
		return NewSRGBLinear(), nil
	})
	Register("CAM16UCS", func(o Options) (Space, error) {
		if err := o.fixedScale("CAM16UCS", 100); err != nil {
			return nil, err
		}
		vw := o.View
		if vw == nil && o.WhitePoint != (Vec3{}) {
			var err error
			vw, err = NewView(o.WhitePoint, 200, 50, 2, false)
			if err != nil {
				return nil, err
			}
		}
		return NewCAM16UCS(vw), nil
	})
}
