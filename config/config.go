// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the TOML configuration of evaluation runs,
// which score a set of color spaces against a set of datasets.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/colorimetry/base/errors"
	"cogentcore.org/colorimetry/base/iox/tomlx"
	"cogentcore.org/colorimetry/base/logx"
	"cogentcore.org/colorimetry/cs"
	"cogentcore.org/colorimetry/datasets"
	"cogentcore.org/colorimetry/spectra"
	"golang.org/x/sync/errgroup"
)

// Dataset kinds.
const (
	HueLinearity = "hue-linearity"
	Ellipse      = "ellipse"
)

// Observers are the supported standard observers.
var Observers = []string{"cie1931"}

// Illuminants are the named illuminants that can provide a white point.
var Illuminants = map[string]func() (*spectra.Spectrum, error){
	"A":   func() (*spectra.Spectrum, error) { return spectra.A(1) },
	"D50": func() (*spectra.Spectrum, error) { return spectra.D(5000) },
	"D55": func() (*spectra.Spectrum, error) { return spectra.D(5500) },
	"D65": func() (*spectra.Spectrum, error) { return spectra.D(6500) },
	"D75": func() (*spectra.Spectrum, error) { return spectra.D(7500) },
	"E":   func() (*spectra.Spectrum, error) { return spectra.E(), nil },
	"F2":  spectra.F2,
}

// Config is the configuration of an evaluation run.
type Config struct {

	// Observer is the standard observer used to compute white points
	// from illuminants.
	Observer string `toml:"observer"`

	// LogLevel is the minimum level of log messages
	// ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// Spaces are the color spaces to evaluate.
	Spaces []SpaceConfig `toml:"spaces"`

	// Datasets are the datasets to evaluate the spaces against.
	Datasets []DatasetConfig `toml:"datasets"`

	// dir is the directory that relative dataset paths are resolved in.
	dir string
}

// SpaceConfig configures one color space.
type SpaceConfig struct {

	// Name is the registered name of the space; see [cs.Names].
	Name string `toml:"name"`

	// Scale is the tristimulus scale (1 or 100), or 0 for the default.
	Scale float64 `toml:"scale"`

	// WhitePoint is an explicit XYZ100 white point.
	WhitePoint []float64 `toml:"white_point"`

	// Illuminant names an illuminant whose white point is used,
	// as an alternative to WhitePoint.
	Illuminant string `toml:"illuminant"`
}

// DatasetConfig configures one dataset.
type DatasetConfig struct {

	// Name identifies the dataset in results; it defaults to the file name.
	Name string `toml:"name"`

	// Kind is [HueLinearity] or [Ellipse].
	Kind string `toml:"kind"`

	// Path is the YAML document of the dataset, relative to the
	// directory of the configuration file.
	Path string `toml:"path"`
}

// Result is the stress of one space for one dataset.
type Result struct {
	Dataset string
	Space   string
	Stress  float64
}

// Default returns the default configuration: CIELAB, CAM16UCS and OKLAB
// and no datasets.
func Default() *Config {
	return &Config{
		Observer: "cie1931",
		LogLevel: "info",
		Spaces:   []SpaceConfig{{Name: "CIELAB"}, {Name: "CAM16UCS"}, {Name: "OKLAB"}},
	}
}

// Open reads and validates the configuration in the given TOML file.
func Open(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Configurationf("config: %w", err)
	}
	defer f.Close()
	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	c.dir = filepath.Dir(filename)
	return c, nil
}

// Read reads and validates the configuration from the given TOML reader,
// starting from [Default]. Relative dataset paths are resolved in the
// current directory.
func Read(r io.Reader) (*Config, error) {
	c := Default()
	c.Spaces = nil
	if err := tomlx.Read(c, r); err != nil {
		return nil, errors.Configurationf("config: %w", err)
	}
	if c.Spaces == nil {
		c.Spaces = Default().Spaces
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate returns an [errors.ErrConfiguration] error for an unknown
// observer, space, illuminant or dataset kind, a bad scale or white
// point, or a bad log level.
func (c *Config) Validate() error {
	if !slices.Contains(Observers, strings.ToLower(c.Observer)) {
		return errors.Configurationf("config: unknown observer %q", c.Observer)
	}
	if _, err := logx.LevelFromString(c.LogLevel); err != nil {
		return errors.Configurationf("config: %w", err)
	}
	if _, err := c.BuildSpaces(); err != nil {
		return err
	}
	for i, d := range c.Datasets {
		if d.Kind != HueLinearity && d.Kind != Ellipse {
			return errors.Configurationf("config: dataset %d: unknown kind %q", i, d.Kind)
		}
		if d.Path == "" {
			return errors.Configurationf("config: dataset %d: missing path", i)
		}
	}
	return nil
}

// Level returns the configured log level. An invalid level is logged
// and treated as [slog.LevelInfo].
func (c *Config) Level() slog.Level {
	return errors.Log1(logx.LevelFromString(c.LogLevel))
}

// SetupLogging sets [logx.UserLevel] to the configured level and
// installs the default logger at that level.
func (c *Config) SetupLogging() {
	logx.UserLevel = c.Level()
	logx.SetDefaultLogger()
}

// whitePoint returns the white point of the given space configuration,
// or the zero value for the default.
func (c *Config) whitePoint(sc *SpaceConfig) (cs.Vec3, error) {
	switch {
	case sc.WhitePoint != nil && sc.Illuminant != "":
		return cs.Vec3{}, errors.Configurationf("config: space %s has both a white point and an illuminant", sc.Name)
	case sc.WhitePoint != nil:
		if len(sc.WhitePoint) != 3 {
			return cs.Vec3{}, errors.Configurationf("config: space %s: white point must have 3 components", sc.Name)
		}
		wp := cs.Vec3{sc.WhitePoint[0], sc.WhitePoint[1], sc.WhitePoint[2]}
		return wp, cs.CheckWhitePoint(wp)
	case sc.Illuminant != "":
		ill, ok := Illuminants[strings.ToUpper(sc.Illuminant)]
		if !ok {
			return cs.Vec3{}, errors.Configurationf("config: space %s: unknown illuminant %q", sc.Name, sc.Illuminant)
		}
		s, err := ill()
		if err != nil {
			return cs.Vec3{}, err
		}
		// cie1931 is the only observer
		return spectra.WhitePoint(s, nil)
	}
	return cs.Vec3{}, nil
}

// BuildSpaces returns the configured color spaces, built through the
// [cs] registry.
func (c *Config) BuildSpaces() ([]cs.Space, error) {
	res := make([]cs.Space, len(c.Spaces))
	for i := range c.Spaces {
		sc := &c.Spaces[i]
		wp, err := c.whitePoint(sc)
		if err != nil {
			return nil, err
		}
		if res[i], err = cs.New(sc.Name, cs.Options{Scale: sc.Scale, WhitePoint: wp}); err != nil {
			return nil, fmt.Errorf("config: space %d: %w", i, err)
		}
	}
	return res, nil
}

// path returns the path of the given dataset file.
func (c *Config) path(p string) string {
	if filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

// LoadDatasets returns the configured datasets with their names,
// loading each document once per process.
func (c *Config) LoadDatasets() ([]string, []datasets.Evaluator, error) {
	names := make([]string, len(c.Datasets))
	evs := make([]datasets.Evaluator, len(c.Datasets))
	for i, d := range c.Datasets {
		p := c.path(d.Path)
		fsys, file := os.DirFS(filepath.Dir(p)), filepath.Base(p)
		var err error
		switch d.Kind {
		case HueLinearity:
			var h *datasets.HueLinearity
			h, err = datasets.LoadHueLinearity(fsys, file)
			if err == nil {
				names[i], evs[i] = h.Name, h
			}
		case Ellipse:
			var e *datasets.Ellipses
			e, err = datasets.LoadEllipses(fsys, file)
			if err == nil {
				names[i], evs[i] = e.Name, e
			}
		default:
			err = errors.Configurationf("config: dataset %d: unknown kind %q", i, d.Kind)
		}
		if err != nil {
			return nil, nil, err
		}
		if d.Name != "" {
			names[i] = d.Name
		}
	}
	return names, evs, nil
}

// Evaluate scores every configured space against every configured
// dataset. The scores are computed concurrently and returned ordered by
// dataset and then by space, in configuration order. The first failure
// is returned and no partial results.
func (c *Config) Evaluate() ([]Result, error) {
	spaces, err := c.BuildSpaces()
	if err != nil {
		return nil, err
	}
	names, evs, err := c.LoadDatasets()
	if err != nil {
		return nil, err
	}
	res := make([]Result, len(evs)*len(spaces))
	var g errgroup.Group
	for i, ev := range evs {
		for j, s := range spaces {
			k := i*len(spaces) + j
			res[k] = Result{Dataset: names[i], Space: s.Name()}
			g.Go(func() error {
				st, err := ev.Stress(s)
				if err != nil {
					return fmt.Errorf("%s: %w", names[i], err)
				}
				res[k].Stress = st
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slog.Debug("evaluated", "datasets", len(evs), "spaces", len(spaces))
	return res, nil
}
