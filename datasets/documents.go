// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datasets

import (
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"reflect"
	"strings"

	"cogentcore.org/colorimetry/base/errors"
	"cogentcore.org/colorimetry/base/iox/yamlx"
	"cogentcore.org/colorimetry/base/resource"
	"cogentcore.org/colorimetry/cs"
)

// hueDocument is the YAML form of a [HueLinearity] dataset.
type hueDocument struct {
	WhitePoint []float64 `yaml:"white point"`
	Data       []struct {
		Reference []float64   `yaml:"reference xyz"`
		Same      [][]float64 `yaml:"same"`
	} `yaml:"data"`
}

// ellipseDocument is the YAML form of an [Ellipses] dataset.
type ellipseDocument struct {
	Data []struct {
		Center   []float64   `yaml:"center"`
		Boundary [][]float64 `yaml:"boundary"`
	} `yaml:"data"`
}

func vec3(v []float64, what string) (cs.Vec3, error) {
	if len(v) != 3 {
		return cs.Vec3{}, errors.Dataf("%s must have 3 components, not %d", what, len(v))
	}
	res := cs.Vec3{v[0], v[1], v[2]}
	if !res.IsFinite() {
		return cs.Vec3{}, errors.Dataf("%s is not finite: %v", what, v)
	}
	return res, nil
}

func vec3s(vs [][]float64, what string) ([]cs.Vec3, error) {
	res := make([]cs.Vec3, len(vs))
	for i, v := range vs {
		var err error
		if res[i], err = vec3(v, what); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (d *hueDocument) dataset(name string) (*HueLinearity, error) {
	if d.WhitePoint == nil {
		return nil, errors.Dataf("%s: missing white point", name)
	}
	wp, err := vec3(d.WhitePoint, name+": white point")
	if err != nil {
		return nil, err
	}
	if len(d.Data) == 0 {
		return nil, errors.Dataf("%s: no data", name)
	}
	h := &HueLinearity{Name: name, WhitePoint: wp, Records: make([]HueRecord, len(d.Data))}
	for i, r := range d.Data {
		if h.Records[i].Reference, err = vec3(r.Reference, name+": reference xyz"); err != nil {
			return nil, err
		}
		if len(r.Same) == 0 {
			return nil, errors.Dataf("%s: record %d has no same-hue colors", name, i)
		}
		if h.Records[i].Same, err = vec3s(r.Same, name+": same"); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (d *ellipseDocument) dataset(name string) (*Ellipses, error) {
	if len(d.Data) == 0 {
		return nil, errors.Dataf("%s: no data", name)
	}
	e := &Ellipses{Name: name, Records: make([]EllipseRecord, len(d.Data))}
	for i, r := range d.Data {
		var err error
		if e.Records[i].Center, err = vec3(r.Center, name+": center"); err != nil {
			return nil, err
		}
		if len(r.Boundary) == 0 {
			return nil, errors.Dataf("%s: record %d has no boundary colors", name, i)
		}
		if e.Records[i].Boundary, err = vec3s(r.Boundary, name+": boundary"); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// datasetName returns the name of a dataset read from the given file.
func datasetName(filename string) string {
	base := path.Base(filepath.ToSlash(filename))
	return strings.TrimSuffix(base, path.Ext(base))
}

// ReadHueLinearity reads a hue-linearity dataset with the given name
// from the given YAML reader. Malformed documents are
// [errors.ErrData] errors.
func ReadHueLinearity(r io.Reader, name string) (*HueLinearity, error) {
	d := &hueDocument{}
	if err := yamlx.Read(d, r); err != nil {
		return nil, errors.AsData(err, name)
	}
	return d.dataset(name)
}

// OpenHueLinearity reads a hue-linearity dataset from the given YAML file.
func OpenHueLinearity(filename string) (*HueLinearity, error) {
	d := &hueDocument{}
	if err := yamlx.Open(d, filename); err != nil {
		return nil, errors.AsData(err, filename)
	}
	return d.dataset(datasetName(filename))
}

// OpenHueLinearityFS reads a hue-linearity dataset from the given YAML
// file in the given filesystem.
func OpenHueLinearityFS(fsys fs.FS, filename string) (*HueLinearity, error) {
	d := &hueDocument{}
	if err := yamlx.OpenFS(d, fsys, filename); err != nil {
		return nil, errors.AsData(err, filename)
	}
	return d.dataset(datasetName(filename))
}

// ReadEllipses reads an ellipse dataset with the given name
// from the given YAML reader.
func ReadEllipses(r io.Reader, name string) (*Ellipses, error) {
	d := &ellipseDocument{}
	if err := yamlx.Read(d, r); err != nil {
		return nil, errors.AsData(err, name)
	}
	return d.dataset(name)
}

// OpenEllipsesFS reads an ellipse dataset from the given YAML
// file in the given filesystem.
func OpenEllipsesFS(fsys fs.FS, filename string) (*Ellipses, error) {
	d := &ellipseDocument{}
	if err := yamlx.OpenFS(d, fsys, filename); err != nil {
		return nil, errors.AsData(err, filename)
	}
	return d.dataset(datasetName(filename))
}

// fileKey identifies a document in a filesystem.
// The filesystem must be comparable, as [embed.FS] and [os.DirFS] are.
type fileKey struct {
	fsys fs.FS
	name string
}

// newFileKey returns the cache key of the given file, or an
// [errors.ErrConfiguration] error if the filesystem cannot key a cache.
func newFileKey(fsys fs.FS, filename string) (fileKey, error) {
	if fsys == nil {
		return fileKey{}, errors.Configurationf("%s: nil filesystem", filename)
	}
	if !reflect.TypeOf(fsys).Comparable() {
		return fileKey{}, errors.Configurationf("%s: filesystem of type %T is not comparable; read it with the Open functions instead", filename, fsys)
	}
	return fileKey{fsys, filename}, nil
}

var (
	hueCache = resource.NewCache("hue linearity datasets", func(k fileKey) (*HueLinearity, error) {
		return OpenHueLinearityFS(k.fsys, k.name)
	})
	ellipseCache = resource.NewCache("ellipse datasets", func(k fileKey) (*Ellipses, error) {
		return OpenEllipsesFS(k.fsys, k.name)
	})
)

// LoadHueLinearity returns the hue-linearity dataset in the given file
// of the given filesystem, reading it only the first time. The dataset
// is shared and must not be modified.
//
// The filesystem is part of the cache key, so it must be comparable,
// like [embed.FS], [os.DirFS] and pointers. Maps such as
// [testing/fstest.MapFS] are an [errors.ErrConfiguration] error; use
// [OpenHueLinearityFS] for them.
func LoadHueLinearity(fsys fs.FS, filename string) (*HueLinearity, error) {
	k, err := newFileKey(fsys, filename)
	if err != nil {
		return nil, err
	}
	return hueCache.Get(k)
}

// LoadEllipses returns the ellipse dataset in the given file of the
// given filesystem, reading it only the first time. The filesystem must
// be comparable as for [LoadHueLinearity].
func LoadEllipses(fsys fs.FS, filename string) (*Ellipses, error) {
	k, err := newFileKey(fsys, filename)
	if err != nil {
		return nil, err
	}
	return ellipseCache.Get(k)
}
