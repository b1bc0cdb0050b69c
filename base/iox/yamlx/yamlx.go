// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx reads YAML documents through the iox helpers.
package yamlx

import (
	"io"
	"io/fs"

	"cogentcore.org/colorimetry/base/iox"
	"gopkg.in/yaml.v3"
)

// Open reads the given object from the given filename using YAML encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, iox.NewDecoderFunc(NewDecoder))
}

// OpenFS reads the given object from the given filename using YAML encoding,
// using the given [fs.FS] filesystem (e.g., for embed files)
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, iox.NewDecoderFunc(NewDecoder))
}

// Read reads the given object from the given reader,
// using YAML encoding
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, iox.NewDecoderFunc(NewDecoder))
}

// ReadBytes reads the given object from the given bytes,
// using YAML encoding
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, iox.NewDecoderFunc(NewDecoder))
}

// NewDecoder returns a YAML decoder that rejects unknown fields.
func NewDecoder(r io.Reader) *yaml.Decoder {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	return d
}
