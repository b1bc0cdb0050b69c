// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx reads TOML documents through the iox helpers.
package tomlx

import (
	"io"
	"io/fs"

	"cogentcore.org/colorimetry/base/iox"
	"github.com/pelletier/go-toml/v2"
)

// Open reads the given object from the given filename using TOML encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, iox.NewDecoderFunc(NewDecoder))
}

// OpenFS reads the given object from the given filename using TOML encoding,
// using the given [fs.FS] filesystem (e.g., for embed files)
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, iox.NewDecoderFunc(NewDecoder))
}

// Read reads the given object from the given reader,
// using TOML encoding
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, iox.NewDecoderFunc(NewDecoder))
}

// ReadBytes reads the given object from the given bytes,
// using TOML encoding
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, iox.NewDecoderFunc(NewDecoder))
}

// NewDecoder returns a TOML decoder that rejects unknown fields.
func NewDecoder(r io.Reader) *toml.Decoder {
	return toml.NewDecoder(r).DisallowUnknownFields()
}
