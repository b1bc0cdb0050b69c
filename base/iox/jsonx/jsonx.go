// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx reads JSON documents through the iox helpers.
package jsonx

import (
	"encoding/json"
	"io"
	"io/fs"

	"cogentcore.org/colorimetry/base/iox"
)

// Open reads the given object from the given filename using JSON encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, iox.NewDecoderFunc(NewDecoder))
}

// OpenFS reads the given object from the given filename using JSON encoding,
// using the given [fs.FS] filesystem (e.g., for embed files)
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, iox.NewDecoderFunc(NewDecoder))
}

// Read reads the given object from the given reader,
// using JSON encoding
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, iox.NewDecoderFunc(NewDecoder))
}

// ReadBytes reads the given object from the given bytes,
// using JSON encoding
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, iox.NewDecoderFunc(NewDecoder))
}

// NewDecoder returns a JSON decoder that rejects unknown fields.
func NewDecoder(r io.Reader) *json.Decoder {
	d := json.NewDecoder(r)
	d.DisallowUnknownFields()
	return d
}
