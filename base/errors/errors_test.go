// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	err := Domainf("temperature %g K out of range", 3000.0)
	assert.True(t, Is(err, ErrDomain))
	assert.False(t, Is(err, ErrData))
	assert.False(t, Is(err, ErrConfiguration))
	assert.Equal(t, "domain error: temperature 3000 K out of range", err.Error())

	wrapped := fmt.Errorf("D series: %w", err)
	assert.True(t, Is(wrapped, ErrDomain))

	assert.True(t, Is(Configurationf("scale %v", 3), ErrConfiguration))
	assert.True(t, Is(Dataf("missing"), ErrData))
}

func TestAsData(t *testing.T) {
	assert.NoError(t, AsData(nil, "ctx"))

	err := AsData(fs.ErrNotExist, "data/d.json")
	assert.True(t, Is(err, ErrData))
	assert.True(t, Is(err, fs.ErrNotExist))

	dom := Domainf("x")
	assert.Equal(t, dom, AsData(dom, "ctx"))
}

func TestMust(t *testing.T) {
	assert.Panics(t, func() { Must(New("fail")) })
	assert.NotPanics(t, func() { Must(nil) })
	assert.Equal(t, 3, Must1(3, nil))
	assert.Equal(t, 0, Log1(0, New("logged")))
}
