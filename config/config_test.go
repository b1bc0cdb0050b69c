// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"cogentcore.org/colorimetry/base/errors"
	"cogentcore.org/colorimetry/base/logx"
	"cogentcore.org/colorimetry/base/tolassert"
	"cogentcore.org/colorimetry/cs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	spaces, err := c.BuildSpaces()
	require.NoError(t, err)
	require.Len(t, spaces, 3)
	assert.Equal(t, "CIELAB", spaces[0].Name())
	assert.Equal(t, "CAM16UCS", spaces[1].Name())
	assert.Equal(t, "OKLAB", spaces[2].Name())
	assert.Equal(t, slog.LevelInfo, c.Level())

	c, err = Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Len(t, c.Spaces, 3)
}

func TestEvaluate(t *testing.T) {
	c, err := Open("testdata/run.toml")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, c.Level())

	res, err := c.Evaluate()
	require.NoError(t, err)
	require.Len(t, res, 4)

	want := []Result{
		{Dataset: "hue", Space: "XYZ100", Stress: 12.377588668404439},
		{Dataset: "hue", Space: "CIELAB", Stress: 11.674994389642595},
		{Dataset: "circles", Space: "XYZ100", Stress: 38.52758751855618},
		{Dataset: "circles", Space: "CIELAB"},
	}
	for i, w := range want {
		assert.Equal(t, w.Dataset, res[i].Dataset)
		assert.Equal(t, w.Space, res[i].Space)
		if w.Stress != 0 {
			tolassert.EqualTol(t, w.Stress, res[i].Stress, 1e-9)
		}
	}
	assert.Greater(t, res[3].Stress, 0.0)

	again, err := c.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

func TestWhitePoint(t *testing.T) {
	c, err := Read(strings.NewReader(`
[[spaces]]
name = "cielab"
illuminant = "d50"

[[spaces]]
name = "CIELUV"
white_point = [96.422, 100.0, 82.521]
`))
	require.NoError(t, err)
	spaces, err := c.BuildSpaces()
	require.NoError(t, err)
	require.Len(t, spaces, 2)
	wp := spaces[0].(*cs.CIELAB).WhitePoint
	tolassert.EqualTol(t, 96.42485437008727, wp[0], 1e-8)
	tolassert.EqualTol(t, 82.51691454348648, wp[2], 1e-8)
	assert.Equal(t, cs.Vec3{96.422, 100, 82.521}, spaces[1].(*cs.CIELUV).WhitePoint)
}

func TestValidate(t *testing.T) {
	docs := []string{
		`observer = "cie1964"`,
		`log_level = "loud"`,
		"[[spaces]]\nname = \"HSLuv\"\n",
		"[[spaces]]\nname = \"XYZ\"\nscale = 10\n",
		"[[spaces]]\nname = \"CIELAB\"\nwhite_point = [1.0, 2.0]\n",
		"[[spaces]]\nname = \"CIELAB\"\nwhite_point = [95.0, 0.0, 108.0]\n",
		"[[spaces]]\nname = \"CIELAB\"\nilluminant = \"C\"\n",
		"[[spaces]]\nname = \"CIELAB\"\nilluminant = \"A\"\nwhite_point = [95.0, 100.0, 108.0]\n",
		"[[datasets]]\nkind = \"munsell\"\npath = \"x.yaml\"\n",
		"[[datasets]]\nkind = \"ellipse\"\n",
		`unknown = 1`,
		`observer = `,
	}
	for _, doc := range docs {
		_, err := Read(strings.NewReader(doc))
		assert.True(t, errors.Is(err, errors.ErrConfiguration), doc)
	}

	_, err := Open("testdata/missing.toml")
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}

func TestEvaluateMissingDataset(t *testing.T) {
	c, err := Read(strings.NewReader("[[datasets]]\nkind = \"hue-linearity\"\npath = \"testdata/missing.yaml\"\n"))
	require.NoError(t, err)
	_, err = c.Evaluate()
	assert.True(t, errors.Is(err, errors.ErrData))
}

func TestSetupLogging(t *testing.T) {
	level, logger := logx.UserLevel, slog.Default()
	defer func() {
		logx.UserLevel = level
		slog.SetDefault(logger)
	}()
	ctx := context.Background()

	c := Default()
	c.LogLevel = "debug"
	c.SetupLogging()
	assert.Equal(t, slog.LevelDebug, logx.UserLevel)
	assert.True(t, slog.Default().Enabled(ctx, slog.LevelDebug))

	c.LogLevel = "warn"
	c.SetupLogging()
	assert.Equal(t, slog.LevelWarn, logx.UserLevel)
	assert.False(t, slog.Default().Enabled(ctx, slog.LevelInfo))

	c.LogLevel = "loud"
	assert.Equal(t, slog.LevelInfo, c.Level())
}
