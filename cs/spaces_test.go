// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cs

import (
	"testing"

	"cogentcore.org/colorimetry/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLAB(t *testing.T) {
	tolassert.Equal(t, 0.887904, LABCompress(0.7))
	tolassert.Equal(t, 0.1379544, LABCompress(0.000003))
	tolassert.Equal(t, 0.21600002, LABUncompress(0.6))

	lab, err := NewCIELAB(WhiteD65)
	require.NoError(t, err)
	c := lab.FromXYZ100(Vec3{10, 30, 50})
	tolassert.Equal(t, 61.65422, c[0])
	tolassert.Equal(t, -98.673805, c[1])
	tolassert.Equal(t, -20.413673, c[2])

	x := lab.ToXYZ100(Vec3{28, 14, 36.2})
	tolassert.Equal(t, 6.422656, x[0])
	tolassert.Equal(t, 5.4573778, x[1])
	tolassert.Equal(t, 0.8442593, x[2])

	tolassert.Equal(t, 2.3023312, LToY(17))
	tolassert.Equal(t, 21.579498, YToL(3.4))

	assertVec(t, Vec3{100, 0, 0}, lab.FromXYZ100(WhiteD65), 1e-12)
}

func TestLCH(t *testing.T) {
	lch, err := NewCIELCH(WhiteD65)
	require.NoError(t, err)
	c := lch.FromXYZ100(Vec3{10, 30, 50})
	tolassert.Equal(t, 61.65422, c[0])
	tolassert.Equal(t, 100.763, c[1])
	tolassert.Equal(t, 191.688, c[2])
	assert.Equal(t, 0.0, SanitizeDegrees(360))
	assert.Equal(t, 350.0, SanitizeDegrees(-10))
}

func TestLUV(t *testing.T) {
	luv, err := NewCIELUV(WhiteD65)
	require.NoError(t, err)
	assertVec(t, Vec3{100, 0, 0}, luv.FromXYZ100(WhiteD65), 1e-12)
	assert.Equal(t, Vec3{}, luv.FromXYZ100(Vec3{}))
}

func TestOKLab(t *testing.T) {
	c := NewOKLab().FromXYZ100(WhiteD65)
	tolassert.Equal(t, 1, c[0])
	tolassert.Equal(t, 0, c[1])
	tolassert.Equal(t, 0, c[2])
}

func TestSRGBLinear(t *testing.T) {
	c := NewSRGBLinear().FromXYZ100(WhiteD65)
	tolassert.Equal(t, 1, c[0])
	tolassert.Equal(t, 1, c[1])
	tolassert.Equal(t, 1, c[2])
}

func TestXYY(t *testing.T) {
	s, err := NewXYY(1)
	require.NoError(t, err)
	c := s.FromXYZ100(WhiteD65)
	tolassert.Equal(t, 0.3127, c[0])
	tolassert.Equal(t, 0.3290, c[1])
	tolassert.EqualTol(t, 1, c[2], 1e-12)
	assert.Equal(t, Vec3{}, s.FromXYZ100(Vec3{}))
}

func TestView(t *testing.T) {
	vw := NewStdView()
	assert.Same(t, vw, NewStdView())
	tolassert.Equal(t, 11.725676537, vw.AdaptingLuminance)
	tolassert.Equal(t, 50.000000000, vw.BgLuminance)
	tolassert.Equal(t, 2.000000000, vw.Surround)
	tolassert.Equal(t, 0.184186503, vw.BgYToWhiteY)
	tolassert.Equal(t, 29.981000900, vw.AW)
	tolassert.Equal(t, 1.016919255, vw.NBB)
	tolassert.Equal(t, 1.016919255, vw.NCB)
	tolassert.Equal(t, 0.689999998, vw.C)
	tolassert.Equal(t, 1.000000000, vw.NC)
	tolassert.Equal(t, 0.388481468, vw.FL)
	tolassert.Equal(t, 0.789482653, vw.FLRoot)
	tolassert.Equal(t, 1.909169555, vw.Z)

	tolassert.Equal(t, 1.021177769, vw.RGBD[0])
	tolassert.Equal(t, 0.986307740, vw.RGBD[1])
	tolassert.Equal(t, 0.933960497, vw.RGBD[2])
}

func TestCAM16(t *testing.T) {
	vw := NewStdView()
	white := CAMFromXYZ(WhiteD65, vw)
	tolassert.EqualTol(t, 100, white.Lightness, 1e-9)

	s := NewCAM16UCS(nil)
	c := s.FromXYZ100(WhiteD65)
	tolassert.EqualTol(t, 100, c[0], 1e-9)
	tolassert.Equal(t, -1.9223394, c[1])
	tolassert.Equal(t, -1.0872492, c[2])

	cam := CAMFromJCH(50, 30, 120, vw)
	back := CAMFromXYZ(cam.XYZ(vw), vw)
	tolassert.EqualTol(t, 50, back.Lightness, 1e-9)
	tolassert.EqualTol(t, 30, back.Chroma, 1e-9)
	tolassert.EqualTol(t, 120, back.Hue, 1e-9)
}
