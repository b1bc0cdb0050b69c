// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resource

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cogentcore.org/colorimetry/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOnce(t *testing.T) {
	var loads atomic.Int32
	c := NewCache("test", func(key string) ([]float64, error) {
		loads.Add(1)
		time.Sleep(10 * time.Millisecond)
		return []float64{0.04, 6, 29.6}, nil
	})

	var wg sync.WaitGroup
	results := make([][]float64, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = errors.Must1(c.Get("d.json"))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), loads.Load())
	for _, r := range results {
		assert.Equal(t, []float64{0.04, 6, 29.6}, r)
	}

	v, err := c.Get("d.json")
	require.NoError(t, err)
	assert.Equal(t, 6.0, v[1])
	assert.Equal(t, int32(1), loads.Load())
	assert.Equal(t, 1, c.Len())
}

func TestFailedLoadNotCached(t *testing.T) {
	fail := true
	c := NewCache("test", func(key int) (int, error) {
		if fail {
			return 0, errors.Dataf("resource %d missing", key)
		}
		return key * 2, nil
	})
	_, err := c.Get(3)
	assert.True(t, errors.Is(err, errors.ErrData))
	assert.Equal(t, 0, c.Len())

	fail = false
	v, err := c.Get(3)
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}

func TestDistinctKeys(t *testing.T) {
	type key struct{ a, b string }
	// both print as {a b c}
	k1, k2 := key{"a b", "c"}, key{"a", "b c"}
	var loads atomic.Int32
	c := NewCache("test", func(k key) (string, error) {
		loads.Add(1)
		time.Sleep(10 * time.Millisecond)
		return k.a + "|" + k.b, nil
	})

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k := k1
			if i%2 == 1 {
				k = k2
			}
			results[i] = errors.Must1(c.Get(k))
		}()
	}
	wg.Wait()

	for i, r := range results {
		if i%2 == 0 {
			assert.Equal(t, "a b|c", r)
		} else {
			assert.Equal(t, "a|b c", r)
		}
	}
	assert.Equal(t, int32(2), loads.Load())
	assert.Equal(t, 2, c.Len())
}
