// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resource provides a process-lifetime cache for read-only
// resources such as tabulated basis spectra and dataset documents.
// Each resource is loaded at most once; concurrent first access to the
// same key shares a single load, and later callers receive the cached
// value without locking beyond a read lock.
package resource

import (
	"log/slog"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache is a load-once-then-share cache of values of type V keyed by K.
// The zero value is not usable; use [NewCache].
type Cache[K comparable, V any] struct {
	// Name is used in debug log messages.
	Name string

	load func(key K) (V, error)

	mu     sync.RWMutex
	values map[K]V

	// ids are the singleflight keys, one per distinct K.
	ids   map[K]string
	group singleflight.Group
}

// NewCache returns a new cache with the given name that loads values
// with the given function.
func NewCache[K comparable, V any](name string, load func(key K) (V, error)) *Cache[K, V] {
	return &Cache[K, V]{Name: name, load: load, values: map[K]V{}, ids: map[K]string{}}
}

// Get returns the value for the given key, loading it if it has not
// been loaded yet. A failed load is not cached: the error is returned
// to every caller waiting on that load, and a later Get tries again.
func (c *Cache[K, V]) Get(key K) (V, error) {
	c.mu.RLock()
	v, ok := c.values[key]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}
	res, err, _ := c.group.Do(c.id(key), func() (any, error) {
		c.mu.RLock()
		v, ok := c.values[key]
		c.mu.RUnlock()
		if ok {
			return v, nil
		}
		v, err := c.load(key)
		if err != nil {
			return v, err
		}
		c.mu.Lock()
		c.values[key] = v
		c.mu.Unlock()
		slog.Debug("loaded resource", "cache", c.Name, "key", key)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

// id returns the singleflight key of the given key. Printed keys can
// collide, so each distinct key gets a sequence number instead.
func (c *Cache[K, V]) id(key K) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.ids[key]
	if !ok {
		id = strconv.Itoa(len(c.ids))
		c.ids[key] = id
	}
	return id
}

// Len returns the number of loaded values.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}
