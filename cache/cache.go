/*
   Copyright 2026 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cache memoizes accessors per (type, config) key for the
// lifetime of the process: lock-free reads of published entries, one
// table-wide mutex serializing first builds.
package cache

import (
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/afx/apis"
)

// ErrNilType is returned when a nil reflect.Type is provided.
var ErrNilType = fmt.Errorf("afx(cache): %w: nil reflect.Type", apis.ErrInvalidArgument)

// New constructs a Cache that builds missing entries via b.
func New(b apis.Builder) apis.Cache {
	return &cache{bld: b}
}

// key identifies one accessor: the type plus every config knob that
// affects which members are exposed or how they are reached. Distinct
// modes never share an accessor instance.
type key struct {
	t                 reflect.Type
	allowNonPublic    bool
	includeProperties bool
	tagKey            string
}

// cache is an apis.Cache backed by sync.Map. Published entries are
// immutable and read without locks; misses take mu, re-check, build,
// publish. Builds are rare (bounded by the number of distinct keys ever
// requested) so a table-wide mutex is sufficient.
type cache struct {
	// bld builds accessors on miss.
	bld apis.Builder
	// mu serializes first-time builds and guards count.
	mu sync.Mutex
	// m maps key to apis.Accessor.
	m sync.Map
	// count tracks the number of published entries.
	count int
}

// Resolve returns the accessor for (t, cfg), building it on first
// request. Exactly one build runs per key; losers of the race wait on
// mu, not on a build of their own. A failed build publishes nothing, so
// the next Resolve for the key retries.
func (c *cache) Resolve(t reflect.Type, cfg apis.Config) (apis.Accessor, error) {
	if t == nil {
		return nil, ErrNilType
	}
	k := key{
		t:                 t,
		allowNonPublic:    cfg.AllowNonPublic,
		includeProperties: cfg.IncludeProperties,
		tagKey:            cfg.TagKey,
	}

	// Fast read path: no locking once published.
	if v, ok := c.m.Load(k); ok {
		return v.(apis.Accessor), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check under lock in case another goroutine built meanwhile.
	if v, ok := c.m.Load(k); ok {
		return v.(apis.Accessor), nil
	}

	acc, err := c.bld.Build(t, cfg)
	if err != nil {
		return nil, err
	}
	c.m.Store(k, acc)
	c.count++
	return acc, nil
}

// Count returns the number of published entries.
func (c *cache) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Reset discards all published entries.
func (c *cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = sync.Map{}
	c.count = 0
}
