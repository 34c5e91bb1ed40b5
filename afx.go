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

package afx

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/afx/apis"
	"dirpx.dev/afx/builder"
	"dirpx.dev/afx/cache"
	"dirpx.dev/afx/config"
	"dirpx.dev/afx/wrapper"
)

// init initializes the global accessor state.
func init() {
	// Initialize state with default cfg, bld, and cch.
	b := builder.New()
	st.Store(
		&state{
			cfg: config.DefaultConfig(),
			bld: b,
			cch: cache.New(b),
		},
	)
}

// TypeAccessor resolves the accessor for t using the global cache.
// Per-call options overlay the global configuration; the overlaid
// configuration is part of the cache key, so distinct option sets yield
// distinct accessors. Idempotent: repeated calls with the same type and
// options return the identical cached instance.
func TypeAccessor(t reflect.Type, opts ...config.Option) (apis.Accessor, error) {
	s := st.Load()
	cfg := s.cfg
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return s.cch.Resolve(t, cfg)
}

// Accessor resolves the accessor for v's type.
// This is a convenience wrapper around TypeAccessor.
func Accessor(v any, opts ...config.Option) (apis.Accessor, error) {
	if v == nil {
		return nil, fmt.Errorf("afx: %w: nil value", apis.ErrInvalidArgument)
	}
	return TypeAccessor(reflect.TypeOf(v), opts...)
}

// Wrap binds v to the accessor resolved for its type. Types
// implementing apis.Dynamic are bound to the dynamic bridge by the
// builder's capability test; everything else gets its static accessor.
func Wrap(v any, opts ...config.Option) (*wrapper.Object, error) {
	acc, err := Accessor(v, opts...)
	if err != nil {
		return nil, err
	}
	return wrapper.New(v, acc)
}

// Config returns the global afx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global afx configuration to cfg. Published cache
// entries remain valid: every configuration knob participates in the
// cache key, so entries built under other configurations are simply
// never hit again.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(
		&state{
			cfg: cfg,
			bld: old.bld,
			cch: old.cch,
		},
	)
}

// Builder returns the global afx builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global afx builder to b and installs a fresh
// cache, since published accessors must come from the active builder.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(
		&state{
			cfg: old.cfg,
			bld: b,
			cch: cache.New(b),
		},
	)
}

// Cache returns the global afx cache.
func Cache() apis.Cache {
	return st.Load().cch
}

// ResetCache discards every published accessor. Intended for tests;
// production processes never need it (entries are valid for the process
// lifetime).
func ResetCache() {
	st.Load().cch.Reset()
}

// SetAll explicitly sets all global afx state components.
//
// Nil arguments leave the corresponding component unchanged, except for
// cch which, when nil, is replaced by a fresh cache over the effective
// builder. This is mainly used by tests to get a clean deterministic
// state between test cases.
func SetAll(cfg *apis.Config, bld apis.Builder, cch apis.Cache) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	ncch := cch
	if ncch == nil {
		ncch = cache.New(nbld)
	}

	st.Store(
		&state{
			cfg: ncfg,
			bld: nbld,
			cch: ncch,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global afx state.
var st atomic.Pointer[state]

// state is the global afx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global afx configuration.
	cfg apis.Config
	// bld is the global afx builder.
	bld apis.Builder
	// cch is the global afx cache.
	cch apis.Cache
}
