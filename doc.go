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

// Package afx provides fast by-name member access for Go types.
//
// afx turns a reflect.Type into an accessor: an immutable object that
// reads and writes the members of any instance of that type by name,
// paying the reflection-metadata cost once at construction instead of
// on every access. After construction, a Get or Set is one map lookup
// (name -> slot) followed by a direct call through a per-slot function
// table. This is useful for data binding, bulk-copy style
// serialization, and generic object-to-tabular adapters.
//
// # Design
//
// The core is a chain of construction strategies behind a process-wide
// cache:
//
//   - Catalog: for each type, the exposed members are enumerated once —
//     struct fields plus, optionally, method-pair properties (a getter
//     `X() T` and/or setter `SetX(T)`). Each member gets a slot index in
//     first-seen order; on a name collision the first member wins and
//     the duplicate is silently skipped. Members() reports the catalog
//     sorted by name.
//
//   - Builder: an ordered strategy chain decides how to access the
//     members. Types implementing apis.Dynamic short-circuit to a
//     shared bridge that delegates every access to the object itself.
//     Fully-exported types take the optimized path: plain reflect
//     closures per slot. Everything else — unexported base types, and
//     any request for non-public members — takes the fallback path,
//     which reaches restricted fields through their byte offset with
//     reflect.NewAt. Both static paths honor an identical contract.
//
//   - Cache: accessors are memoized per (type, configuration) key for
//     the lifetime of the process. Reads of published entries are
//     lock-free; first builds are serialized by a table-wide mutex with
//     a double check, so exactly one accessor is ever published per
//     key. Failed builds publish nothing and are retried on the next
//     request.
//
// All of this sits behind a single immutable snapshot (configuration,
// builder, cache) published through an atomic pointer, so lookups never
// take a lock on the hot path:
//
//	acc, err := afx.Accessor(user)
//	name, err := acc.Get(user, "Name")
//	err = acc.Set(&user, "Age", 42)
//
// # Global API
//
// Read helpers — safe for concurrent use, always served from the latest
// snapshot:
//
//	Accessor(v any, opts ...config.Option) (apis.Accessor, error)
//	TypeAccessor(t reflect.Type, opts ...config.Option) (apis.Accessor, error)
//	Wrap(v any, opts ...config.Option) (*wrapper.Object, error)
//	Config() apis.Config
//	Builder() apis.Builder
//	Cache() apis.Cache
//
// Mutation helpers — take an internal build lock, derive a new
// snapshot, and publish it atomically:
//
//	SetConfig(cfg apis.Config)
//	SetBuilder(b apis.Builder)
//	SetAll(cfg *apis.Config, bld apis.Builder, cch apis.Cache)
//	ResetCache()
//
// SetAll is the hard-reset API, mainly for tests that need a clean
// deterministic state between cases.
//
// # Error contract
//
// Every variant fails the same way: apis.ErrUnknownMember for unmapped
// names, apis.ErrInvalidCast for set values not assignable to the
// declared member type, apis.ErrUnsupported for capabilities a variant
// or member does not offer, apis.ErrInvalidArgument for unusable
// inputs. The dynamic bridge is the one exception: errors raised by the
// target object's own member resolution pass through untouched. There
// are no retries and no partial recovery; each call either returns a
// usable value or fails terminally for that call alone.
//
// # Concurrency model
//
// Accessors, catalogs, and the dynamic bridge are immutable or
// stateless after construction and safe for unsynchronized concurrent
// use. The only contention point is the first build of a (type,
// configuration) key, which is resolved under one cache-wide mutex;
// losers of the race wait on the mutex, never run a duplicate build,
// and observe the winner's accessor.
//
// # Scope
//
// afx is intentionally small. Member access is direct and single-level:
// no nested paths, no schema evolution, no persistence, nothing across
// process boundaries.
package afx
