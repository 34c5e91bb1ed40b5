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

package apis

import "reflect"

// Builder constructs an Accessor for a type. A Builder is a pure
// factory: it never caches (that is the Cache's job) and may be called
// concurrently.
type Builder interface {
	// Build constructs an Accessor for t according to cfg.
	Build(t reflect.Type, cfg Config) (Accessor, error)
}

// Strategy is one pluggable construction step. A Builder chains
// strategies in order (e.g., Dynamic -> Optimized -> Fallback).
type Strategy interface {
	// TryBuild attempts to construct an Accessor for t according to cfg.
	// It returns (acc, true, nil) if handled; otherwise (nil, false, nil)
	// to fall through to the next strategy. A non-nil error aborts the
	// chain.
	TryBuild(t reflect.Type, cfg Config) (acc Accessor, handled bool, err error)
}
