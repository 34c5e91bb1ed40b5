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

package strategy

import (
	"fmt"
	"reflect"

	"dirpx.dev/afx/apis"
	"dirpx.dev/afx/catalog"
)

// NewFallbackStrategy creates the universal apis.Strategy for the
// restricted path. It always handles the type and honors the same
// contract as the optimized path; the difference is mechanism, not
// behavior: members the exported reflect surface refuses (unexported
// fields) are reached through their byte offset inside the type's own
// memory, so correctness never depends on access-control exemptions.
func NewFallbackStrategy() apis.Strategy {
	return fallbackStrategy{}
}

// fallbackStrategy builds slot tables mixing plain closures for
// exported members with offset-based closures for the rest.
type fallbackStrategy struct{}

// Ensure fallbackStrategy implements apis.Strategy.
var _ apis.Strategy = (*fallbackStrategy)(nil)

// TryBuild assembles the dispatch tables. It never falls through.
func (fallbackStrategy) TryBuild(t reflect.Type, cfg apis.Config) (apis.Accessor, bool, error) {
	if t == nil {
		return nil, false, nil
	}
	cat, err := catalog.Build(t, cfg)
	if err != nil {
		return nil, false, fmt.Errorf("afx(strategy): fallback: %w", err)
	}
	tbl := newTable(cat)
	tbl.fill()
	return tbl, true, nil
}
