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

// NewOptimizedStrategy creates the apis.Strategy for the fully-exported
// fast path. It handles a type only when everything the accessor will
// touch is reachable through the exported reflect surface: the mode
// must not request non-public members, the base type must be exported,
// and every cataloged member must be exported. Anything else falls
// through to the fallback.
func NewOptimizedStrategy() apis.Strategy {
	return optimizedStrategy{}
}

// optimizedStrategy builds slot tables of plain reflect closures.
type optimizedStrategy struct{}

// Ensure optimizedStrategy implements apis.Strategy.
var _ apis.Strategy = (*optimizedStrategy)(nil)

// TryBuild decides eligibility, then assembles the dispatch tables.
func (optimizedStrategy) TryBuild(t reflect.Type, cfg apis.Config) (apis.Accessor, bool, error) {
	if t == nil {
		return nil, false, nil
	}
	if cfg.AllowNonPublic {
		// Non-public access disqualifies the fast path for the type as
		// a whole, even if this particular type has no such members.
		return nil, false, nil
	}
	cat, err := catalog.Build(t, cfg)
	if err != nil {
		return nil, false, fmt.Errorf("afx(strategy): optimized: %w", err)
	}
	if !cat.FullyExported() {
		return nil, false, nil
	}
	tbl := newTable(cat)
	tbl.fill()
	return tbl, true, nil
}
