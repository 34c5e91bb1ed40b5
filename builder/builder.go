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

package builder

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/afx/apis"
	"dirpx.dev/afx/strategy"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = fmt.Errorf("afx(builder): %w: nil reflect.Type", apis.ErrInvalidArgument)
	// ErrNoStrategy is returned when no strategy handled the type.
	// Unreachable with the default chain, whose fallback always handles.
	ErrNoStrategy = errors.New("afx(builder): no strategy handled the type")
)

// New constructs an apis.Builder that tries the given strategies in
// order, first handler wins. Nil strategies are ignored. With no
// arguments the default chain Dynamic -> Optimized -> Fallback is used.
func New(strategies ...apis.Strategy) apis.Builder {
	if len(strategies) == 0 {
		strategies = []apis.Strategy{
			strategy.NewDynamicStrategy(),
			strategy.NewOptimizedStrategy(),
			strategy.NewFallbackStrategy(),
		}
	}
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving builder over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Build runs strategies in order until one handles the type.
func (b chain) Build(t reflect.Type, cfg apis.Config) (apis.Accessor, error) {
	if t == nil {
		return nil, ErrNilType
	}
	for _, s := range b.strats {
		acc, handled, err := s.TryBuild(t, cfg)
		if err != nil {
			return nil, err
		}
		if handled {
			return acc, nil
		}
	}
	return nil, ErrNoStrategy
}
