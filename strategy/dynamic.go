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
)

// NewDynamicStrategy creates the apis.Strategy that short-circuits the
// chain for apis.Dynamic implementers. No catalog is built and no code
// path is generated; member resolution happens per access inside the
// target object itself.
func NewDynamicStrategy() apis.Strategy {
	return dynamicStrategy{}
}

// dynamicStrategy is a zero-cost fast path: if the type implements
// apis.Dynamic, return the shared bridge and stop the chain.
type dynamicStrategy struct{}

// Ensure dynamicStrategy implements apis.Strategy.
var _ apis.Strategy = (*dynamicStrategy)(nil)

// dynIface is the capability interface tested against candidate types.
var dynIface = reflect.TypeOf((*apis.Dynamic)(nil)).Elem()

// TryBuild returns the singleton bridge for types whose value or
// pointer form implements apis.Dynamic.
func (dynamicStrategy) TryBuild(t reflect.Type, _ apis.Config) (apis.Accessor, bool, error) {
	if t == nil {
		return nil, false, nil
	}
	if t.Implements(dynIface) {
		return Dynamic(), true, nil
	}
	if t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(dynIface) {
		return Dynamic(), true, nil
	}
	return nil, false, nil
}

// dynamicAccessor is the process-wide bridge shared by every dynamic
// type. It is stateless: Go interface dispatch is a single indirect
// call, so there is no per-name binding to memoize.
var dynamicAccessor = &dynamic{}

// Dynamic returns the singleton accessor for apis.Dynamic implementers.
func Dynamic() apis.Accessor {
	return dynamicAccessor
}

type dynamic struct{}

var _ apis.Accessor = (*dynamic)(nil)

// Get delegates to the target's own member resolution. Errors from
// GetMember are propagated as-is, never reinterpreted.
func (*dynamic) Get(target any, name string) (any, error) {
	d, ok := target.(apis.Dynamic)
	if !ok {
		return nil, fmt.Errorf("afx(strategy): %w: target %T does not implement apis.Dynamic",
			apis.ErrInvalidArgument, target)
	}
	return d.GetMember(name)
}

// Set delegates to the target's own member resolution, pass-through
// like Get.
func (*dynamic) Set(target any, name string, value any) error {
	d, ok := target.(apis.Dynamic)
	if !ok {
		return fmt.Errorf("afx(strategy): %w: target %T does not implement apis.Dynamic",
			apis.ErrInvalidArgument, target)
	}
	return d.SetMember(name, value)
}

// Members fails: the bridge never supports enumeration.
func (*dynamic) Members() ([]apis.Member, error) {
	return nil, fmt.Errorf("afx(strategy): %w: dynamic accessor cannot enumerate members", apis.ErrUnsupported)
}

// MembersSupported reports false.
func (*dynamic) MembersSupported() bool {
	return false
}

// CreateNew fails: the bridge has no fixed type to construct.
func (*dynamic) CreateNew() (any, error) {
	return nil, fmt.Errorf("afx(strategy): %w: dynamic accessor cannot construct instances", apis.ErrUnsupported)
}

// CreateNewSupported reports false.
func (*dynamic) CreateNewSupported() bool {
	return false
}
