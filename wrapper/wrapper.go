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

// Package wrapper binds a single instance to the accessor resolved for
// its type, for convenient by-name access without repeating the target
// argument.
package wrapper

import (
	"fmt"

	"dirpx.dev/afx/apis"
)

// New binds target to acc. The accessor must already be the right one
// for the target's type; the root facade's Wrap performs that
// resolution, including the capability test that selects the dynamic
// bridge.
func New(target any, acc apis.Accessor) (*Object, error) {
	if target == nil {
		return nil, fmt.Errorf("afx(wrapper): %w: nil target", apis.ErrInvalidArgument)
	}
	if acc == nil {
		return nil, fmt.Errorf("afx(wrapper): %w: nil accessor", apis.ErrInvalidArgument)
	}
	return &Object{target: target, acc: acc}, nil
}

// Object is one wrapped instance. It carries no state beyond the target
// and the shared accessor; the error contract of every operation is the
// bound accessor's.
type Object struct {
	target any
	acc    apis.Accessor
}

// Get returns the boxed value of the named member.
func (o *Object) Get(name string) (any, error) {
	return o.acc.Get(o.target, name)
}

// Set assigns value to the named member.
func (o *Object) Set(name string, value any) error {
	return o.acc.Set(o.target, name, value)
}

// Members returns the member descriptors of the wrapped type.
func (o *Object) Members() ([]apis.Member, error) {
	return o.acc.Members()
}

// Target returns the wrapped instance. Equality and hashing belong to
// the instance itself; callers compare targets, never wrappers.
func (o *Object) Target() any {
	return o.target
}

// Accessor returns the bound accessor.
func (o *Object) Accessor() apis.Accessor {
	return o.acc
}

// String forwards to the wrapped instance's own formatting.
func (o *Object) String() string {
	if s, ok := o.target.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", o.target)
}
