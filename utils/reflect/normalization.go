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

package reflect

import (
	"errors"
	"reflect"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrPointerDepth indicates pathological pointer nesting beyond
	// the supported unwrap depth.
	ErrPointerDepth = errors.New("reflect: pointer nesting exceeds supported depth")
)

// maxIndirect bounds pointer unwrapping. Sufficient for all practical
// purposes.
const maxIndirect = 8

// Normalize unwraps pointer types and returns the base type that member
// access operates on. Non-pointer types are returned unchanged. Member
// catalogs are only populated for struct base types, but any base type
// is valid here.
func Normalize(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, ErrNilType
	}
	for i := 0; i < maxIndirect; i++ {
		if t.Kind() != reflect.Pointer {
			return t, nil
		}
		t = t.Elem()
	}
	return nil, ErrPointerDepth
}

// IsExported reports whether t is a type a generated third party could
// legally name: predeclared/unnamed types count as exported, named types
// are exported iff their first name rune is upper case.
func IsExported(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.PkgPath() == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(t.Name())
	return unicode.IsUpper(r)
}
