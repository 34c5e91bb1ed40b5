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

import (
	"fmt"
	"reflect"
)

// MemberKind discriminates how a member is backed by the underlying type.
type MemberKind int

const (
	// KindField is a struct field, exported or (in non-public mode)
	// unexported.
	KindField MemberKind = iota
	// KindProperty is a method-pair member: a getter `X() T` and/or a
	// setter `SetX(T)`.
	KindProperty
)

// String returns a stable, human-readable name for the kind.
// Unknown values yield a diagnostic form rather than panicking.
func (k MemberKind) String() string {
	switch k {
	case KindField:
		return "Field"
	case KindProperty:
		return "Property"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Member describes one exposed member of a type. It is immutable after
// construction; a Member's Name is unique within its catalog.
type Member struct {
	// Name is the exposed member name (possibly tag-renamed).
	Name string
	// Type is the declared value type of the member.
	Type reflect.Type
	// Kind reports whether the member is a field or a property.
	Kind MemberKind
	// CanRead reports whether Get is available for this member.
	CanRead bool
	// CanWrite reports whether Set is available for this member.
	CanWrite bool
	// Tag carries the struct tag for field members. Empty for properties.
	Tag reflect.StructTag
}

// TagValue returns the tag value for key. Tag metadata exists only on
// fields; for properties the lookup fails with ErrUnsupported.
func (m Member) TagValue(key string) (string, error) {
	if m.Kind != KindField {
		return "", fmt.Errorf("%w: tag lookup on %s member %q", ErrUnsupported, m.Kind, m.Name)
	}
	v, _ := m.Tag.Lookup(key)
	return v, nil
}

// TagDefined reports whether the tag key is present on the member.
// Fails with ErrUnsupported for non-field members, like TagValue.
func (m Member) TagDefined(key string) (bool, error) {
	if m.Kind != KindField {
		return false, fmt.Errorf("%w: tag lookup on %s member %q", ErrUnsupported, m.Kind, m.Name)
	}
	_, ok := m.Tag.Lookup(key)
	return ok, nil
}
