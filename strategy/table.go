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

// Package strategy provides the accessor construction strategies chained
// by the builder: the dynamic bridge for duck-typed objects, the
// optimized path for fully-exported types, and the universal fallback.
package strategy

import (
	"fmt"
	"reflect"
	"unsafe"

	"dirpx.dev/afx/apis"
	"dirpx.dev/afx/catalog"
)

// getFunc reads one slot from a base value and boxes the result.
// A nil getFunc marks an unreadable slot.
type getFunc func(v reflect.Value) (any, error)

// setFunc writes one slot of an addressable base value.
// A nil setFunc marks an unwritable slot.
type setFunc func(v reflect.Value, value any) error

// slotTable is the shared accessor core of the optimized and fallback
// variants: a name->slot map followed by a dense per-slot dispatch over
// prebuilt getter/setter functions. An unmapped name fails at the map
// lookup; a mapped slot index always has an entry in both tables.
// Immutable after construction, shared by all instances of the type.
type slotTable struct {
	cat *catalog.Catalog
	get []getFunc
	set []setFunc
}

var _ apis.Accessor = (*slotTable)(nil)

// newTable allocates the dispatch tables for a catalog.
func newTable(cat *catalog.Catalog) *slotTable {
	return &slotTable{
		cat: cat,
		get: make([]getFunc, cat.Len()),
		set: make([]setFunc, cat.Len()),
	}
}

// Get returns the boxed value of the named member of target.
func (t *slotTable) Get(target any, name string) (any, error) {
	slot, ok := t.cat.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("afx(strategy): %w: %q on %s", apis.ErrUnknownMember, name, t.cat.Type())
	}
	g := t.get[slot]
	if g == nil {
		return nil, fmt.Errorf("afx(strategy): %w: member %q is not readable", apis.ErrUnsupported, name)
	}
	rv, err := t.receiver(target)
	if err != nil {
		return nil, err
	}
	return g(rv)
}

// Set assigns value to the named member of target. Target must be a
// pointer to the represented type for the write to be observable.
func (t *slotTable) Set(target any, name string, value any) error {
	slot, ok := t.cat.Lookup(name)
	if !ok {
		return fmt.Errorf("afx(strategy): %w: %q on %s", apis.ErrUnknownMember, name, t.cat.Type())
	}
	s := t.set[slot]
	if s == nil {
		return fmt.Errorf("afx(strategy): %w: member %q is not writable", apis.ErrUnsupported, name)
	}
	rv, err := t.writable(target)
	if err != nil {
		return err
	}
	return s(rv, value)
}

// Members returns the catalog's name-sorted descriptors.
func (t *slotTable) Members() ([]apis.Member, error) {
	return t.cat.Members(), nil
}

// MembersSupported reports true: static accessors always enumerate.
func (t *slotTable) MembersSupported() bool {
	return true
}

// CreateNew constructs a fresh instance, returned as a pointer to the
// base type. Interface base types have no instantiable identity.
func (t *slotTable) CreateNew() (any, error) {
	if !t.CreateNewSupported() {
		return nil, fmt.Errorf("afx(strategy): %w: cannot construct %s", apis.ErrUnsupported, t.cat.Type())
	}
	return reflect.New(t.cat.Type()).Interface(), nil
}

// CreateNewSupported reports whether CreateNew is available.
func (t *slotTable) CreateNewSupported() bool {
	return t.cat.Type().Kind() != reflect.Interface
}

// receiver normalizes target to a base value for reads. Pointer targets
// are dereferenced so the value is addressable; plain values are used
// as-is (getters copy when addressability is required).
func (t *slotTable) receiver(target any) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, fmt.Errorf("afx(strategy): %w: nil target", apis.ErrInvalidArgument)
	}
	rv := reflect.ValueOf(target)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, fmt.Errorf("afx(strategy): %w: nil target pointer", apis.ErrInvalidArgument)
		}
		rv = rv.Elem()
	}
	if rv.Type() != t.cat.Type() {
		return reflect.Value{}, fmt.Errorf("afx(strategy): %w: target is %s, accessor represents %s",
			apis.ErrInvalidArgument, rv.Type(), t.cat.Type())
	}
	return rv, nil
}

// writable normalizes target to an addressable base value for writes.
func (t *slotTable) writable(target any) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, fmt.Errorf("afx(strategy): %w: nil target", apis.ErrInvalidArgument)
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer {
		return reflect.Value{}, fmt.Errorf("afx(strategy): %w: write target must be a pointer, got %s",
			apis.ErrInvalidArgument, rv.Type())
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, fmt.Errorf("afx(strategy): %w: nil target pointer", apis.ErrInvalidArgument)
		}
		rv = rv.Elem()
	}
	if rv.Type() != t.cat.Type() {
		return reflect.Value{}, fmt.Errorf("afx(strategy): %w: target is %s, accessor represents %s",
			apis.ErrInvalidArgument, rv.Type(), t.cat.Type())
	}
	return rv, nil
}

// coerce unboxes value for assignment into a member of type ft.
func coerce(value any, ft reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch ft.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return reflect.Zero(ft), nil
		}
		return reflect.Value{}, fmt.Errorf("afx(strategy): %w: nil into %s", apis.ErrInvalidCast, ft)
	}
	xv := reflect.ValueOf(value)
	if !xv.Type().AssignableTo(ft) {
		return reflect.Value{}, fmt.Errorf("afx(strategy): %w: %s into %s", apis.ErrInvalidCast, xv.Type(), ft)
	}
	return xv, nil
}

// addr returns an addressable *base for v, copying when v itself is not
// addressable. Reads through the copy see the same member values.
func addr(v reflect.Value, base reflect.Type) reflect.Value {
	if v.CanAddr() {
		return v.Addr()
	}
	n := reflect.New(base)
	n.Elem().Set(v)
	return n
}

// fieldGetter reads an exported field by index; boxing happens at the
// Interface call.
func fieldGetter(i int) getFunc {
	return func(v reflect.Value) (any, error) {
		return v.Field(i).Interface(), nil
	}
}

// fieldSetter writes an exported field by index.
func fieldSetter(i int, ft reflect.Type) setFunc {
	return func(v reflect.Value, value any) error {
		xv, err := coerce(value, ft)
		if err != nil {
			return err
		}
		v.Field(i).Set(xv)
		return nil
	}
}

// unsafeFieldGetter reads a field (exported or not) through its byte
// offset, bypassing the exported-only reflect surface.
func unsafeFieldGetter(offset uintptr, ft, base reflect.Type) getFunc {
	return func(v reflect.Value) (any, error) {
		p := unsafe.Add(addr(v, base).UnsafePointer(), offset)
		return reflect.NewAt(ft, p).Elem().Interface(), nil
	}
}

// unsafeFieldSetter writes a field through its byte offset. The value v
// is always addressable here (writes require a pointer target).
func unsafeFieldSetter(offset uintptr, ft reflect.Type) setFunc {
	return func(v reflect.Value, value any) error {
		xv, err := coerce(value, ft)
		if err != nil {
			return err
		}
		p := unsafe.Add(v.Addr().UnsafePointer(), offset)
		reflect.NewAt(ft, p).Elem().Set(xv)
		return nil
	}
}

// propGetter invokes a getter method by its index on *T.
func propGetter(mi int, base reflect.Type) getFunc {
	return func(v reflect.Value) (any, error) {
		out := addr(v, base).Method(mi).Call(nil)
		return out[0].Interface(), nil
	}
}

// propSetter invokes a setter method by its index on *T.
func propSetter(mi int, argType reflect.Type) setFunc {
	return func(v reflect.Value, value any) error {
		xv, err := coerce(value, argType)
		if err != nil {
			return err
		}
		v.Addr().Method(mi).Call([]reflect.Value{xv})
		return nil
	}
}

// fill populates the dispatch tables for a catalog, selecting the field
// access mechanism per slot. Exported fields use the plain reflect
// path; unexported fields require the offset-based path.
func (t *slotTable) fill() {
	base := t.cat.Type()
	for i := 0; i < t.cat.Len(); i++ {
		s := t.cat.Slot(i)
		switch {
		case s.FieldIndex >= 0 && s.Exported:
			t.get[i] = fieldGetter(s.FieldIndex)
			t.set[i] = fieldSetter(s.FieldIndex, s.Member.Type)
		case s.FieldIndex >= 0:
			t.get[i] = unsafeFieldGetter(s.Offset, s.Member.Type, base)
			t.set[i] = unsafeFieldSetter(s.Offset, s.Member.Type)
		default:
			if s.Getter >= 0 {
				t.get[i] = propGetter(s.Getter, base)
			}
			if s.Setter >= 0 {
				t.set[i] = propSetter(s.Setter, s.Member.Type)
			}
		}
	}
}
