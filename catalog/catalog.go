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

// Package catalog builds the immutable member catalog of a type: which
// members are exposed, their slot assignment, and the name-sorted view
// handed out through Accessor.Members.
package catalog

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"dirpx.dev/afx/apis"
	uref "dirpx.dev/afx/utils/reflect"
)

// setterPrefix marks method-pair setters: SetX(T).
const setterPrefix = "Set"

// getterSkip excludes formatting/error interface methods from getter
// candidates so Stringer and error implementations do not surface as
// members.
var getterSkip = map[string]bool{
	"String":   true,
	"Error":    true,
	"GoString": true,
}

// Slot binds one member to the machinery that accesses it. FieldIndex
// is -1 for properties; Getter/Setter are method indexes on *T and -1
// when absent.
type Slot struct {
	// Member is the exposed descriptor for this slot.
	Member apis.Member
	// FieldIndex is the struct field index, or -1 for a property.
	FieldIndex int
	// Offset is the field's byte offset within the struct.
	Offset uintptr
	// Exported reports whether the backing field is exported.
	// Properties are always exported (unexported methods are not
	// visible through reflection).
	Exported bool
	// Getter is the getter's method index on *T, or -1.
	Getter int
	// Setter is the setter's method index on *T, or -1.
	Setter int
}

// Catalog is the ordered, immutable member collection of one type.
// Slots keep first-seen enumeration order; Members returns a
// name-sorted view. A Catalog is built once and never mutated.
type Catalog struct {
	base     reflect.Type
	slots    []Slot
	sorted   []apis.Member
	index    map[string]int
	exported bool
}

// Build enumerates the members of t according to cfg and returns the
// catalog. Pointer types are unwrapped to their base type first; only
// struct base types have members, any other base type yields an empty
// catalog. On a name collision the first-found member wins and the
// duplicate is silently skipped.
func Build(t reflect.Type, cfg apis.Config) (*Catalog, error) {
	if t == nil {
		return nil, fmt.Errorf("afx(catalog): %w: nil reflect.Type", apis.ErrInvalidArgument)
	}
	base, err := uref.Normalize(t)
	if err != nil {
		return nil, fmt.Errorf("afx(catalog): %w", err)
	}

	c := &Catalog{base: base, index: make(map[string]int)}
	if base.Kind() == reflect.Struct {
		c.addFields(cfg)
		if cfg.IncludeProperties {
			c.addProperties()
		}
	}

	c.exported = uref.IsExported(base)
	for _, s := range c.slots {
		if !s.Exported {
			c.exported = false
			break
		}
	}

	c.sorted = make([]apis.Member, len(c.slots))
	for i, s := range c.slots {
		c.sorted[i] = s.Member
	}
	sort.Slice(c.sorted, func(i, j int) bool {
		return c.sorted[i].Name < c.sorted[j].Name
	})
	return c, nil
}

// addFields enumerates struct fields in declaration order.
func (c *Catalog) addFields(cfg apis.Config) {
	for i := 0; i < c.base.NumField(); i++ {
		f := c.base.Field(i)
		exported := f.PkgPath == ""
		if !exported && !cfg.AllowNonPublic {
			continue
		}

		name := f.Name
		if cfg.TagKey != "" {
			if tv, ok := f.Tag.Lookup(cfg.TagKey); ok {
				head := tv
				if comma := strings.IndexByte(tv, ','); comma >= 0 {
					head = tv[:comma]
				}
				if head == "-" {
					continue
				}
				if head != "" {
					name = head
				}
			}
		}

		c.add(Slot{
			Member: apis.Member{
				Name:     name,
				Type:     f.Type,
				Kind:     apis.KindField,
				CanRead:  true,
				CanWrite: true,
				Tag:      f.Tag,
			},
			FieldIndex: i,
			Offset:     f.Offset,
			Exported:   exported,
			Getter:     -1,
			Setter:     -1,
		})
	}
}

// property accumulates the method pair discovered for one name.
type property struct {
	getter, setter int
	getType        reflect.Type
	setType        reflect.Type
}

// addProperties enumerates method-pair members on *T. Methods with
// parameters (beyond a setter's single argument) are the indexed-member
// analogue and are skipped, as are variadic methods.
func (c *Catalog) addProperties() {
	pt := reflect.PointerTo(c.base)
	props := make(map[string]*property)
	var order []string

	for i := 0; i < pt.NumMethod(); i++ {
		m := pt.Method(i)
		mt := m.Type
		if mt.IsVariadic() {
			continue
		}

		// Setter shape: SetX(T), one argument, no results.
		if rest, ok := strings.CutPrefix(m.Name, setterPrefix); ok && rest != "" &&
			rest[0] >= 'A' && rest[0] <= 'Z' && mt.NumIn() == 2 && mt.NumOut() == 0 {
			p := props[rest]
			if p == nil {
				p = &property{getter: -1, setter: -1}
				props[rest] = p
				order = append(order, rest)
			}
			if p.setter < 0 {
				p.setter = i
				p.setType = mt.In(1)
			}
			continue
		}

		// Getter shape: X() T, no arguments, one result.
		if mt.NumIn() == 1 && mt.NumOut() == 1 && !getterSkip[m.Name] {
			p := props[m.Name]
			if p == nil {
				p = &property{getter: -1, setter: -1}
				props[m.Name] = p
				order = append(order, m.Name)
			}
			if p.getter < 0 {
				p.getter = i
				p.getType = mt.Out(0)
			}
		}
	}

	for _, name := range order {
		p := props[name]
		typ := p.getType
		if p.getter < 0 {
			typ = p.setType
		} else if p.setter >= 0 && p.setType != p.getType {
			// Getter and setter disagree on type: keep the getter,
			// treat the member as read-only.
			p.setter = -1
		}
		c.add(Slot{
			Member: apis.Member{
				Name:     name,
				Type:     typ,
				Kind:     apis.KindProperty,
				CanRead:  p.getter >= 0,
				CanWrite: p.setter >= 0,
			},
			FieldIndex: -1,
			Exported:   true,
			Getter:     p.getter,
			Setter:     p.setter,
		})
	}
}

// add appends a slot unless the name is already taken (first found wins).
func (c *Catalog) add(s Slot) {
	if _, dup := c.index[s.Member.Name]; dup {
		return
	}
	c.index[s.Member.Name] = len(c.slots)
	c.slots = append(c.slots, s)
}

// Type returns the base type the catalog describes.
func (c *Catalog) Type() reflect.Type {
	return c.base
}

// Len returns the number of exposed members.
func (c *Catalog) Len() int {
	return len(c.slots)
}

// Lookup returns the slot index for a member name.
func (c *Catalog) Lookup(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

// Slot returns the slot at index i (first-seen order).
func (c *Catalog) Slot(i int) Slot {
	return c.slots[i]
}

// Members returns the member descriptors sorted by name, ascending
// ordinal. The returned slice is a fresh copy.
func (c *Catalog) Members() []apis.Member {
	out := make([]apis.Member, len(c.sorted))
	copy(out, c.sorted)
	return out
}

// FullyExported reports whether the base type and every exposed member
// are exported. Catalogs failing this test disqualify the optimized
// accessor path.
func (c *Catalog) FullyExported() bool {
	return c.exported
}
