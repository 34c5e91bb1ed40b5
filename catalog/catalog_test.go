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

package catalog_test

import (
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/afx/apis"
	"dirpx.dev/afx/catalog"
	"dirpx.dev/afx/config"
)

// Person exercises field enumeration, tags, and visibility.
type Person struct {
	Name string `db:"full_name" json:"name,omitempty"`
	Age  int
	Skip string `db:"-"`
	note string
}

// Account exercises method-pair properties.
type Account struct {
	ID      int
	balance int
	limit   int
}

func (a *Account) Balance() int { return a.balance }
func (a *Account) SetBalance(v int) { a.balance = v }
func (a *Account) Score() int { return 99 }
func (a *Account) SetLimit(v int) { a.limit = v }
func (a *Account) Describe(x int) int { return x }
func (a *Account) Weird() int { return 0 }
func (a *Account) SetWeird(s string) { _ = s }
func (a Account) String() string { return "account" }

func names(members []apis.Member) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Name
	}
	return out
}

func TestBuild_FieldsSortedByName(t *testing.T) {
	type row struct {
		Name string
		Age  int
	}
	c, err := catalog.Build(reflect.TypeOf(row{}), config.DefaultConfig())
	if err != nil {
		t.Fatalf("Build: unexpected error: %v", err)
	}

	got := names(c.Members())
	want := []string{"Age", "Name"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Members order: got %v want %v", got, want)
	}

	// Slots keep declaration order.
	if i, ok := c.Lookup("Name"); !ok || i != 0 {
		t.Fatalf("Lookup(Name): got (%d,%v), want (0,true)", i, ok)
	}
	if i, ok := c.Lookup("Age"); !ok || i != 1 {
		t.Fatalf("Lookup(Age): got (%d,%v), want (1,true)", i, ok)
	}
}

func TestBuild_VisibilityModes(t *testing.T) {
	pub, err := catalog.Build(reflect.TypeOf(Person{}), config.NewConfig(config.WithIncludeProperties(false)))
	if err != nil {
		t.Fatalf("Build(public): unexpected error: %v", err)
	}
	priv, err := catalog.Build(reflect.TypeOf(Person{}), config.NewConfig(
		config.WithIncludeProperties(false),
		config.WithAllowNonPublic(true),
	))
	if err != nil {
		t.Fatalf("Build(non-public): unexpected error: %v", err)
	}

	if _, ok := pub.Lookup("note"); ok {
		t.Fatal("public catalog exposes unexported field")
	}
	if _, ok := priv.Lookup("note"); !ok {
		t.Fatal("non-public catalog misses unexported field")
	}
	// Non-public catalog is a superset by member count.
	if priv.Len() <= pub.Len() {
		t.Fatalf("superset violated: non-public %d, public %d", priv.Len(), pub.Len())
	}
	if pub.FullyExported() != true || priv.FullyExported() != false {
		t.Fatalf("FullyExported: pub=%v priv=%v", pub.FullyExported(), priv.FullyExported())
	}
}

func TestBuild_TagRenameAndDrop(t *testing.T) {
	c, err := catalog.Build(reflect.TypeOf(Person{}), config.NewConfig(
		config.WithIncludeProperties(false),
		config.WithTagKey("db"),
	))
	if err != nil {
		t.Fatalf("Build: unexpected error: %v", err)
	}

	if _, ok := c.Lookup("full_name"); !ok {
		t.Fatal("tag rename not applied")
	}
	if _, ok := c.Lookup("Name"); ok {
		t.Fatal("renamed member still visible under field name")
	}
	if _, ok := c.Lookup("Skip"); ok {
		t.Fatal(`"-" tag did not drop the member`)
	}
	// Untagged fields keep their names; comma options are ignored.
	if _, ok := c.Lookup("Age"); !ok {
		t.Fatal("untagged member lost")
	}

	// The json tag takes only the segment before the comma.
	j, err := catalog.Build(reflect.TypeOf(Person{}), config.NewConfig(
		config.WithIncludeProperties(false),
		config.WithTagKey("json"),
	))
	if err != nil {
		t.Fatalf("Build(json): unexpected error: %v", err)
	}
	if _, ok := j.Lookup("name"); !ok {
		t.Fatal("comma segment not stripped from tag value")
	}
}

func TestBuild_Properties(t *testing.T) {
	c, err := catalog.Build(reflect.TypeOf(Account{}), config.DefaultConfig())
	if err != nil {
		t.Fatalf("Build: unexpected error: %v", err)
	}

	i, ok := c.Lookup("Balance")
	if !ok {
		t.Fatal("getter/setter pair not discovered")
	}
	b := c.Slot(i).Member
	if b.Kind != apis.KindProperty || !b.CanRead || !b.CanWrite {
		t.Fatalf("Balance: kind=%v read=%v write=%v", b.Kind, b.CanRead, b.CanWrite)
	}
	if b.Type != reflect.TypeOf(0) {
		t.Fatalf("Balance type: got %v want int", b.Type)
	}

	// Getter-only member is read-only.
	i, ok = c.Lookup("Score")
	if !ok {
		t.Fatal("getter-only property not discovered")
	}
	if m := c.Slot(i).Member; !m.CanRead || m.CanWrite {
		t.Fatalf("Score: read=%v write=%v, want read-only", m.CanRead, m.CanWrite)
	}

	// Setter-only member is write-only, typed from the argument.
	i, ok = c.Lookup("Limit")
	if !ok {
		t.Fatal("setter-only property not discovered")
	}
	if m := c.Slot(i).Member; m.CanRead || !m.CanWrite || m.Type != reflect.TypeOf(0) {
		t.Fatalf("Limit: read=%v write=%v type=%v", m.CanRead, m.CanWrite, m.Type)
	}

	// Getter/setter type conflict keeps the getter and drops the setter.
	i, ok = c.Lookup("Weird")
	if !ok {
		t.Fatal("conflicting property not discovered")
	}
	if m := c.Slot(i).Member; m.CanWrite || m.Type != reflect.TypeOf(0) {
		t.Fatalf("Weird: write=%v type=%v, want read-only int", m.CanWrite, m.Type)
	}

	// Parameterized methods and Stringer are not members.
	if _, ok := c.Lookup("Describe"); ok {
		t.Fatal("parameterized method surfaced as member")
	}
	if _, ok := c.Lookup("String"); ok {
		t.Fatal("String surfaced as member")
	}
}

func TestBuild_PropertiesDisabled(t *testing.T) {
	c, err := catalog.Build(reflect.TypeOf(Account{}), config.NewConfig(config.WithIncludeProperties(false)))
	if err != nil {
		t.Fatalf("Build: unexpected error: %v", err)
	}
	if _, ok := c.Lookup("Balance"); ok {
		t.Fatal("property enumerated despite IncludeProperties=false")
	}
	if _, ok := c.Lookup("ID"); !ok {
		t.Fatal("field lost when properties disabled")
	}
}

func TestBuild_FieldShadowsProperty(t *testing.T) {
	c, err := catalog.Build(reflect.TypeOf(shadowed{}), config.DefaultConfig())
	if err != nil {
		t.Fatalf("Build: unexpected error: %v", err)
	}
	i, ok := c.Lookup("Total")
	if !ok {
		t.Fatal("member missing")
	}
	if got := c.Slot(i).Member.Kind; got != apis.KindField {
		t.Fatalf("duplicate resolution: got %v, want the first-found Field", got)
	}
	// The losing property is skipped silently, not duplicated.
	count := 0
	for _, m := range c.Members() {
		if m.Name == "Total" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("duplicate name appears %d times, want 1", count)
	}
}

// shadowed declares a field and a same-named property.
type shadowed struct {
	Total int
}

func (s *shadowed) SetTotal(v int) { s.Total = v + 1000 }

func TestBuild_NonStructAndPointers(t *testing.T) {
	// Non-struct base types carry no members.
	c, err := catalog.Build(reflect.TypeOf(0), config.DefaultConfig())
	if err != nil {
		t.Fatalf("Build(int): unexpected error: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("int catalog has %d members, want 0", c.Len())
	}

	// Pointer chains normalize to the base struct.
	p, err := catalog.Build(reflect.TypeOf((**Person)(nil)), config.DefaultConfig())
	if err != nil {
		t.Fatalf("Build(**Person): unexpected error: %v", err)
	}
	if p.Type() != reflect.TypeOf(Person{}) {
		t.Fatalf("base type: got %v want Person", p.Type())
	}
}

func TestBuild_NilType(t *testing.T) {
	_, err := catalog.Build(nil, config.DefaultConfig())
	if !errors.Is(err, apis.ErrInvalidArgument) {
		t.Fatalf("nil type: got %v, want ErrInvalidArgument", err)
	}
}

func TestMember_TagLookup(t *testing.T) {
	c, err := catalog.Build(reflect.TypeOf(Person{}), config.DefaultConfig())
	if err != nil {
		t.Fatalf("Build: unexpected error: %v", err)
	}

	i, _ := c.Lookup("Name")
	m := c.Slot(i).Member
	v, err := m.TagValue("db")
	if err != nil || v != "full_name" {
		t.Fatalf("TagValue: got (%q,%v)", v, err)
	}
	ok, err := m.TagDefined("json")
	if err != nil || !ok {
		t.Fatalf("TagDefined: got (%v,%v)", ok, err)
	}

	// Tag lookups are undefined for properties.
	ac, err := catalog.Build(reflect.TypeOf(Account{}), config.DefaultConfig())
	if err != nil {
		t.Fatalf("Build(Account): unexpected error: %v", err)
	}
	i, _ = ac.Lookup("Balance")
	if _, err := ac.Slot(i).Member.TagValue("db"); !errors.Is(err, apis.ErrUnsupported) {
		t.Fatalf("property TagValue: got %v, want ErrUnsupported", err)
	}
	if _, err := ac.Slot(i).Member.TagDefined("db"); !errors.Is(err, apis.ErrUnsupported) {
		t.Fatalf("property TagDefined: got %v, want ErrUnsupported", err)
	}
}

func TestBuild_MembersSnapshotIsCopy(t *testing.T) {
	c, err := catalog.Build(reflect.TypeOf(Person{}), config.DefaultConfig())
	if err != nil {
		t.Fatalf("Build: unexpected error: %v", err)
	}
	snap := c.Members()
	if len(snap) == 0 {
		t.Fatal("empty snapshot")
	}
	snap[0].Name = "mutated"
	if c.Members()[0].Name == "mutated" {
		t.Fatal("Members returned internal state, want a copy")
	}
}
