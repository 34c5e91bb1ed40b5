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

package strategy_test

import (
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/afx/apis"
	"dirpx.dev/afx/config"
	"dirpx.dev/afx/strategy"
)

// errMissing is the bag's own undefined-member failure; the bridge must
// pass it through untouched.
var errMissing = errors.New("bag: no such member")

// bag is a duck-typed object backed by a plain map.
type bag struct {
	m map[string]any
}

func (b *bag) GetMember(name string) (any, error) {
	v, ok := b.m[name]
	if !ok {
		return nil, errMissing
	}
	return v, nil
}

func (b *bag) SetMember(name string, value any) error {
	if b.m == nil {
		b.m = map[string]any{}
	}
	b.m[name] = value
	return nil
}

func TestDynamicStrategy_CapabilityTest(t *testing.T) {
	s := strategy.NewDynamicStrategy()

	acc, handled, err := s.TryBuild(reflect.TypeOf(&bag{}), config.DefaultConfig())
	if err != nil || !handled {
		t.Fatalf("TryBuild(*bag): handled=%v err=%v", handled, err)
	}
	if acc != strategy.Dynamic() {
		t.Fatal("dynamic accessor is not the shared singleton")
	}

	// The value form also matches when only *T implements Dynamic.
	_, handled, err = s.TryBuild(reflect.TypeOf(bag{}), config.DefaultConfig())
	if err != nil || !handled {
		t.Fatalf("TryBuild(bag): handled=%v err=%v", handled, err)
	}

	// Static types fall through.
	_, handled, err = s.TryBuild(reflect.TypeOf(Item{}), config.DefaultConfig())
	if err != nil || handled {
		t.Fatalf("TryBuild(Item): handled=%v err=%v, want fall-through", handled, err)
	}
}

func TestDynamic_GetSetDelegation(t *testing.T) {
	acc := strategy.Dynamic()
	b := &bag{m: map[string]any{"x": 1}}

	got, err := acc.Get(b, "x")
	if err != nil || got != 1 {
		t.Fatalf("Get(x): got (%v,%v)", got, err)
	}
	if err := acc.Set(b, "y", "two"); err != nil {
		t.Fatalf("Set(y): %v", err)
	}
	if b.m["y"] != "two" {
		t.Fatal("Set did not reach the target")
	}
}

func TestDynamic_OpaquePassThrough(t *testing.T) {
	acc := strategy.Dynamic()

	_, err := acc.Get(&bag{}, "missing")
	if !errors.Is(err, errMissing) {
		t.Fatalf("undefined member: got %v, want the target's own error", err)
	}
	// The bridge never reinterprets into the shared taxonomy.
	if errors.Is(err, apis.ErrUnknownMember) {
		t.Fatal("dynamic error was reinterpreted as ErrUnknownMember")
	}
}

func TestDynamic_CapabilityErrors(t *testing.T) {
	acc := strategy.Dynamic()

	if _, err := acc.Members(); !errors.Is(err, apis.ErrUnsupported) {
		t.Fatalf("Members: got %v, want ErrUnsupported", err)
	}
	if acc.MembersSupported() {
		t.Fatal("MembersSupported: want false")
	}
	if _, err := acc.CreateNew(); !errors.Is(err, apis.ErrUnsupported) {
		t.Fatalf("CreateNew: got %v, want ErrUnsupported", err)
	}
	if acc.CreateNewSupported() {
		t.Fatal("CreateNewSupported: want false")
	}
	if _, err := acc.Get(Item{}, "x"); !errors.Is(err, apis.ErrInvalidArgument) {
		t.Fatalf("non-dynamic target: got %v, want ErrInvalidArgument", err)
	}
}
