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

// Accessor provides by-name member access for all instances of one type.
// Implementations are immutable after construction and safe for
// concurrent use; they hold no per-instance state.
type Accessor interface {
	// Get returns the boxed value of the named member of target.
	// Fails ErrUnknownMember for unmapped names, ErrUnsupported for
	// unreadable members, ErrInvalidArgument for unusable targets.
	Get(target any, name string) (any, error)

	// Set assigns value to the named member of target. The target must
	// be a pointer for the write to be observable. Fails
	// ErrUnknownMember, ErrInvalidCast (value not assignable),
	// ErrUnsupported (member not writable), or ErrInvalidArgument.
	Set(target any, name string, value any) error

	// Members returns the member descriptors sorted by name, ascending
	// ordinal. Fails ErrUnsupported on variants without a catalog.
	Members() ([]Member, error)

	// MembersSupported reports whether Members can enumerate.
	MembersSupported() bool

	// CreateNew constructs a fresh instance of the represented type,
	// returned as a pointer. Fails ErrUnsupported when the variant or
	// the type does not support construction.
	CreateNew() (any, error)

	// CreateNewSupported reports whether CreateNew is available.
	CreateNewSupported() bool
}
