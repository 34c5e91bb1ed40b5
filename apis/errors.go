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

import "errors"

// Error taxonomy shared by every accessor variant. Implementations wrap
// these sentinels with call-site detail; callers match with errors.Is.
var (
	// ErrInvalidArgument indicates a nil or otherwise unusable input
	// (nil type, nil target, target of the wrong type, non-pointer
	// target on a write).
	ErrInvalidArgument = errors.New("afx: invalid argument")

	// ErrUnknownMember indicates the requested name is not present in
	// the accessor's mapping. Every variant except the dynamic bridge
	// fails this way for unmapped names.
	ErrUnknownMember = errors.New("afx: unknown member")

	// ErrUnsupported indicates the requested capability (construction,
	// member listing, a member's read or write, tag lookup) is not
	// available for this accessor variant or member kind.
	ErrUnsupported = errors.New("afx: unsupported operation")

	// ErrInvalidCast indicates a set value that is not assignable to
	// the declared member type.
	ErrInvalidCast = errors.New("afx: value not assignable to member type")
)
