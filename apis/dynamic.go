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

// Dynamic marks objects whose member set is resolved per access rather
// than statically known. Types implementing Dynamic bypass catalog
// construction entirely: the dynamic bridge delegates every Get/Set to
// these methods and propagates their errors opaquely.
type Dynamic interface {
	// GetMember returns the value of the named member.
	GetMember(name string) (any, error)
	// SetMember assigns value to the named member.
	SetMember(name string, value any) error
}
