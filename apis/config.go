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

// Config carries read-only knobs that influence which members a type
// exposes and how they are accessed. It is passed by value and treated
// as immutable by implementations; every knob participates in the
// accessor cache key, so distinct configurations never share accessors.
type Config struct {
	// AllowNonPublic exposes unexported fields in addition to exported
	// members. Accessors built in this mode always take the fallback
	// path, since unexported fields cannot be reached through the
	// exported-only reflect surface.
	AllowNonPublic bool

	// IncludeProperties enumerates method-pair members (`X() T` /
	// `SetX(T)`) alongside struct fields.
	IncludeProperties bool

	// TagKey, when non-empty, names the struct tag whose first comma
	// segment renames a field member; a value of "-" drops the field.
	TagKey string
}
