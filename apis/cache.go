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

import "reflect"

// Cache memoizes accessors per (type, config) key for the lifetime of
// the process. Reads of published entries take no locks; first builds
// are serialized and resolved to a single winner per key.
type Cache interface {
	// Resolve returns the cached accessor for (t, cfg), building and
	// publishing it on first request. A failed build publishes nothing,
	// so a later call retries.
	Resolve(t reflect.Type, cfg Config) (Accessor, error)
	// Count returns the number of published entries.
	Count() int
	// Reset discards all published entries.
	Reset()
}
