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

// Package reader exposes a sequence of objects as rows for bulk-loading
// pipelines. It consumes only the accessor's member listing and
// get-by-name operations.
package reader

import (
	"fmt"

	"dirpx.dev/afx/apis"
)

// New constructs a row cursor over items using acc. With no explicit
// columns every readable member is exposed, in the catalog's name
// order. Explicit columns are validated against the catalog when the
// accessor supports enumeration; unknown names fail here rather than
// on the first row.
func New(acc apis.Accessor, items []any, columns ...string) (*Reader, error) {
	if acc == nil {
		return nil, fmt.Errorf("afx(reader): %w: nil accessor", apis.ErrInvalidArgument)
	}

	cols := columns
	if acc.MembersSupported() {
		members, err := acc.Members()
		if err != nil {
			return nil, err
		}
		readable := make(map[string]bool, len(members))
		for _, m := range members {
			if m.CanRead {
				readable[m.Name] = true
			}
		}
		if len(cols) == 0 {
			cols = make([]string, 0, len(readable))
			for _, m := range members {
				if m.CanRead {
					cols = append(cols, m.Name)
				}
			}
		} else {
			for _, name := range cols {
				if !readable[name] {
					return nil, fmt.Errorf("afx(reader): %w: column %q", apis.ErrUnknownMember, name)
				}
			}
		}
	} else if len(cols) == 0 {
		// Dynamic accessors cannot enumerate, so the column set must be
		// given explicitly.
		return nil, fmt.Errorf("afx(reader): %w: accessor cannot enumerate members and no columns were given",
			apis.ErrUnsupported)
	}

	return &Reader{acc: acc, items: items, cols: cols, pos: -1}, nil
}

// Reader is a forward-only cursor: Next advances and materializes the
// row, Values returns it, Err reports the failure that stopped
// iteration.
type Reader struct {
	acc   apis.Accessor
	items []any
	cols  []string
	pos   int
	row   []any
	err   error
}

// Columns returns the exposed column names. The returned slice is a
// fresh copy.
func (r *Reader) Columns() []string {
	out := make([]string, len(r.cols))
	copy(out, r.cols)
	return out
}

// Next advances to the next object and reads its row. It returns false
// at the end of the sequence or on the first read error; Err
// distinguishes the two.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	r.pos++
	if r.pos >= len(r.items) {
		r.row = nil
		return false
	}

	item := r.items[r.pos]
	row := make([]any, len(r.cols))
	for i, name := range r.cols {
		v, err := r.acc.Get(item, name)
		if err != nil {
			r.err = fmt.Errorf("afx(reader): row %d: %w", r.pos, err)
			r.row = nil
			return false
		}
		row[i] = v
	}
	r.row = row
	return true
}

// Values returns the current row. It is only valid after a successful
// Next.
func (r *Reader) Values() ([]any, error) {
	if r.row == nil {
		return nil, fmt.Errorf("afx(reader): %w: Values before Next, after exhaustion, or after error",
			apis.ErrInvalidArgument)
	}
	return r.row, nil
}

// Err returns the error that terminated iteration, if any.
func (r *Reader) Err() error {
	return r.err
}
