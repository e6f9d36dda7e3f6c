// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

// AppendInput returns a new snapshot with x appended to the input sequence.
// One new row is materialized and filled for the columns the band admits;
// all prior rows are shared with the receiver. O(w) cells are computed.
func (s *State) AppendInput(x rune) *State {
	t := &State{
		input: s.input.Append(x),
		match: s.match,
		w:     s.w,
		cells: s.cells.AppendRow(),
	}
	r := s.input.Len() // index of the new row
	// Left to right, so the insertion source (r, c-1) is already resolved.
	for c := max(0, r-s.w); c <= min(s.match.Len()-1, r+s.w); c++ {
		t.cells.Write(r, c, t.cell(t.cells, r, c))
	}
	return t
}

// AppendMatch returns a new snapshot with y appended to the match sequence.
// One cell per band row is written into the new column; only the rows
// written into are copied, the rest are shared. O(w) cells are computed.
func (s *State) AppendMatch(y rune) *State {
	c := s.match.Len() // index of the new column
	lo, hi := max(0, c-s.w), min(s.input.Len()-1, c+s.w)
	t := &State{
		input: s.input,
		match: s.match.Append(y),
		w:     s.w,
		cells: s.cells.CopyRows(lo, hi),
	}
	// Top to bottom, so the deletion source (r-1, c) is already resolved.
	for r := lo; r <= hi; r++ {
		t.cells.Write(r, c, t.cell(t.cells, r, c))
	}
	return t
}
