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

// Widen returns a new snapshot with band half-width w+1.
//
// The two new outer diagonals are computed directly, then every improvement
// they enable is propagated through the interior: a cell on the new edge can
// lower a neighboring interior cell that was only band-optimal at the old
// width, which can lower its neighbors in turn. The result is band-optimal
// at the new width, and no stored cell ever increases.
func (s *State) Widen() *State {
	t := &State{
		input: s.input,
		match: s.match,
		w:     s.w + 1,
		cells: s.cells.Widened(),
	}
	n := t.match.Len()

	// Fill the new edge diagonals in ascending row order. The recurrence
	// reads through the band check, which supplies the unavailability rules
	// for free: on the left edge the insertion source (r, c-1) sits outside
	// the new band and reads Inf (or its virtual value at c = 0), on the
	// right edge the same holds for the deletion source (r-1, c). The
	// substitution source is the same edge one row up, which ascending
	// order has already resolved.
	var work []pos
	for r := 0; r < t.input.Len(); r++ {
		if c := r - t.w; c >= 0 && c < n {
			if v := t.cell(t.cells, r, c); v.Finite() {
				t.cells.Write(r, c, v)
				work = append(work, pos{r, c})
			}
		}
		if c := r + t.w; c < n {
			if v := t.cell(t.cells, r, c); v.Finite() {
				t.cells.Write(r, c, v)
				work = append(work, pos{r, c})
			}
		}
	}

	t.propagate(work)
	return t
}

type pos struct{ r, c int }

// propagate drives the min-relaxation to its fixpoint. Every popped cell has
// just improved; its downstream neighbors are re-evaluated against the full
// recurrence and enqueued when that strictly lowers them. Each write
// strictly decreases a non-negative integer cell, so the loop terminates.
func (s *State) propagate(work []pos) {
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		work = s.relaxFrom(p, work)
	}
}

// relaxFrom re-evaluates every cell whose recurrence reads (p.r, p.c): the
// insertion, deletion and substitution targets one step away, and the
// transposition targets that pair input[p.r+1] with match[p.c+1]. A
// transposition target (R, C) reads (p.r, p.c) only while p.r+1 remains the
// last occurrence of match[C] before R and p.c+1 the last occurrence of
// input[R] before C, which bounds both occurrence scans.
func (s *State) relaxFrom(p pos, work []pos) []pos {
	work = s.relax(pos{p.r, p.c + 1}, work)
	work = s.relax(pos{p.r + 1, p.c}, work)
	work = s.relax(pos{p.r + 1, p.c + 1}, work)

	if p.r+1 >= s.input.Len() || p.c+1 >= s.match.Len() {
		return work
	}
	x := s.input.At(p.r + 1)
	y := s.match.At(p.c + 1)
	boundR := s.input.NextIndex(x, p.r+1)
	boundC := s.match.NextIndex(y, p.c+1)
	for r := s.input.NextIndex(y, p.r+1); r >= 0 && (boundR < 0 || r <= boundR); r = s.input.NextIndex(y, r) {
		for c := s.match.NextIndex(x, p.c+1); c >= 0 && (boundC < 0 || c <= boundC); c = s.match.NextIndex(x, c) {
			work = s.relax(pos{r, c}, work)
		}
	}
	return work
}

// relax re-evaluates the recurrence at q and records a strict improvement.
func (s *State) relax(q pos, work []pos) []pos {
	if q.r >= s.input.Len() || q.c >= s.match.Len() || !s.cells.InBand(q.r, q.c) {
		return work
	}
	v := s.cell(s.cells, q.r, q.c)
	if v < s.cells.Read(q.r, q.c) {
		s.cells.Write(q.r, q.c, v)
		work = append(work, q)
	}
	return work
}
