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

// Package engine implements the incremental, diagonally-banded
// Damerau-Levenshtein calculation.
//
// A State is an immutable snapshot of the calculation for one (input, match)
// pair of sequences at one band half-width w. Appending a rune to either
// sequence, and widening the band by one, each produce a new State. An
// append shares the rows it does not write with its parent; widening
// reallocates every row. The cost semantics are those
// of the full Damerau-Levenshtein distance with adjacent transpositions,
// where a transposed pair may be separated by intermediate inserts or
// deletes.
//
// The final cell of the matrix is an upper bound on the true distance; it is
// exact whenever the optimal alignment stays within the band, and in
// particular whenever w >= max(m, n). The query methods widen a snapshot
// until that bound is tight enough to answer, and return the widened
// snapshot so the caller can keep the extra work.
package engine

import (
	"fmt"
	"strings"

	"znkr.io/typedist/internal/band"
	"znkr.io/typedist/internal/runeview"
)

// State is an immutable snapshot of the banded calculation.
//
// A State must not be mutated after it has been returned; all operations
// derive new States. A published State is safe for concurrent read-only use.
type State struct {
	input, match runeview.Seq
	w            int
	cells        band.Matrix
}

// New returns the empty snapshot with band half-width w. w must be
// non-negative.
func New(w int) *State {
	if w < 0 {
		panic("typedist: negative band half-width")
	}
	return &State{w: w, cells: band.New(w)}
}

// Rebuild constructs a snapshot for the given sequences at half-width w by
// replaying the appends.
func Rebuild(input, match string, w int) *State {
	s := New(w)
	for _, r := range input {
		s = s.AppendInput(r)
	}
	for _, r := range match {
		s = s.AppendMatch(r)
	}
	return s
}

// Input returns the input sequence.
func (s *State) Input() string { return s.input.String() }

// Match returns the match sequence.
func (s *State) Match() string { return s.match.String() }

// Band returns the band half-width.
func (s *State) Band() int { return s.w }

// Heuristic returns the stored cost of the final cell: an upper bound on
// the Damerau-Levenshtein distance between input and match, band.Inf if no
// alignment is feasible within the band. For empty sequences the virtual
// boundary applies, so empty-vs-nonempty yields the nonempty length.
func (s *State) Heuristic() band.Cost {
	return s.cells.Read(s.input.Len()-1, s.match.Len()-1)
}

// FinalCost returns the exact Damerau-Levenshtein distance between input
// and match, widening as needed until the heuristic is certain. The
// returned snapshot carries the widening work for reuse; the receiver is
// unchanged.
func (s *State) FinalCost() (int, *State) {
	for {
		if h := s.Heuristic(); h <= band.Cost(s.w) {
			return int(h), s
		}
		s = s.Widen()
	}
}

// WithinThreshold reports whether the distance between input and match is
// at most t, widening as needed. Like FinalCost it returns the widened
// snapshot alongside the answer.
func (s *State) WithinThreshold(t int) (bool, *State) {
	for {
		h := s.Heuristic()
		switch {
		case h <= band.Cost(t):
			return true, s
		case s.w >= t:
			// The band already covers every alignment of cost <= t, so no
			// cheaper alignment exists.
			return false, s
		case s.w > max(s.input.Len(), s.match.Len()):
			// The band covers the full matrix; the heuristic cannot improve.
			return h <= band.Cost(t), s
		}
		s = s.Widen()
	}
}

// String renders the banded matrix for debugging: one line per input rune,
// "." for out-of-band cells and "inf" for unresolved ones.
func (s *State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "w=%d %q -> %q\n", s.w, s.Input(), s.Match())
	for r := 0; r < s.input.Len(); r++ {
		for c := 0; c < s.match.Len(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			switch v := s.cells.Read(r, c); {
			case !s.cells.InBand(r, c):
				b.WriteString(".")
			case v == band.Inf:
				b.WriteString("inf")
			default:
				fmt.Fprintf(&b, "%d", v)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// cell evaluates the cost recurrence for (r, c) over matrix m: the minimum
// of substitution, insertion, deletion, and the transposition that pairs
// the last occurrence of match[c] in the input with the last occurrence of
// input[r] in the match, charging the runes skipped in between. All reads
// saturate at band.Inf, so unresolved and out-of-band sources never
// contribute.
func (s *State) cell(m band.Matrix, r, c int) band.Cost {
	sub := m.Read(r-1, c-1)
	if s.input.At(r) != s.match.At(c) {
		sub = sub.Add(1)
	}
	v := min(sub, m.Read(r, c-1).Add(1), m.Read(r-1, c).Add(1))
	if r > 0 && c > 0 {
		r1 := s.input.LastIndex(s.match.At(c), r)
		c1 := s.match.LastIndex(s.input.At(r), c)
		// With no prior occurrence the source read is below the virtual
		// boundary and yields Inf.
		tr := m.Read(r1-1, c1-1).Add(band.Cost(r-r1-1) + 1 + band.Cost(c-c1-1))
		v = min(v, tr)
	}
	return v
}
