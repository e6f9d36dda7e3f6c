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

package typedist

import (
	"znkr.io/typedist/internal/band"
	"znkr.io/typedist/internal/engine"
)

// DefaultBand is the band half-width of a new snapshot.
const DefaultBand = 1

// Inf is the value [Snapshot.HeuristicFinalCost] returns when no alignment
// is feasible within the current band. It compares greater than any
// achievable distance.
const Inf = int(band.Inf)

// Snapshot is an immutable state of the banded incremental calculation: the
// input and match sequences, the band half-width, and the resolved cost
// cells. The zero value is the empty snapshot with half-width [DefaultBand].
//
// All operations return a new Snapshot and leave the receiver unchanged, so
// a Snapshot can be retained, forked per candidate, and shared for
// read-only use across goroutines without synchronization.
type Snapshot struct {
	st *engine.State
}

// New returns an empty snapshot. The band half-width defaults to
// [DefaultBand] and can be set with [Band].
func New(opts ...Option) Snapshot {
	cfg := applyOptions(opts)
	return Snapshot{engine.New(cfg.band)}
}

// Build returns a snapshot for the given sequences, equivalent to appending
// every rune of input and match to New(opts...).
func Build(input, match string, opts ...Option) Snapshot {
	cfg := applyOptions(opts)
	return Snapshot{engine.Rebuild(input, match, cfg.band)}
}

func (s Snapshot) state() *engine.State {
	if s.st == nil {
		return engine.New(DefaultBand)
	}
	return s.st
}

// Input returns the input sequence.
func (s Snapshot) Input() string { return s.state().Input() }

// Match returns the match sequence.
func (s Snapshot) Match() string { return s.state().Match() }

// Band returns the band half-width.
func (s Snapshot) Band() int { return s.state().Band() }

// WithBand returns a snapshot over the same sequences with band half-width
// w. Growing the band reuses the resolved cells via [Snapshot.Widen];
// shrinking it rebuilds at the narrower width. w must be non-negative.
func (s Snapshot) WithBand(w int) Snapshot {
	if w < 0 {
		panic("typedist: negative band half-width")
	}
	st := s.state()
	if w < st.Band() {
		return Snapshot{engine.Rebuild(st.Input(), st.Match(), w)}
	}
	for st.Band() < w {
		st = st.Widen()
	}
	return Snapshot{st}
}

// AppendInput returns a new snapshot with x appended to the input sequence.
// O(w) cells are computed.
func (s Snapshot) AppendInput(x rune) Snapshot {
	return Snapshot{s.state().AppendInput(x)}
}

// AppendMatch returns a new snapshot with y appended to the match sequence.
// O(w) cells are computed.
func (s Snapshot) AppendMatch(y rune) Snapshot {
	return Snapshot{s.state().AppendMatch(y)}
}

// Widen returns a new snapshot with the band half-width increased by one.
// Previously resolved cells are kept and can only improve; the two new
// outer diagonals and every improvement they enable are computed.
func (s Snapshot) Widen() Snapshot {
	return Snapshot{s.state().Widen()}
}

// HeuristicFinalCost returns the banded distance estimate: an upper bound
// on the Damerau-Levenshtein distance between input and match, exact
// whenever the optimal alignment stays within the band. It returns [Inf]
// when no alignment is feasible within the band.
func (s Snapshot) HeuristicFinalCost() int {
	return int(s.state().Heuristic())
}

// FinalCost returns the exact Damerau-Levenshtein distance between input
// and match. The band is widened internally as needed; the widened snapshot
// is returned alongside the distance so the caller can keep that work.
func (s Snapshot) FinalCost() (int, Snapshot) {
	d, st := s.state().FinalCost()
	return d, Snapshot{st}
}

// WithinThreshold reports whether the Damerau-Levenshtein distance between
// input and match is at most t. The band is widened internally no further
// than the answer requires; the widened snapshot is returned alongside the
// answer.
func (s Snapshot) WithinThreshold(t int) (bool, Snapshot) {
	ok, st := s.state().WithinThreshold(t)
	return ok, Snapshot{st}
}

// String renders the banded cost matrix, for debugging.
func (s Snapshot) String() string { return s.state().String() }
