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

// Package typedist ranks candidate strings against a growing input by
// Damerau-Levenshtein distance, incrementally and within a narrow diagonal
// band of the dynamic-programming matrix.
//
// The central type is [Snapshot], an immutable state of the calculation.
// Appending a rune to either sequence with [Snapshot.AppendInput] or
// [Snapshot.AppendMatch] computes only the O(w) cells the band admits for
// the new rune, where w is the band half-width. [Snapshot.Widen] grows the
// band by one diagonal on each side without recomputing resolved cells.
// This makes the package suitable for typeahead-style matching, where the
// input grows one rune at a time and most candidates are either very close
// or quickly ruled out.
//
// [Snapshot.HeuristicFinalCost] reads the banded result: an upper bound on
// the true distance that is exact whenever the optimal alignment stays
// inside the band. [Snapshot.FinalCost] and [Snapshot.WithinThreshold]
// widen the band just far enough to make their answer exact.
//
// Distances count insertions, deletions, substitutions and transpositions
// of adjacent runes with unit cost. A transposed pair may be separated by
// intermediate edits, so "abc" to "cab" costs 2. Sequences are compared by
// code point; no Unicode normalization is performed.
//
// Performance: an append computes O(w) cells, a snapshot occupies O(m*w)
// space for input length m, and widening copies the O(m*w) band, computes
// O(m) new edge cells and then the improvements it propagates. The
// transposition lookup behind each cell is a linear scan of both sequences. One-shot comparisons are better served by a plain O(m*n)
// implementation; the value of this package is reuse across appends and
// across candidates sharing a snapshot.
package typedist
