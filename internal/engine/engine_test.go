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

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"testing"

	"znkr.io/typedist/internal/oracle"
)

// randSeq draws a string of length [0, maxLen] over a small alphabet. Small
// alphabets make repeated runes, and with them transpositions, likely.
func randSeq(rng *rand.Rand, maxLen int) string {
	const alphabet = "abc"
	n := rng.IntN(maxLen + 1)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return string(b)
}

func TestFinalCostScenarios(t *testing.T) {
	tests := []struct {
		input, match string
		want         int
	}{
		{"abc", "abc", 0},
		{"abc", "cab", 2},
		{"teh", "the", 1},
		{"access", "assess", 2},
		{"aadddres", "address", 3},
		{"teaah", "the", 3},
		{"abcdefig", "caefghi", 5},
		{"daefhiwxyz", "abcdefghiyz", 6},
	}
	for _, tt := range tests {
		s := Rebuild(tt.input, tt.match, 1)
		got, widened := s.FinalCost()
		if got != tt.want {
			t.Errorf("FinalCost(%q, %q) = %d, want %d", tt.input, tt.match, got, tt.want)
		}
		if s.Band() != 1 {
			t.Errorf("FinalCost mutated the callee band: %d", s.Band())
		}
		if widened.Band() < s.Band() {
			t.Errorf("FinalCost returned a narrower snapshot: %d < %d", widened.Band(), s.Band())
		}
	}
}

func TestEmptySequences(t *testing.T) {
	s := New(1)
	if got := s.Heuristic(); got != 0 {
		t.Errorf("empty vs empty = %v, want 0", got)
	}

	s = Rebuild("", "abcde", 1)
	if got := s.Heuristic(); got != 5 {
		t.Errorf("empty vs %q = %v, want 5", s.Match(), got)
	}

	s = Rebuild("abc", "", 1)
	if got := s.Heuristic(); got != 3 {
		t.Errorf("%q vs empty = %v, want 3", s.Input(), got)
	}
	if d, _ := s.FinalCost(); d != 3 {
		t.Errorf("FinalCost(%q, \"\") = %d, want 3", s.Input(), d)
	}
}

func TestZeroBand(t *testing.T) {
	// With w = 0 only the main diagonal is materialized, but adjacent
	// transpositions on it are still found.
	s := Rebuild("ab", "ba", 0)
	if got := s.Heuristic(); got != 1 {
		t.Errorf("heuristic = %v, want 1", got)
	}

	s = Rebuild("abc", "abc", 0)
	if got := s.Heuristic(); got != 0 {
		t.Errorf("heuristic = %v, want 0", got)
	}
}

func TestAppendOrderIndependence(t *testing.T) {
	for i := range 50 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		t.Run(fmt.Sprintf("seed=%x", seed[:8]), func(t *testing.T) {
			rng := rand.New(rand.NewChaCha8(seed))
			input := []rune(randSeq(rng, 8))
			match := []rune(randSeq(rng, 8))
			w := rng.IntN(4)

			// Reference: all input first, then all match.
			ref := New(w)
			for _, r := range input {
				ref = ref.AppendInput(r)
			}
			for _, r := range match {
				ref = ref.AppendMatch(r)
			}

			// A random interleaving must produce the same heuristic.
			got := New(w)
			ni, nm := 0, 0
			for ni < len(input) || nm < len(match) {
				if nm >= len(match) || (ni < len(input) && rng.IntN(2) == 0) {
					got = got.AppendInput(input[ni])
					ni++
				} else {
					got = got.AppendMatch(match[nm])
					nm++
				}
			}

			if got.Heuristic() != ref.Heuristic() {
				t.Errorf("interleaved append of %q, %q at w=%d: heuristic = %v, want %v",
					string(input), string(match), w, got.Heuristic(), ref.Heuristic())
			}
		})
	}
}

func TestFinalCostMatchesOracle(t *testing.T) {
	for i := range 200 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		rng := rand.New(rand.NewChaCha8(seed))
		a := randSeq(rng, 8)
		b := randSeq(rng, 8)
		want := oracle.Distance(a, b)

		got, _ := Rebuild(a, b, 1).FinalCost()
		if got != want {
			t.Errorf("FinalCost(%q, %q) = %d, want %d", a, b, got, want)
		}
	}
}

func TestHeuristicNeverUnderestimates(t *testing.T) {
	for i := range 200 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		rng := rand.New(rand.NewChaCha8(seed))
		a := randSeq(rng, 8)
		b := randSeq(rng, 8)
		w := rng.IntN(5)
		want := oracle.Distance(a, b)

		h := Rebuild(a, b, w).Heuristic()
		if h.Finite() && int(h) < want {
			t.Errorf("heuristic(%q, %q, w=%d) = %v < true distance %d", a, b, w, h, want)
		}
	}
}

func TestWithinThresholdMatchesOracle(t *testing.T) {
	for i := range 200 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		rng := rand.New(rand.NewChaCha8(seed))
		a := randSeq(rng, 8)
		b := randSeq(rng, 8)
		threshold := rng.IntN(7)
		want := oracle.Distance(a, b) <= threshold

		got, _ := Rebuild(a, b, 1).WithinThreshold(threshold)
		if got != want {
			t.Errorf("WithinThreshold(%q, %q, %d) = %v, want %v", a, b, threshold, got, want)
		}
	}
}

func TestSnapshotImmutability(t *testing.T) {
	parent := Rebuild("teh", "the", 1)
	before := parent.String()

	// Forking in different directions must leave the parent untouched.
	a := parent.AppendInput('x')
	b := parent.AppendInput('y')
	c := parent.AppendMatch('z')
	_ = parent.Widen()
	_, _ = parent.FinalCost()

	if got := parent.String(); got != before {
		t.Errorf("parent changed:\nbefore:\n%s\nafter:\n%s", before, got)
	}
	if a.Input() != "tehx" || b.Input() != "tehy" || c.Match() != "thez" {
		t.Errorf("sibling snapshots interfered: %q %q %q", a.Input(), b.Input(), c.Match())
	}

	da, _ := a.FinalCost()
	db, _ := b.FinalCost()
	if wa, wb := oracle.Distance("tehx", "the"), oracle.Distance("tehy", "the"); da != wa || db != wb {
		t.Errorf("sibling costs = %d, %d, want %d, %d", da, db, wa, wb)
	}
}

func TestAppendAfterWiden(t *testing.T) {
	// Growing sequences and band in alternation must agree with a fresh
	// build at the final shape.
	s := New(1)
	for _, r := range "aaddd" {
		s = s.AppendInput(r)
	}
	for _, r := range "addr" {
		s = s.AppendMatch(r)
	}
	s = s.Widen()
	for _, r := range "res" {
		s = s.AppendInput(r)
	}
	for _, r := range "ess" {
		s = s.AppendMatch(r)
	}

	want := Rebuild("aadddres", "address", 2).Heuristic()
	if got := s.Heuristic(); got != want {
		t.Errorf("heuristic after mixed appends and widen = %v, want %v", got, want)
	}
}

func TestNegativeBandPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("New(-1) did not panic")
		}
	}()
	New(-1)
}

func BenchmarkAppendInput(b *testing.B) {
	for b.Loop() {
		s := Rebuild("", "addressable", 1)
		for _, r := range "aadddressable" {
			s = s.AppendInput(r)
		}
	}
}

func BenchmarkWiden(b *testing.B) {
	s := Rebuild("abcdefghizx", "daefhixyz", 1)
	for b.Loop() {
		_ = s.Widen().Widen()
	}
}

func BenchmarkFinalCost(b *testing.B) {
	s := Rebuild("daefhiwxyz", "abcdefghiyz", 1)
	for b.Loop() {
		_, _ = s.FinalCost()
	}
}
