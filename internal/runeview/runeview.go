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

// Package runeview provides immutable append-only views of rune sequences.
//
// A Seq is a value: Append returns a new Seq and never aliases writable
// storage with its parent, so two Seqs appended from the same parent cannot
// observe each other's elements.
package runeview

import "slices"

// Seq is an immutable sequence of runes.
//
// The zero value is the empty sequence.
type Seq struct {
	runes []rune
}

// From decodes s into a sequence of code points. Invalid UTF-8 bytes decode
// to utf8.RuneError, the behavior of the standard library decoder.
func From(s string) Seq {
	return Seq{[]rune(s)}
}

// Len returns the number of runes in the sequence.
func (v Seq) Len() int { return len(v.runes) }

// At returns the rune at index i.
func (v Seq) At(i int) rune { return v.runes[i] }

// Append returns a new sequence with r appended. The receiver is unchanged.
func (v Seq) Append(r rune) Seq {
	// Clip forces append to reallocate, so siblings appended from the same
	// parent never share the slot for the new rune.
	return Seq{append(slices.Clip(v.runes), r)}
}

// String returns the sequence as a string.
func (v Seq) String() string { return string(v.runes) }

// LastIndex returns the greatest index i < before with v.At(i) == r, or -1
// if there is none.
func (v Seq) LastIndex(r rune, before int) int {
	if before > len(v.runes) {
		before = len(v.runes)
	}
	for i := before - 1; i >= 0; i-- {
		if v.runes[i] == r {
			return i
		}
	}
	return -1
}

// NextIndex returns the smallest index i > after with v.At(i) == r, or -1 if
// there is none.
func (v Seq) NextIndex(r rune, after int) int {
	for i := after + 1; i < len(v.runes); i++ {
		if v.runes[i] == r {
			return i
		}
	}
	return -1
}
