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

// Distance returns the Damerau-Levenshtein distance between input and
// match: the minimum number of single-rune insertions, deletions,
// substitutions and adjacent transpositions transforming one into the
// other.
//
// For repeated comparisons against a growing input, build a [Snapshot] and
// append instead.
func Distance(input, match string) int {
	d, _ := Build(input, match).FinalCost()
	return d
}

// Within reports whether the Damerau-Levenshtein distance between input and
// match is at most t. It widens the band only as far as the answer
// requires, which is cheaper than [Distance] for distant strings.
func Within(input, match string, t int) bool {
	ok, _ := Build(input, match).WithinThreshold(t)
	return ok
}
