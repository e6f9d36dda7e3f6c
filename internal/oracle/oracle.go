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

// Package oracle provides a naive O(m*n) Damerau-Levenshtein reference
// implementation used to validate the banded incremental engine in tests.
//
// The distance counts single-rune insertions, deletions, substitutions and
// transpositions of adjacent runes, where a transposed pair may be separated
// by intermediate inserts or deletes (Lowrance & Wagner's formulation, not
// the restricted optimal-string-alignment variant).
package oracle

// Distance returns the Damerau-Levenshtein distance between the code points
// of a and b.
//
// Algorithm S from Lowrance and Wagner, An Extension of the
// String-to-String Correction Problem, JACM, 1973.
func Distance(a, b string) int {
	x, y := []rune(a), []rune(b)
	m, n := len(x), len(y)
	inf := m + n + 1

	d := newTable(m, n)
	for i := 1; i <= m; i++ {
		*d.at(i, -1) = inf
		*d.at(i, 0) = i
	}
	for j := 1; j <= n; j++ {
		*d.at(-1, j) = inf
		*d.at(0, j) = j
	}

	// Last seen occurrence (row) of each rune in x; L & W's DA.
	lastX := make(map[rune]int)
	for i := 1; i <= m; i++ {
		// Last seen occurrence (column) of x[i-1] in y; L & W's DB.
		lastY := 0

		for j := 1; j <= n; j++ {
			i1 := lastX[y[j-1]]
			j1 := lastY

			substCost := 1
			if x[i-1] == y[j-1] {
				lastY = j
				substCost = 0
			}

			*d.at(i, j) = min(
				*d.at(i-1, j-1)+substCost,
				*d.at(i, j-1)+1,
				*d.at(i-1, j)+1,
				*d.at(i1-1, j1-1)+(i-i1-1)+1+(j-j1-1),
			)
		}
		lastX[x[i-1]] = i
	}

	return *d.at(m, n)
}

// DP table with indexes starting at -1.
type table struct {
	ncols int
	data  []int
}

func newTable(nrows, ncols int) table {
	return table{ncols: ncols + 2, data: make([]int, (nrows+2)*(ncols+2))}
}

func (t *table) at(i, j int) *int {
	return &t.data[(i+1)*t.ncols+(j+1)]
}
