// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/numeric"
)

// at reads m[i][j]; callers keep i and j inside the matrix, so the error is never set.
func at(m *matrix.Dense, i, j int) float64 {
	v, _ := m.At(i, j)
	return v
}

// SelectPivot performs partial pivoting: among rows from..Rows()-1 it returns
// the one with the largest |m[row][col]|. The first maximum wins on ties.
// ok is false when that maximum is within numeric.Epsilon of zero, i.e. the
// column has no usable pivot at or below from.
//
// Elimination multipliers taken against a max-abs pivot satisfy |k| ≤ 1.
// Complexity: O(rows).
func SelectPivot(m *matrix.Dense, col, from int) (row int, ok bool) {
	if col < 0 || col >= m.Cols() || from < 0 || from >= m.Rows() {
		return -1, false
	}

	best, bestAbs := from, math.Abs(at(m, from, col))
	for i := from + 1; i < m.Rows(); i++ {
		if v := math.Abs(at(m, i, col)); v > bestAbs {
			best, bestAbs = i, v
		}
	}
	if numeric.IsZero(bestAbs) {
		return -1, false
	}

	return best, true
}
