// SPDX-License-Identifier: MIT
// Package solver: independent verification of results.
//
// Purpose:
//   - Check a solution or inverse with gonum's BLAS-backed products, so the
//     check shares no code with the reduction routine it verifies.

package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rowreduce/matrix"
)

// SplitAugmented separates an augmented matrix into coefficients and the
// right-hand side. The returned slices are fresh copies.
func SplitAugmented(aug [][]float64) (coeffs [][]float64, rhs []float64, err error) {
	if err = matrix.ValidateRows(aug); err != nil {
		return nil, nil, err
	}
	vars := len(aug[0]) - 1
	if vars < 1 {
		return nil, nil, ErrTooFewColumns
	}
	coeffs = make([][]float64, len(aug))
	rhs = make([]float64, len(aug))
	for i, row := range aug {
		coeffs[i] = append([]float64(nil), row[:vars]...)
		rhs[i] = row[vars]
	}

	return coeffs, rhs, nil
}

// toGonum copies validated rows into a *mat.Dense.
func toGonum(rows [][]float64) *mat.Dense {
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data)
}

// Residual returns max_i |(A·x)_i − b_i|.
//
// Errors: matrix.ErrEmpty, matrix.ErrRagged, or matrix.ErrDimensionMismatch
// when len(rhs) ≠ rows or len(x) ≠ cols.
func Residual(coeffs [][]float64, rhs, x []float64) (float64, error) {
	if err := matrix.ValidateRows(coeffs); err != nil {
		return 0, solverErrorf(opResidual, err)
	}
	r, c := len(coeffs), len(coeffs[0])
	if len(rhs) != r || len(x) != c {
		return 0, solverErrorf(opResidual,
			fmt.Errorf("A is %dx%d, len(b)=%d, len(x)=%d: %w", r, c, len(rhs), len(x), matrix.ErrDimensionMismatch))
	}

	var ax mat.VecDense
	ax.MulVec(toGonum(coeffs), mat.NewVecDense(c, append([]float64(nil), x...)))

	worst := 0.0
	for i := 0; i < r; i++ {
		worst = math.Max(worst, math.Abs(ax.AtVec(i)-rhs[i]))
	}

	return worst, nil
}

// InverseResidual returns max_ij |(inv·A − I)_ij|.
//
// Errors: matrix.ErrEmpty, matrix.ErrNonSquare, or matrix.ErrDimensionMismatch
// when the two matrices differ in size.
func InverseResidual(a, inv [][]float64) (float64, error) {
	if err := matrix.ValidateSquareRows(a); err != nil {
		return 0, solverErrorf(opInvResidual, err)
	}
	if err := matrix.ValidateSquareRows(inv); err != nil {
		return 0, solverErrorf(opInvResidual, err)
	}
	n := len(a)
	if len(inv) != n {
		return 0, solverErrorf(opInvResidual, matrix.ErrDimensionMismatch)
	}

	var p mat.Dense
	p.Mul(toGonum(inv), toGonum(a))

	worst := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			worst = math.Max(worst, math.Abs(p.At(i, j)-want))
		}
	}

	return worst, nil
}
