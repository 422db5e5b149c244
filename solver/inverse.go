// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/numeric"
)

// Invert computes A⁻¹ by Gauss-Jordan reduction of [A | I].
//
// Implementation:
//   - Stage 1 (Validate): A must be n×n with n ≥ 1 and finite; violations are
//     returned before any step is recorded.
//   - Stage 2 (Augment): build [A | I_n].
//   - Stage 3 (Reduce): the shared reduction routine with pivot columns
//     0..n-1 only; the identity block is carried, never pivoted on.
//   - Stage 4 (Check): the left block must be the identity within
//     numeric.IdentityEpsilon, otherwise the result is singular and Inverse is nil.
//   - Stage 5 (Finalize): Inverse is the right block, cleaned entrywise.
//
// Errors: matrix.ErrEmpty, matrix.ErrNonSquare, matrix.ErrNaNInf.
// Complexity: O(n³) time.
func Invert(rows [][]float64, opts ...Option) (*InversionResult, error) {
	o := gatherOptions(opts)
	if err := matrix.ValidateSquareRows(rows); err != nil {
		return nil, solverErrorf(opInvert, err)
	}
	a, err := matrix.FromRows(rows)
	if err != nil {
		return nil, solverErrorf(opInvert, err)
	}
	n := a.Rows()
	I, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, solverErrorf(opInvert, err)
	}
	work, err := matrix.Augment(a, I)
	if err != nil {
		return nil, solverErrorf(opInvert, err)
	}

	r := &reducer{m: work, pol: gaussJordanPolicy(n), rec: o.recorder, log: o.logger}
	rank, err := r.run()
	if err != nil {
		return nil, solverErrorf(opInvert, err)
	}

	if !leftIsIdentity(work, n) {
		o.logger.Debug("matrix is singular", zap.Int("n", n), zap.Int("rank", rank))
		return &InversionResult{Steps: o.recorder.Steps(), Singular: true}, nil
	}

	inv, err := matrix.Block(work, 0, n, n, n)
	if err != nil {
		return nil, solverErrorf(opInvert, err)
	}
	cleanEntries(inv)
	o.logger.Debug("inversion done", zap.Int("n", n))

	return &InversionResult{
		Steps:   o.recorder.Steps(),
		Inverse: inv.ToRows(),
	}, nil
}

// leftIsIdentity checks the left n×n block of m against I_n within numeric.IdentityEpsilon.
func leftIsIdentity(m *matrix.Dense, n int) bool {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(at(m, i, j)-want) > numeric.IdentityEpsilon {
				return false
			}
		}
	}

	return true
}
