// SPDX-License-Identifier: MIT

package solver

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/numeric"
)

// SolveGaussian runs forward Gaussian elimination with partial pivoting on
// an augmented matrix (rows × (vars+1)).
//
// Implementation:
//   - Stage 1: deep-copy and validate (non-empty, rectangular, finite, ≥ 2 columns).
//   - Stage 2: reduce below each pivot only; entries within numeric.Epsilon
//     of zero are snapped to 0 after every operation.
//   - Stage 3: the first row reading 0 = v (v ≠ 0) adds one step and sets Singular.
//
// The returned Echelon is row-echelon form (not reduced, not rounded).
// Columns without a pivot are skipped silently; they are not flagged here.
//
// Errors: matrix.ErrEmpty, matrix.ErrRagged, matrix.ErrNaNInf, ErrTooFewColumns.
// Complexity: O(r² · c) time; O(steps · r · c) memory for the trace.
func SolveGaussian(rows [][]float64, opts ...Option) (*SolveResult, error) {
	o := gatherOptions(opts)
	work, vars, err := prepareAugmented(rows)
	if err != nil {
		return nil, solverErrorf(opGaussian, err)
	}

	r := &reducer{m: work, pol: gaussianPolicy(vars), rec: o.recorder, log: o.logger}
	rank, err := r.run()
	if err != nil {
		return nil, solverErrorf(opGaussian, err)
	}
	singular := r.checkConsistency(vars)
	o.logger.Debug("gaussian elimination done",
		zap.Int("rows", work.Rows()), zap.Int("vars", vars), zap.Int("rank", rank), zap.Bool("singular", singular))

	return &SolveResult{
		Steps:    o.recorder.Steps(),
		Echelon:  work.ToRows(),
		Singular: singular,
	}, nil
}

// BackSubstituteValues recovers variable values from a row-echelon augmented
// matrix, walking rows bottom to top.
//
// A row without a leading nonzero coefficient contributes nothing; variables
// that never lead a row keep the value 0. Free variables are therefore set to
// 0 rather than reported, and the result is meaningful only when the system
// was not singular.
//
// Errors: matrix.ErrEmpty, matrix.ErrRagged, ErrTooFewColumns.
// Complexity: O(r · c).
func BackSubstituteValues(echelon [][]float64) ([]float64, error) {
	if err := matrix.ValidateRows(echelon); err != nil {
		return nil, solverErrorf(opBackSubstitute, err)
	}
	vars := len(echelon[0]) - 1
	if vars < 1 {
		return nil, solverErrorf(opBackSubstitute, ErrTooFewColumns)
	}

	x := make([]float64, vars)
	for i := len(echelon) - 1; i >= 0; i-- {
		row := echelon[i]
		lead := -1
		for c := 0; c < vars; c++ {
			if !numeric.IsZero(row[c]) {
				lead = c
				break
			}
		}
		if lead < 0 {
			continue
		}

		sum := 0.0
		for c := lead + 1; c < vars; c++ {
			sum += row[c] * x[c]
		}
		x[lead] = (row[vars] - sum) / row[lead]
	}

	return x, nil
}

// BackSubstitute is BackSubstituteValues with each value rendered by
// numeric.FormatSolution (integers bare, otherwise 6 decimals).
func BackSubstitute(echelon [][]float64) ([]string, error) {
	x, err := BackSubstituteValues(echelon)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(x))
	for i, v := range x {
		out[i] = numeric.FormatSolution(v)
	}

	return out, nil
}
