// SPDX-License-Identifier: MIT

package solver

import "go.uber.org/zap"

// SolveGaussJordan reduces an augmented matrix (rows × (vars+1)) to reduced
// row-echelon form, eliminating above and below every pivot.
//
// Steps are recorded with raw arithmetic; the returned Echelon is cleaned
// entrywise with numeric.Clean. Singular is set only by an inconsistent row
// (0 = v, v ≠ 0). For a non-singular square system row i's augmented entry
// is the value of variable i (see Solution).
//
// Errors: matrix.ErrEmpty, matrix.ErrRagged, matrix.ErrNaNInf, ErrTooFewColumns.
// Complexity: O(r² · c) time.
func SolveGaussJordan(rows [][]float64, opts ...Option) (*SolveResult, error) {
	o := gatherOptions(opts)
	work, vars, err := prepareAugmented(rows)
	if err != nil {
		return nil, solverErrorf(opGaussJordan, err)
	}

	r := &reducer{m: work, pol: gaussJordanPolicy(vars), rec: o.recorder, log: o.logger}
	rank, err := r.run()
	if err != nil {
		return nil, solverErrorf(opGaussJordan, err)
	}
	singular := r.checkConsistency(vars)
	o.logger.Debug("gauss-jordan reduction done",
		zap.Int("rows", work.Rows()), zap.Int("vars", vars), zap.Int("rank", rank), zap.Bool("singular", singular))

	cleanEntries(work)

	return &SolveResult{
		Steps:    o.recorder.Steps(),
		Echelon:  work.ToRows(),
		Singular: singular,
	}, nil
}

// Solution maps row i's last (augmented) entry to variable i.
// Only meaningful for a non-singular reduced echelon form.
func Solution(echelon [][]float64) []float64 {
	out := make([]float64, len(echelon))
	for i, row := range echelon {
		if len(row) > 0 {
			out[i] = row[len(row)-1]
		}
	}

	return out
}
