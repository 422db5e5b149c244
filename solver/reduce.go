// SPDX-License-Identifier: MIT
// Package solver: the shared reduction routine.
//
// Purpose:
//   - One pivot → normalize → eliminate loop serves all three engines.
//   - Engines differ only in their policy:
//     Gaussian     {eliminateAbove:false, pivotCols:vars, snapZeros:true,  noteUnitPivot:false}
//     Gauss-Jordan {eliminateAbove:true,  pivotCols:vars, snapZeros:false, noteUnitPivot:true}
//     Inversion    {eliminateAbove:true,  pivotCols:n,    snapZeros:false, noteUnitPivot:true}
//
// Determinism:
//   - Fixed column-then-row loop order; ties in pivot selection go to the
//     topmost row.

package solver

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/numeric"
	"github.com/katalvlaran/rowreduce/trace"
)

// policy parameterises reduce.
type policy struct {
	eliminateAbove bool // clear the pivot column above the pivot too (RREF)
	pivotCols      int  // pivot columns are 0..pivotCols-1
	snapZeros      bool // set |v| < Epsilon to exact 0 in every touched row
	noteUnitPivot  bool // record a step when the pivot is already 1
}

func gaussianPolicy(vars int) policy {
	return policy{pivotCols: vars, snapZeros: true}
}

func gaussJordanPolicy(pivotCols int) policy {
	return policy{eliminateAbove: true, pivotCols: pivotCols, noteUnitPivot: true}
}

// reducer carries one working matrix through one reduction.
type reducer struct {
	m   *matrix.Dense
	pol policy
	rec trace.Recorder
	log *zap.Logger
}

// snapZero is the per-entry cleanup applied under policy.snapZeros.
func snapZero(v float64) float64 {
	if numeric.IsZero(v) {
		return 0
	}
	return v
}

// touched applies the snapZeros policy to row i.
func (r *reducer) touched(i int) error {
	if !r.pol.snapZeros {
		return nil
	}
	return r.m.ApplyRow(i, snapZero)
}

// run reduces r.m in place.
// Implementation:
//   - Stage 1: for each pivot column, select the max-abs pivot at or below the
//     row pointer p; a column without a pivot is skipped and p stays put.
//   - Stage 2: swap the pivot row into p, then scale it so the pivot is 1.
//   - Stage 3: eliminate the column from every row below p (and above p when
//     eliminateAbove), one step per row.
//   - Stage 4: advance p.
//
// Returns the number of pivots found (the rank of the pivot block).
func (r *reducer) run() (int, error) {
	rows := r.m.Rows()
	p := 0
	for col := 0; col < r.pol.pivotCols && p < rows; col++ {
		q, ok := SelectPivot(r.m, col, p)
		if !ok {
			r.log.Debug("no pivot in column, skipping", zap.Int("column", col+1), zap.Int("row", p+1))
			continue
		}

		if q != p {
			if err := r.m.SwapRows(p, q); err != nil {
				return p, err
			}
			r.rec.Record(
				fmt.Sprintf("Swap rows to bring pivot into row %d.", p+1),
				fmt.Sprintf("R%d <=> R%d", p+1, q+1),
				r.m,
			)
		}

		pivot := at(r.m, p, col)
		r.log.Debug("pivot selected",
			zap.Int("column", col+1), zap.Int("row", p+1), zap.Int("source_row", q+1), zap.Float64("value", pivot))

		if !numeric.IsOne(pivot) {
			if err := r.m.ScaleRow(p, 1/pivot); err != nil {
				return p, err
			}
			if err := r.touched(p); err != nil {
				return p, err
			}
			r.rec.Record(
				fmt.Sprintf("Normalize pivot at row %d (make pivot = 1).", p+1),
				fmt.Sprintf("(R%d => (1/%s) * R%d)", p+1, numeric.FormatAnnotation(pivot), p+1),
				r.m,
			)
			pivot = at(r.m, p, col)
		} else if r.pol.noteUnitPivot {
			r.rec.Record(
				fmt.Sprintf("Pivot at row %d is already 1.", p+1),
				fmt.Sprintf("R%d stays", p+1),
				r.m,
			)
		}

		start := p + 1
		if r.pol.eliminateAbove {
			start = 0
		}
		for i := start; i < rows; i++ {
			if i == p {
				continue
			}
			entry := at(r.m, i, col)
			if numeric.IsZero(entry) {
				continue
			}
			k := -entry / pivot
			if err := r.m.AddScaledRow(i, p, k); err != nil {
				return p, err
			}
			if err := r.touched(i); err != nil {
				return p, err
			}
			r.rec.Record(
				fmt.Sprintf("Eliminate entry in row %d, column %d.", i+1, col+1),
				eliminationAnnotation(i, p, k),
				r.m,
			)
		}

		p++
	}

	return p, nil
}

// eliminationAnnotation renders R_i + k*R_p => R_i, using the bare +/- form for k = ±1.
func eliminationAnnotation(i, p int, k float64) string {
	switch {
	case numeric.IsOne(k):
		return fmt.Sprintf("(R%d + R%d => R%d)", i+1, p+1, i+1)
	case numeric.IsOne(-k):
		return fmt.Sprintf("(R%d - R%d => R%d)", i+1, p+1, i+1)
	default:
		return fmt.Sprintf("(R%d + (%s) * R%d => R%d)", i+1, numeric.FormatAnnotation(k), p+1, i+1)
	}
}

// inconsistentRow returns the first row whose coefficient columns
// 0..vars-1 are all zero while column vars is not, or -1.
func inconsistentRow(m *matrix.Dense, vars int) int {
	for i := 0; i < m.Rows(); i++ {
		allZero := true
		for j := 0; j < vars; j++ {
			if !numeric.IsZero(at(m, i, j)) {
				allZero = false
				break
			}
		}
		if allZero && !numeric.IsZero(at(m, i, vars)) {
			return i
		}
	}

	return -1
}

// checkConsistency records one step for the first inconsistent row and
// reports whether one was found.
func (r *reducer) checkConsistency(vars int) bool {
	i := inconsistentRow(r.m, vars)
	if i < 0 {
		return false
	}
	r.rec.Record(
		fmt.Sprintf("Inconsistent row detected at row %d: no solution.", i+1),
		fmt.Sprintf("(0 => %s)", numeric.FormatAnnotation(at(r.m, i, vars))),
		r.m,
	)
	r.log.Debug("inconsistent row", zap.Int("row", i+1))

	return true
}

// cleanEntries applies numeric.Clean to every entry of m.
func cleanEntries(m *matrix.Dense) {
	m.Apply(func(_, _ int, v float64) float64 { return numeric.Clean(v) })
}

// prepareAugmented validates rows as an augmented system and returns the
// working copy plus the number of variables.
func prepareAugmented(rows [][]float64) (*matrix.Dense, int, error) {
	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, 0, err
	}
	_, cols := m.Shape()
	if cols < 2 {
		return nil, 0, ErrTooFewColumns
	}

	return m, cols - 1, nil
}
