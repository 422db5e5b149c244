// SPDX-License-Identifier: MIT
// Package matrix: constructors and block helpers.
//
// Purpose:
//   - Build the augmented [A | I] working matrix for inversion.
//   - Extract the right-hand block once reduction is done.
//   - Offer a tolerance comparison for tests and verifiers.

package matrix

import (
	"fmt"
	"math"
)

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2).
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Augment returns the horizontal concatenation [a | b].
// Returns ErrDimensionMismatch when a and b have different row counts.
// Complexity: O(r*(ca+cb)).
func Augment(a, b *Dense) (*Dense, error) {
	if a.r != b.r {
		return nil, matrixErrorf(opAugment, ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, a.c+b.c)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	for i := 0; i < a.r; i++ {
		copy(out.data[i*out.c:], a.data[i*a.c:(i+1)*a.c])
		copy(out.data[i*out.c+a.c:], b.data[i*b.c:(i+1)*b.c])
	}

	return out, nil
}

// Block copies the h×w window starting at (r0, c0) into a new Dense.
// Returns ErrOutOfRange when the window leaves the matrix.
// Complexity: O(h*w).
func Block(m *Dense, r0, c0, h, w int) (*Dense, error) {
	if r0 < 0 || c0 < 0 || h <= 0 || w <= 0 || r0+h > m.r || c0+w > m.c {
		return nil, matrixErrorf(opBlock, fmt.Errorf("window (%d,%d)+%dx%d on %dx%d: %w", r0, c0, h, w, m.r, m.c, ErrOutOfRange))
	}
	out := &Dense{r: h, c: w, data: make([]float64, h*w)}
	for i := 0; i < h; i++ {
		copy(out.data[i*w:(i+1)*w], m.data[(r0+i)*m.c+c0:(r0+i)*m.c+c0+w])
	}

	return out, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// entries differs by at most tol.
func AllClose(a, b [][]float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if math.Abs(a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}

	return true
}
