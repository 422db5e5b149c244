// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for structural checks on
//    caller-supplied rows.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRows ensures rows is non-empty and rectangular.
//
// Errors: ErrEmpty when there are no rows or row 0 has no columns,
// ErrRagged when any row length differs from row 0.
// Complexity: O(r).
func ValidateRows(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateRows", ErrEmpty)
	}
	c := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != c {
			return validatorErrorf("ValidateRows", fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrRagged))
		}
	}

	return nil
}

// ValidateSquareRows ensures rows is an n×n matrix with n ≥ 1.
// Every row is checked against n = len(rows), so a ragged input reports
// ErrNonSquare rather than ErrRagged.
// Complexity: O(n).
func ValidateSquareRows(rows [][]float64) error {
	n := len(rows)
	if n == 0 {
		return validatorErrorf("ValidateSquareRows", ErrEmpty)
	}
	for i := 0; i < n; i++ {
		if len(rows[i]) != n {
			return validatorErrorf("ValidateSquareRows", fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrNonSquare))
		}
	}

	return nil
}
