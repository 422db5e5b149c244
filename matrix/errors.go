// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and row operations return these sentinels (optionally
// wrapped with an operation tag). Tests MUST check them via errors.Is.
// No routine panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (documented, enforced in tests):
// empty -> ragged -> non-square -> NaN/Inf -> index.

var (
	// ErrEmpty is returned when a matrix has no rows or its first row has no columns.
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrRagged indicates that rows have different lengths.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered at ingestion.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers and row operations MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Augment with different row counts.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)

// Operation name constants for unified error wrapping.
const (
	opFromRows     = "FromRows"
	opIdentity     = "NewIdentity"
	opAugment      = "Augment"
	opBlock        = "Block"
	opSwapRows     = "SwapRows"
	opScaleRow     = "ScaleRow"
	opAddScaledRow = "AddScaledRow"
	opApplyRow     = "ApplyRow"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
