// SPDX-License-Identifier: MIT
// Package solver: sentinel errors and error tagging.

package solver

import (
	"errors"
	"fmt"
)

// ErrTooFewColumns is returned when an augmented matrix has no coefficient
// column (fewer than two columns in total).
var ErrTooFewColumns = errors.New("solver: augmented matrix needs at least one coefficient column")

// Operation tags used in error wrapping.
const (
	opGaussian       = "SolveGaussian"
	opGaussJordan    = "SolveGaussJordan"
	opInvert         = "Invert"
	opBackSubstitute = "BackSubstitute"
	opResidual       = "Residual"
	opInvResidual    = "InverseResidual"
)

// solverErrorf wraps err with an operation tag. Use only when err != nil.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
