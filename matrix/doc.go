// Package matrix provides the dense row-major matrix used by the rowreduce
// engines, together with the three elementary row operations they are built on.
//
// The matrix package provides:
//
//   - Dense: a rectangular float64 matrix backed by one flat slice, built from
//     caller rows via FromRows (always a deep copy) and exported via ToRows.
//   - Row operations: SwapRows, ScaleRow and AddScaledRow. They are purely
//     mechanical; pivoting and tolerance policy live in package solver.
//   - Structural validators (ValidateRows, ValidateSquareRows) returning
//     sentinel errors that callers match with errors.Is.
//   - Small constructors used by the inversion engine: NewIdentity, Augment
//     and Block.
//
// Matrices here are small and educational; every operation is O(r*c) or
// better and no routine allocates behind the caller's back except Clone.
package matrix
