// Package solver solves linear systems and inverts square matrices while
// recording every elementary row operation as a trace.Step.
//
// 🚀 Engines
//
//   - SolveGaussian    - forward elimination to row-echelon form; pair it with
//     BackSubstitute to recover the variables.
//   - SolveGaussJordan - full reduction to reduced row-echelon form; Solution
//     reads the variables straight off the augmented column.
//   - Invert           - Gauss-Jordan on [A | I]; the right block is A⁻¹ when
//     the left block reaches the identity.
//
// All three share one reduction routine parameterised by a policy
// (eliminate above the pivot or not, how many pivot columns, whether to snap
// near-zero entries), partial pivoting by maximum absolute value, and the
// numeric tolerance policy of package numeric.
//
// ⚙️ Usage:
//
//	res, err := solver.SolveGaussJordan([][]float64{
//		{2, 1, 5},
//		{3, 4, 6},
//	})
//	if err != nil {
//		// structural problem: empty, ragged, NaN/Inf, too few columns
//	}
//	if res.Singular {
//		// no unique solution; res.Steps still explains why
//	}
//	x := solver.Solution(res.Echelon) // [2.8 -0.6]
//
// Errors vs. singularity:
//
//	Malformed input is an error (matrix.ErrEmpty, matrix.ErrRagged,
//	matrix.ErrNonSquare, matrix.ErrNaNInf, ErrTooFewColumns) and nothing is
//	computed. A singular or inconsistent system is a normal outcome reported
//	through the Singular flag.
//
// Concurrency:
//
//	Every call works on its own deep copy and touches no package-level
//	mutable state, so engines may be called from any number of goroutines.
package solver
