// Package rowreduce solves linear systems and inverts matrices by row
// reduction, recording every elementary row operation on the way.
//
// What is rowreduce?
//
//	A small, dependency-light library plus CLI that brings together:
//		• Gaussian elimination with partial pivoting and back-substitution
//		• Gauss-Jordan reduction to reduced row echelon form
//		• Matrix inversion by reducing [A | I]
//		• A step trace: description, compact annotation and a matrix snapshot
//		  after each operation
//
// Every engine shares one reduction routine, so pivoting, tolerances and
// annotation text are identical across methods.
//
// Packages:
//
//	matrix/  - Dense storage, row operations, shape validators
//	numeric/ - tolerances, cleaning and number formatting
//	trace/   - Step snapshots and the Recorder interface
//	solver/  - the three engines, back-substitution and residual checks
//	cmd/rowreduce - CLI: gauss, jordan, invert
//
// Quick example:
//
//	[ 2 1 |  5 ]        (R1 => (1/2) * R1)
//	[ 1 3 | 10 ]   →    (R2 - R1 => R2)      →  x1 = 1, x2 = 3
//	                    ...
//
//	go get github.com/katalvlaran/rowreduce/solver
package rowreduce
