// SPDX-License-Identifier: MIT

package solver

import "github.com/katalvlaran/rowreduce/trace"

// SolveResult is returned by SolveGaussian and SolveGaussJordan.
//
// Echelon is row-echelon form for Gaussian elimination (raw arithmetic) and
// cleaned reduced row-echelon form for Gauss-Jordan. Check Singular before
// trusting it as a solution.
type SolveResult struct {
	Steps    []trace.Step `json:"steps" yaml:"steps"`
	Echelon  [][]float64  `json:"echelon" yaml:"echelon"`
	Singular bool         `json:"singular" yaml:"singular"`
}

// InversionResult is returned by Invert. Inverse is nil whenever Singular is
// true; no partial inverse is ever returned.
type InversionResult struct {
	Steps    []trace.Step `json:"steps" yaml:"steps"`
	Inverse  [][]float64  `json:"inverse,omitempty" yaml:"inverse,omitempty"`
	Singular bool         `json:"singular" yaml:"singular"`
}
