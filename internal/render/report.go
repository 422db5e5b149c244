// SPDX-License-Identifier: MIT

// Package render prints a rowreduce derivation as styled text, JSON or YAML.
package render

import (
	"strconv"

	"github.com/katalvlaran/rowreduce/numeric"
	"github.com/katalvlaran/rowreduce/solver"
	"github.com/katalvlaran/rowreduce/trace"
)

// Final-matrix titles.
const (
	TitleEchelon        = "Row Echelon Form"
	TitleReducedEchelon = "Reduced Row Echelon Form"
	TitleInverse        = "Inverse Matrix"
)

// Notes shown instead of a result.
const (
	NoteSingularSystem  = "The system may be singular or inconsistent."
	NoteSingularInverse = "Matrix is singular or nearly singular, inverse does not exist."
	NoteNotSquare       = "Matrix must be square (n x n) to compute inverse."
)

// Variable is one solved unknown, already formatted.
type Variable struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Report is everything one CLI run prints.
type Report struct {
	Method    string       `json:"method" yaml:"method"`
	RunID     string       `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Steps     []trace.Step `json:"steps" yaml:"steps"`
	Title     string       `json:"title" yaml:"title"`
	Result    [][]float64  `json:"result,omitempty" yaml:"result,omitempty"`
	Variables []Variable   `json:"variables,omitempty" yaml:"variables,omitempty"`
	Singular  bool         `json:"singular" yaml:"singular"`
	Note      string       `json:"note,omitempty" yaml:"note,omitempty"`
	Residual  *float64     `json:"residual,omitempty" yaml:"residual,omitempty"`

	// Split is the column index where a "|" separator is drawn in step
	// matrices (the augmented column or the identity block); 0 draws none.
	Split int `json:"-" yaml:"-"`
	// ResultSplit is Split for the final matrix.
	ResultSplit int `json:"-" yaml:"-"`
}

// GaussianReport builds the report for forward elimination plus
// back-substitution. values is ignored when the system is singular.
func GaussianReport(res *solver.SolveResult, values []string) *Report {
	r := systemReport("gauss", TitleEchelon, res)
	if !res.Singular {
		r.Variables = variables(values)
	}
	return r
}

// GaussJordanReport builds the report for a Gauss-Jordan run, reading the
// solution from the last column.
func GaussJordanReport(res *solver.SolveResult) *Report {
	r := systemReport("jordan", TitleReducedEchelon, res)
	if !res.Singular {
		sol := solver.Solution(res.Echelon)
		values := make([]string, len(sol))
		for i, v := range sol {
			values[i] = numeric.FormatSolution(v)
		}
		r.Variables = variables(values)
	}
	return r
}

// InverseReport builds the report for an inversion of an n×n matrix.
func InverseReport(res *solver.InversionResult, n int) *Report {
	r := &Report{
		Method:   "invert",
		Steps:    res.Steps,
		Title:    TitleInverse,
		Result:   res.Inverse,
		Singular: res.Singular,
		Split:    n,
	}
	if res.Singular {
		r.Note = NoteSingularInverse
	}
	return r
}

func systemReport(method, title string, res *solver.SolveResult) *Report {
	r := &Report{
		Method:   method,
		Steps:    res.Steps,
		Title:    title,
		Result:   res.Echelon,
		Singular: res.Singular,
	}
	if len(res.Echelon) > 0 {
		r.Split = len(res.Echelon[0]) - 1
		r.ResultSplit = r.Split
	}
	if res.Singular {
		r.Note = NoteSingularSystem
	}
	return r
}

func variables(values []string) []Variable {
	out := make([]Variable, len(values))
	for i, v := range values {
		out[i] = Variable{Name: variableName(i), Value: v}
	}
	return out
}

func variableName(i int) string {
	return "x" + strconv.Itoa(i+1)
}
