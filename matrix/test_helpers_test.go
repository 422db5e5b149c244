// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for Dense and row-operation tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rowreduce/matrix"
)

// MustFromRows builds a *Dense from rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// MustAt reads m[i][j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact asserts every entry of m equals want bitwise.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if m.Rows() != len(want) || m.Cols() != len(want[0]) {
		t.Fatalf("shape %dx%d, want %dx%d", m.Rows(), m.Cols(), len(want), len(want[0]))
	}
	var i, j int
	for i = 0; i < len(want); i++ {
		for j = 0; j < len(want[i]); j++ {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("[%d,%d] = %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}
