package solver_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rowreduce/trace"
)

// randomDominant returns an n×n strictly diagonally dominant (hence
// non-singular) matrix with entries in [-5, 5] off the diagonal.
func randomDominant(rng *rand.Rand, n int) [][]float64 {
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		sum := 0.0
		for j := range a[i] {
			if i == j {
				continue
			}
			v := rng.Float64()*10 - 5
			a[i][j] = v
			if v < 0 {
				sum -= v
			} else {
				sum += v
			}
		}
		a[i][i] = sum + 1 + rng.Float64()
		if rng.Intn(2) == 0 {
			a[i][i] = -a[i][i]
		}
	}

	return a
}

// augment appends b as the last column of a copy of a.
func augment(a [][]float64, b []float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = append(append([]float64(nil), a[i]...), b[i])
	}

	return out
}

// deepCopy returns an independent copy of m.
func deepCopy(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i := range m {
		out[i] = append([]float64(nil), m[i]...)
	}

	return out
}

// annotations extracts the annotation of every step.
func annotations(steps []trace.Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Annotation
	}

	return out
}

// mustRandVec returns n values in [-10, 10].
func mustRandVec(t testing.TB, rng *rand.Rand, n int) []float64 {
	t.Helper()
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*20 - 10
	}

	return v
}
