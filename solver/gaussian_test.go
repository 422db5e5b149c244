package solver_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveGaussian_TwoByTwo(t *testing.T) {
	res, err := solver.SolveGaussian([][]float64{{2, 1, 5}, {3, 4, 6}})
	require.NoError(t, err)
	assert.False(t, res.Singular)

	assert.Equal(t, []string{
		"R1 <=> R2",
		"(R1 => (1/3) * R1)",
		"(R2 + (-2) * R1 => R2)",
		"(R2 => (1/-1.6666667) * R2)",
	}, annotations(res.Steps))
	assert.Equal(t, "Swap rows to bring pivot into row 1.", res.Steps[0].Description)
	assert.Equal(t, "Normalize pivot at row 1 (make pivot = 1).", res.Steps[1].Description)
	assert.Equal(t, "Eliminate entry in row 2, column 1.", res.Steps[2].Description)

	// Row-echelon only: the entry above the second pivot survives.
	assert.InDelta(t, 4.0/3, res.Echelon[0][1], 1e-12)
	assert.Equal(t, 0.0, res.Echelon[1][0])

	vals, err := solver.BackSubstitute(res.Echelon)
	require.NoError(t, err)
	assert.Equal(t, []string{"2.8", "-0.6"}, vals)
}

func TestSolveGaussian_AnnotationForms(t *testing.T) {
	t.Run("minus form", func(t *testing.T) {
		res, err := solver.SolveGaussian([][]float64{{1, 1, 3}, {1, -1, 1}})
		require.NoError(t, err)
		assert.Equal(t, []string{"(R2 - R1 => R2)", "(R2 => (1/-2) * R2)"}, annotations(res.Steps))
		vals, err := solver.BackSubstitute(res.Echelon)
		require.NoError(t, err)
		assert.Equal(t, []string{"2", "1"}, vals)
	})
	t.Run("plus form", func(t *testing.T) {
		res, err := solver.SolveGaussian([][]float64{{1, 2, 3}, {-1, 1, 0}})
		require.NoError(t, err)
		require.NotEmpty(t, res.Steps)
		assert.Equal(t, "(R2 + R1 => R2)", res.Steps[0].Annotation)
	})
	t.Run("unit pivot emits nothing", func(t *testing.T) {
		res, err := solver.SolveGaussian([][]float64{{1, 0, 3}, {0, 1, 4}})
		require.NoError(t, err)
		assert.Empty(t, res.Steps)
		assert.False(t, res.Singular)
	})
}

func TestSolveGaussian_Inconsistent(t *testing.T) {
	t.Run("single zero row", func(t *testing.T) {
		res, err := solver.SolveGaussian([][]float64{{0, 0, 5}})
		require.NoError(t, err)
		assert.True(t, res.Singular)
		require.Len(t, res.Steps, 1)
		assert.Equal(t, "(0 => 5)", res.Steps[0].Annotation)
		assert.True(t, strings.HasPrefix(res.Steps[0].Description, "Inconsistent row detected at row 1"))
	})
	t.Run("parallel equations", func(t *testing.T) {
		res, err := solver.SolveGaussian([][]float64{{1, 1, 2}, {2, 2, 5}})
		require.NoError(t, err)
		assert.True(t, res.Singular)
		assert.Equal(t, []string{
			"R1 <=> R2",
			"(R1 => (1/2) * R1)",
			"(R2 - R1 => R2)",
			"(0 => -0.5)",
		}, annotations(res.Steps))
	})
	t.Run("only first offending row is reported", func(t *testing.T) {
		res, err := solver.SolveGaussian([][]float64{{0, 0, 1}, {0, 0, 2}})
		require.NoError(t, err)
		assert.True(t, res.Singular)
		require.Len(t, res.Steps, 1)
		assert.Contains(t, res.Steps[0].Description, "row 1")
	})
}

// TestSolveGaussian_FreeVariableDefaultsToZero pins the known limitation:
// a consistent rank-deficient system is not singular and its free variable is 0.
func TestSolveGaussian_FreeVariableDefaultsToZero(t *testing.T) {
	res, err := solver.SolveGaussian([][]float64{{1, 1, 2}, {2, 2, 4}})
	require.NoError(t, err)
	assert.False(t, res.Singular)

	x, err := solver.BackSubstituteValues(res.Echelon)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0}, x)
}

func TestSolveGaussian_PivotingStability(t *testing.T) {
	in := [][]float64{{1e-15, 1, 3}, {1, 1, 2}}
	res, err := solver.SolveGaussian(in)
	require.NoError(t, err)
	assert.False(t, res.Singular)
	require.NotEmpty(t, res.Steps)
	assert.Equal(t, "R1 <=> R2", res.Steps[0].Annotation)

	x, err := solver.BackSubstituteValues(res.Echelon)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, x[0], 1e-6)
	assert.InDelta(t, 3.0, x[1], 1e-6)

	coeffs, rhs, err := solver.SplitAugmented(in)
	require.NoError(t, err)
	r, err := solver.Residual(coeffs, rhs, x)
	require.NoError(t, err)
	assert.Less(t, r, 1e-6)
}

func TestSolveGaussian_DoesNotMutateInput(t *testing.T) {
	in := [][]float64{{2, 1, 5}, {3, 4, 6}}
	before := deepCopy(in)
	res, err := solver.SolveGaussian(in)
	require.NoError(t, err)
	assert.Equal(t, before, in)

	res.Echelon[0][0] = 42
	assert.Equal(t, before, in)
}

func TestSolveGaussian_SnapshotsAreIndependent(t *testing.T) {
	res, err := solver.SolveGaussian([][]float64{{2, 1, 5}, {3, 4, 6}})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(res.Steps), 2)

	assert.Equal(t, [][]float64{{3, 4, 6}, {2, 1, 5}}, res.Steps[0].Matrix, "snapshot right after the swap")
	res.Steps[1].Matrix[0][0] = 100
	res.Echelon[1][2] = 100
	assert.Equal(t, [][]float64{{3, 4, 6}, {2, 1, 5}}, res.Steps[0].Matrix)
}

func TestSolveGaussian_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   [][]float64
		want error
	}{
		{"empty", nil, matrix.ErrEmpty},
		{"ragged", [][]float64{{1, 2, 3}, {1, 2}}, matrix.ErrRagged},
		{"single column", [][]float64{{1}, {2}}, solver.ErrTooFewColumns},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := solver.SolveGaussian(tc.in)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, res)
		})
	}
}

func TestBackSubstitute_Errors(t *testing.T) {
	_, err := solver.BackSubstitute(nil)
	assert.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = solver.BackSubstitute([][]float64{{1}})
	assert.ErrorIs(t, err, solver.ErrTooFewColumns)
}

// TestSolveGaussian_Correctness checks A·x = b within 1e-6 on random systems.
func TestSolveGaussian_Correctness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 1; n <= 7; n++ {
		for trial := 0; trial < 20; trial++ {
			a := randomDominant(rng, n)
			b := mustRandVec(t, rng, n)

			res, err := solver.SolveGaussian(augment(a, b))
			require.NoError(t, err)
			require.False(t, res.Singular)

			x, err := solver.BackSubstituteValues(res.Echelon)
			require.NoError(t, err)
			r, err := solver.Residual(a, b, x)
			require.NoError(t, err)
			require.Less(t, r, 1e-6, "n=%d trial=%d", n, trial)
		}
	}
}
