package solver_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveGaussJordan_ConcreteScenario(t *testing.T) {
	res, err := solver.SolveGaussJordan([][]float64{{2, 1, 5}, {3, 4, 6}})
	require.NoError(t, err)
	assert.False(t, res.Singular)

	assert.InDelta(t, 2.8, res.Echelon[0][2], 1e-9)
	assert.InDelta(t, -0.6, res.Echelon[1][2], 1e-9)
	assert.Equal(t, [][]float64{{1, 0, 2.8}, {0, 1, -0.6}}, res.Echelon, "echelon is cleaned")

	assert.Equal(t, []string{
		"R1 <=> R2",
		"(R1 => (1/3) * R1)",
		"(R2 + (-2) * R1 => R2)",
		"(R2 => (1/-1.6666667) * R2)",
		"(R1 + (-1.3333333) * R2 => R1)",
	}, annotations(res.Steps))

	x := solver.Solution(res.Echelon)
	assert.Equal(t, []float64{2.8, -0.6}, x)
}

func TestSolveGaussJordan_UnitPivotIsRecorded(t *testing.T) {
	res, err := solver.SolveGaussJordan([][]float64{{1, 0, 3}, {0, 1, 4}})
	require.NoError(t, err)
	assert.Equal(t, []string{"R1 stays", "R2 stays"}, annotations(res.Steps))
	assert.Equal(t, "Pivot at row 1 is already 1.", res.Steps[0].Description)
	assert.Equal(t, []float64{3, 4}, solver.Solution(res.Echelon))
}

func TestSolveGaussJordan_EliminatesAbove(t *testing.T) {
	res, err := solver.SolveGaussJordan([][]float64{
		{1, 2, 3, 14},
		{0, 1, 4, 14},
		{0, 0, 1, 3},
	})
	require.NoError(t, err)
	require.False(t, res.Singular)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.Equal(t, want, res.Echelon[i][j], "[%d,%d]", i, j)
		}
	}
	assert.Equal(t, []float64{1, 2, 3}, solver.Solution(res.Echelon))
}

func TestSolveGaussJordan_Inconsistent(t *testing.T) {
	res, err := solver.SolveGaussJordan([][]float64{{1, 2, 3}, {2, 4, 7}})
	require.NoError(t, err)
	assert.True(t, res.Singular)
	require.NotEmpty(t, res.Steps)
	last := res.Steps[len(res.Steps)-1]
	assert.Equal(t, "(0 => -0.5)", last.Annotation)
	assert.Contains(t, last.Description, "row 2")
}

func TestSolveGaussJordan_Errors(t *testing.T) {
	_, err := solver.SolveGaussJordan([][]float64{})
	assert.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = solver.SolveGaussJordan([][]float64{{1, 2}, {1, 2, 3}})
	assert.ErrorIs(t, err, matrix.ErrRagged)
	_, err = solver.SolveGaussJordan([][]float64{{3}})
	assert.ErrorIs(t, err, solver.ErrTooFewColumns)
}

// TestSolveGaussJordan_AgreesWithGaussian is the cross-engine agreement property.
func TestSolveGaussJordan_AgreesWithGaussian(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for n := 1; n <= 6; n++ {
		for trial := 0; trial < 15; trial++ {
			aug := augment(randomDominant(rng, n), mustRandVec(t, rng, n))

			g, err := solver.SolveGaussian(aug)
			require.NoError(t, err)
			gx, err := solver.BackSubstituteValues(g.Echelon)
			require.NoError(t, err)

			gj, err := solver.SolveGaussJordan(aug)
			require.NoError(t, err)
			require.False(t, gj.Singular)
			jx := solver.Solution(gj.Echelon)

			require.Len(t, jx, len(gx))
			for i := range gx {
				require.InDelta(t, gx[i], jx[i], 1e-6, "n=%d trial=%d var=%d", n, trial, i)
			}
		}
	}
}
