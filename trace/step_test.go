package trace_test

import (
	"testing"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace_SnapshotsAreIndependent(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	tr := trace.New()
	_, ok := tr.Last()
	assert.False(t, ok)

	tr.Record("first", "A", m)
	require.NoError(t, m.SwapRows(0, 1))
	tr.Record("second", "B", m)
	require.NoError(t, m.Set(0, 0, 100))

	steps := tr.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, steps[0].Matrix)
	assert.Equal(t, [][]float64{{3, 4}, {1, 2}}, steps[1].Matrix)

	// Mutating a returned snapshot does not reach its sibling.
	steps[1].Matrix[0][0] = -1
	assert.Equal(t, 1.0, steps[0].Matrix[0][0])

	last, ok := tr.Last()
	require.True(t, ok)
	assert.Equal(t, "second", last.Description)
	assert.Equal(t, "B", last.Annotation)
	assert.Equal(t, 2, tr.Len())
}

func TestDiscard(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1}})
	require.NoError(t, err)

	var r trace.Recorder = trace.Discard{}
	r.Record("x", "y", m)
	assert.Nil(t, r.Steps())
}
