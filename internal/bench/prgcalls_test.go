package bench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rometsch-lab/grotto-dpf/internal/bench"
	"github.com/rometsch-lab/grotto-dpf/inputs"
)

func TestSummarizePathMemoizerCallsFirstQueryIsFullDepth(t *testing.T) {
	depth := 8
	queries := []inputs.Input{inputs.NewBitStringFromUint64(5, depth)}

	summary, err := bench.SummarizePathMemoizerCalls(depth, queries)
	require.NoError(t, err)
	assert.Equal(t, []float64{8}, summary.Calls)
	assert.Equal(t, 0.0, summary.StdDev)
}

func TestSummarizePathMemoizerCallsRepeatedQueryIsFree(t *testing.T) {
	depth := 8
	queries := []inputs.Input{
		inputs.NewBitStringFromUint64(5, depth),
		inputs.NewBitStringFromUint64(5, depth),
	}

	summary, err := bench.SummarizePathMemoizerCalls(depth, queries)
	require.NoError(t, err)
	require.Len(t, summary.Calls, 2)
	assert.Equal(t, 0.0, summary.Calls[1])
}

func TestSummarizePathMemoizerCallsRejectsEmptySequence(t *testing.T) {
	_, err := bench.SummarizePathMemoizerCalls(8, nil)
	assert.Error(t, err)
}
