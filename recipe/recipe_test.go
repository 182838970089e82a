package recipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rometsch-lab/grotto-dpf/inputs"
	"github.com/rometsch-lab/grotto-dpf/recipe"
)

func bitStrings(depth int, values []uint64) []inputs.Input {
	out := make([]inputs.Input, len(values))
	for i, v := range values {
		out[i] = inputs.NewBitStringFromUint64(v, depth)
	}
	return out
}

func TestBuildLevelEndpointsLength(t *testing.T) {
	xs := bitStrings(3, []uint64{1, 3, 6})
	r := recipe.Build(xs, 3, 1)
	assert.Len(t, r.LevelEndpoints, 4)
	assert.Equal(t, 0, r.LevelEndpoints[0])
	assert.Equal(t, len(r.Steps), r.LevelEndpoints[3])
}

func TestBuildOutputIndicesCoalesceSharedBucket(t *testing.T) {
	// values 4 and 5 share leaf bucket (outputsPerLeaf=2) for 3-bit inputs,
	// whose tree depth is 3-1 = 2.
	xs := bitStrings(3, []uint64{4, 5, 6})
	r := recipe.Build(xs, 2, 2)
	require.Len(t, r.OutputIndices, 3)
	assert.Equal(t, r.OutputIndices[0]/2, r.OutputIndices[1]/2)
	assert.NotEqual(t, r.OutputIndices[0]/2, r.OutputIndices[2]/2)
}

func TestBuildSingleElement(t *testing.T) {
	xs := bitStrings(2, []uint64{2})
	r := recipe.Build(xs, 2, 1)
	assert.Equal(t, 1, r.NumLeafNodes)
	for _, s := range r.Steps {
		assert.NotEqual(t, recipe.Both, s)
	}
}
