// Package recipe implements the sequence recipe of spec §4.5.4: a sparse
// description of the tree nodes visited while evaluating a sorted set of
// inputs, built once and replayable against many keys of matching depth.
// It is grounded on original_source/include/dpf/sequence_recipe.hpp's
// make_sequence_recipe, reimplemented over the module's Input trait's
// Bit/CountlZeroSymmetricDifference instead of the original's raw integer
// mask-shifting.
package recipe

import "github.com/rometsch-lab/grotto-dpf/inputs"

// Step encodes, for one interior node visited while building the recipe,
// which of its children lie on some requested path (spec §4.5.4):
// RightOnly (-1), Both (0), LeftOnly (+1).
type Step int8

const (
	RightOnly Step = -1
	Both      Step = 0
	LeftOnly  Step = 1
)

// Recipe is the sparse BFS description spec §4.5.4 names.
type Recipe struct {
	Steps          []Step
	OutputIndices  []int // one per input, index into the flattened leaf-output buffer
	NumLeafNodes   int
	LevelEndpoints []int // len == depth+1; prefix sums into Steps
}

// Depth returns the tree depth the recipe was built for.
func (r *Recipe) Depth() int { return len(r.LevelEndpoints) - 1 }

// Build constructs a Recipe for the sorted, distinct input sequence xs at
// the given depth, coalescing inputs that share a leaf bucket
// (outputsPerLeaf contiguous inputs per bucket).
func Build(xs []inputs.Input, depth, outputsPerLeaf int) *Recipe {
	n := len(xs)
	splits := []int{0, n} // sorted index boundaries of each "block"
	levelEndpoints := []int{0}
	var steps []Step

	for lvl := 0; lvl < depth; lvl++ {
		newSplits := []int{splits[0]}
		for i := 0; i < len(splits)-1; i++ {
			lower, upper := splits[i], splits[i+1]
			it := lower
			for it < upper && xs[it].Bit(lvl) == 0 {
				it++
			}
			switch {
			case it == lower:
				steps = append(steps, RightOnly)
			case it == upper:
				steps = append(steps, LeftOnly)
			default:
				steps = append(steps, Both)
				newSplits = append(newSplits, it)
			}
			newSplits = append(newSplits, upper)
		}
		splits = newSplits
		levelEndpoints = append(levelEndpoints, len(steps))
	}

	outputIndices := make([]int, n)
	leafIndex := 0
	for i := 0; i < n; i++ {
		if i > 0 {
			shared := xs[i-1].CountlZeroSymmetricDifference(xs[i])
			if shared < depth {
				leafIndex++
			}
		}
		slot := int(xs[i].Uint64()) % outputsPerLeaf
		outputIndices[i] = leafIndex*outputsPerLeaf + slot
	}

	numLeafNodes := 0
	if n > 0 {
		numLeafNodes = leafIndex + 1
	}

	return &Recipe{
		Steps:          steps,
		OutputIndices:  outputIndices,
		NumLeafNodes:   numLeafNodes,
		LevelEndpoints: levelEndpoints,
	}
}

// LevelSteps returns the Steps slice for one level, using LevelEndpoints as
// prefix sums (spec §4.8, "Interior expansion loop").
func (r *Recipe) LevelSteps(level int) []Step {
	return r.Steps[r.LevelEndpoints[level]:r.LevelEndpoints[level+1]]
}
