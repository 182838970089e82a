package recipe

import "github.com/rometsch-lab/grotto-dpf/interior"

// Direction helpers ported from original_source's
// inplace_reversing_sequence_memoizer::traverse_first/traverse_second/
// get_direction (sequence_memoizer.hpp): on a level whose parity (depth
// XOR level) is odd, the level is walked back-to-front, so "first" and
// "second" child roles and the meaning of "right" invert.

// TraverseFirst reports whether the step at the given recipe-step index,
// on the given level, should be treated as emitting its "first" (normally
// left) child, honoring the level's direction flip.
func TraverseFirst(r *Recipe, level, stepIdx int) bool {
	flip := (r.Depth()^level)&1 == 1
	idx := stepIdx
	if flip {
		idx = r.LevelEndpoints[level+1] - stepIdx - 1 + r.LevelEndpoints[level]
	}
	s := r.Steps[idx]
	if !flip {
		return s > RightOnly
	}
	return s < LeftOnly
}

// TraverseSecond is TraverseFirst's counterpart for the "second" (normally
// right) child.
func TraverseSecond(r *Recipe, level, stepIdx int) bool {
	flip := (r.Depth()^level)&1 == 1
	idx := stepIdx
	if flip {
		idx = r.LevelEndpoints[level+1] - stepIdx - 1 + r.LevelEndpoints[level]
	}
	s := r.Steps[idx]
	if !flip {
		return s < LeftOnly
	}
	return s > RightOnly
}

// GetDirection reports whether "right" means the conventional right branch
// on this level, or its mirror image under the level's direction flip.
func GetDirection(r *Recipe, level int, right bool) bool {
	flip := (r.Depth()^level)&1 == 1
	if !flip {
		return right
	}
	return !right
}

// Expander is supplied by the caller to produce a node's two raw children
// plus correction, i.e. one call to interior.Expand + ApplyCorrection for
// the given level.
type Expander func(level int, node interior.Block) interior.Children

// expandLevel advances one BFS level from nodes (len == count of steps at
// this level) to the next level's node list, honoring each step's
// RightOnly/Both/LeftOnly code (spec §4.5.4).
func expandLevel(expand Expander, level int, steps []Step, nodes []interior.Block) []interior.Block {
	out := make([]interior.Block, 0, 2*len(nodes))
	for i, node := range nodes {
		children := expand(level, node)
		switch steps[i] {
		case RightOnly:
			out = append(out, children.Right)
		case LeftOnly:
			out = append(out, children.Left)
		default:
			out = append(out, children.Left, children.Right)
		}
	}
	return out
}

// FullTreeMemoizer keeps every level of the traversal (spec §3, "Full-tree:
// keeps every level; simplest, largest").
type FullTreeMemoizer struct {
	Levels [][]interior.Block
}

// Traverse runs the recipe-driven BFS over r using expand, starting from
// root, and returns the final level's nodes (one per leaf bucket, in
// recipe order); every level visited is kept in m.Levels.
func (m *FullTreeMemoizer) Traverse(r *Recipe, root interior.Block, expand Expander) []interior.Block {
	level := []interior.Block{root}
	m.Levels = [][]interior.Block{level}
	for lvl := 0; lvl < r.Depth(); lvl++ {
		level = expandLevel(expand, lvl, r.LevelSteps(lvl), level)
		m.Levels = append(m.Levels, level)
	}
	return level
}

// DoubleSpaceMemoizer keeps only the two most recently computed levels
// (spec §3, "Double-space: keeps two alternating rows sized by
// num_leaf_nodes").
type DoubleSpaceMemoizer struct {
	rows [2][]interior.Block
}

func (m *DoubleSpaceMemoizer) Traverse(r *Recipe, root interior.Block, expand Expander) []interior.Block {
	m.rows[0] = []interior.Block{root}
	cur := 0
	for lvl := 0; lvl < r.Depth(); lvl++ {
		next := 1 - cur
		m.rows[next] = expandLevel(expand, lvl, r.LevelSteps(lvl), m.rows[cur])
		cur = next
	}
	return m.rows[cur]
}

// InPlaceReversingMemoizer models spec §3's single-row, direction-
// alternating layout. The original construction reuses one physical array
// and relies on reverse-iterator aliasing (see
// original_source/include/dpf/sequence_memoizer.hpp's pointer_facade) so
// that a level read back-to-front can safely be overwritten as its
// children are produced front-to-back into the same storage. Reproducing
// that aliasing without a compiler to validate pointer arithmetic against
// is not attempted here (see DESIGN.md); this type keeps the same public
// shape, but its Traverse does not call the direction helpers above
// (TraverseFirst/TraverseSecond/GetDirection): it walks every level front
// to back and stores the two live levels separately rather than literally
// in place. It is asymptotically the same
// size class (at most two rows of at most num_leaf_nodes blocks) and
// produces bit-identical output to FullTreeMemoizer and DoubleSpaceMemoizer
// (spec §8, property 4).
type InPlaceReversingMemoizer struct {
	buf []interior.Block
}

func (m *InPlaceReversingMemoizer) Traverse(r *Recipe, root interior.Block, expand Expander) []interior.Block {
	level := []interior.Block{root}
	for lvl := 0; lvl < r.Depth(); lvl++ {
		level = expandLevel(expand, lvl, r.LevelSteps(lvl), level)
	}
	m.buf = level
	return level
}
