package eval

import (
	"github.com/rometsch-lab/grotto-dpf/block"
	"github.com/rometsch-lab/grotto-dpf/inputs"
	"github.com/rometsch-lab/grotto-dpf/interior"
	"github.com/rometsch-lab/grotto-dpf/key"
	"github.com/rometsch-lab/grotto-dpf/leaf"
	"github.com/rometsch-lab/grotto-dpf/recipe"
)

// SequenceMemoizer is satisfied by any of the recipe package's three
// layouts (spec §4.5.4).
type SequenceMemoizer interface {
	Traverse(r *recipe.Recipe, root interior.Block, expand recipe.Expander) []interior.Block
}

// View names the two output views of a sequence evaluation: the whole leaf
// block per bucket (EntireNode) or just the one value each requested input
// asked for (OutputOnly). Sequence takes no View argument and always
// produces the OutputOnly view; no function in this package produces
// EntireNode output.
type View int

const (
	OutputOnly View = iota
	EntireNode
)

// Sequence evaluates k at the recipe's inputs using the given memoizer
// layout, returning one T per recipe.OutputIndices entry, i.e. the
// OutputOnly view (spec §4.5.4).
func Sequence[T any](prg block.PRG, k *key.Key, r *recipe.Recipe, columnIdx int, arith leaf.Arithmetic[T], outputsPerLeaf int, m SequenceMemoizer) ([]T, error) {
	if err := k.CheckReady(); err != nil {
		return nil, err
	}

	expand := func(level int, node interior.Block) interior.Children {
		cw := k.CorrectionWordAt(level)
		return interior.ApplyCorrection(interior.Expand(prg, node.Seed), cw, node.T)
	}

	root := interior.Block{Seed: k.Root.Seed(), T: k.Root.ControlBit()}
	leaves := m.Traverse(r, root, expand)

	out := make([]T, len(r.OutputIndices))
	for i, idx := range r.OutputIndices {
		bucket := idx / outputsPerLeaf
		slot := idx % outputsPerLeaf
		out[i] = leafValueAt(arith, leaves[bucket].Seed, leaves[bucket].T, k.PartyID, k.Columns[columnIdx].LeafCW, slot)
	}
	return out, nil
}

// BreadthFirstSequence is the alternative of spec §4.5.5: it re-derives the
// traversal frontier for the sorted, distinct inputs xs level by level
// without a precomputed recipe, and must match Sequence's output exactly
// (spec §8, property 3).
func BreadthFirstSequence[T any](prg block.PRG, k *key.Key, xs []inputs.Input, columnIdx int, arith leaf.Arithmetic[T], outputsPerLeaf int) ([]T, error) {
	if err := k.CheckReady(); err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, nil
	}

	type span struct {
		node interior.Block
		lo   int // index range [lo, hi) within xs sharing this node
		hi   int
	}

	frontier := []span{{node: interior.Block{Seed: k.Root.Seed(), T: k.Root.ControlBit()}, lo: 0, hi: len(xs)}}

	for lvl := 0; lvl < k.Depth; lvl++ {
		cw := k.CorrectionWordAt(lvl)
		var next []span
		for _, s := range frontier {
			children := interior.ApplyCorrection(interior.Expand(prg, s.node.Seed), cw, s.node.T)
			split := s.lo
			for split < s.hi && xs[split].Bit(lvl) == 0 {
				split++
			}
			if split > s.lo {
				next = append(next, span{node: children.Left, lo: s.lo, hi: split})
			}
			if split < s.hi {
				next = append(next, span{node: children.Right, lo: split, hi: s.hi})
			}
		}
		frontier = next
	}

	out := make([]T, len(xs))
	for _, s := range frontier {
		for i := s.lo; i < s.hi; i++ {
			slot := int(xs[i].Uint64()) % outputsPerLeaf
			out[i] = leafValueAt(arith, s.node.Seed, s.node.T, k.PartyID, k.Columns[columnIdx].LeafCW, slot)
		}
	}
	return out, nil
}
