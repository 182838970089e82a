package eval

import (
	"github.com/rometsch-lab/grotto-dpf/block"
	"github.com/rometsch-lab/grotto-dpf/interior"
	"github.com/rometsch-lab/grotto-dpf/key"
	"github.com/rometsch-lab/grotto-dpf/leaf"
)

// IntervalMemoizer holds one breadth-first frontier of the interval
// engine: the full-tree layout (spec §3, "Interval memoizer... full tree
// of 2·leaves blocks"). The ping-pong layout is a strict subset of this
// behavior restricted to the two most recent levels, so PingPong reuses
// FullTree's Levels slice but only keeps two of them live at a time. Its
// actual capacity at a given query tracks the minimal covering subtree of
// that query's range, not the whole domain (spec §4.5.2: "ping-pong
// capacity 2·(to-from+1)/outputs_per_leaf").
type IntervalMemoizer struct {
	Levels   [][]interior.Block // Levels[0] = root level (1 node)
	pingPong bool
}

// NewFullTreeMemoizer allocates a memoizer that retains every level.
func NewFullTreeMemoizer() *IntervalMemoizer { return &IntervalMemoizer{} }

// NewPingPongMemoizer allocates a memoizer that only retains the previous
// and current level (spec §3: "two rows of 2^level blocks each").
func NewPingPongMemoizer() *IntervalMemoizer { return &IntervalMemoizer{pingPong: true} }

// intervalNode is one frontier node together with the index of the first
// leaf bucket its subtree covers, so expansion can tell which children
// still overlap the query range without re-deriving it from scratch.
type intervalNode struct {
	block interior.Block
	start uint64
}

// Interval evaluates every leaf bucket covering [from, to], returning one
// output value per input in that inclusive range. It expands only the
// minimal covering subtree of [from, to] breadth-first from the root
// (spec §4.5.2), dropping any sibling subtree that cannot contain a bucket
// in range instead of walking the whole domain.
func Interval[T any](prg block.PRG, k *key.Key, from, to uint64, columnIdx int, arith leaf.Arithmetic[T], outputsPerLeaf int, m *IntervalMemoizer) ([]T, error) {
	if err := k.CheckReady(); err != nil {
		return nil, err
	}

	firstBucket := from / uint64(outputsPerLeaf)
	lastBucket := to / uint64(outputsPerLeaf)

	frontier := []intervalNode{{block: interior.Block{Seed: k.Root.Seed(), T: k.Root.ControlBit()}, start: 0}}
	if m != nil {
		m.Levels = [][]interior.Block{{frontier[0].block}}
	}

	span := uint64(1) << uint(k.Depth)
	for lvl := 0; lvl < k.Depth; lvl++ {
		cw := k.CorrectionWordAt(lvl)
		span /= 2

		next := make([]intervalNode, 0, 2*len(frontier))
		for _, node := range frontier {
			children := interior.ApplyCorrection(interior.Expand(prg, node.block.Seed), cw, node.block.T)

			leftStart := node.start
			if leftStart <= lastBucket && leftStart+span-1 >= firstBucket {
				next = append(next, intervalNode{block: children.Left, start: leftStart})
			}

			rightStart := node.start + span
			if rightStart <= lastBucket && rightStart+span-1 >= firstBucket {
				next = append(next, intervalNode{block: children.Right, start: rightStart})
			}
		}
		frontier = next

		if m != nil {
			blocks := make([]interior.Block, len(frontier))
			for i, n := range frontier {
				blocks[i] = n.block
			}
			if m.pingPong && len(m.Levels) > 0 {
				m.Levels[0] = m.Levels[len(m.Levels)-1]
				m.Levels = m.Levels[:1]
			}
			m.Levels = append(m.Levels, blocks)
		}
	}

	out := make([]T, 0, to-from+1)
	for _, node := range frontier {
		bucket := node.start
		lo := uint64(0)
		hi := uint64(outputsPerLeaf - 1)
		if bucket == firstBucket {
			lo = from % uint64(outputsPerLeaf)
		}
		if bucket == lastBucket {
			hi = to % uint64(outputsPerLeaf)
		}
		for slot := lo; slot <= hi; slot++ {
			out = append(out, leafValueAt(arith, node.block.Seed, node.block.T, k.PartyID, k.Columns[columnIdx].LeafCW, int(slot)))
		}
	}
	return out, nil
}
