// Package eval implements the four evaluation engines of spec §4.5: point,
// interval, full-domain, and sequence, all built on the shared interior
// traversal of §4.2. It is grounded on the teacher's iterative Eval loop
// and its recursive FullEval traverse (both in
// dpf/2018_boyle_optimization/optreedpf.go), generalized from a single
// fixed-lambda big.Int seed/output to the module's typed Input domain,
// generic leaf Arithmetic, and a reusable path memoizer (spec §4.5.1).
package eval

import (
	"github.com/rometsch-lab/grotto-dpf/block"
	"github.com/rometsch-lab/grotto-dpf/inputs"
	"github.com/rometsch-lab/grotto-dpf/interior"
	"github.com/rometsch-lab/grotto-dpf/key"
	"github.com/rometsch-lab/grotto-dpf/leaf"
)

// sliceForSlot returns the blocksPerOutput-sized window of a column's leaf
// correction word belonging to the given slot, matching how keygen.Gen lays
// the per-slot correction words out contiguously, slot 0 first (spec
// §4.3's outputs_per_leaf bucketing).
func sliceForSlot(lcw []block.Block, slot, blocksPerOutput int) []block.Block {
	lo := slot * blocksPerOutput
	return lcw[lo : lo+blocksPerOutput]
}

// PathMemoizer caches the blocks along the most recently evaluated
// root-to-leaf path, one per level (spec §3, "Path memoizer: one block per
// level, depth+1 blocks total"), so the next query can restart expansion
// at the first level where its path diverges from the previous one.
type PathMemoizer struct {
	path     []interior.Block // path[0] is the root, path[depth] is the leaf seed
	lastBits []byte           // the bits of the previous query, MSB first
	valid    bool
}

// NewPathMemoizer returns an empty memoizer sized for the given depth.
func NewPathMemoizer(depth int) *PathMemoizer {
	return &PathMemoizer{path: make([]interior.Block, depth+1)}
}

// Point evaluates k at x using m to skip the levels shared with the
// previous query (spec §4.5.1). If m is nil, the walk is non-memoizing
// and always starts from the root.
func Point[T any](prg block.PRG, k *key.Key, x inputs.Input, columnIdx int, arith leaf.Arithmetic[T], outputsPerLeaf int, m *PathMemoizer) (T, error) {
	var zero T
	if err := k.CheckReady(); err != nil {
		return zero, err
	}
	if m != nil && len(m.path) != k.Depth+1 {
		return zero, key.ErrDepthMismatch
	}

	start := 0
	if m != nil && m.valid && len(m.lastBits) == x.BitLen() {
		shared := x.CountlZeroSymmetricDifference(bitsToInput(m.lastBits))
		if shared > k.Depth {
			shared = k.Depth
		}
		start = shared
	}

	var s block.Block
	var t byte
	if start == 0 {
		s, t = k.Root.Seed(), k.Root.ControlBit()
		if m != nil {
			m.path[0] = interior.Block{Seed: s, T: t}
		}
	} else {
		s, t = m.path[start].Seed, m.path[start].T
	}

	bits := make([]byte, x.BitLen())
	for i := 0; i < x.BitLen(); i++ {
		bits[i] = x.Bit(i)
	}

	for lvl := start; lvl < k.Depth; lvl++ {
		cw := k.CorrectionWordAt(lvl)
		next := interior.Step(prg, s, t, cw, bits[lvl])
		s, t = next.Seed, next.T
		if m != nil {
			m.path[lvl+1] = interior.Block{Seed: s, T: t}
		}
	}

	if m != nil {
		m.lastBits = bits
		m.valid = true
	}

	slot := int(x.Uint64() % uint64(outputsPerLeaf))
	value := leafValueAt(arith, s, t, k.PartyID, k.Columns[columnIdx].LeafCW, slot)
	return value, nil
}

// leafValueAt recovers one party's pre-combine output value at the given
// slot, the generic form of the teacher's evalGroupCalc
// (dpf/2018_boyle_optimization/optreedpf.go): `res = mask; if t { res +=
// cw }; if partyID == 1 { res = -res }`. The mask is drawn from
// leaf.CompressWide keyed on the slot (spec §4.3), and the correction word
// consumed is that slot's own window of lcw, since keygen.Gen packs one
// independent correction per slot so non-target slots in the same leaf
// cancel to the output group's zero.
func leafValueAt[T any](arith leaf.Arithmetic[T], leafSeed block.Block, t, partyID byte, lcw []block.Block, slot int) T {
	blocks := leaf.CompressWide(leafSeed, uint32(slot), arith.BlocksPerOutput())
	value := arith.Unpack(blocks)
	if t == 1 {
		value = arith.Add(value, arith.Unpack(sliceForSlot(lcw, slot, arith.BlocksPerOutput())))
	}
	if partyID == 1 {
		value = arith.Negate(value)
	}
	return value
}

type bitSliceInput []byte

func (b bitSliceInput) BitLen() int  { return len(b) }
func (b bitSliceInput) Bit(i int) byte { return b[i] }
func (b bitSliceInput) Uint64() uint64 {
	var v uint64
	for _, bit := range b {
		v = (v << 1) | uint64(bit)
	}
	return v
}
func (b bitSliceInput) CountlZeroSymmetricDifference(other inputs.Input) int { return 0 }

func bitsToInput(bits []byte) inputs.Input { return bitSliceInput(bits) }

// Combine XORs or adds two parties' partial outputs into the final
// correctness-property result (spec §8, property 1).
func Combine[T any](arith leaf.Arithmetic[T], a, b T) T {
	return arith.Add(a, b)
}
