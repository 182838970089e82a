// Package keygen implements the Gen algorithm of spec §4.4: walking the
// tree from root to leaves, choosing a correction word and advice pair at
// each interior level so the off-path children re-converge while the
// on-path children keep differing, then hiding the secret output in the
// leaf correction word(s). It is grounded on the Gen loop in the teacher's
// dpf/2018_boyle_optimization/optreedpf.go (Steps 2-16), generalized from
// one fixed-lambda big.Int seed/output to the module's typed Input domain,
// generic leaf Arithmetic, and multi-column/wildcard support (spec §3, §10).
package keygen

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/rometsch-lab/grotto-dpf/block"
	"github.com/rometsch-lab/grotto-dpf/inputs"
	"github.com/rometsch-lab/grotto-dpf/interior"
	"github.com/rometsch-lab/grotto-dpf/key"
	"github.com/rometsch-lab/grotto-dpf/leaf"
)

// ErrInsecurePRG is returned when Gen is called with a PRG implementing
// block.Insecure (spec §4.1: "Production code must refuse to use it in
// key generation.").
var ErrInsecurePRG = errors.New("keygen: refusing to generate keys with an insecure PRG")

// lg2 returns log2(n) for a power-of-two n, the number of low-order bits
// of x that select a slot within one leaf rather than a tree path (spec
// §3: "depth = ceil(log2|domain|) - lg(outputs_per_leaf)").
func lg2(n int) (int, error) {
	if n < 1 || n&(n-1) != 0 {
		return 0, fmt.Errorf("keygen: outputsPerLeaf must be a power of two, got %d", n)
	}
	return bits.Len(uint(n)) - 1, nil
}

// OutputSpec describes one output column to bind into the generated keys:
// either a concrete value y (arith.Pack(y) becomes the leaf secret) or a
// wildcard placeholder, deferred to vernalization (spec §4.4).
type OutputSpec[T any] struct {
	Value    T
	Wildcard bool
}

// Result is the pair of keys Gen produces for one input/output binding.
type Result struct {
	Alice, Bob *key.Key
}

// Gen runs the tree-based FSS key generation algorithm for a point function
// at x with the given output columns, all sharing output arithmetic arith.
// outputsPerLeaf is how many consecutive inputs share one leaf block for
// this arithmetic; the tree itself only has depth = x.BitLen() -
// lg(outputsPerLeaf) interior levels (spec §3), with the remaining
// lg(outputsPerLeaf) low-order bits of x selecting a slot within the leaf.
func Gen[T any](prg block.PRG, x inputs.Input, outputs []OutputSpec[T], arith leaf.Arithmetic[T], outputsPerLeaf int) (*Result, error) {
	if _, insecure := prg.(block.Insecure); insecure {
		return nil, ErrInsecurePRG
	}

	slotBits, err := lg2(outputsPerLeaf)
	if err != nil {
		return nil, err
	}
	depth := x.BitLen() - slotBits
	if depth < 0 {
		return nil, fmt.Errorf("keygen: outputsPerLeaf %d exceeds the domain of a %d-bit input", outputsPerLeaf, x.BitLen())
	}

	seedA := block.SampleSeed().Seed().WithControlBit(0)
	seedB := block.SampleSeed().Seed().WithControlBit(1)

	rootA, rootB := seedA, seedB

	sA, tA := seedA.Seed(), seedA.ControlBit()
	sB, tB := seedB.Seed(), seedB.ControlBit()

	interiorCW := make([]block.Block, depth)
	advice := make([]key.Advice, depth)

	for lvl := 0; lvl < depth; lvl++ {
		childrenA := interior.Expand(prg, sA)
		childrenB := interior.Expand(prg, sB)

		bit := x.Bit(lvl)
		keepRight := bit == 1

		cw := interior.MakeCorrectionWord(childrenA, childrenB, keepRight)
		interiorCW[lvl] = cw.Seed
		advice[lvl] = key.Advice{TL: cw.TL, TR: cw.TR}

		correctedA := interior.ApplyCorrection(childrenA, cw, tA)
		correctedB := interior.ApplyCorrection(childrenB, cw, tB)

		var nextA, nextB interior.Block
		if bit == 0 {
			nextA, nextB = correctedA.Left, correctedB.Left
		} else {
			nextA, nextB = correctedA.Right, correctedB.Right
		}
		sA, tA = nextA.Seed, nextA.T
		sB, tB = nextB.Seed, nextB.T
	}

	targetSlot := int(x.Uint64() % uint64(outputsPerLeaf))

	columns := make([]key.Column, len(outputs))
	for i, out := range outputs {
		col := key.Column{Wildcard: out.Wildcard}
		if out.Wildcard {
			col.LeafCW = zeroBlocks(arith.BlocksPerOutput() * outputsPerLeaf)
			a := block.SampleSeed()
			b := block.SampleSeed()
			col.BeaverShare = key.BeaverTriple{A: a, B: b, C: block.Xor(a, b)}
			col.Vernalized = false
		} else {
			col.LeafCW = makeLeafCW(arith, sA, sB, tB, out.Value, targetSlot, outputsPerLeaf)
			col.Vernalized = true
		}
		columns[i] = col
	}

	keyA := &key.Key{PartyID: 0, Depth: depth, Root: rootA, InteriorCW: interiorCW, Advice: advice, Columns: columns}
	keyB := &key.Key{PartyID: 1, Depth: depth, Root: rootB, InteriorCW: interiorCW, Advice: advice, Columns: columns}

	return &Result{Alice: keyA, Bob: keyB}, nil
}

func zeroBlocks(n int) []block.Block {
	out := make([]block.Block, n)
	for i := range out {
		out[i] = block.Zero
	}
	return out
}

// makeLeafCW derives the leaf correction word so that the two parties'
// combined (per arith.Add) final leaf blocks hold y in the targetSlot-th
// output slot and the output group's zero in every other slot of the same
// leaf (spec §4.4, last paragraph of the algorithm sketch; spec §4.3's
// outputs_per_leaf bucketing). This is the generic, per-slot form of the
// teacher's genGroupCalc (dpf/2018_boyle_optimization/optreedpf.go):
// `res = y - maskA + maskB; if tB { res = -res }`, run once per slot so
// every non-target slot in the bucket independently cancels to zero.
func makeLeafCW[T any](arith leaf.Arithmetic[T], leafSeedA, leafSeedB block.Block, tB byte, y T, targetSlot, outputsPerLeaf int) []block.Block {
	out := make([]block.Block, 0, arith.BlocksPerOutput()*outputsPerLeaf)
	for slot := 0; slot < outputsPerLeaf; slot++ {
		maskA := leafMaskAt(arith, leafSeedA, slot)
		maskB := leafMaskAt(arith, leafSeedB, slot)

		v := arith.Zero()
		if slot == targetSlot {
			v = y
		}
		target := arith.Sub(v, arith.Sub(maskA, maskB))
		if tB == 1 {
			target = arith.Negate(target)
		}
		out = append(out, arith.Pack(target)...)
	}
	return out
}

// leafMaskAt derives the pseudorandom output value a party's leaf seed
// would produce at the given slot before correction, via leaf.CompressWide
// keyed on the slot index so every slot sharing one leaf draws independent
// pseudorandom material (spec §4.3).
func leafMaskAt[T any](arith leaf.Arithmetic[T], seed block.Block, slot int) T {
	blocks := leaf.CompressWide(seed, uint32(slot), arith.BlocksPerOutput())
	return arith.Unpack(blocks)
}
