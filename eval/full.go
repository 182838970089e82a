package eval

import (
	"github.com/rometsch-lab/grotto-dpf/bitarray"
	"github.com/rometsch-lab/grotto-dpf/block"
	"github.com/rometsch-lab/grotto-dpf/key"
	"github.com/rometsch-lab/grotto-dpf/leaf"
)

// Full evaluates every input in the domain [0, 2^depth·outputsPerLeaf) by
// specializing Interval to the whole range (spec §4.5.3: "The interval
// engine specialized to [min, max]").
func Full[T any](prg block.PRG, k *key.Key, columnIdx int, arith leaf.Arithmetic[T], outputsPerLeaf int, m *IntervalMemoizer) ([]T, error) {
	domainSize := (uint64(1) << uint(k.Depth)) * uint64(outputsPerLeaf)
	return Interval(prg, k, 0, domainSize-1, columnIdx, arith, outputsPerLeaf, m)
}

// FullBits is the bit-output specialization of Full (spec §4.5.3): it
// packs the domain's outputs into a bitarray.BitArray instead of a []Bit
// slice, so the result can be consumed by the parallel bit iterator and
// the set-bit-index iterator of spec §4.6.
func FullBits(prg block.PRG, k *key.Key, columnIdx int, outputsPerLeaf int, m *IntervalMemoizer) (*bitarray.BitArray, error) {
	var arith leaf.BitArithmetic
	values, err := Full(prg, k, columnIdx, arith, outputsPerLeaf, m)
	if err != nil {
		return nil, err
	}
	out := bitarray.New(uint64(len(values)))
	for i, v := range values {
		out.Put(uint64(i), bool(v))
	}
	return out, nil
}
