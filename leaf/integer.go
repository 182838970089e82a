package leaf

import (
	"golang.org/x/exp/constraints"

	"github.com/rometsch-lab/grotto-dpf/block"
)

// Integer is the Arithmetic instantiation for fixed-width unsigned integer
// leaves (uint8/16/32/64 and named variants), combined by modular addition
// as in spec §4.3's default "non-boolean" output kind. Wraparound performs
// the reduction mod 2^bitwidth the spec requires instead of panicking.
type Integer[T constraints.Unsigned] struct{}

func (Integer[T]) Zero() T { return 0 }

func (Integer[T]) Add(a, b T) T { return a + b }

func (Integer[T]) Sub(a, b T) T { return a - b }

func (Integer[T]) Negate(a T) T { return 0 - a }

func (Integer[T]) BlocksPerOutput() int { return 1 }

func (Integer[T]) Pack(v T) []block.Block {
	return []block.Block{{Lo: uint64(v)}}
}

func (Integer[T]) Unpack(blocks []block.Block) T {
	return T(blocks[0].Lo)
}
