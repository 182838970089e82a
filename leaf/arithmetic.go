// Package leaf implements the output-value algebra of spec §4.3: the
// generic Arithmetic trait that tells keygen and eval how to add, subtract,
// and pack/unpack a leaf's output type, plus the concrete instantiations
// (bit, fixed-width integer, XOR-combined opaque block, and finite-field
// group element) the rest of the module is built against. It is grounded
// on the generic-trait design the spec calls for in place of the teacher's
// runtime type switch (dpf/2018_boyle_optimization/optreedpf.go uses
// *big.Int and a fixed field throughout; we generalize that to any leaf
// type satisfying Arithmetic).
package leaf

import "github.com/rometsch-lab/grotto-dpf/block"

// Arithmetic is implemented once per output type T and tells the rest of
// the module how to combine two parties' leaf shares, how many blocks one
// packed value occupies, and how to move between T and raw blocks.
type Arithmetic[T any] interface {
	// Zero returns the additive identity of T.
	Zero() T
	// Add returns a + b.
	Add(a, b T) T
	// Sub returns a - b.
	Sub(a, b T) T
	// Negate returns -a.
	Negate(a T) T
	// BlocksPerOutput is how many 128-bit blocks one packed T occupies.
	BlocksPerOutput() int
	// Pack serializes v into BlocksPerOutput() blocks.
	Pack(v T) []block.Block
	// Unpack is the inverse of Pack.
	Unpack(blocks []block.Block) T
}
