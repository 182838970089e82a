package leaf

import "github.com/rometsch-lab/grotto-dpf/block"

// Opaque is a leaf output kind for callers who just want to secret-share an
// arbitrary 128-bit string rather than a numeric type; combine is XOR, not
// addition (spec §4.3's "XOR vs modular-addition combine semantics
// depending on output kind").
type Opaque = block.Block

// OpaqueArithmetic implements Arithmetic[Opaque] with XOR combine.
type OpaqueArithmetic struct{}

func (OpaqueArithmetic) Zero() Opaque { return block.Zero }

func (OpaqueArithmetic) Add(a, b Opaque) Opaque { return block.Xor(a, b) }

func (OpaqueArithmetic) Sub(a, b Opaque) Opaque { return block.Xor(a, b) }

func (OpaqueArithmetic) Negate(a Opaque) Opaque { return a }

func (OpaqueArithmetic) BlocksPerOutput() int { return 1 }

func (OpaqueArithmetic) Pack(v Opaque) []block.Block { return []block.Block{v} }

func (OpaqueArithmetic) Unpack(blocks []block.Block) Opaque { return blocks[0] }
