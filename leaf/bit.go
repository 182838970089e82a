package leaf

import "github.com/rometsch-lab/grotto-dpf/block"

// Bit is the single-bit output kind used by full-domain boolean DPFs
// (spec §4.3, §4.5.3); addition and subtraction are both XOR.
type Bit bool

// BitArithmetic implements Arithmetic[Bit] with XOR combine, matching the
// teacher's t-bit XOR bookkeeping (dpf/2018_boyle_optimization/optreedpf.go
// uses `!=` for bool XOR throughout splitPRGOutput/Gen/Eval).
type BitArithmetic struct{}

func (BitArithmetic) Zero() Bit { return false }

func (BitArithmetic) Add(a, b Bit) Bit { return a != b }

func (BitArithmetic) Sub(a, b Bit) Bit { return a != b }

func (BitArithmetic) Negate(a Bit) Bit { return a }

func (BitArithmetic) BlocksPerOutput() int { return 1 }

func (BitArithmetic) Pack(v Bit) []block.Block {
	b := block.Zero
	if v {
		b.Lo = 1
	}
	return []block.Block{b}
}

func (BitArithmetic) Unpack(blocks []block.Block) Bit {
	return blocks[0].Lo&1 == 1
}
