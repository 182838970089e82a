package leaf

import (
	"math/big"

	secp256k1fp "github.com/consensys/gnark-crypto/ecc/secp256k1/fp"

	"github.com/rometsch-lab/grotto-dpf/block"
)

// GroupElement is a leaf output living in the secp256k1 base field, the
// non-boolean output kind the teacher's tree DPF hides beta in
// (dpf/2018_boyle_optimization/optreedpf.go: genGroupCalc/evalGroupCalc/
// CombineResults all operate on secp256k1fp.Element).
type GroupElement struct {
	e secp256k1fp.Element
}

// NewGroupElement reduces x modulo the field order and returns the
// corresponding element.
func NewGroupElement(x *big.Int) GroupElement {
	var e secp256k1fp.Element
	e.SetBigInt(x)
	return GroupElement{e: e}
}

// BigInt returns the canonical big.Int representation of g.
func (g GroupElement) BigInt() *big.Int {
	var out big.Int
	g.e.BigInt(&out)
	return &out
}

// GroupArithmetic implements Arithmetic[GroupElement] by field addition,
// exactly CombineResults' `secp256k1fp.Element.Add` in the teacher.
type GroupArithmetic struct{}

func (GroupArithmetic) Zero() GroupElement { return GroupElement{} }

func (GroupArithmetic) Add(a, b GroupElement) GroupElement {
	var out secp256k1fp.Element
	out.Add(&a.e, &b.e)
	return GroupElement{e: out}
}

func (GroupArithmetic) Sub(a, b GroupElement) GroupElement {
	var out secp256k1fp.Element
	out.Sub(&a.e, &b.e)
	return GroupElement{e: out}
}

func (GroupArithmetic) Negate(a GroupElement) GroupElement {
	var out secp256k1fp.Element
	out.Neg(&a.e)
	return GroupElement{e: out}
}

// BlocksPerOutput reports how many 128-bit blocks one field element needs;
// secp256k1fp.Element marshals to 32 bytes, i.e. two blocks.
func (GroupArithmetic) BlocksPerOutput() int { return 2 }

func (GroupArithmetic) Pack(v GroupElement) []block.Block {
	raw := v.e.Bytes() // 32-byte big-endian canonical form
	var lo, hi [16]byte
	copy(hi[:], raw[0:16])
	copy(lo[:], raw[16:32])
	return []block.Block{block.FromBytes(lo), block.FromBytes(hi)}
}

func (GroupArithmetic) Unpack(blocks []block.Block) GroupElement {
	lo := blocks[0].Bytes()
	hi := blocks[1].Bytes()
	var raw [32]byte
	copy(raw[0:16], hi[:])
	copy(raw[16:32], lo[:])
	var e secp256k1fp.Element
	e.SetBytes(raw[:])
	return GroupElement{e: e}
}
