// Package block provides the 128-bit opaque seed/state type shared by the
// PRG and the interior-node engine, along with the PRG contract itself.
//
// The least-significant bit of a Block is the control bit; the remaining
// bits are seed material. See dpf.hpp / prg.hpp in the original library for
// the construction this mirrors.
package block

import "encoding/binary"

// Block is a fixed-width 128-bit value. Bit 0 (the low bit of Lo) is the
// control bit; the rest is seed material.
type Block struct {
	Lo uint64
	Hi uint64
}

// Zero is the additive/XOR identity.
var Zero = Block{}

// Xor returns a ^ b.
func Xor(a, b Block) Block {
	return Block{Lo: a.Lo ^ b.Lo, Hi: a.Hi ^ b.Hi}
}

// Equal reports whether a and b hold the same bits.
func (a Block) Equal(b Block) bool {
	return a.Lo == b.Lo && a.Hi == b.Hi
}

// ControlBit returns the low bit of the block.
func (a Block) ControlBit() byte {
	return byte(a.Lo & 1)
}

// Seed returns the block with its control bit cleared, i.e. P & ~1.
func (a Block) Seed() Block {
	return Block{Lo: a.Lo &^ 1, Hi: a.Hi}
}

// WithControlBit returns a copy of a with the control bit set to t (0 or 1).
func (a Block) WithControlBit(t byte) Block {
	b := a
	b.Lo = (b.Lo &^ 1) | uint64(t&1)
	return b
}

// Bytes encodes the block little-endian into a 16-byte array.
func (a Block) Bytes() [16]byte {
	var out [16]byte
	binary.LittleEndian.PutUint64(out[0:8], a.Lo)
	binary.LittleEndian.PutUint64(out[8:16], a.Hi)
	return out
}

// FromBytes decodes a little-endian 16-byte array into a Block.
func FromBytes(b [16]byte) Block {
	return Block{
		Lo: binary.LittleEndian.Uint64(b[0:8]),
		Hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// AppendTo appends the little-endian encoding of a to dst.
func (a Block) AppendTo(dst []byte) []byte {
	b := a.Bytes()
	return append(dst, b[:]...)
}
