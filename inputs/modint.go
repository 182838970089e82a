package inputs

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ModInt is a modular-integer input domain, reduced modulo the secp256k1
// group order (spec §6's "modular integer" input type). Its canonical
// integer representation truncates to the low 64 bits of the reduced
// value, which is sufficient for tree indexing since the DPF's own depth
// is bounded by the declared bit length, not by the group order's full
// width.
type ModInt struct {
	scalar secp256k1.ModNScalar
	bitLen int
}

// NewModInt reduces the big-endian bytes of v modulo the secp256k1 group
// order and returns the corresponding ModInt, using up to bitLen bits of
// the reduced value for tree traversal.
func NewModInt(v []byte, bitLen int) *ModInt {
	var s secp256k1.ModNScalar
	s.SetByteSlice(v)
	return &ModInt{scalar: s, bitLen: bitLen}
}

func (m *ModInt) BitLen() int { return m.bitLen }

func (m *ModInt) Bit(i int) byte {
	shift := m.bitLen - 1 - i
	return byte((m.Uint64() >> uint(shift)) & 1)
}

// Uint64 returns the low 64 bits of the reduced scalar's canonical
// big-endian byte representation.
func (m *ModInt) Uint64() uint64 {
	raw := m.scalar.Bytes() // 32-byte big-endian
	var v uint64
	for _, b := range raw[24:32] {
		v = (v << 8) | uint64(b)
	}
	return v
}

func (m *ModInt) CountlZeroSymmetricDifference(other Input) int {
	return countlZero64(m.Uint64()^other.Uint64(), m.BitLen())
}
