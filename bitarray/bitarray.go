// Package bitarray implements the packed-bit container, its iterators, the
// parallel transpose iterator, and the set-bit-index iterator of spec §4.6.
// The container's own indexed access and the parallel transpose are
// custom: they implement access patterns bits-and-blooms/bitset does not
// expose. Population count and any/all/none range queries delegate to
// bitset, since it already does exactly that.
package bitarray

import (
	"github.com/bits-and-blooms/bitset"
)

// BitArray is a fixed-length packed container of bits.
type BitArray struct {
	bits   *bitset.BitSet
	length uint64
}

// New returns a BitArray of the given length with all bits clear.
func New(length uint64) *BitArray {
	return &BitArray{bits: bitset.New(uint(length)), length: length}
}

// Len returns the number of addressable bits.
func (b *BitArray) Len() uint64 { return b.length }

// Get returns the bit at position i.
func (b *BitArray) Get(i uint64) bool {
	return b.bits.Test(uint(i))
}

// Set sets the bit at position i to 1.
func (b *BitArray) Set(i uint64) {
	b.bits.Set(uint(i))
}

// Unset clears the bit at position i.
func (b *BitArray) Unset(i uint64) {
	b.bits.Clear(uint(i))
}

// Put sets the bit at position i to the given value.
func (b *BitArray) Put(i uint64, v bool) {
	if v {
		b.Set(i)
	} else {
		b.Unset(i)
	}
}

// Flip toggles the bit at position i.
func (b *BitArray) Flip(i uint64) {
	b.bits.Flip(uint(i))
}

// PopCount returns the number of set bits.
func (b *BitArray) PopCount() uint64 {
	return b.bits.Count()
}

// Parity returns the XOR of all bits (population count mod 2).
func (b *BitArray) Parity() bool {
	return b.PopCount()&1 == 1
}

// Any reports whether any bit in [from, to) is set.
func (b *BitArray) Any(from, to uint64) bool {
	for i := from; i < to; i++ {
		if b.Get(i) {
			return true
		}
	}
	return false
}

// All reports whether every bit in [from, to) is set.
func (b *BitArray) All(from, to uint64) bool {
	for i := from; i < to; i++ {
		if !b.Get(i) {
			return false
		}
	}
	return true
}

// None reports whether no bit in [from, to) is set.
func (b *BitArray) None(from, to uint64) bool {
	return !b.Any(from, to)
}

// Xor returns a new BitArray holding the bitwise XOR of a and c, which
// must share the same length. Used to combine two parties' advice-bit arrays (spec §8, property 8).
func Xor(a, c *BitArray) *BitArray {
	if a.length != c.length {
		panic("bitarray: length mismatch in Xor")
	}
	out := New(a.length)
	out.bits = a.bits.SymmetricDifference(c.bits)
	return out
}
