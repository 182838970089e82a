package bitarray

// SetBitIterator yields the absolute indices of all set bits in a
// BitArray, in ascending order (spec §4.6). It is used to recover the
// support of a full-domain or interval evaluation of a bit-valued DPF.
type SetBitIterator struct {
	ba   *BitArray
	next uint64
	ok   bool
}

// NewSetBitIterator returns a set-bit iterator over b.
func NewSetBitIterator(b *BitArray) *SetBitIterator {
	it := &SetBitIterator{ba: b}
	it.next, it.ok = b.bits.NextSet(0)
	return it
}

// Next returns the next set-bit index and whether one was found.
func (it *SetBitIterator) Next() (uint64, bool) {
	if !it.ok {
		return 0, false
	}
	idx := uint64(it.next)
	it.next, it.ok = it.ba.bits.NextSet(uint(idx) + 1)
	return idx, true
}

// Collect drains the iterator into a slice, mostly useful in tests.
func Collect(it *SetBitIterator) []uint64 {
	var out []uint64
	for {
		idx, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, idx)
	}
}
