package bitarray

// Iterator walks a BitArray's bit values in order, forward only.
type Iterator struct {
	ba  *BitArray
	pos uint64
}

// NewIterator returns an iterator positioned before the first bit.
func NewIterator(b *BitArray) *Iterator {
	return &Iterator{ba: b, pos: 0}
}

// Next returns the next bit value and whether one was available.
func (it *Iterator) Next() (bool, bool) {
	if it.pos >= it.ba.length {
		return false, false
	}
	v := it.ba.Get(it.pos)
	it.pos++
	return v, true
}

// Pos returns the index that the next call to Next will read.
func (it *Iterator) Pos() uint64 { return it.pos }

// Reset rewinds the iterator to the start.
func (it *Iterator) Reset() { it.pos = 0 }
