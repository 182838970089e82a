// Package inputs implements the domain-specific input types of spec §6:
// bitstring, keyword-over-an-alphabet, modular integer, XOR-wrapper, and
// fixed-point, unified by the Input interface (bit length, per-bit access,
// "count leading zeros of symmetric difference", canonical-integer
// conversion). The interface has no most-significant-bit mask and no
// ordering method. It is grounded on
// original_source/include/dpf/keyword.hpp and utils.hpp's
// countl_zero_symmetric_difference (clz(lhs XOR rhs)), reimplemented over
// Go's math/bits instead of the original's template specializations.
package inputs

import "math/bits"

// Input is the trait set every DPF input type exposes (spec §6, last
// paragraph). BitLen and Bit back point evaluation's MSB-to-LSB tree walk
// (spec §4.5.1); CountlZeroSymmetricDifference backs the path memoizer's
// restart-level computation (spec §4.5.1); Uint64 is the canonical integral
// representation used to index into a leaf's outputs_per_leaf slots.
type Input interface {
	// BitLen returns the number of bits this value's tree walk consumes.
	BitLen() int
	// Bit returns the i-th bit, indexed from the most significant (i=0)
	// to the least significant (i=BitLen()-1).
	Bit(i int) byte
	// CountlZeroSymmetricDifference returns the number of leading bits
	// this value shares with other, i.e. clz(Uint64() XOR other.Uint64())
	// restricted to BitLen() bits.
	CountlZeroSymmetricDifference(other Input) int
	// Uint64 returns the canonical integral representation.
	Uint64() uint64
}

// ErrDomainViolation is returned by constructors when a value is outside
// its declared domain, e.g. a keyword byte outside its alphabet (spec §7,
// "Domain-violation").
type ErrDomainViolation struct {
	Reason string
}

func (e *ErrDomainViolation) Error() string { return "inputs: domain violation: " + e.Reason }

// countlZero64 counts leading zero bits of v within a window of width
// bits (1..64), matching the original's countl_zero<T> specialized per
// integer width but expressed generically here via math/bits.
func countlZero64(v uint64, width int) int {
	if width <= 0 {
		return 0
	}
	shift := 64 - width
	masked := v << uint(shift)
	n := bits.LeadingZeros64(masked)
	if n > width {
		return width
	}
	return n
}
