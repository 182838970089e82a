package block

import "github.com/klauspost/cpuid/v2"

// Default returns the reference production PRG for this host: fixed-key
// AES-128 when the CPU advertises hardware AES support, and the ChaCha20
// PRF-based PRG otherwise. This is the accelerated-path/portable-fallback
// split called for by spec §9 ("SIMD blocks ... provide a portable fallback
// and an accelerated path gated on target feature detection"), applied to
// the PRG rather than the block type since Go's crypto/aes already picks
// its own assembly/generic implementation once AES-NI is selected.
func Default() PRG {
	if cpuid.CPU.Supports(cpuid.AESNI) {
		return NewFixedKeyAES()
	}
	return NewChaCha20()
}
