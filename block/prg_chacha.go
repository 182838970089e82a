package block

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// ChaCha20 is a second, non-AES production PRG backend realizing the same
// length-doubling contract as FixedKeyAES via MMO-style whitening, used as
// the portable fallback when the host lacks AES hardware acceleration (see
// block.Default and spec §9, "provide a portable fallback and an
// accelerated path gated on target feature detection"). Unlike
// FixedKeyAES's single process-wide key schedule, each call keys a fresh
// ChaCha20 instance from the seed itself, treating the cipher as a PRF
// rather than a fixed permutation.
type ChaCha20 struct{}

// NewChaCha20 returns the ChaCha20-backed PRG.
func NewChaCha20() *ChaCha20 {
	return &ChaCha20{}
}

func chachaWhiten(seed Block, position uint64) Block {
	var key [chacha20.KeySize]byte
	binary.LittleEndian.PutUint64(key[0:8], seed.Lo)
	binary.LittleEndian.PutUint64(key[8:16], seed.Hi)

	var nonce [chacha20.NonceSize]byte
	binary.LittleEndian.PutUint64(nonce[0:8], position)

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// key and nonce are always the cipher's required sizes, so
		// construction cannot fail.
		panic(err)
	}

	var zero, out [16]byte
	c.XORKeyStream(out[:], zero[:])

	return Xor(FromBytes(out), seed)
}

// Eval implements block.PRG.
func (c *ChaCha20) Eval(seed Block, position uint64) Block {
	return chachaWhiten(seed, position)
}

// Eval01 implements block.PRG.
func (c *ChaCha20) Eval01(seed Block) (Block, Block) {
	return chachaWhiten(seed, 0), chachaWhiten(seed, 1)
}

// BulkEval implements block.PRG.
func (c *ChaCha20) BulkEval(seed Block, out []Block, base uint64) {
	bulkEvalViaEval(c, seed, out, base)
}
