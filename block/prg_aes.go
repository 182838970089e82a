package block

import (
	"crypto/aes"
	"crypto/cipher"
	"sync"
)

// FixedKeyAES is the reference PRG: fixed-key AES-128 used as a
// length-doubling generator via Matyas-Meyer-Oseas whitening,
//
//	child = AES_k(seed ⊕ position) ⊕ seed
//
// The key schedule is process-wide, one-time-initialized state (spec §9,
// "Global PRG key schedule"), matching how the original library's
// fixed-key AES round keys are computed once from an all-zero user key
// (dpf/prg_aes.hpp).
type FixedKeyAES struct{}

var (
	fixedAESOnce  sync.Once
	fixedAESBlock cipher.Block
)

func fixedAESCipher() cipher.Block {
	fixedAESOnce.Do(func() {
		var zeroKey [16]byte
		c, err := aes.NewCipher(zeroKey[:])
		if err != nil {
			// aes.NewCipher only fails on bad key length; a 16-byte key is
			// always valid, so this is unreachable.
			panic(err)
		}
		fixedAESBlock = c
	})
	return fixedAESBlock
}

// NewFixedKeyAES returns the reference fixed-key-AES PRG.
func NewFixedKeyAES() *FixedKeyAES {
	return &FixedKeyAES{}
}

func mmoWhiten(c cipher.Block, seed Block, position uint64) Block {
	in := seed
	in.Lo ^= position

	inBytes := in.Bytes()
	var outBytes [16]byte
	c.Encrypt(outBytes[:], inBytes[:])
	out := FromBytes(outBytes)

	return Xor(out, seed)
}

// Eval implements block.PRG.
func (a *FixedKeyAES) Eval(seed Block, position uint64) Block {
	return mmoWhiten(fixedAESCipher(), seed, position)
}

// Eval01 implements block.PRG.
func (a *FixedKeyAES) Eval01(seed Block) (Block, Block) {
	c := fixedAESCipher()
	return mmoWhiten(c, seed, 0), mmoWhiten(c, seed, 1)
}

// BulkEval implements block.PRG.
func (a *FixedKeyAES) BulkEval(seed Block, out []Block, base uint64) {
	bulkEvalViaEval(a, seed, out, base)
}
