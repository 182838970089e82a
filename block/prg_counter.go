package block

// Counter is the non-secure "just return the seed" test double described in
// spec §4.1. It lets correctness tests substitute a PRG via a generic
// parameter without paying for AES/ChaCha20 while exercising the same
// interior-node code paths. It must never be used by
// production key generation; the DPF constructors consuming a PRG check for
// the Insecure marker interface and refuse it, matching the "production
// code must refuse to use it in key generation" requirement.
type Counter struct{}

// NewCounter returns the test-only counter PRG.
func NewCounter() *Counter { return &Counter{} }

// Eval implements block.PRG by returning the seed unchanged, with the
// position folded into the low bits so that Eval(seed, 0) != Eval(seed, 1).
func (c *Counter) Eval(seed Block, position uint64) Block {
	out := seed
	out.Lo ^= position
	return out
}

// Eval01 implements block.PRG.
func (c *Counter) Eval01(seed Block) (Block, Block) {
	return c.Eval(seed, 0), c.Eval(seed, 1)
}

// BulkEval implements block.PRG.
func (c *Counter) BulkEval(seed Block, out []Block, base uint64) {
	bulkEvalViaEval(c, seed, out, base)
}

// InsecureTestOnly marks Counter as unsafe for key generation.
func (c *Counter) InsecureTestOnly() {}
