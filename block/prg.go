package block

// PRG is the length-doubling pseudorandom generator contract consumed by
// the interior-node engine (spec §4.1). For any fixed instance, Eval(seed, 0)
// and Eval(seed, 1) must be indistinguishable from uniform to an adversary
// unaware of seed.
type PRG interface {
	// Eval returns the output block for the given integer position. The
	// interior-node engine only ever calls this with position 0 or 1;
	// BulkEval evaluates runs of larger positions.
	Eval(seed Block, position uint64) Block

	// Eval01 returns (Eval(seed, 0), Eval(seed, 1)); implementations should
	// compute both in one pass when that's cheaper than two calls to Eval.
	Eval01(seed Block) (Block, Block)

	// BulkEval writes len(out) outputs for positions base, base+1, ...
	BulkEval(seed Block, out []Block, base uint64)
}

// Insecure marks a PRG implementation that must never be used for key
// generation (spec §4.1: "Production code must refuse to use it in key
// generation"). The zero value of any secure PRG type does not implement
// this interface.
type Insecure interface {
	InsecureTestOnly()
}

// bulkEvalViaEval is the default BulkEval behavior shared by every real PRG:
// repeated single-position evaluation. A PRG may override this with a
// genuinely batched implementation if its backend supports one.
func bulkEvalViaEval(p interface {
	Eval(seed Block, position uint64) Block
}, seed Block, out []Block, base uint64) {
	for i := range out {
		out[i] = p.Eval(seed, base+uint64(i))
	}
}
