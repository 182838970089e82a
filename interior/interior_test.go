package interior_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rometsch-lab/grotto-dpf/block"
	"github.com/rometsch-lab/grotto-dpf/interior"
)

func TestApplyCorrectionPassthroughWhenTZero(t *testing.T) {
	prg := block.NewFixedKeyAES()
	c := interior.Expand(prg, block.SampleSeed())
	cw := interior.CorrectionWord{Seed: block.SampleSeed(), TL: 1, TR: 1}
	corrected := interior.ApplyCorrection(c, cw, 0)
	assert.Equal(t, c, corrected)
}

func TestApplyCorrectionXorsWhenTOne(t *testing.T) {
	prg := block.NewFixedKeyAES()
	c := interior.Expand(prg, block.SampleSeed())
	cw := interior.CorrectionWord{Seed: block.SampleSeed(), TL: 1, TR: 0}
	corrected := interior.ApplyCorrection(c, cw, 1)
	assert.Equal(t, block.Xor(c.Left.Seed, cw.Seed), corrected.Left.Seed)
	assert.Equal(t, c.Left.T^1, corrected.Left.T)
	assert.Equal(t, c.Right.T^0, corrected.Right.T)
}

// TestMakeCorrectionWordCancelsLooseSeeds checks the building block of the
// off-path re-convergence invariant (spec §4.2): XORing a correction word
// built from two parties' loose children together with either party's own
// loose seed recovers the other party's loose seed exactly, which is what
// lets both parties' trees agree again once exactly one of them (the one
// whose control bit is 1) has applied it.
func TestMakeCorrectionWordCancelsLooseSeeds(t *testing.T) {
	prg := block.NewFixedKeyAES()
	rawA := interior.Expand(prg, block.SampleSeed())
	rawB := interior.Expand(prg, block.SampleSeed())

	cw := interior.MakeCorrectionWord(rawA, rawB, false) // loose = right
	assert.Equal(t, rawB.Right.Seed, block.Xor(rawA.Right.Seed, cw.Seed))
	assert.Equal(t, rawA.Right.Seed, block.Xor(rawB.Right.Seed, cw.Seed))
}

// TestOnPathDivergesOffPathConverges checks the actual control-bit
// invariant of spec §4.2 end to end: after one party (t=0, no correction
// applied) and the other (t=1, correction applied) step through the same
// level, the kept (on-path) branch's control bits must differ between the
// two parties while the loose (off-path) branch's seed and control bit
// must agree exactly.
func TestOnPathDivergesOffPathConverges(t *testing.T) {
	prg := block.NewFixedKeyAES()
	rawA := interior.Expand(prg, block.SampleSeed())
	rawB := interior.Expand(prg, block.SampleSeed())

	cw := interior.MakeCorrectionWord(rawA, rawB, false) // Left is kept, Right is loose

	correctedA := interior.ApplyCorrection(rawA, cw, 0) // party A's t is 0: passthrough
	correctedB := interior.ApplyCorrection(rawB, cw, 1) // party B's t is 1: corrected

	assert.NotEqual(t, correctedA.Left.T, correctedB.Left.T, "on-path control bits must diverge")
	assert.Equal(t, correctedA.Right.T, correctedB.Right.T, "off-path control bits must converge")
	assert.Equal(t, correctedA.Right.Seed, correctedB.Right.Seed, "off-path seeds must converge")
}

func TestExpandDeterministic(t *testing.T) {
	prg := block.NewFixedKeyAES()
	seed := block.SampleSeed()
	assert.Equal(t, interior.Expand(prg, seed), interior.Expand(prg, seed))
}
