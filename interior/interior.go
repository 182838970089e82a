// Package interior implements the single-level tree-traversal step of
// spec §4.2: expanding one node's seed into a left and right child seed
// plus advice bit, applying the correction word on the side the control
// bit demands. It is grounded on the per-level loop in the teacher's
// dpf/2018_boyle_optimization/optreedpf.go (splitPRGOutput + the
// Tl/Tr-correction logic in Gen/Eval/traverse), generalized from that
// file's fixed lambda-bit big.Int seed to the module's 128-bit block.Block
// and from its hard-coded two-party roles to an explicit CW argument any
// party can apply identically.
package interior

import "github.com/rometsch-lab/grotto-dpf/block"

// CorrectionWord is the per-level correction both parties' keys carry,
// matching the teacher's CorrectionWord{S, Tl, Tr} but expressed over a
// single 128-bit seed block plus the two advice-bit corrections.
type CorrectionWord struct {
	Seed block.Block
	TL   byte
	TR   byte
}

// Children is the pair of expanded (seed, control-bit) tuples produced by
// one level of traversal, before any correction word has been applied.
type Children struct {
	Left, Right Block
}

// Block is a (seed, control bit) pair at one tree node.
type Block struct {
	Seed block.Block
	T    byte
}

// Expand runs the PRG once on seed to produce raw left/right children,
// matching the teacher's splitPRGOutput step (Step 5 of both Gen and Eval):
// one PRG call whose output is parsed into (s_L, t_L, s_R, t_R).
func Expand(prg block.PRG, seed block.Block) Children {
	left, right := prg.Eval01(seed)
	return Children{
		Left:  Block{Seed: left.Seed(), T: left.ControlBit()},
		Right: Block{Seed: right.Seed(), T: right.ControlBit()},
	}
}

// ApplyCorrection corrects the raw children with cw if the parent's control
// bit t is 1, matching the teacher's "if t { tau = XOR(tau, appended CW) }"
// step: when t is 0 the children pass through unmodified (the on-path
// invariant requires the two parties to already agree there), when t is 1
// both seed and advice bits are XORed with the correction word.
func ApplyCorrection(c Children, cw CorrectionWord, t byte) Children {
	if t == 0 {
		return c
	}
	return Children{
		Left: Block{
			Seed: block.Xor(c.Left.Seed, cw.Seed),
			T:    c.Left.T ^ cw.TL,
		},
		Right: Block{
			Seed: block.Xor(c.Right.Seed, cw.Seed),
			T:    c.Right.T ^ cw.TR,
		},
	}
}

// Step runs one full level of traversal: expand, then correct, then select
// the branch named by bit (0 = left, 1 = right). This is the loop body the
// teacher's Eval repeats n times (n = lambda) and Gen repeats once per
// level to build each CorrectionWord.
func Step(prg block.PRG, seed block.Block, t byte, cw CorrectionWord, bit byte) Block {
	children := ApplyCorrection(Expand(prg, seed), cw, t)
	if bit == 0 {
		return children.Left
	}
	return children.Right
}

// MakeCorrectionWord builds the correction word for one level from both
// parties' raw (uncorrected) children, matching the teacher's Gen Step 6-11
// (optreedpf.go: tCW_L = tL_A ^ tL_B ^ a ^ 1, tCW_R = tR_A ^ tR_B ^ a, where
// a is the path bit): the seed half is the XOR of both parties' "loose"
// (off-path) seeds, and the *keep* (on-path) side's advice-bit half gets
// the extra ^1 so that after correction the on-path branch continues to
// disagree and the off-path branch re-converges.
func MakeCorrectionWord(a, b Children, keepRight bool) CorrectionWord {
	var looseA, looseB Block
	if keepRight {
		looseA, looseB = a.Left, b.Left
	} else {
		looseA, looseB = a.Right, b.Right
	}
	seedCW := block.Xor(looseA.Seed, looseB.Seed)

	tl := a.Left.T ^ b.Left.T
	tr := a.Right.T ^ b.Right.T
	if keepRight {
		tr ^= 1
	} else {
		tl ^= 1
	}
	return CorrectionWord{Seed: seedCW, TL: tl, TR: tr}
}
