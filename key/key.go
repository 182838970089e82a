// Package key implements the DPF key pair's data model (spec §3) and its
// wire format (spec §6): the root block, the interior correction words and
// advice bits, the leaf correction words per output column, and the
// wildcard bookkeeping (Beaver correlation shares, input offset share).
// It is grounded on the teacher's Key{ID, S, CW} struct in
// dpf/2018_boyle_optimization/optreedpf.go, generalized from a single
// fixed-lambda big.Int seed and one implicit output column to an explicit
// depth, multiple leaf columns, and wildcard metadata, and from gob
// encoding to an explicit little-endian wire layout (spec §6).
package key

import (
	"errors"

	"github.com/rometsch-lab/grotto-dpf/block"
	"github.com/rometsch-lab/grotto-dpf/interior"
)

// Advice is the pair of correction bits applied to a level's two children
// after PRG expansion (spec §3, "advice words").
type Advice struct {
	TL, TR byte
}

// BeaverTriple is one party's share of a correlation consumed exactly once
// during output vernalization (spec §4.4, §4.7): two operand shares and
// one product/XOR share, all measured in leaf blocks.
type BeaverTriple struct {
	A, B, C block.Block
}

// Column holds the per-output-column state: the leaf correction word (zero
// and pending until vernalized, for wildcard columns) and, for wildcard
// columns, the Beaver triple share consumed by vernalization.
type Column struct {
	LeafCW      []block.Block // one or more blocks, per leaf/output width
	Wildcard    bool
	Vernalized  bool // false only for a pending wildcard column
	BeaverShare BeaverTriple
}

// Key is one party's half of a DPF key pair.
type Key struct {
	PartyID byte // 0 or 1; also the party's root control bit
	Depth   int  // number of interior levels

	Root block.Block

	InteriorCW []block.Block // len == Depth
	Advice     []Advice      // len == Depth

	Columns []Column

	// InputWildcard is true if x* has not yet been bound; OffsetShare is
	// this party's additive/XOR share of the random mask used in its
	// place until vernalize_input runs (spec §3, §4.7).
	InputWildcard bool
	OffsetShare   block.Block
}

var (
	// ErrDepthMismatch is returned when a key and a path memoizer disagree
	// on tree depth.
	ErrDepthMismatch = errors.New("key: depth mismatch")
	// ErrPendingWildcard is returned when evaluation is attempted while a
	// wildcard input or output column has not yet been vernalized.
	ErrPendingWildcard = errors.New("key: evaluation attempted with pending wildcard")
)

// CorrectionWordAt returns the interior correction word and advice for
// level lvl as the interior package's combined type.
func (k *Key) CorrectionWordAt(lvl int) interior.CorrectionWord {
	a := k.Advice[lvl]
	return interior.CorrectionWord{Seed: k.InteriorCW[lvl], TL: a.TL, TR: a.TR}
}

// Ready reports whether the key has no pending wildcard input or output
// column, i.e. whether it may be passed to an evaluation engine (spec §4.8:
// the CREATED → READY transition).
func (k *Key) Ready() bool {
	if k.InputWildcard {
		return false
	}
	for _, c := range k.Columns {
		if c.Wildcard && !c.Vernalized {
			return false
		}
	}
	return true
}

// CheckReady returns ErrPendingWildcard if the key is not ready for
// evaluation.
func (k *Key) CheckReady() error {
	if !k.Ready() {
		return ErrPendingWildcard
	}
	return nil
}
