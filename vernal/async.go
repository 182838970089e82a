package vernal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rometsch-lab/grotto-dpf/block"
	"github.com/rometsch-lab/grotto-dpf/key"
)

// Phase names one of the four async suspension points of the wildcard
// output protocol (spec §5, §4.7): each corresponds to one socket read or
// write.
type Phase int

const (
	PhaseWriteBlinded Phase = iota
	PhaseReadBlinded
	PhaseWriteLeafShare
	PhaseReadLeafShare
	PhaseDone
)

// OutputVernalization is a suspendable state machine driving one column's
// wildcard output protocol (spec §4.8: "the asynchronous variant drives a
// coroutine state machine whose suspension points coincide with the
// socket reads and writes"). Each instance is tagged with a UUID so a
// caller juggling many concurrent columns can correlate completion
// notifications back to the right one.
type OutputVernalization struct {
	ID uuid.UUID

	t         Transport
	k         *key.Key
	columnIdx int

	phase Phase

	blinded     block.Block
	peerBlinded block.Block
	leafShare   block.Block

	// snapshot preserves the column's pre-vernalization state so
	// Cancel can roll back cleanly from any suspension point (spec §5,
	// "Cancellation").
	snapshot key.Column
}

// NewOutputVernalization begins (but does not advance) a new async
// wildcard-output flow for column columnIdx, from share yShare.
func NewOutputVernalization(t Transport, k *key.Key, columnIdx int, yShare block.Block) (*OutputVernalization, error) {
	col := &k.Columns[columnIdx]
	if !col.Wildcard || col.Vernalized {
		return nil, ErrAlreadyVernalized
	}
	return &OutputVernalization{
		ID:        uuid.New(),
		t:         t,
		k:         k,
		columnIdx: columnIdx,
		phase:     PhaseWriteBlinded,
		blinded:   block.Xor(yShare, col.BeaverShare.A),
		snapshot:  *col,
	}, nil
}

// Phase returns the suspension point this instance is currently at.
func (o *OutputVernalization) Phase() Phase { return o.phase }

// Advance runs exactly one suspension-point step (one socket read or
// write) and moves to the next phase, so a caller's I/O loop can yield
// between calls (spec §5, "operations that block on socket I/O yield").
func (o *OutputVernalization) Advance(ctx context.Context) error {
	switch o.phase {
	case PhaseWriteBlinded:
		if err := o.t.WriteBlock(ctx, o.blinded); err != nil {
			return fmt.Errorf("vernal: async write blinded share: %w", err)
		}
		o.phase = PhaseReadBlinded
	case PhaseReadBlinded:
		peer, err := o.t.ReadBlock(ctx)
		if err != nil {
			return fmt.Errorf("vernal: async read peer blinded share: %w", err)
		}
		o.peerBlinded = peer
		col := &o.k.Columns[o.columnIdx]
		o.leafShare = block.Xor(block.Xor(o.blinded, o.peerBlinded), col.BeaverShare.C)
		o.phase = PhaseWriteLeafShare
	case PhaseWriteLeafShare:
		if err := o.t.WriteBlock(ctx, o.leafShare); err != nil {
			return fmt.Errorf("vernal: async write leaf share: %w", err)
		}
		o.phase = PhaseReadLeafShare
	case PhaseReadLeafShare:
		peerLeaf, err := o.t.ReadBlock(ctx)
		if err != nil {
			return fmt.Errorf("vernal: async read peer leaf share: %w", err)
		}
		col := &o.k.Columns[o.columnIdx]
		col.LeafCW = []block.Block{block.Xor(o.leafShare, peerLeaf)}
		col.Vernalized = true
		o.phase = PhaseDone
	case PhaseDone:
		return nil
	}
	return nil
}

// Done reports whether the flow has reached its terminal phase.
func (o *OutputVernalization) Done() bool { return o.phase == PhaseDone }

// Cancel rolls k's column back to its pre-vernalization state; permitted
// between any two suspension points (spec §5, "Cancellation").
func (o *OutputVernalization) Cancel() {
	o.k.Columns[o.columnIdx] = o.snapshot
	o.phase = PhaseDone
}
