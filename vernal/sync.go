package vernal

import (
	"context"
	"errors"
	"fmt"

	"github.com/rometsch-lab/grotto-dpf/block"
	"github.com/rometsch-lab/grotto-dpf/key"
)

// ErrAlreadyVernalized is returned when vernalization is attempted on a
// column or input that has no pending wildcard.
var ErrAlreadyVernalized = errors.New("vernal: nothing pending to vernalize")

// VernalizeInput runs the one-round-trip wildcard input protocol of spec
// §4.7: each party XORs its local input share into its offset share,
// exchanges the result, and reconstructs the combined offset. It mutates
// k in place and clears k.InputWildcard.
func VernalizeInput(ctx context.Context, t Transport, k *key.Key, localInputShare block.Block) error {
	if !k.InputWildcard {
		return ErrAlreadyVernalized
	}

	mine := block.Xor(k.OffsetShare, localInputShare)
	if err := t.WriteBlock(ctx, mine); err != nil {
		return fmt.Errorf("vernal: writing input offset share: %w", err)
	}
	theirs, err := t.ReadBlock(ctx)
	if err != nil {
		return fmt.Errorf("vernal: reading peer's input offset share: %w", err)
	}

	k.OffsetShare = block.Xor(mine, theirs)
	k.InputWildcard = false
	return nil
}

// VernalizeOutput runs the two-round-trip wildcard output protocol of spec
// §4.7 for one column: each party sends a blinded output share derived
// from its y-share and Beaver-triple share, then (after receiving the
// peer's) computes and exchanges a leaf share, reconstructing the leaf
// correction word. The correlation is consumed exactly once.
func VernalizeOutput(ctx context.Context, t Transport, k *key.Key, columnIdx int, yShare block.Block) error {
	col := &k.Columns[columnIdx]
	if !col.Wildcard || col.Vernalized {
		return ErrAlreadyVernalized
	}

	blinded := block.Xor(yShare, col.BeaverShare.A)
	if err := t.WriteBlock(ctx, blinded); err != nil {
		return fmt.Errorf("vernal: writing blinded output share for column %d: %w", columnIdx, err)
	}
	peerBlinded, err := t.ReadBlock(ctx)
	if err != nil {
		return fmt.Errorf("vernal: reading peer's blinded output share for column %d: %w", columnIdx, err)
	}

	leafShare := block.Xor(block.Xor(blinded, peerBlinded), col.BeaverShare.C)
	if err := t.WriteBlock(ctx, leafShare); err != nil {
		return fmt.Errorf("vernal: writing leaf share for column %d: %w", columnIdx, err)
	}
	peerLeafShare, err := t.ReadBlock(ctx)
	if err != nil {
		return fmt.Errorf("vernal: reading peer's leaf share for column %d: %w", columnIdx, err)
	}

	col.LeafCW = []block.Block{block.Xor(leafShare, peerLeafShare)}
	col.Vernalized = true
	return nil
}
