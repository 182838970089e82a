package vernal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rometsch-lab/grotto-dpf/block"
	"github.com/rometsch-lab/grotto-dpf/key"
	"github.com/rometsch-lab/grotto-dpf/vernal"
)

func wildcardKeyPair() (*key.Key, *key.Key) {
	a := &key.Key{Columns: []key.Column{{Wildcard: true}}, InputWildcard: true}
	b := &key.Key{Columns: []key.Column{{Wildcard: true}}, InputWildcard: true}

	shareA := block.SampleSeed()
	shareB := block.SampleSeed()
	product := block.Xor(shareA, shareB)
	a.Columns[0].BeaverShare = key.BeaverTriple{A: shareA, B: block.Zero, C: product}
	b.Columns[0].BeaverShare = key.BeaverTriple{A: shareB, B: block.Zero, C: product}

	a.OffsetShare = block.SampleSeed()
	b.OffsetShare = block.SampleSeed()
	return a, b
}

func TestVernalizeInputReconstructsOffset(t *testing.T) {
	a, b := wildcardKeyPair()
	ta, tb := vernal.NewInMemoryPipe()

	localA := block.SampleSeed()
	localB := block.SampleSeed()

	ctx := context.Background()
	errs := make(chan error, 2)
	go func() { errs <- vernal.VernalizeInput(ctx, ta, a, localA) }()
	go func() { errs <- vernal.VernalizeInput(ctx, tb, b, localB) }()
	require.NoError(t, <-errs)
	require.NoError(t, <-errs)

	assert.False(t, a.InputWildcard)
	assert.False(t, b.InputWildcard)
	assert.Equal(t, a.OffsetShare, b.OffsetShare)
}

func TestVernalizeOutputProducesMatchingLeafCW(t *testing.T) {
	a, b := wildcardKeyPair()
	ta, tb := vernal.NewInMemoryPipe()

	yShareA := block.SampleSeed()
	yShareB := block.SampleSeed()

	ctx := context.Background()
	errs := make(chan error, 2)
	go func() { errs <- vernal.VernalizeOutput(ctx, ta, a, 0, yShareA) }()
	go func() { errs <- vernal.VernalizeOutput(ctx, tb, b, 0, yShareB) }()
	require.NoError(t, <-errs)
	require.NoError(t, <-errs)

	assert.True(t, a.Columns[0].Vernalized)
	assert.True(t, b.Columns[0].Vernalized)
	assert.Equal(t, a.Columns[0].LeafCW, b.Columns[0].LeafCW)
}

func TestAsyncOutputVernalizationProducesMatchingLeafCW(t *testing.T) {
	a, b := wildcardKeyPair()
	ta, tb := vernal.NewInMemoryPipe()

	yShareA := block.SampleSeed()
	yShareB := block.SampleSeed()
	ctx := context.Background()

	flowA, err := vernal.NewOutputVernalization(ta, a, 0, yShareA)
	require.NoError(t, err)
	flowB, err := vernal.NewOutputVernalization(tb, b, 0, yShareB)
	require.NoError(t, err)

	assert.NotEqual(t, flowA.ID.String(), "")

	done := make(chan struct{}, 2)
	run := func(f *vernal.OutputVernalization) {
		for !f.Done() {
			require.NoError(t, f.Advance(ctx))
		}
		done <- struct{}{}
	}
	go run(flowA)
	go run(flowB)
	<-done
	<-done

	assert.True(t, a.Columns[0].Vernalized)
	assert.Equal(t, a.Columns[0].LeafCW, b.Columns[0].LeafCW)
}

func TestCancelRollsBackColumn(t *testing.T) {
	a, _ := wildcardKeyPair()
	ta, _ := vernal.NewInMemoryPipe()
	before := a.Columns[0]

	flow, err := vernal.NewOutputVernalization(ta, a, 0, block.SampleSeed())
	require.NoError(t, err)
	flow.Cancel()

	assert.Equal(t, before, a.Columns[0])
	assert.True(t, flow.Done())
}
