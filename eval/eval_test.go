package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rometsch-lab/grotto-dpf/block"
	"github.com/rometsch-lab/grotto-dpf/eval"
	"github.com/rometsch-lab/grotto-dpf/inputs"
	"github.com/rometsch-lab/grotto-dpf/keygen"
	"github.com/rometsch-lab/grotto-dpf/leaf"
	"github.com/rometsch-lab/grotto-dpf/recipe"
)

const testDepth = 6

func genTestKeys(t *testing.T, xVal uint64, y uint32) (*keygen.Result, leaf.Integer[uint32]) {
	t.Helper()
	prg := block.NewFixedKeyAES()
	x := inputs.NewBitStringFromUint64(xVal, testDepth)
	var arith leaf.Integer[uint32]
	outs := []keygen.OutputSpec[uint32]{{Value: y}}
	res, err := keygen.Gen(prg, x, outs, arith, 1)
	require.NoError(t, err)
	return res, arith
}

func TestPointEvaluationCorrectnessAtTarget(t *testing.T) {
	res, arith := genTestKeys(t, 42, 7)
	prg := block.NewFixedKeyAES()
	x := inputs.NewBitStringFromUint64(42, testDepth)

	va, err := eval.Point(prg, res.Alice, x, 0, arith, 1, nil)
	require.NoError(t, err)
	vb, err := eval.Point(prg, res.Bob, x, 0, arith, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, uint32(7), eval.Combine(arith, va, vb))
}

func TestPointEvaluationZeroElsewhere(t *testing.T) {
	res, arith := genTestKeys(t, 42, 7)
	prg := block.NewFixedKeyAES()

	for _, other := range []uint64{0, 1, 41, 43, 63} {
		x := inputs.NewBitStringFromUint64(other, testDepth)
		va, err := eval.Point(prg, res.Alice, x, 0, arith, 1, nil)
		require.NoError(t, err)
		vb, err := eval.Point(prg, res.Bob, x, 0, arith, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, uint32(0), eval.Combine(arith, va, vb), "x=%d", other)
	}
}

func TestPointEvaluationWithMemoizerMatchesStateless(t *testing.T) {
	res, arith := genTestKeys(t, 20, 99)
	prg := block.NewFixedKeyAES()
	m := eval.NewPathMemoizer(testDepth)

	for _, xv := range []uint64{10, 20, 21, 0, 63} {
		x := inputs.NewBitStringFromUint64(xv, testDepth)
		stateless, err := eval.Point(prg, res.Alice, x, 0, arith, 1, nil)
		require.NoError(t, err)
		memoized, err := eval.Point(prg, res.Alice, x, 0, arith, 1, m)
		require.NoError(t, err)
		assert.Equal(t, stateless, memoized, "x=%d", xv)
	}
}

func TestIntervalMatchesPointEvaluation(t *testing.T) {
	res, arith := genTestKeys(t, 5, 11)
	prg := block.NewFixedKeyAES()

	interval, err := eval.Interval(prg, res.Alice, 0, 15, 0, arith, 1, eval.NewFullTreeMemoizer())
	require.NoError(t, err)

	for xv := uint64(0); xv <= 15; xv++ {
		x := inputs.NewBitStringFromUint64(xv, testDepth)
		point, err := eval.Point(prg, res.Alice, x, 0, arith, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, point, interval[xv], "x=%d", xv)
	}
}

func TestFullMatchesPointEvaluation(t *testing.T) {
	const smallDepth = 4
	prg := block.NewFixedKeyAES()
	x := inputs.NewBitStringFromUint64(3, smallDepth)
	var arith leaf.Integer[uint32]
	outs := []keygen.OutputSpec[uint32]{{Value: 5}}
	res, err := keygen.Gen(prg, x, outs, arith, 1)
	require.NoError(t, err)

	full, err := eval.Full(prg, res.Bob, 0, arith, 1, eval.NewPingPongMemoizer())
	require.NoError(t, err)
	require.Len(t, full, 1<<smallDepth)

	for xv := 0; xv < 1<<smallDepth; xv++ {
		xi := inputs.NewBitStringFromUint64(uint64(xv), smallDepth)
		point, err := eval.Point(prg, res.Bob, xi, 0, arith, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, point, full[xv], "x=%d", xv)
	}
}

func TestSequenceMatchesPointAndBreadthFirst(t *testing.T) {
	res, arith := genTestKeys(t, 30, 17)
	prg := block.NewFixedKeyAES()

	vals := []uint64{2, 9, 30, 31, 60}
	xs := make([]inputs.Input, len(vals))
	for i, v := range vals {
		xs[i] = inputs.NewBitStringFromUint64(v, testDepth)
	}
	r := recipe.Build(xs, testDepth, 1)

	seqFullTree, err := eval.Sequence(prg, res.Alice, r, 0, arith, 1, &recipe.FullTreeMemoizer{})
	require.NoError(t, err)
	seqDouble, err := eval.Sequence(prg, res.Alice, r, 0, arith, 1, &recipe.DoubleSpaceMemoizer{})
	require.NoError(t, err)
	seqInPlace, err := eval.Sequence(prg, res.Alice, r, 0, arith, 1, &recipe.InPlaceReversingMemoizer{})
	require.NoError(t, err)
	bf, err := eval.BreadthFirstSequence(prg, res.Alice, xs, 0, arith, 1)
	require.NoError(t, err)

	for i, v := range vals {
		x := inputs.NewBitStringFromUint64(v, testDepth)
		point, err := eval.Point(prg, res.Alice, x, 0, arith, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, point, seqFullTree[i], "fulltree x=%d", v)
		assert.Equal(t, point, seqDouble[i], "double x=%d", v)
		assert.Equal(t, point, seqInPlace[i], "inplace x=%d", v)
		assert.Equal(t, point, bf[i], "breadthfirst x=%d", v)
	}
}

// TestMultiOutputsPerLeaf exercises spec §4.3's outputs_per_leaf bucketing
// with outputsPerLeaf > 1: only the target slot within the bucket
// containing x* should combine to y, every other slot sharing that leaf
// (and every leaf outside the bucket) must combine to the output group's
// zero.
func TestMultiOutputsPerLeaf(t *testing.T) {
	const fullBits = 6
	const outputsPerLeaf = 4 // lg2(4) = 2 slot bits, tree depth = 6-2 = 4

	prg := block.NewFixedKeyAES()
	target := uint64(42) // bucket [40,43], slot 42%4 = 2
	x := inputs.NewBitStringFromUint64(target, fullBits)
	var arith leaf.Integer[uint32]
	outs := []keygen.OutputSpec[uint32]{{Value: 9}}
	res, err := keygen.Gen(prg, x, outs, arith, outputsPerLeaf)
	require.NoError(t, err)
	require.Equal(t, fullBits-2, res.Alice.Depth)

	for xv := uint64(0); xv < 1<<fullBits; xv++ {
		xi := inputs.NewBitStringFromUint64(xv, fullBits)
		va, err := eval.Point(prg, res.Alice, xi, 0, arith, outputsPerLeaf, nil)
		require.NoError(t, err)
		vb, err := eval.Point(prg, res.Bob, xi, 0, arith, outputsPerLeaf, nil)
		require.NoError(t, err)

		want := uint32(0)
		if xv == target {
			want = 9
		}
		assert.Equal(t, want, eval.Combine(arith, va, vb), "x=%d", xv)
	}
}

func TestGenRejectsInsecurePRG(t *testing.T) {
	var arith leaf.Integer[uint32]
	x := inputs.NewBitStringFromUint64(1, 4)
	outs := []keygen.OutputSpec[uint32]{{Value: 1}}
	_, err := keygen.Gen(block.NewCounter(), x, outs, arith, 1)
	assert.ErrorIs(t, err, keygen.ErrInsecurePRG)
}
