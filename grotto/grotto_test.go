package grotto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rometsch-lab/grotto-dpf/block"
	"github.com/rometsch-lab/grotto-dpf/grotto"
)

func TestPolynomialEvaluateHorner(t *testing.T) {
	// p(x) = 2 + 3x + x^2
	p := grotto.Polynomial{Coeffs: []float64{2, 3, 1}}
	assert.Equal(t, 2.0, p.Evaluate(0))
	assert.Equal(t, 6.0, p.Evaluate(1))
	assert.Equal(t, 12.0, p.Evaluate(2))
}

func TestGenerateRejectsBadPieceTables(t *testing.T) {
	prg := block.NewFixedKeyAES()

	_, err := grotto.Generate(prg, 4, nil)
	assert.Error(t, err)

	_, err = grotto.Generate(prg, 4, []grotto.Piece{{Breakpoint: 1}})
	assert.Error(t, err)

	_, err = grotto.Generate(prg, 4, []grotto.Piece{
		{Breakpoint: 0},
		{Breakpoint: 0},
	})
	assert.Error(t, err)
}

func TestEvaluateReconstructsPiecewiseFunction(t *testing.T) {
	prg := block.NewFixedKeyAES()
	depth := 5 // domain [0, 32)

	pieces := []grotto.Piece{
		{Breakpoint: 0, Poly: grotto.Polynomial{Coeffs: []float64{1}}, Correction: 0},
		{Breakpoint: 10, Poly: grotto.Polynomial{Coeffs: []float64{1}}, Correction: 41},
		{Breakpoint: 20, Poly: grotto.Polynomial{Coeffs: []float64{1}}, Correction: 100},
	}

	kp, err := grotto.Generate(prg, depth, pieces)
	require.NoError(t, err)

	alice, err := grotto.NewParty(prg, kp, 0)
	require.NoError(t, err)
	bob, err := grotto.NewParty(prg, kp, 1)
	require.NoError(t, err)

	cases := []struct {
		x        uint64
		expected float64
	}{
		{0, 1},       // piece 0, no correction yet
		{9, 1},       // still piece 0
		{10, 1 + 41}, // crosses into piece 1's correction
		{19, 1 + 41},
		{20, 1 + 41 + 100}, // crosses into piece 2's correction
		{31, 1 + 41 + 100},
	}

	for _, c := range cases {
		sa, err := alice.Evaluate(c.x)
		require.NoError(t, err)
		sb, err := bob.Evaluate(c.x)
		require.NoError(t, err)
		assert.Equal(t, c.expected, grotto.Combine(sa, sb), "x=%d", c.x)
	}
}

func TestEvaluateOutOfDomain(t *testing.T) {
	prg := block.NewFixedKeyAES()
	kp, err := grotto.Generate(prg, 3, []grotto.Piece{{Breakpoint: 0}})
	require.NoError(t, err)
	p, err := grotto.NewParty(prg, kp, 0)
	require.NoError(t, err)

	_, err = p.Evaluate(8)
	assert.Error(t, err)
}
