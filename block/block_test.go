package block_test

import (
	"testing"

	"github.com/rometsch-lab/grotto-dpf/block"
	"github.com/stretchr/testify/assert"
)

func TestXorSelfIsZero(t *testing.T) {
	a := block.Block{Lo: 0xDEADBEEF, Hi: 0x1234}
	assert.True(t, block.Xor(a, a).Equal(block.Zero))
}

func TestControlBitRoundTrip(t *testing.T) {
	a := block.Block{Lo: 6, Hi: 9}
	assert.Equal(t, byte(0), a.ControlBit())

	b := a.WithControlBit(1)
	assert.Equal(t, byte(1), b.ControlBit())
	assert.Equal(t, a.Hi, b.Seed().Hi)
	assert.Equal(t, a.Lo&^1, b.Seed().Lo)
}

func TestBytesRoundTrip(t *testing.T) {
	a := block.Block{Lo: 0x0102030405060708, Hi: 0x1112131415161718}
	got := block.FromBytes(a.Bytes())
	assert.True(t, a.Equal(got))
}

func TestBytesLittleEndian(t *testing.T) {
	a := block.Block{Lo: 1, Hi: 0}
	b := a.Bytes()
	assert.Equal(t, byte(1), b[0])
	for i := 1; i < 16; i++ {
		assert.Equal(t, byte(0), b[i])
	}
}
