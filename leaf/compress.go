package leaf

import (
	"encoding/binary"

	"github.com/zeebo/blake3"

	"github.com/rometsch-lab/grotto-dpf/block"
)

// CompressWide derives a leaf-sized pseudorandom mask from a seed for
// outputs that need more pseudorandom material per leaf than a single PRG
// call provides, e.g. a leaf wider than the PRG's natural block, or one of
// several output slots packed into a single leaf under spec §4.3's
// "outputs_per_leaf" bucketing. It is keyed on the leaf's own seed and a
// caller-supplied index (an output column, a within-leaf slot, or both
// folded together) so distinct keyings never reuse the same mask.
func CompressWide(seed block.Block, index uint32, numBlocks int) []block.Block {
	h := blake3.New()
	raw := seed.Bytes()
	h.Write(raw[:])
	var colBuf [4]byte
	binary.LittleEndian.PutUint32(colBuf[:], index)
	h.Write(colBuf[:])

	digest := h.Digest()
	out := make([]block.Block, numBlocks)
	buf := make([]byte, numBlocks*16)
	if _, err := digest.Read(buf); err != nil {
		panic(err)
	}
	for i := 0; i < numBlocks; i++ {
		var b [16]byte
		copy(b[:], buf[i*16:(i+1)*16])
		out[i] = block.FromBytes(b)
	}
	return out
}
