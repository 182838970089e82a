package key

import (
	"bytes"
	"fmt"
	"io"

	"github.com/rometsch-lab/grotto-dpf/block"
)

// MarshalBinary writes k's wire representation (spec §6): interior
// correction words, then the packed advice array, then the root block,
// then the leaf tuple in column order, then the Beaver-correlation tuple
// over wildcard columns, then the input offset share. All fields are
// little-endian, matching block.Block's own byte layout.
func (k *Key) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer

	for _, cw := range k.InteriorCW {
		b := cw.Bytes()
		buf.Write(b[:])
	}

	adviceBytes := packAdvice(k.Advice)
	buf.Write(adviceBytes)

	rootBytes := k.Root.Bytes()
	buf.Write(rootBytes[:])

	for _, col := range k.Columns {
		for _, b := range col.LeafCW {
			raw := b.Bytes()
			buf.Write(raw[:])
		}
	}

	for _, col := range k.Columns {
		if !col.Wildcard {
			continue
		}
		for _, b := range []block.Block{col.BeaverShare.A, col.BeaverShare.B, col.BeaverShare.C} {
			raw := b.Bytes()
			buf.Write(raw[:])
		}
	}

	offsetBytes := k.OffsetShare.Bytes()
	buf.Write(offsetBytes[:])

	return buf.Bytes(), nil
}

// packAdvice packs each level's (t_L, t_R) pair into the low two bits of
// one byte per level (spec §6: "the advice array (fixed size depth bytes,
// two bits per entry packed low)").
func packAdvice(advice []Advice) []byte {
	out := make([]byte, len(advice))
	for i, a := range advice {
		var v byte
		if a.TL != 0 {
			v |= 1
		}
		if a.TR != 0 {
			v |= 2
		}
		out[i] = v
	}
	return out
}

func unpackAdvice(raw []byte) []Advice {
	out := make([]Advice, len(raw))
	for i, v := range raw {
		out[i] = Advice{TL: v & 1, TR: (v >> 1) & 1}
	}
	return out
}

// Layout describes the column shape a key must be unmarshaled into: how
// many blocks each column's leaf correction word occupies, and which
// columns are wildcard. This mirrors the generator's own configuration and
// must be supplied out of band, since the wire format itself (spec §6)
// carries no column-count header.
type Layout struct {
	Depth          int
	LeafBlocksPer  []int
	WildcardColumn []bool
}

// UnmarshalBinary parses data according to layout into k, in the field
// order MarshalBinary writes.
func (k *Key) UnmarshalBinary(data []byte, layout Layout) error {
	r := bytes.NewReader(data)

	k.Depth = layout.Depth
	k.InteriorCW = make([]block.Block, layout.Depth)
	for i := range k.InteriorCW {
		var raw [16]byte
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			return fmt.Errorf("key: reading interior CW %d: %w", i, err)
		}
		k.InteriorCW[i] = block.FromBytes(raw)
	}

	adviceRaw := make([]byte, layout.Depth)
	if _, err := io.ReadFull(r, adviceRaw); err != nil {
		return fmt.Errorf("key: reading advice array: %w", err)
	}
	k.Advice = unpackAdvice(adviceRaw)

	var rootRaw [16]byte
	if _, err := io.ReadFull(r, rootRaw[:]); err != nil {
		return fmt.Errorf("key: reading root block: %w", err)
	}
	k.Root = block.FromBytes(rootRaw)

	k.Columns = make([]Column, len(layout.LeafBlocksPer))
	for i, n := range layout.LeafBlocksPer {
		col := Column{LeafCW: make([]block.Block, n)}
		if i < len(layout.WildcardColumn) {
			col.Wildcard = layout.WildcardColumn[i]
		}
		col.Vernalized = !col.Wildcard
		for j := 0; j < n; j++ {
			var raw [16]byte
			if _, err := io.ReadFull(r, raw[:]); err != nil {
				return fmt.Errorf("key: reading leaf CW for column %d: %w", i, err)
			}
			col.LeafCW[j] = block.FromBytes(raw)
		}
		k.Columns[i] = col
	}

	for i := range k.Columns {
		if !k.Columns[i].Wildcard {
			continue
		}
		var shares [3]block.Block
		for j := range shares {
			var raw [16]byte
			if _, err := io.ReadFull(r, raw[:]); err != nil {
				return fmt.Errorf("key: reading Beaver share for column %d: %w", i, err)
			}
			shares[j] = block.FromBytes(raw)
		}
		k.Columns[i].BeaverShare = BeaverTriple{A: shares[0], B: shares[1], C: shares[2]}
		k.Columns[i].Vernalized = false
	}

	var offsetRaw [16]byte
	if _, err := io.ReadFull(r, offsetRaw[:]); err != nil {
		return fmt.Errorf("key: reading input offset share: %w", err)
	}
	k.OffsetShare = block.FromBytes(offsetRaw)

	return nil
}
