package vernal

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/rometsch-lab/grotto-dpf/block"
	"github.com/rometsch-lab/grotto-dpf/key"
)

// DeriveCorrelation expands a shared master secret into a fresh Beaver
// triple share for one wildcard output column, keyed by columnIdx so
// distinct columns never reuse the same correlation. This lets a dealer
// hand both parties a compact master secret instead of transmitting the
// full triple, using HKDF-SHA256 for the expansion (spec §4.4's "Beaver
// correlation tuple" is deliberately silent on how it is distributed; this
// is the module's chosen realization).
func DeriveCorrelation(masterSecret []byte, columnIdx int, partyID byte) (key.BeaverTriple, error) {
	info := []byte{byte(columnIdx), partyID}
	r := hkdf.New(sha256.New, masterSecret, nil, info)

	var raw [48]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return key.BeaverTriple{}, err
	}

	var a, b [16]byte
	copy(a[:], raw[0:16])
	copy(b[:], raw[16:32])
	var c [16]byte
	copy(c[:], raw[32:48])

	return key.BeaverTriple{A: block.FromBytes(a), B: block.FromBytes(b), C: block.FromBytes(c)}, nil
}
