package grotto

import (
	"fmt"
	"math"

	"github.com/rometsch-lab/grotto-dpf/block"
	"github.com/rometsch-lab/grotto-dpf/eval"
	"github.com/rometsch-lab/grotto-dpf/inputs"
	"github.com/rometsch-lab/grotto-dpf/key"
	"github.com/rometsch-lab/grotto-dpf/keygen"
	"github.com/rometsch-lab/grotto-dpf/leaf"
)

// Piece is one segment of a piecewise-polynomial function: for inputs
// x >= Breakpoint (up to the next piece's Breakpoint, or the end of the
// domain for the last piece), the function's value is Poly.Evaluate(x)
// plus the sum of the secret Corrections of this piece and of every
// earlier piece. The first piece's Correction is not used.
// Poly is public; Correction is the only thing ever secret-shared.
type Piece struct {
	Breakpoint uint64
	Poly       Polynomial
	Correction uint32
}

// correctionArith is the leaf arithmetic used for every boundary DPF: a
// plain modular uint32, matching spec §4.3's default integer output kind.
var correctionArith = leaf.Integer[uint32]{}

// boundaryKeys is one point-function key pair marking a single piece
// boundary: the DPF's secret point value y is the piece's Correction, and
// its secret location x* is the piece's Breakpoint.
type boundaryKeys struct {
	Alice *key.Key
	Bob   *key.Key
}

// KeyPair is the dealer's output of Generate: one DPF per interior piece
// boundary, aggregated DSPF-style (spec §6.1: "built from one DSPF-style
// aggregation of DPFs per breakpoint"), plus the public piece table both
// parties already hold.
type KeyPair struct {
	Depth      int
	Pieces     []Piece
	boundaries []boundaryKeys
}

// Generate deals the key material for a piecewise-polynomial function over
// the domain [0, 2^depth). pieces must be sorted by strictly increasing
// Breakpoint and the first piece must start at 0.
func Generate(prg block.PRG, depth int, pieces []Piece) (*KeyPair, error) {
	if len(pieces) == 0 {
		return nil, fmt.Errorf("grotto: at least one piece is required")
	}
	if pieces[0].Breakpoint != 0 {
		return nil, fmt.Errorf("grotto: first piece must start at breakpoint 0")
	}
	for i := 1; i < len(pieces); i++ {
		if pieces[i].Breakpoint <= pieces[i-1].Breakpoint {
			return nil, fmt.Errorf("grotto: piece breakpoints must be strictly increasing")
		}
	}

	boundaries := make([]boundaryKeys, 0, len(pieces)-1)
	for i := 1; i < len(pieces); i++ {
		x := inputs.NewBitStringFromUint64(pieces[i].Breakpoint, depth)
		outputs := []keygen.OutputSpec[uint32]{{Value: pieces[i].Correction}}
		res, err := keygen.Gen(prg, x, outputs, correctionArith, 1)
		if err != nil {
			return nil, fmt.Errorf("grotto: generating boundary %d keys: %w", i, err)
		}
		boundaries = append(boundaries, boundaryKeys{Alice: res.Alice, Bob: res.Bob})
	}

	return &KeyPair{Depth: depth, Pieces: pieces, boundaries: boundaries}, nil
}

// Party holds one side's share of a Grotto key, precomputed once into a
// per-position correction profile so repeated Evaluate calls don't redo
// the full-domain DPF expansion (spec §6.1: "consuming eval.Full").
type Party struct {
	id      byte
	pieces  []Piece
	profile []uint32 // profile[x] is this party's share of sum(Correction_i for i >= 1, Breakpoint_i <= x)
}

// NewParty precomputes partyID's (0 = Alice, 1 = Bob) correction profile
// across the whole domain.
func NewParty(prg block.PRG, kp *KeyPair, partyID byte) (*Party, error) {
	domainSize := uint64(1) << uint(kp.Depth)
	impulses := make([]uint32, domainSize)

	m := eval.NewFullTreeMemoizer()
	for i, b := range kp.boundaries {
		k := b.Alice
		if partyID == 1 {
			k = b.Bob
		}
		values, err := eval.Full(prg, k, 0, correctionArith, 1, m)
		if err != nil {
			return nil, fmt.Errorf("grotto: full eval of boundary %d: %w", i, err)
		}
		for pos, v := range values {
			impulses[pos] = correctionArith.Add(impulses[pos], v)
		}
	}

	profile := make([]uint32, domainSize)
	running := uint32(0)
	for pos := range impulses {
		running = correctionArith.Add(running, impulses[pos])
		profile[pos] = running
	}

	return &Party{id: partyID, pieces: kp.Pieces, profile: profile}, nil
}

// Evaluate returns this party's additive share of f(x); the correction
// parts of the two shares add up modulo 2^32. Combining both parties'
// shares with Combine reconstructs the full piecewise value.
func (p *Party) Evaluate(x uint64) (float64, error) {
	if x >= uint64(len(p.profile)) {
		return 0, fmt.Errorf("grotto: x=%d is out of domain", x)
	}
	idx := pieceIndex(p.pieces, x)
	share := float64(p.profile[x])
	if p.id == 0 {
		share += p.pieces[idx].Poly.Evaluate(float64(x))
	}
	return share, nil
}

// pieceIndex returns the index of the active piece at x: the last piece
// whose Breakpoint is <= x.
func pieceIndex(pieces []Piece, x uint64) int {
	idx := 0
	for i, pc := range pieces {
		if pc.Breakpoint > x {
			break
		}
		idx = i
	}
	return idx
}

// Combine reconstructs f(x) from both parties' shares. The correction
// profile is shared additively modulo 2^32, so the sum is reduced modulo
// 2^32 into [-2^31, 2^31) to cancel the wraparound between the two shares.
func Combine(a, b float64) float64 {
	const modulus = 1 << 32
	r := math.Mod(a+b, modulus)
	if r >= modulus/2 {
		r -= modulus
	} else if r < -modulus/2 {
		r += modulus
	}
	return r
}
