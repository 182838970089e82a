package block

import (
	"io"
	"sync"

	ctrdrbg "github.com/sixafter/aes-ctr-drbg"
)

// Sampler draws cryptographically secure random blocks and bits. Random-seed
// acquisition is treated as an external collaborator by spec §1 ("a sampling
// function is assumed"); this is that function, realized with a NIST
// SP 800-90A AES-CTR-DRBG reader rather than raw crypto/rand, the way the
// teacher's dpf.RandomSeed/dpf.RandomBit wrap crypto/rand.Read.
type Sampler struct {
	mu     sync.Mutex
	reader io.Reader
}

var defaultSampler = newSampler()

func newSampler() *Sampler {
	r, err := ctrdrbg.NewReader()
	if err != nil {
		panic(err)
	}
	return &Sampler{reader: r}
}

func (s *Sampler) read(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.ReadFull(s.reader, p); err != nil {
		panic(err)
	}
}

// SampleSeed draws a fresh random root block with an arbitrary control bit;
// callers that need a specific control bit should call WithControlBit.
func SampleSeed() Block {
	var b [16]byte
	defaultSampler.read(b[:])
	return FromBytes(b)
}

// SampleBit draws a single cryptographically secure random bit.
func SampleBit() byte {
	var b [1]byte
	defaultSampler.read(b[:])
	return b[0] & 1
}

// SampleBytes draws n cryptographically secure random bytes, used for
// sampling Beaver correlation material and input masks of arbitrary width.
func SampleBytes(n int) []byte {
	b := make([]byte, n)
	defaultSampler.read(b)
	return b
}
