package deck

import (
	"crypto/cipher"
	"math/big"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffler permutes n elements by calling swap, in the manner of rand.Shuffle.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// SeededShuffler is a deterministic Fisher-Yates shuffle. Two shufflers built
// from the same seed produce the same permutation.
type SeededShuffler struct {
	r *rand.Rand
}

func NewSeededShuffler(seed uint64) *SeededShuffler {
	return &SeededShuffler{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededShuffler) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

var suite suites.Suite = suites.MustFind("Ed25519")

// StreamShuffler draws its swap indexes from the Ed25519 suite's
// cryptographic random stream.
type StreamShuffler struct {
	stream cipher.Stream
}

func NewStreamShuffler() *StreamShuffler {
	return &StreamShuffler{stream: suite.RandomStream()}
}

// Fisher-Yates
func (s *StreamShuffler) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := random.Int(big.NewInt(int64(i+1)), s.stream)
		swap(i, int(j.Int64()))
	}
}
