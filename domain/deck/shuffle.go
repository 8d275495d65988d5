package deck

import (
	"crypto/cipher"
	"math/big"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffler is the only place where entropy enters the engine.
// *rand.Rand from math/rand/v2 satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
	IntN(n int) int
}

// NewSeededShuffler returns a deterministic PCG source, suited for tests and replays.
func NewSeededShuffler(seed uint64) Shuffler {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

var suite suites.Suite = suites.MustFind("Ed25519")

// KyberShuffler draws from the cipher stream of the Ed25519 suite, so a
// shuffle cannot be replayed from a seed.
type KyberShuffler struct {
	stream cipher.Stream
}

func NewKyberShuffler() *KyberShuffler {
	return &KyberShuffler{stream: suite.RandomStream()}
}

// IntN returns a uniform integer in [0, n). It panics if n <= 0.
func (k *KyberShuffler) IntN(n int) int {
	if n <= 0 {
		panic("invalid argument to IntN")
	}
	return int(random.Int(big.NewInt(int64(n)), k.stream).Int64())
}

// Shuffle is a Fisher-Yates shuffle over the cipher stream.
func (k *KyberShuffler) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, k.IntN(i+1))
	}
}
