package deck

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

// RNG abstracts the random source used for shuffling so tests can be deterministic.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

var suite suites.Suite = suites.MustFind("Ed25519")

// streamRNG draws uniform integers from a kyber cipher stream.
type streamRNG struct {
	stream cipher.Stream
}

// NewSecureRNG returns an RNG backed by the Ed25519 suite random stream.
func NewSecureRNG() RNG {
	return streamRNG{stream: suite.RandomStream()}
}

func (r streamRNG) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	return int(random.Int(big.NewInt(int64(n)), r.stream).Int64())
}

// Shuffle permutes items in place (Fisher-Yates).
func Shuffle[T any](items []T, rng RNG) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// permutation returns a random permutation of [0, size).
func permutation(size int, rng RNG) []int {
	perm := make([]int, size)
	for i := range perm {
		perm[i] = i
	}
	Shuffle(perm, rng)
	return perm
}
