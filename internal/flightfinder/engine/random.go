package engine

import (
	"crypto/rand"
	"math"
	"math/big"
)

// Rand is the source of randomness threaded through schedule generation,
// carrier selection, and offer assembly. Tests inject a seeded source to
// reproduce output deterministically.
type Rand interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

type safeRand struct{}

// NewSafeRand returns a Rand backed by crypto/rand.
func NewSafeRand() Rand {
	return safeRand{}
}

func (safeRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	value, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(value.Int64())
}

func (safeRand) Float64() float64 {
	max := new(big.Int).Lsh(big.NewInt(1), 53)
	value, err := rand.Int(rand.Reader, max)
	if err != nil {
		return 0
	}
	return float64(value.Int64()) / math.Pow(2, 53)
}
