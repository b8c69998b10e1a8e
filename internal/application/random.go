package application

import (
	"crypto/rand"
	"math/big"
)

// CryptoSource is a RandomSource backed by crypto/rand. It holds no state and
// is safe for concurrent use.
type CryptoSource struct{}

// IntN returns a uniform random int in [0, n) using crypto/rand.
func (CryptoSource) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("random: crypto/rand failed: " + err.Error())
	}
	return int(v.Int64())
}

// Shuffle performs a Fisher-Yates shuffle of n elements.
func (s CryptoSource) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, s.IntN(i+1))
	}
}
