package application

import (
	"crypto/sha256"

	"github.com/ericfisherdev/seedpass/internal/domain/model"
)

// DefaultLength is the password length used when the caller does not ask for one.
const DefaultLength = 12

// RandomSource supplies the non-deterministic parts of password generation.
// Tests substitute a fixed source to make generation reproducible.
type RandomSource interface {
	// IntN returns a uniformly distributed int in [0, n). n must be > 0.
	IntN(n int) int
	// Shuffle permutes n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// Generator derives passwords from seed text. The bulk of each password is a
// function of the SHA-256 digest of the seed; one character per class and the
// final ordering come from the RandomSource.
type Generator struct {
	rnd RandomSource
}

// NewGenerator creates a Generator. A nil rnd selects the crypto/rand backed source.
func NewGenerator(rnd RandomSource) *Generator {
	if rnd == nil {
		rnd = CryptoSource{}
	}
	return &Generator{rnd: rnd}
}

// Generate returns a password of length max(minLength, 4) containing at least
// one lowercase letter, uppercase letter, digit and special character.
// Seed validation is the caller's concern.
func (g *Generator) Generate(seedText string, minLength int) string {
	digest := sha256.Sum256([]byte(seedText))
	pool := model.CharacterPool

	classes := model.CharacterClasses
	remaining := max(minLength-len(classes), 0)
	chars := make([]byte, 0, len(classes)+remaining)

	for _, class := range classes {
		chars = append(chars, class[g.rnd.IntN(len(class))])
	}

	// Each digest byte is one pair of hex digits of the rendered hash.
	for i := range remaining {
		if i < len(digest) {
			chars = append(chars, pool[int(digest[i])%len(pool)])
			continue
		}
		chars = append(chars, pool[g.rnd.IntN(len(pool))])
	}

	g.rnd.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})

	return string(chars)
}
