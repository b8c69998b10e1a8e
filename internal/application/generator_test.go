package application

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/seedpass/internal/domain/model"
)

// fixedSource always picks index pick (clamped to n-1) and applies an
// optional reordering in place of a random shuffle.
type fixedSource struct {
	pick    int
	reverse bool
}

func (f fixedSource) IntN(n int) int {
	return min(f.pick, n-1)
}

func (f fixedSource) Shuffle(n int, swap func(i, j int)) {
	if !f.reverse {
		return
	}
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

func TestGenerator_Golden(t *testing.T) {
	tests := []struct {
		name   string
		seed   string
		length int
		want   string
	}{
		{name: "default length", seed: "hello", length: 12, want: "aA0!Si~Eruho"},
		{name: "digest exhausted", seed: "hello", length: 40, want: "aA0!Si~EruhoM?7QPD(cBwEoFl%qLeZu*9<Kaaaa"},
		{name: "below minimum", seed: "hello", length: 3, want: "aA0!"},
		{name: "zero length", seed: "x", length: 0, want: "aA0!"},
		{name: "negative length", seed: "x", length: -7, want: "aA0!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(fixedSource{})
			assert.Equal(t, tt.want, g.Generate(tt.seed, tt.length))
		})
	}
}

func TestGenerator_ShuffleOnlyReorders(t *testing.T) {
	plain := NewGenerator(fixedSource{}).Generate("hello", 12)
	reversed := NewGenerator(fixedSource{reverse: true}).Generate("hello", 12)

	runes := []rune(plain)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	assert.Equal(t, string(runes), reversed)
}

func TestGenerator_DigestPartIndependentOfRandomSource(t *testing.T) {
	low := NewGenerator(fixedSource{pick: 0}).Generate("correct horse battery staple", 20)
	high := NewGenerator(fixedSource{pick: 1000}).Generate("correct horse battery staple", 20)

	// Class representatives differ, the digest-derived tail does not.
	assert.NotEqual(t, low[:4], high[:4])
	assert.Equal(t, low[4:], high[4:])
	assert.Equal(t, "zZ9~", high[:4])
}

func TestGenerator_SeededSourceIsReproducible(t *testing.T) {
	first := NewGenerator(rand.New(rand.NewPCG(1, 2))).Generate("seed", 16)
	second := NewGenerator(rand.New(rand.NewPCG(1, 2))).Generate("seed", 16)
	assert.Equal(t, first, second)
}

func TestGenerator_DifferentSeedsDiffer(t *testing.T) {
	g := NewGenerator(fixedSource{})
	assert.NotEqual(t, g.Generate("alpha", 12), g.Generate("beta", 12))
}

func TestGenerator_LengthAndClasses(t *testing.T) {
	g := NewGenerator(nil)
	seeds := []string{"a", "hello", "correct horse battery staple", "ünïcødé", strings.Repeat("x", 500)}
	lengths := []int{-1, 0, 1, 4, 5, 12, 32, 36, 64, 100}

	for _, seed := range seeds {
		for _, length := range lengths {
			pw := g.Generate(seed, length)
			require.Len(t, pw, max(length, 4), "seed=%q length=%d", seed, length)
			for _, class := range model.CharacterClasses {
				assert.True(t, strings.ContainsAny(pw, class),
					"seed=%q length=%d password=%q missing class %q", seed, length, pw, class)
			}
			for _, c := range pw {
				assert.True(t, strings.ContainsRune(model.CharacterPool, c), "unexpected character %q", c)
			}
		}
	}
}

func TestGenerator_RepeatedCallsMayDiffer(t *testing.T) {
	g := NewGenerator(nil)
	seen := make(map[string]struct{})
	for range 20 {
		seen[g.Generate("hello", 12)] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "crypto source should vary class picks and ordering")
}

func TestCryptoSource_IntNRange(t *testing.T) {
	var s CryptoSource
	for range 200 {
		v := s.IntN(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
}

func TestCryptoSource_ShuffleIsPermutation(t *testing.T) {
	var s CryptoSource
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	s.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, items)
}
