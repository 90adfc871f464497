package generator

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"vault/internal/domain/entity"
	"vault/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func allClasses(length int) entity.GeneratorOptions {
	return entity.GeneratorOptions{
		Length:           length,
		IncludeUppercase: true,
		IncludeLowercase: true,
		IncludeNumbers:   true,
		IncludeSymbols:   true,
	}
}

func assertClass(t *testing.T, pw string, enabled bool, alphabet string) {
	t.Helper()
	if enabled {
		assert.True(t, strings.ContainsAny(pw, alphabet), "%q has no character from %q", pw, alphabet)
	} else {
		assert.False(t, strings.ContainsAny(pw, alphabet), "%q has a character from disabled %q", pw, alphabet)
	}
}

func TestGenerate_ClassPresenceAndPool(t *testing.T) {
	g := seeded(1)

	for mask := 1; mask < 16; mask++ {
		opts := entity.GeneratorOptions{
			Length:           8,
			IncludeUppercase: mask&1 != 0,
			IncludeLowercase: mask&2 != 0,
			IncludeNumbers:   mask&4 != 0,
			IncludeSymbols:   mask&8 != 0,
		}

		for _, enhanced := range []bool{false, true} {
			for range 50 {
				pw, err := g.Generate(opts, enhanced)
				require.NoError(t, err)

				assert.GreaterOrEqual(t, utf8.RuneCountInString(pw), entity.TargetLength(opts.Length, enhanced))
				assertClass(t, pw, opts.IncludeUppercase, Uppercase)
				assertClass(t, pw, opts.IncludeLowercase, Lowercase)
				assertClass(t, pw, opts.IncludeNumbers, Numbers)
				assertClass(t, pw, opts.IncludeSymbols, Symbols)

				pool := Pool(opts, enhanced)
				for _, r := range pw {
					require.True(t, strings.ContainsRune(pool, r), "rune %q outside pool for %+v enhanced=%v", r, opts, enhanced)
				}
			}
		}
	}
}

func TestGenerate_ExactLength(t *testing.T) {
	g := seeded(2)

	for _, length := range []int{8, 12, 20, 32} {
		pw, err := g.Generate(allClasses(length), false)
		require.NoError(t, err)
		assert.Equal(t, length, utf8.RuneCountInString(pw))
	}

	for _, length := range []int{16, 40, 64} {
		pw, err := g.Generate(allClasses(length), true)
		require.NoError(t, err)
		assert.Equal(t, length, utf8.RuneCountInString(pw))
	}
}

func TestGenerate_EnhancedRaisesTargetTo16(t *testing.T) {
	g := seeded(3)

	pw, err := g.Generate(allClasses(8), true)
	require.NoError(t, err)
	assert.Equal(t, 16, utf8.RuneCountInString(pw))
}

func TestGenerate_SeedsAreNotTrimmed(t *testing.T) {
	g := seeded(4)

	pw, err := g.Generate(allClasses(2), false)
	require.NoError(t, err)
	assert.Equal(t, 4, utf8.RuneCountInString(pw))
	assert.True(t, strings.ContainsAny(pw, Uppercase))
	assert.True(t, strings.ContainsAny(pw, Lowercase))
	assert.True(t, strings.ContainsAny(pw, Numbers))
	assert.True(t, strings.ContainsAny(pw, Symbols))
}

func TestGenerate_EmptyCharset(t *testing.T) {
	g := seeded(5)

	pw, err := g.Generate(entity.GeneratorOptions{Length: 12}, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyCharset))
	assert.Empty(t, pw)
}

func TestGenerate_EnhancedWithNoClassesUsesExtendedSymbols(t *testing.T) {
	g := seeded(6)

	pw, err := g.Generate(entity.GeneratorOptions{Length: 8}, true)
	require.NoError(t, err)
	assert.Equal(t, 16, utf8.RuneCountInString(pw))
	for _, r := range pw {
		assert.True(t, strings.ContainsRune(EnhancedSymbols, r), "unexpected rune %q", r)
	}
}

func TestGenerate_DeterministicForSameSource(t *testing.T) {
	a, err := seeded(7).Generate(allClasses(24), true)
	require.NoError(t, err)
	b, err := seeded(7).Generate(allClasses(24), true)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerate_SeedPositionsAreShuffled(t *testing.T) {
	g := seeded(8)
	opts := entity.GeneratorOptions{Length: 12, IncludeUppercase: true, IncludeNumbers: true}

	// Without shuffling the uppercase seed would always lead.
	leadingDigit := 0
	for range 200 {
		pw, err := g.Generate(opts, false)
		require.NoError(t, err)
		if strings.ContainsRune(Numbers, rune(pw[0])) {
			leadingDigit++
		}
	}

	assert.Positive(t, leadingDigit)
}

func TestGenerate_DefaultSource(t *testing.T) {
	pw, err := Generate(allClasses(12), false)
	require.NoError(t, err)
	assert.Len(t, pw, 12)

	other, err := NewPasswordGenerator().Generate(allClasses(12), false)
	require.NoError(t, err)
	assert.NotEqual(t, pw, other)
}

func TestPoolSize(t *testing.T) {
	g := seeded(9)

	tests := []struct {
		name     string
		opts     entity.GeneratorOptions
		enhanced bool
		want     int
	}{
		{"none", entity.GeneratorOptions{}, false, 0},
		{"none enhanced", entity.GeneratorOptions{}, true, 13},
		{"lower", entity.GeneratorOptions{IncludeLowercase: true}, false, 26},
		{"digits and symbols", entity.GeneratorOptions{IncludeNumbers: true, IncludeSymbols: true}, false, 36},
		{"all", allClasses(12), false, 88},
		{"all enhanced", allClasses(12), true, 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.PoolSize(tt.opts, tt.enhanced))
			assert.Equal(t, tt.want, utf8.RuneCountInString(Pool(tt.opts, tt.enhanced)))
		})
	}
}
