// Package generator builds random passwords under per-class constraints.
//
// Every enabled class contributes one seeded character, the rest is padded
// from the union of enabled alphabets, and the result is shuffled with
// Fisher-Yates. The default randomness source reads crypto/rand, but the
// package makes no cryptographic strength claim about its output.
package generator

import (
	"crypto/rand"
	"math/big"

	"vault/internal/domain/entity"
	"vault/internal/domain/service"
	"vault/internal/errors"
)

// Class alphabets.
const (
	Uppercase       = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase       = "abcdefghijklmnopqrstuvwxyz"
	Numbers         = "0123456789"
	Symbols         = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	EnhancedSymbols = "₿∞§¶•ªº°¿¡™®©"
)

// ErrEmptyCharset is returned when no character class is enabled.
var ErrEmptyCharset = errors.New("no character class selected")

// Source supplies uniform random integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type cryptoSource struct{}

func (cryptoSource) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand.Read does not fail on supported platforms.
		panic(errors.Wrap(err, "read crypto/rand"))
	}

	return int(v.Int64())
}

// Generator produces passwords from a Source.
type Generator struct {
	src Source
}

// New returns a Generator drawing from src, or from crypto/rand when src is nil.
func New(src Source) *Generator {
	if src == nil {
		src = cryptoSource{}
	}

	return &Generator{src: src}
}

// NewPasswordGenerator returns the crypto/rand backed generator as a service.
func NewPasswordGenerator() service.PasswordGenerator {
	return New(nil)
}

var defaultGenerator = New(nil)

// Generate runs the default generator.
func Generate(opts entity.GeneratorOptions, enhanced bool) (string, error) {
	return defaultGenerator.Generate(opts, enhanced)
}

// Generate returns a password of at least TargetLength(opts.Length, enhanced)
// characters holding one character of every enabled class. When more classes
// are enabled than the target length allows, the seeds are kept and the
// output is longer than the target.
func (g *Generator) Generate(opts entity.GeneratorOptions, enhanced bool) (string, error) {
	classes := enabledClasses(opts)
	pool := buildPool(classes, enhanced)
	if len(pool) == 0 {
		return "", errors.WithStack(ErrEmptyCharset)
	}

	target := entity.TargetLength(opts.Length, enhanced)
	out := make([]rune, 0, max(target, len(classes)))

	for _, class := range classes {
		out = append(out, g.pick(class))
	}

	for len(out) < target {
		out = append(out, g.pick(pool))
	}

	g.shuffle(out)

	return string(out), nil
}

// PoolSize returns the number of characters padding draws from.
func (g *Generator) PoolSize(opts entity.GeneratorOptions, enhanced bool) int {
	return len(buildPool(enabledClasses(opts), enhanced))
}

// Pool returns the effective character pool for opts.
func Pool(opts entity.GeneratorOptions, enhanced bool) string {
	return string(buildPool(enabledClasses(opts), enhanced))
}

func (g *Generator) pick(alphabet []rune) rune {
	return alphabet[g.src.IntN(len(alphabet))]
}

func (g *Generator) shuffle(s []rune) {
	for i := len(s) - 1; i > 0; i-- {
		j := g.src.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

var (
	upperRunes    = []rune(Uppercase)
	lowerRunes    = []rune(Lowercase)
	numberRunes   = []rune(Numbers)
	symbolRunes   = []rune(Symbols)
	enhancedRunes = []rune(EnhancedSymbols)
)

// enabledClasses lists the alphabets of the enabled toggles in seeding order.
func enabledClasses(opts entity.GeneratorOptions) [][]rune {
	var classes [][]rune
	if opts.IncludeUppercase {
		classes = append(classes, upperRunes)
	}
	if opts.IncludeLowercase {
		classes = append(classes, lowerRunes)
	}
	if opts.IncludeNumbers {
		classes = append(classes, numberRunes)
	}
	if opts.IncludeSymbols {
		classes = append(classes, symbolRunes)
	}

	return classes
}

func buildPool(classes [][]rune, enhanced bool) []rune {
	var pool []rune
	for _, class := range classes {
		pool = append(pool, class...)
	}
	if enhanced {
		pool = append(pool, enhancedRunes...)
	}

	return pool
}
