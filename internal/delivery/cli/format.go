// Package cli is the terminal delivery: output formatting, the interactive
// session and its enhanced mode unlock.
package cli

import (
	"fmt"
	"io"
	"strings"

	"vault/internal/domain/entity"
)

// EliteBanner is printed when a session switches into enhanced mode.
const EliteBanner = "ELITE MODE ACTIVATED"

// WriteAnalysis prints a strength analysis.
func WriteAnalysis(w io.Writer, a *entity.Analysis) {
	fmt.Fprintf(w, "Strength: %s (%s/100) [%s]\n", a.Label, formatScore(a.Score), a.Color)
	fmt.Fprintf(w, "Meter:    %s\n", a.Meter)
	if len(a.Feedback) == 0 {
		return
	}

	fmt.Fprintln(w, "Feedback:")
	for _, line := range a.Feedback {
		fmt.Fprintf(w, "  - %s\n", line)
	}
}

// WriteGenerated prints a generated password with its metadata.
func WriteGenerated(w io.Writer, g *entity.GeneratedPassword) {
	fmt.Fprintf(w, "Password: %s\n", g.Password)
	fmt.Fprintf(w, "Length:   %d (target %d)\n", len([]rune(g.Password)), g.TargetLength)
	fmt.Fprintf(w, "Classes:  %s\n", describeClasses(g.Options, g.Enhanced))
	fmt.Fprintf(w, "Pool:     %d characters, ~%.2f bits\n", g.PoolSize, g.EntropyBits)
	if g.Strength != nil {
		WriteAnalysis(w, g.Strength)
	}
}

func describeClasses(opts entity.GeneratorOptions, enhanced bool) string {
	var names []string
	if opts.IncludeUppercase {
		names = append(names, "upper")
	}
	if opts.IncludeLowercase {
		names = append(names, "lower")
	}
	if opts.IncludeNumbers {
		names = append(names, "numbers")
	}
	if opts.IncludeSymbols {
		names = append(names, "symbols")
	}
	if enhanced {
		names = append(names, "extended")
	}

	return strings.Join(names, ", ")
}

func formatScore(score float64) string {
	if score == float64(int(score)) {
		return fmt.Sprintf("%d", int(score))
	}

	return fmt.Sprintf("%.1f", score)
}
