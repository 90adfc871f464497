// Package strength scores passwords with a fixed category heuristic.
//
// The score is the sum of five independent category weights (length,
// uppercase, lowercase, digit, special character) and always lies in
// [0, 100]. It does not consult dictionaries or breach lists.
package strength

import (
	"strings"
	"unicode/utf8"

	"vault/internal/domain/entity"
	"vault/internal/domain/service"
)

// SpecialCharacters is the punctuation set counted by the special character check.
const SpecialCharacters = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// Feedback lines, in check order.
const (
	FeedbackLength    = "Add at least 8 characters"
	FeedbackUppercase = "Include uppercase letters"
	FeedbackLowercase = "Include lowercase letters"
	FeedbackNumbers   = "Add numbers"
	FeedbackSpecial   = "Include special characters"
)

const minLength = 8

type category struct {
	weight   float64
	feedback string
	match    func(string) bool
}

var categories = []category{
	{25, FeedbackLength, func(p string) bool { return utf8.RuneCountInString(p) >= minLength }},
	{25, FeedbackUppercase, containsRange('A', 'Z')},
	{25, FeedbackLowercase, containsRange('a', 'z')},
	{12.5, FeedbackNumbers, containsRange('0', '9')},
	{12.5, FeedbackSpecial, func(p string) bool { return strings.ContainsAny(p, SpecialCharacters) }},
}

func containsRange(lo, hi rune) func(string) bool {
	return func(p string) bool {
		return strings.ContainsFunc(p, func(r rune) bool { return r >= lo && r <= hi })
	}
}

// Score rates password and lists the feedback for every unmet category.
func Score(password string, enhanced bool) entity.StrengthResult {
	var score float64
	feedback := make([]string, 0, len(categories))

	for _, c := range categories {
		if c.match(password) {
			score += c.weight
		} else {
			feedback = append(feedback, c.feedback)
		}
	}

	return entity.StrengthResult{
		Score:    score,
		Label:    LabelFor(score, enhanced),
		Feedback: feedback,
	}
}

// LabelFor maps a score to its label.
func LabelFor(score float64, enhanced bool) entity.Label {
	switch {
	case score < 50:
		return entity.LabelWeak
	case score < 75:
		return entity.LabelMedium
	case enhanced:
		return entity.LabelUnbreakable
	default:
		return entity.LabelStrong
	}
}

type scorer struct{}

// NewScorer returns Score as a service.StrengthScorer.
func NewScorer() service.StrengthScorer {
	return scorer{}
}

func (scorer) Score(password string, enhanced bool) entity.StrengthResult {
	return Score(password, enhanced)
}
