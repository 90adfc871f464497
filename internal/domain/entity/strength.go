// Package entity contains the core business objects of the project.
package entity

// Label is the strength tier derived from a score.
type Label string

const (
	// LabelWeak is assigned to scores below 50.
	LabelWeak Label = "Weak"
	// LabelMedium is assigned to scores from 50 up to, but not including, 75.
	LabelMedium Label = "Medium"
	// LabelStrong is assigned to scores of 75 and above.
	LabelStrong Label = "Strong"
	// LabelUnbreakable replaces LabelStrong in enhanced mode.
	LabelUnbreakable Label = "Unbreakable"
)

// String returns the string representation of the Label.
func (l Label) String() string {
	return string(l)
}

// IsValid checks if the Label is a valid value.
func (l Label) IsValid() bool {
	switch l {
	case LabelWeak, LabelMedium, LabelStrong, LabelUnbreakable:
		return true
	default:
		return false
	}
}

// Color returns the display colour name for the label.
func (l Label) Color() string {
	switch l {
	case LabelWeak:
		return "red"
	case LabelMedium:
		return "yellow"
	case LabelStrong:
		return "green"
	case LabelUnbreakable:
		return "purple"
	default:
		return ""
	}
}

// Meter classes used by strength bars. They depend on the score only.
const (
	MeterWeak   = "weak"
	MeterMedium = "medium"
	MeterStrong = "strong"
)

// StrengthResult is the outcome of scoring a single password.
type StrengthResult struct {
	Score    float64  `json:"score"`
	Label    Label    `json:"label"`
	Feedback []string `json:"feedback"`
}

// Meter returns the strength bar class for the result's score.
func (r StrengthResult) Meter() string {
	return MeterFor(r.Score)
}

// MeterFor maps a score to a strength bar class.
func MeterFor(score float64) string {
	switch {
	case score < 50:
		return MeterWeak
	case score < 75:
		return MeterMedium
	default:
		return MeterStrong
	}
}

// Analysis is a StrengthResult decorated for presentation.
type Analysis struct {
	StrengthResult
	Color    string `json:"color"`
	Meter    string `json:"meter"`
	Length   int    `json:"length"`
	Enhanced bool   `json:"enhanced"`
}

// NewAnalysis builds an Analysis from a scored result.
func NewAnalysis(result StrengthResult, length int, enhanced bool) *Analysis {
	return &Analysis{
		StrengthResult: result,
		Color:          result.Label.Color(),
		Meter:          result.Meter(),
		Length:         length,
		Enhanced:       enhanced,
	}
}
