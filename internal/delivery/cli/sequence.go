package cli

import "strings"

// UnlockSequence is the token sequence that switches a session into enhanced mode.
var UnlockSequence = []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a"}

// SequenceDetector watches a stream of tokens for a fixed trailing sequence.
type SequenceDetector struct {
	sequence []string
	recent   []string
}

// NewSequenceDetector returns a detector for sequence, or for UnlockSequence when none is given.
func NewSequenceDetector(sequence ...string) *SequenceDetector {
	if len(sequence) == 0 {
		sequence = UnlockSequence
	}

	seq := make([]string, len(sequence))
	for i, tok := range sequence {
		seq[i] = normalizeToken(tok)
	}

	return &SequenceDetector{
		sequence: seq,
		recent:   make([]string, 0, len(seq)),
	}
}

// Feed records one token and reports whether the most recent tokens equal the sequence.
// A match clears the history so the sequence must be entered again to match again.
func (d *SequenceDetector) Feed(token string) bool {
	if len(d.recent) == len(d.sequence) {
		copy(d.recent, d.recent[1:])
		d.recent = d.recent[:len(d.recent)-1]
	}
	d.recent = append(d.recent, normalizeToken(token))

	if len(d.recent) < len(d.sequence) {
		return false
	}

	for i, tok := range d.sequence {
		if d.recent[i] != tok {
			return false
		}
	}

	d.Reset()

	return true
}

// FeedLine feeds every whitespace-separated token of line and reports whether any completed the sequence.
func (d *SequenceDetector) FeedLine(line string) bool {
	matched := false
	for _, tok := range strings.Fields(line) {
		if d.Feed(tok) {
			matched = true
		}
	}

	return matched
}

// IsToken reports whether token is part of the sequence alphabet.
func (d *SequenceDetector) IsToken(token string) bool {
	token = normalizeToken(token)
	for _, tok := range d.sequence {
		if tok == token {
			return true
		}
	}

	return false
}

// Reset clears the recorded tokens.
func (d *SequenceDetector) Reset() {
	d.recent = d.recent[:0]
}

func normalizeToken(tok string) string {
	tok = strings.ToLower(strings.TrimSpace(tok))
	switch tok {
	case "arrowup", "↑":
		return "up"
	case "arrowdown", "↓":
		return "down"
	case "arrowleft", "←":
		return "left"
	case "arrowright", "→":
		return "right"
	default:
		return tok
	}
}
