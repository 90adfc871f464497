package entity

// Length bounds accepted by the generator.
const (
	MinLength         = 8
	MaxLength         = 32
	EnhancedMaxLength = 64
	// EnhancedMinTarget is the smallest target length in enhanced mode.
	EnhancedMinTarget = 16
)

// GeneratorOptions selects the length and character classes of a generated password.
type GeneratorOptions struct {
	Length           int  `json:"length"`
	IncludeUppercase bool `json:"include_uppercase"`
	IncludeLowercase bool `json:"include_lowercase"`
	IncludeNumbers   bool `json:"include_numbers"`
	IncludeSymbols   bool `json:"include_symbols"`
}

// ClassCount returns how many class toggles are enabled.
func (o GeneratorOptions) ClassCount() int {
	n := 0
	for _, on := range []bool{o.IncludeUppercase, o.IncludeLowercase, o.IncludeNumbers, o.IncludeSymbols} {
		if on {
			n++
		}
	}

	return n
}

// Bounds returns the accepted [min, max] length range for the mode.
func Bounds(enhanced bool) (lo, hi int) {
	if enhanced {
		return MinLength, EnhancedMaxLength
	}

	return MinLength, MaxLength
}

// Clamp restricts length to Bounds(enhanced).
func Clamp(length int, enhanced bool) int {
	lo, hi := Bounds(enhanced)

	return min(max(length, lo), hi)
}

// TargetLength is the output length floor for the requested length and mode.
func TargetLength(length int, enhanced bool) int {
	if enhanced {
		return max(length, EnhancedMinTarget)
	}

	return length
}

// GeneratedPassword is a generated password with its derived metadata.
type GeneratedPassword struct {
	Password     string           `json:"password"`
	Options      GeneratorOptions `json:"options"`
	TargetLength int              `json:"target_length"`
	PoolSize     int              `json:"pool_size"`
	EntropyBits  float64          `json:"entropy_bits"`
	Strength     *Analysis        `json:"strength"`
	Enhanced     bool             `json:"enhanced"`
}
