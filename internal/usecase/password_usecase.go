package usecase

import (
	"context"

	"vault/internal/domain/entity"
)

// GenerateInput carries generator options as supplied by a caller. Nil toggles
// fall back to the configured defaults and Length is clamped before use.
type GenerateInput struct {
	Length    int
	Uppercase *bool
	Lowercase *bool
	Numbers   *bool
	Symbols   *bool
	Enhanced  bool
}

// GeneratorSettings describes the defaults and bounds for a mode.
type GeneratorSettings struct {
	Defaults     entity.GeneratorOptions `json:"defaults"`
	MinLength    int                     `json:"min_length"`
	MaxLength    int                     `json:"max_length"`
	TargetLength int                     `json:"target_length"`
	Enhanced     bool                    `json:"enhanced"`
}

// PasswordUsecase defines the password analysis and generation use cases
type PasswordUsecase interface {
	// Analyze scores a password. It accepts any input, including the empty string.
	Analyze(ctx context.Context, password string, enhanced bool) (*entity.Analysis, error)

	// Generate produces a password and its strength for the given input
	Generate(ctx context.Context, input *GenerateInput) (*entity.GeneratedPassword, error)

	// Settings returns the generator defaults and length bounds for the mode
	Settings(ctx context.Context, enhanced bool) *GeneratorSettings

	// GenerateQR renders a password as a PNG QR code
	GenerateQR(ctx context.Context, password string) ([]byte, error)

	// Hash returns a bcrypt hash of the password
	Hash(ctx context.Context, password string) (string, error)

	// Verify reports whether password matches hash
	Verify(ctx context.Context, password, hash string) bool
}
