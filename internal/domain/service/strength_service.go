// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "vault/internal/domain/entity"

// StrengthScorer rates a password. Implementations are pure and never fail.
type StrengthScorer interface {
	Score(password string, enhanced bool) entity.StrengthResult
}

// PasswordGenerator produces a random password satisfying the options.
type PasswordGenerator interface {
	// Generate returns a password containing at least one character of every
	// enabled class. It fails only when the character pool is empty.
	Generate(opts entity.GeneratorOptions, enhanced bool) (string, error)

	// PoolSize returns the number of distinct characters padding draws from.
	PoolSize(opts entity.GeneratorOptions, enhanced bool) int
}
