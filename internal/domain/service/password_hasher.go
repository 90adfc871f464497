package service

// PasswordHasher hashes passwords for hand-off to a credential store.
// Hashes are returned to the caller and never kept.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool

	// Cost returns the work factor used by Hash.
	Cost() int
}
