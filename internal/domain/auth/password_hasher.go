// Package auth defines the authentication services the use cases depend on.
package auth

// PasswordHasher hashes and verifies plaintext passwords.
type PasswordHasher interface {
	// Hash returns an encoded, salted hash. Two calls with the same input
	// return different strings.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. Malformed hashes yield false.
	Verify(password, hash string) bool
}
