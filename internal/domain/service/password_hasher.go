// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher turns passwords into storable verifiers and checks them.
// Implementations are safe for concurrent use.
type PasswordHasher interface {
	// Hash returns a self-contained verifier for the password. The salt is random,
	// so two calls with the same input return different verifiers.
	Hash(password string) (string, error)

	// Verify reports whether password matches verifier. A malformed verifier never matches.
	Verify(password, verifier string) bool
}
