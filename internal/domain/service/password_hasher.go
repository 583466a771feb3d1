// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// The same implementation serves user, hostel, and admin credentials: it works
// on secret strings and opaque hash records only, never on actor types.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Hashing the same
	// password twice yields different records; both verify.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash. A wrong password is a
	// normal false, not an error.
	Check(password, hash string) bool
}
