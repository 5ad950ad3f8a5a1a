// Package service declares the domain services the use cases depend on:
// credential hashing, token signing, image storage and QR rendering.
package service

// PasswordHasher owns how user passwords are stored.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	Check(password, hash string) bool

	// NeedsRehash reports whether hash was produced under an older work factor
	// and should be replaced after the next successful login.
	NeedsRehash(hash string) bool
}
