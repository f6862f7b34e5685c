package ports

// PasswordHasher provides one-way hashing and verification for plaintext
// passwords. Implementations must never expose the plaintext.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify returns a non-nil error when password does not match hash.
	Verify(hash, password string) error
}
