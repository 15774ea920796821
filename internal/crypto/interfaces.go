// Package crypto holds password hashing for the authentication server.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into storable hashes and checks
// candidates against them. It knows nothing about users or storage.
type PasswordHasher interface {
	// Hash returns a salted, self-describing hash of password.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. A mismatch returns
	// [ErrPasswordMismatch]; a malformed hash returns another error.
	Compare(hash, password string) error
}
