package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// resetTokenBytes is the amount of entropy in a generated reset token.
const resetTokenBytes = 32

// GenerateSecureToken returns a URL-safe random token built from n random bytes.
//
// Example usage:
//
//	token, err := utils.GenerateSecureToken(32)
func GenerateSecureToken(n int) (string, error) {
	if n <= 0 {
		n = resetTokenBytes
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Used to store reset tokens: only the digest reaches the database.
//
// Example usage:
//
//	digest := utils.HashString(token, "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// EqualHash compares two hex digests in constant time.
func EqualHash(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
