package models

import "time"

// PasswordReset is a single-use password reset grant.
//
// Only the keyed HMAC-SHA256 hash of the token is stored; the plaintext is
// delivered to the user once and never persisted.
type PasswordReset struct {
	ID        string
	UserID    string
	Email     string
	TokenHash string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// IsExpired reports whether the grant is past its expiry at the given moment.
func (p PasswordReset) IsExpired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the PasswordReset model.
func (p PasswordReset) TableName() string {
	return "password_resets"
}
