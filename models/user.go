package models

import "time"

// User represents an account of the authentication service.
//
// The same type is used as the profile returned by the server
// (GET /me, POST /signin) and as the profile cached by the client.
// Credential material is never serialized.
type User struct {
	// ID is the server-assigned UUID of the account.
	ID string `json:"id"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// IsVerified reports whether the email address was confirmed.
	// Sign-in does not depend on it.
	IsVerified bool `json:"is_verified"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// PasswordHash is the bcrypt hash of the password.
	// It lives only on the server side.
	PasswordHash string `json:"-"`

	// UpdatedAt is bumped on every password change.
	UpdatedAt time.Time `json:"-"`
}

// FullName returns the first and last name joined with a space.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
