// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenTypeBearer is the only token type issued by the server.
const TokenTypeBearer = "bearer"

// SignUpRequest is the body of POST /signup.
type SignUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// SignInRequest is the body of POST /signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the body of POST /forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /reset-password.
//
// Token is the opaque value delivered to the user by email.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// AccessToken is the successful response of POST /signin.
//
// AccessToken holds the bearer credential that must be presented
// in the Authorization header of protected requests. User is the
// profile snapshot at sign-in time.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// MessageResponse is a generic acknowledgement returned by endpoints
// that have no other payload.
type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// ErrorResponse is the body of every non-2xx response of the server.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
