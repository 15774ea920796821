// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// remote authentication API.
//
// The primary abstraction is [ServerAdapter], which decouples the session
// service from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Every failed call returns a [*RequestError] carrying the HTTP status and
// the server-supplied detail. The error unwraps to a status sentinel defined
// in errors.go (e.g. [ErrUnauthorized] for 401) so callers can use
// [errors.Is] for transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-session/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the authentication API.
//
// The adapter is stateless: it never stores the access token. Protected
// calls receive the token as an argument so that the session service stays
// the only owner of the persisted credential.
type ServerAdapter interface {
	// SignUp creates a new account. It does not sign the user in.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.MessageResponse, error)

	// SignIn exchanges credentials for an access token and the current
	// profile snapshot.
	SignIn(ctx context.Context, req models.SignInRequest) (models.AccessToken, error)

	// ForgotPassword asks the server to send a reset link to the given email.
	// The server answers uniformly whether or not the email is registered.
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.MessageResponse, error)

	// ResetPassword sets a new password using a reset token received by email.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.MessageResponse, error)

	// Me returns the profile of the account the token belongs to.
	Me(ctx context.Context, token string) (models.User, error)

	// VerifyToken asks the server whether the token is still accepted.
	// A rejected token yields a [*RequestError] with status 401.
	VerifyToken(ctx context.Context, token string) (models.MessageResponse, error)
}
