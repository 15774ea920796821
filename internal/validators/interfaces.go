// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules shared by the auth server and the
// terminal client: email shape, password length, confirmation match.
package validators

import "context"

// Validator checks a request payload. When fields are given only those
// fields are checked; otherwise the whole payload is.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
