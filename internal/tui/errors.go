// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-auth-session/internal/adapter"
	"github.com/MKhiriev/go-auth-session/internal/app"
	"github.com/MKhiriev/go-auth-session/internal/service"
)

// humanizeError turns a session client error into a line for the status bar.
// Server-supplied details are shown as is.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return app.MsgNotAuthenticated
	case errors.Is(err, service.ErrSessionNotPersisted):
		return app.MsgSessionNotPersisted
	}

	if reqErr, ok := adapter.AsRequestError(err); ok {
		if reqErr.IsTransport() {
			return app.MsgServerUnavailable
		}
		if strings.TrimSpace(reqErr.Detail) != "" {
			return reqErr.Detail
		}
		return app.MsgRequestFailed
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerUnavailable
	}

	return err.Error()
}
