// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the auth server and the terminal client.
//
// Handlers and services take a *Logger explicitly; request-scoped loggers
// carrying the trace id travel in the context and are read back with
// [FromContext] or [FromRequest].
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultClientLogFile is the log file name used by the terminal client.
const DefaultClientLogFile = "session-client.log"

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger writes JSON entries to stdout, tagged with role. Used by the
// server.
func NewLogger(role string) *Logger {
	return newLogger(role, os.Stdout)
}

// NewClientLogger is [NewLogger] for interactive binaries. The terminal owns
// stdout, so entries go to fileName next to the executable, or to stderr if
// that file cannot be opened. The logger also becomes zerolog's default
// context logger, so [FromContext] on a bare context writes to the same file.
func NewClientLogger(role, fileName string) *Logger {
	if fileName == "" {
		fileName = DefaultClientLogFile
	}

	l := newLogger(role, clientLogOutput(fileName))
	zerolog.DefaultContextLogger = &l.Logger
	return l
}

func newLogger(role string, out io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

func clientLogOutput(fileName string) io.Writer {
	execPath, err := os.Executable()
	if err != nil {
		return os.Stderr
	}

	f, err := os.OpenFile(filepath.Join(filepath.Dir(execPath), fileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return os.Stderr
	}
	return f
}

// Nop discards everything. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be enriched with fields without
// touching the receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithContext returns a copy of ctx carrying l.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger attached with [Logger.WithContext], or
// zerolog's default context logger. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromRequest is [FromContext] for r.Context().
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}
