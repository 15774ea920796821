package server

import "context"

// Server is a transport listener whose lifetime follows a context.
type Server interface {
	// Run blocks until ctx is cancelled or the listener fails.
	Run(ctx context.Context) error
}
