// Package workers runs the server's background jobs next to the HTTP
// listener. Each job is a [Worker]; [Workers] starts them together and
// waits for all of them once the context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
