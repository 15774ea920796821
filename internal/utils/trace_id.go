package utils

import "github.com/google/uuid"

// NewTraceID returns a UUIDv7 for the X-Trace-ID header. V7 ids grow with
// time, so log lines of consecutive requests sort together. A random v4 id
// is used if the v7 source fails.
func NewTraceID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
