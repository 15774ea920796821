package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-auth-session/internal/config"
	"github.com/MKhiriev/go-auth-session/internal/logger"
	"github.com/MKhiriev/go-auth-session/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(services *service.Services, cfg config.ServerWorkers, logger *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		newResetCleanupWorker(services.PasswordResetService, cfg.ResetCleanupInterval, logger),
	}}
}

// Run starts every worker in its own goroutine and returns after all of
// them have stopped.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
