package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Service is a long-running unit of the process. Start blocks until the
// service stops, either because ctx was cancelled or because it failed.
type Service interface {
	Name() string
	Start(ctx context.Context) error
}

type Group []Service

// Start runs every service and blocks until all of them have stopped. The
// first failure cancels the shared context so the rest shut down too; all
// failures are aggregated into the returned error.
func (g Group) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu     sync.Mutex
		result *multierror.Error
		wg     sync.WaitGroup
	)

	for _, svc := range g {
		wg.Add(1)
		go func(svc Service) {
			defer wg.Done()

			slog.Info("starting service", "name", svc.Name())
			if err := svc.Start(ctx); err != nil {
				mu.Lock()
				result = multierror.Append(result, fmt.Errorf("%s: %w", svc.Name(), err))
				mu.Unlock()
				cancel()
			}
			slog.Info("service stopped", "name", svc.Name())
		}(svc)
	}

	wg.Wait()
	return result.ErrorOrNil()
}
