package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/dskvich/image-api/pkg/domain"
)

const (
	DefaultInterval    = time.Second
	DefaultMaxAttempts = 30
)

// StatusFunc queries the current state of an asynchronous job. The output
// reference is meaningful only when the returned status is succeeded.
type StatusFunc func(ctx context.Context) (domain.JobStatus, string, error)

// Poller bridges an asynchronous provider job to a synchronous result.
// The zero value polls every DefaultInterval up to DefaultMaxAttempts times.
type Poller struct {
	Interval    time.Duration
	MaxAttempts int
}

// Wait polls the job until it reaches a terminal state or the attempt budget
// runs out. One interval elapses before each query, so the first query is
// never issued immediately. Cancelling ctx aborts the wait right away.
func (p Poller) Wait(ctx context.Context, query StatusFunc) (string, error) {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}

		status, output, err := query(ctx)
		if err != nil {
			return "", fmt.Errorf("querying job status: %w", err)
		}

		if status.Succeeded() {
			if output == "" {
				return "", domain.ErrJobIncomplete
			}
			return output, nil
		}
		if status.Terminal() {
			return "", domain.ErrJobFailed
		}
	}

	return "", domain.ErrJobIncomplete
}
