package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dskvich/image-api/pkg/domain"
)

func testPoller() Poller {
	return Poller{Interval: time.Millisecond, MaxAttempts: 30}
}

// sequence returns a StatusFunc replaying the given statuses in order and
// counting how many queries were issued.
func sequence(calls *int, statuses []domain.JobStatus, output string) StatusFunc {
	return func(context.Context) (domain.JobStatus, string, error) {
		status := statuses[*calls]
		*calls++
		if status.Succeeded() {
			return status, output, nil
		}
		return status, "", nil
	}
}

func TestWait_ReturnsOutputOnSuccess(t *testing.T) {
	var calls int
	query := sequence(&calls, []domain.JobStatus{
		domain.JobStatusStarting,
		domain.JobStatusProcessing,
		domain.JobStatusProcessing,
		domain.JobStatusSucceeded,
	}, "https://cdn.example.com/out.png")

	out, err := testPoller().Wait(context.Background(), query)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/out.png", out)
	assert.Equal(t, 4, calls)
}

func TestWait_FailsAfterAttemptBudget(t *testing.T) {
	var calls int
	query := func(context.Context) (domain.JobStatus, string, error) {
		calls++
		return domain.JobStatusProcessing, "", nil
	}

	_, err := testPoller().Wait(context.Background(), query)

	assert.ErrorIs(t, err, domain.ErrJobIncomplete)
	assert.Equal(t, 30, calls)
}

func TestWait_StopsOnTerminalFailure(t *testing.T) {
	var calls int
	query := sequence(&calls, []domain.JobStatus{
		domain.JobStatusProcessing,
		domain.JobStatusFailed,
	}, "")

	_, err := testPoller().Wait(context.Background(), query)

	assert.ErrorIs(t, err, domain.ErrJobFailed)
	assert.Equal(t, 2, calls)
}

func TestWait_TreatsCanceledJobAsFailure(t *testing.T) {
	var calls int
	query := sequence(&calls, []domain.JobStatus{domain.JobStatusCanceled}, "")

	_, err := testPoller().Wait(context.Background(), query)

	assert.ErrorIs(t, err, domain.ErrJobFailed)
	assert.Equal(t, 1, calls)
}

func TestWait_SuccessWithoutOutputIsIncomplete(t *testing.T) {
	var calls int
	query := sequence(&calls, []domain.JobStatus{domain.JobStatusSucceeded}, "")

	_, err := testPoller().Wait(context.Background(), query)

	assert.ErrorIs(t, err, domain.ErrJobIncomplete)
}

func TestWait_PropagatesQueryError(t *testing.T) {
	boom := errors.New("boom")
	query := func(context.Context) (domain.JobStatus, string, error) {
		return "", "", boom
	}

	_, err := testPoller().Wait(context.Background(), query)

	assert.ErrorIs(t, err, boom)
}

func TestWait_AbortsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int
	p := Poller{Interval: time.Hour, MaxAttempts: 30}
	_, err := p.Wait(ctx, func(context.Context) (domain.JobStatus, string, error) {
		calls++
		return domain.JobStatusProcessing, "", nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}
