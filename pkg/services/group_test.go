package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	name string
	err  error
}

func (s *stubService) Name() string { return s.name }

func (s *stubService) Start(ctx context.Context) error {
	<-ctx.Done()
	return s.err
}

type failingService struct{}

func (s *failingService) Name() string { return "failing" }

func (s *failingService) Start(context.Context) error {
	return errors.New("listen: address already in use")
}

func TestGroup_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Group{&stubService{name: "a"}, &stubService{name: "b"}}.Start(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("group did not stop after cancel")
	}
}

func TestGroup_FailureStopsSiblings(t *testing.T) {
	err := Group{&failingService{}, &stubService{name: "survivor"}}.Start(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing")
	assert.Contains(t, err.Error(), "address already in use")
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	_, err := NewHTTPServer("", nil)

	assert.Error(t, err)
}
