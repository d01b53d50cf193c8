package scheduler_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Houeta/cruise-flow/internal/models"
	"github.com/Houeta/cruise-flow/internal/scheduler"
	"github.com/Houeta/cruise-flow/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsOnStartup(t *testing.T) {
	runner := mocks.NewRunner(t)
	done := make(chan struct{})
	runner.On("Run", mock.Anything).
		Run(func(mock.Arguments) { close(done) }).
		Return(&models.Changes{}, nil).Once()

	s := scheduler.New(slog.New(slog.NewTextHandler(io.Discard, nil)), runner, "@every 1h")
	require.NoError(t, s.Start(t.Context()))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("startup check was not triggered")
	}

	s.Stop()
}

func TestScheduler_FailedRunIsLogged(t *testing.T) {
	runner := mocks.NewRunner(t)
	runner.On("Run", mock.Anything).Return(nil, assert.AnError).Once()

	s := scheduler.New(slog.New(slog.NewTextHandler(io.Discard, nil)), runner, "@every 1h")
	require.NoError(t, s.Start(t.Context()))

	s.Stop()
}

func TestScheduler_CancelledContextSkipsRun(t *testing.T) {
	runner := mocks.NewRunner(t)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	s := scheduler.New(slog.New(slog.NewTextHandler(io.Discard, nil)), runner, "@every 1h")
	require.NoError(t, s.Start(ctx))

	s.Stop()
	runner.AssertNotCalled(t, "Run", mock.Anything)
}

func TestScheduler_InvalidSpec(t *testing.T) {
	runner := mocks.NewRunner(t)
	s := scheduler.New(slog.New(slog.NewTextHandler(io.Discard, nil)), runner, "every quarter hour")

	err := s.Start(t.Context())

	require.ErrorContains(t, err, "cron.AddFunc")
}
