// Package scheduler triggers the periodic check.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Houeta/cruise-flow/internal/models"
	"github.com/robfig/cron/v3"
)

// Runner performs one check.
type Runner interface {
	Run(ctx context.Context) (*models.Changes, error)
}

// Scheduler wraps robfig/cron.
type Scheduler struct {
	log    *slog.Logger
	cron   *cron.Cron
	runner Runner
	spec   string
	wg     sync.WaitGroup
}

// New creates a Scheduler firing on the standard five-field cron spec.
// A tick is skipped while the previous one is still running.
func New(log *slog.Logger, runner Runner, spec string) *Scheduler {
	logger := cronLogger{log: log}

	return &Scheduler{
		log:    log,
		cron:   cron.New(cron.WithLogger(logger), cron.WithChain(cron.SkipIfStillRunning(logger))),
		runner: runner,
		spec:   spec,
	}
}

// Start registers the job and starts the scheduler. One check also runs
// immediately so subscribers don't wait for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.run(ctx, "tick")
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.log.InfoContext(ctx, "Scheduler started", "spec", s.spec)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx, "startup")
	}()

	return nil
}

// Stop stops the scheduler and waits for the running check.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.wg.Wait()
	s.log.Info("Scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context, trigger string) {
	if ctx.Err() != nil {
		return
	}

	changes, err := s.runner.Run(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "scheduled check failed", "trigger", trigger, "error", err)
		return
	}

	s.log.InfoContext(ctx, "Scheduled check finished", "trigger", trigger, "added", len(changes.Added))
}

// cronLogger routes cron's own messages to slog.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
