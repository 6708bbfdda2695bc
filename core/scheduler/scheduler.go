// ABOUTME: Scheduler triggers the publishing cycle at the configured daily slots
// ABOUTME: A minute ticker compares wall clock HH:MM against the run times

package scheduler

import (
	"context"
	"time"

	"okcrisis-api/core/cycle"
	"okcrisis-api/core/interfaces"
)

// Runner is the cycle entry point the scheduler drives. Manual runs
// through the admin API share the same implementation.
type Runner interface {
	Run(ctx context.Context, mode string) cycle.Result
}

// Config holds the daily run slots as local "HH:MM" times.
type Config struct {
	MorningRunTime string
	EveningRunTime string
}

// Scheduler fires the publishing cycle twice a day.
type Scheduler struct {
	cfg    Config
	runner Runner
	logger interfaces.Logger

	// lastRun guards against double firing within the same minute.
	lastRun string
}

// New creates a scheduler. Start must be called to begin ticking.
func New(cfg Config, runner Runner, logger interfaces.Logger) *Scheduler {
	return &Scheduler{cfg: cfg, runner: runner, logger: logger}
}

// Start blocks, checking once a minute whether a run slot has arrived,
// until the context is cancelled. Run it in its own goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Scheduler started", map[string]interface{}{
		"morning": s.cfg.MorningRunTime,
		"evening": s.cfg.EveningRunTime,
	})

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler stopped", nil)
			return
		case now := <-ticker.C:
			s.tick(ctx, now)
		}
	}
}

// tick fires the cycle when the current minute matches a slot.
func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	minute := now.Format("15:04")
	if minute == s.lastRun {
		return
	}

	var mode string
	switch minute {
	case s.cfg.MorningRunTime:
		mode = "morning"
	case s.cfg.EveningRunTime:
		mode = "evening"
	default:
		return
	}

	s.lastRun = minute
	s.logger.Info("Scheduled cycle starting", map[string]interface{}{"mode": mode})

	result := s.runner.Run(ctx, mode)

	s.logger.Info("Scheduled cycle finished", map[string]interface{}{
		"mode":     mode,
		"articles": result.ArticlesGenerated,
		"comics":   result.ComicsGenerated,
		"errors":   len(result.Errors),
	})
}
