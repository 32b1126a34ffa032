package app

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"

	"homework-bot/internal/domain/model"
	"homework-bot/internal/domain/ports"
)

// DefaultInterval is the pause between two polls.
const DefaultInterval = 600 * time.Second

// Poller runs one poll cycle.
type Poller interface {
	PollOnce(ctx context.Context) error
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Option customises an App.
type Option func(*App)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithSleep replaces the timer-based sleep.
func WithSleep(sleep SleepFunc) Option {
	return func(a *App) { a.sleep = sleep }
}

// App manages the lifecycle of the status poll loop.
type App struct {
	poller   Poller
	logger   ports.Logger
	schedule cron.Schedule
	interval time.Duration
	now      func() time.Time
	sleep    SleepFunc
}

// New constructs an App instance.
func New(poller Poller, logger ports.Logger, interval time.Duration, opts ...Option) *App {
	if interval <= 0 {
		interval = DefaultInterval
	}
	a := &App{
		poller:   poller,
		logger:   logger,
		schedule: cron.Every(interval),
		interval: interval,
		now:      time.Now,
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run polls immediately and then once per interval until ctx is canceled or
// the sleep fails. No poll error stops the loop.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info(ctx, "starting status poll loop", "interval", a.interval.String())

	for {
		if err := a.poller.PollOnce(ctx); err != nil {
			a.report(ctx, err)
		}

		now := a.now()
		next := a.schedule.Next(now)
		if err := a.sleep(ctx, next.Sub(now)); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				a.logger.Info(context.Background(), "status poll loop stopped")
				return nil
			}
			return err
		}
	}
}

// report logs a failed cycle. Delivery failures carry the full error chain.
func (a *App) report(ctx context.Context, err error) {
	kind := model.KindOf(err)
	switch kind {
	case model.KindDelivery:
		a.logger.Error(ctx, "message delivery failed",
			"kind", kind.String(),
			"error", err,
			"chain", errorChain(err))
	case model.KindConfig,
		model.KindTransport,
		model.KindBadStatus,
		model.KindShape,
		model.KindMissingField,
		model.KindUnknownStatus,
		model.KindUnknown:
		a.logger.Error(ctx, "program failure", "kind", kind.String(), "error", err)
	}
}

func errorChain(err error) []string {
	var chain []string
	for err != nil {
		chain = append(chain, err.Error())
		err = errors.Unwrap(err)
	}
	return chain
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
