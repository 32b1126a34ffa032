package usecase

import (
	"context"
	"maps"

	"github.com/google/go-cmp/cmp"

	"homework-bot/internal/domain/model"
	"homework-bot/internal/domain/ports"
)

// StatusWatch polls the review status of the latest homework and notifies
// when it changes.
type StatusWatch struct {
	statuses    ports.StatusProvider
	notifier    ports.Notifier
	logger      ports.Logger
	windowStart int64
	lastSeen    model.Submission
}

// StatusWatchConfig controls the polling window.
type StatusWatchConfig struct {
	// WindowStart is sent as from_date on every poll; it never advances.
	WindowStart int64
}

// NewStatusWatch constructs a StatusWatch use case.
func NewStatusWatch(
	statuses ports.StatusProvider,
	notifier ports.Notifier,
	logger ports.Logger,
	cfg StatusWatchConfig,
) *StatusWatch {
	return &StatusWatch{
		statuses:    statuses,
		notifier:    notifier,
		logger:      logger,
		windowStart: cfg.WindowStart,
	}
}

// PollOnce runs one fetch-check-notify cycle. The latest submission is
// remembered only after its notification was delivered, so a failing
// submission is retried on the next poll.
func (w *StatusWatch) PollOnce(ctx context.Context) error {
	response, err := w.statuses.FetchStatus(ctx, w.windowStart)
	if err != nil {
		return err
	}

	w.logger.Debug(ctx, "checking api response")
	submissions, err := ExtractSubmissions(response)
	if err != nil {
		w.logger.Error(ctx, "api response has unexpected shape", "error", err)
		return err
	}

	if len(submissions) == 0 {
		w.logger.Debug(ctx, "no homework updates yet")
		return nil
	}

	current := submissions[0]
	w.logger.Info(ctx, "found homework", "homework_name", current["homework_name"], "status", current["status"])
	if cmp.Equal(current, w.lastSeen) {
		w.logger.Debug(ctx, "homework status unchanged")
		return nil
	}

	w.logger.Info(ctx, "homework status changed")
	text, err := FormatVerdict(current)
	if err != nil {
		w.logger.Error(ctx, "unexpected homework status", "error", err)
		return err
	}

	if err := w.notifier.Notify(ctx, text); err != nil {
		return err
	}

	w.lastSeen = maps.Clone(current)
	return nil
}

// LastSeen returns a copy of the last notified submission, nil before the first one.
func (w *StatusWatch) LastSeen() model.Submission {
	return maps.Clone(w.lastSeen)
}
