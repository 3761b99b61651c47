package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/folio/internal/logtail"
	"github.com/five82/folio/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// LoadFunc produces the current set of log entries.
type LoadFunc func(ctx context.Context) ([]logtail.Entry, error)

// FileLoader reads the last tail lines of the log at path on every call.
func FileLoader(path string, tail int) LoadFunc {
	return func(ctx context.Context) ([]logtail.Entry, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return logtail.Load(path, tail)
	}
}

// StartPoller launches a background goroutine that reloads the log into the
// store. Consecutive failures stretch the delay up to maxBackoff. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, load LoadFunc, interval time.Duration, logger zerolog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			_ = refresh(ctx, store, load, logger)
			failures := store.Snapshot().ConsecutiveFailures
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
}

// calculateBackoff doubles the base interval per consecutive failure.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	delay := base
	for range failures {
		delay *= 2
		if delay >= maxBackoff {
			return maxBackoff
		}
	}
	return delay
}

func refresh(ctx context.Context, store *state.Store, load LoadFunc, logger zerolog.Logger) error {
	entries, err := load(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		store.Update(nil, err)
		logger.Warn().Err(err).Msg("log reload failed")
		return err
	}
	store.Update(entries, nil)
	logger.Debug().Int("entries", len(entries)).Msg("log reloaded")
	return nil
}
