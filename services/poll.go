package services

import (
	"context"
	"errors"
	"time"
)

// ErrPollTimeout is returned by Poll when MaxWait elapses before the
// condition is met.
var ErrPollTimeout = errors.New("poll: deadline exceeded")

// PollConfig controls Poll. A zero MaxWait polls without a deadline.
type PollConfig struct {
	Interval time.Duration
	MaxWait  time.Duration
}

// PollFunc reports whether polling can stop. A non-nil error stops polling
// immediately.
type PollFunc func(ctx context.Context) (done bool, err error)

// Poll calls fn right away and then once per Interval until it reports done,
// fails, the context ends or MaxWait elapses. It returns the number of calls
// made.
func Poll(ctx context.Context, cfg PollConfig, fn PollFunc) (int, error) {
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Second
	}

	var deadline <-chan time.Time
	if cfg.MaxWait > 0 {
		timer := time.NewTimer(cfg.MaxWait)
		defer timer.Stop()
		deadline = timer.C
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	attempts := 0
	for {
		attempts++
		done, err := fn(ctx)
		if err != nil {
			return attempts, err
		}
		if done {
			return attempts, nil
		}

		select {
		case <-ctx.Done():
			return attempts, ctx.Err()
		case <-deadline:
			return attempts, ErrPollTimeout
		case <-ticker.C:
		}
	}
}
