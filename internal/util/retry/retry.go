// Package retry provides exponential backoff for operations that can fail
// transiently, such as photo uploads to object storage.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Config holds backoff settings for Do.
type Config struct {
	Attempts     int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// Option adjusts the backoff settings.
type Option func(*Config)

// Do runs op until it succeeds or the attempt budget is spent. Delays grow
// by Multiplier between attempts, capped at MaxDelay. Context cancellation
// is honored while waiting. Errors wrapped with Permanent are returned
// immediately without further attempts.
func Do(ctx context.Context, op func() error, opts ...Option) error {
	cfg := Config{
		Attempts:     4,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		if err := op(); err == nil {
			return nil
		} else {
			lastErr = err
			if IsPermanent(err) {
				return err
			}
		}

		if attempt == cfg.Attempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("retry canceled: %w", ctx.Err())
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return fmt.Errorf("giving up after %d attempts: %w", cfg.Attempts, lastErr)
}

// WithAttempts sets the total number of attempts (including the first).
func WithAttempts(n int) Option {
	return func(c *Config) { c.Attempts = n }
}

// WithInitialDelay sets the delay before the second attempt.
func WithInitialDelay(d time.Duration) Option {
	return func(c *Config) { c.InitialDelay = d }
}

// WithMaxDelay caps the delay between attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *Config) { c.MaxDelay = d }
}

// permanentError marks an error as not worth retrying.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Unwrap() error { return e.err }

// Permanent wraps err so Do returns it without retrying. A nil err stays nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err was wrapped with Permanent.
func IsPermanent(err error) bool {
	var pe *permanentError
	return errors.As(err, &pe)
}
