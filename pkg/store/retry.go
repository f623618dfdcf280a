package store

import (
	"context"
	"errors"
	"time"
)

// Connection checks for the network backends are retried a few times so a
// server that is still starting up does not fail the first command.
const (
	pingAttempts = 3
	pingDelay    = 250 * time.Millisecond
)

// retryableError marks a failure worth another attempt.
type retryableError struct{ err error }

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// retryable wraps err so retry tries again. A nil err stays nil.
func retryable(err error) error {
	if err == nil {
		return nil
	}
	return &retryableError{err: err}
}

// retry runs fn up to attempts times, doubling delay between attempts. Only
// errors wrapped by retryable are retried; the last error is returned
// unwrapped, or ctx.Err() if the context ends while waiting.
func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		err := fn()
		if err == nil {
			return nil
		}
		var re *retryableError
		if !errors.As(err, &re) {
			return err
		}
		lastErr = re.err

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
