package retry

import (
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Sleeper abstracts time.Sleep so tests can run the retry engine without
// real delays. RealSleeper is the production implementation.
type Sleeper func(d time.Duration)

// RealSleeper sleeps for the real wall-clock duration.
func RealSleeper(d time.Duration) { time.Sleep(d) }

// ErrSessionExhausted is returned when a session-class error recurs after
// the single permitted on_session_error recovery attempt.
var ErrSessionExhausted = errors.New("session recovery failed, not retrying again")

// PermanentError wraps an error that WithRetry must never retry, so the
// caller can distinguish "gave up after retries" from "never retryable".
type PermanentError struct {
	Class Class
	Err   error
}

func (e *PermanentError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Class, e.Err)
}

func (e *PermanentError) Unwrap() error { return e.Err }

// Options configures WithRetry.
type Options struct {
	MaxRetries    int           // attempts after the first; 0 = no transient retries (a session error still gets its one retry)
	BaseDelay     time.Duration // base for transient exponential backoff
	Sleep         Sleeper       // defaults to RealSleeper
	OnSessionErr  func()        // invoked once on the first session-class failure
}

// WithRetry runs fn, classifying any returned error and applying the
// policy:
//   - permanent / config: returned immediately, wrapped in *PermanentError.
//   - session: on the first occurrence, OnSessionErr is invoked (if set)
//     and fn is retried once; a second session failure is terminal.
//   - transient (including unrecognized errors): retried with exponential
//     backoff base*2^attempt, up to MaxRetries, then returned.
func WithRetry(fn func() error, opts Options) error {
	if opts.Sleep == nil {
		opts.Sleep = RealSleeper
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = time.Second
	}

	sessionRetried := false
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = opts.BaseDelay
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0
	bo.Reset()

	var lastErr error
	for attempt := 0; attempt <= opts.MaxRetries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		class := Classify(lastErr)
		switch class {
		case ClassPermanent, ClassConfig:
			return &PermanentError{Class: class, Err: lastErr}

		case ClassSession:
			if sessionRetried {
				return &PermanentError{Class: class, Err: fmt.Errorf("%w: %v", ErrSessionExhausted, lastErr)}
			}
			sessionRetried = true
			if attempt >= opts.MaxRetries {
				opts.MaxRetries = attempt + 1
			}
			if opts.OnSessionErr != nil {
				opts.OnSessionErr()
			}
			continue // single immediate retry, no backoff

		case ClassTransient:
			if attempt >= opts.MaxRetries {
				return lastErr
			}
			delay := bo.NextBackOff()
			if delay == backoff.Stop {
				return lastErr
			}
			opts.Sleep(delay)
		}
	}
	return lastErr
}
