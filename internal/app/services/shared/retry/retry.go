package retry

import (
	"context"
	"time"

	"safeclinic-web/internal/pkg/constvars"
	"safeclinic-web/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// Policy bounds automatic re-attempts. MaxAttempts counts the first try,
// so MaxAttempts=3 means at most two retries.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// Do runs fn until it succeeds, fails with a non-retryable error, or the
// attempts run out. Only connection and server failures are retried;
// authorization and validation failures surface immediately.
func (p Policy) Do(ctx context.Context, log *zap.Logger, operation string, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !exceptions.IsRetryable(err) {
			return err
		}
		if attempt == attempts {
			break
		}

		log.Warn("retry.Do attempt failed, retrying",
			zap.String("operation", operation),
			zap.Int(constvars.LoggingAttemptKey, attempt),
			zap.Error(err),
		)

		select {
		case <-time.After(p.Delay):
		case <-ctx.Done():
			return exceptions.ErrServerDeadlineExceeded(ctx.Err())
		}
	}
	return err
}
