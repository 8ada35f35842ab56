package retry

import (
	"context"
	"testing"
	"time"

	"safeclinic-web/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPolicy_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Policy{MaxAttempts: 3, Delay: time.Millisecond}.Do(context.Background(), zap.NewNop(), "fetch", func() error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestPolicy_RetriesConnectionFailures(t *testing.T) {
	calls := 0
	err := Policy{MaxAttempts: 3, Delay: time.Millisecond}.Do(context.Background(), zap.NewNop(), "fetch", func() error {
		calls++
		if calls < 3 {
			return exceptions.ErrBackendUnreachable(assert.AnError)
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestPolicy_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Policy{MaxAttempts: 3, Delay: time.Millisecond}.Do(context.Background(), zap.NewNop(), "fetch", func() error {
		calls++
		return exceptions.ErrBackendServer("profile", 502)
	})
	assert.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.True(t, exceptions.IsRetryable(err))
}

func TestPolicy_StopsOnNonRetryable(t *testing.T) {
	calls := 0
	err := Policy{MaxAttempts: 3, Delay: time.Millisecond}.Do(context.Background(), zap.NewNop(), "fetch", func() error {
		calls++
		return exceptions.ErrAuthorizationRejected("profile")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, exceptions.KindAuthorization, exceptions.KindOf(err))
}

func TestPolicy_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Policy{MaxAttempts: 3, Delay: time.Hour}.Do(ctx, zap.NewNop(), "fetch", func() error {
		calls++
		return exceptions.ErrBackendUnreachable(assert.AnError)
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestPolicy_ZeroAttemptsStillRunsOnce(t *testing.T) {
	calls := 0
	err := Policy{}.Do(context.Background(), zap.NewNop(), "fetch", func() error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}
