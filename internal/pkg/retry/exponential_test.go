package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastConfig() Config {
	return Config{
		MaxRetries: 2,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2,
	}
}

func TestRetrier_SucceedsAfterFailures(t *testing.T) {
	r := New(fastConfig(), nil)
	calls := 0

	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("502")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrier_GivesUp(t *testing.T) {
	r := New(fastConfig(), nil)
	boom := errors.New("502")
	calls := 0

	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "retry limit exceeded after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestRetrier_NonRetryable(t *testing.T) {
	cfg := fastConfig()
	declined := errors.New("card declined")
	cfg.RetryableFunc = func(err error) bool { return !errors.Is(err, declined) }
	r := New(cfg, nil)
	calls := 0

	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		return declined
	})

	assert.ErrorIs(t, err, declined)
	assert.Equal(t, 1, calls)
}

func TestRetrier_ContextCancelled(t *testing.T) {
	r := New(fastConfig(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Execute(ctx, func(context.Context) error { return nil })

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateDelay_Capped(t *testing.T) {
	r := New(Config{BaseDelay: time.Second, MaxDelay: 3 * time.Second, Multiplier: 2}, nil)
	assert.Equal(t, time.Second, r.calculateDelay(0))
	assert.Equal(t, 2*time.Second, r.calculateDelay(1))
	assert.Equal(t, 3*time.Second, r.calculateDelay(5))
}
