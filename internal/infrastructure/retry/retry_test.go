package retry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fastConfig = Config{
	MaxAttempts:  5,
	InitialDelay: 1 * time.Millisecond,
	MaxDelay:     10 * time.Millisecond,
	Multiplier:   2.0,
	JitterFactor: 0,
}

func TestDo_SuccessOnFirstAttempt(t *testing.T) {
	var attempts int32

	err := Do(context.Background(), fastConfig, func(context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, int32(1), attempts)
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	var attempts int32
	temporaryErr := errors.New("temporary error")

	err := Do(context.Background(), fastConfig, func(context.Context) error {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return temporaryErr
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, int32(3), attempts)
}

func TestDo_MaxAttemptsExceeded(t *testing.T) {
	var attempts int32
	persistentErr := errors.New("persistent error")

	cfg := fastConfig
	cfg.MaxAttempts = 3

	err := Do(context.Background(), cfg, func(context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return persistentErr
	})

	assert.Equal(t, persistentErr, err)
	assert.Equal(t, int32(3), attempts)
}

func TestDo_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var attempts int32

	// Cancel context after the first attempt starts waiting
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	cfg := Config{
		MaxAttempts:  10,
		InitialDelay: 50 * time.Millisecond,
		MaxDelay:     100 * time.Millisecond,
		Multiplier:   2.0,
		JitterFactor: 0,
	}

	err := Do(ctx, cfg, func(context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return errors.New("temporary error")
	})

	assert.Equal(t, context.Canceled, err)
	assert.GreaterOrEqual(t, attempts, int32(1))
}

func TestDo_ZeroAttemptsRunsOnce(t *testing.T) {
	var attempts int32

	err := Do(context.Background(), Config{}, func(context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, int32(1), attempts)
}
