package lock_test

import (
	"context"
	"errors"
	"fmt"
	"railbook/shared/lock"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func TestMemoryLocker_Acquire(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)}

	tests := []struct {
		name    string
		setup   func(l lock.Locker)
		keys    []string
		owner   string
		wantKey string
	}{
		{
			name:  "free keys are granted",
			setup: func(lock.Locker) {},
			keys:  []string{"seat:LB1", "seat:MB3"},
			owner: "attempt-a",
		},
		{
			name: "same owner refreshes",
			setup: func(l lock.Locker) {
				require.NoError(t, l.Acquire(ctx, []string{"seat:LB1"}, "attempt-a", time.Minute))
			},
			keys:  []string{"seat:LB1", "seat:MB3"},
			owner: "attempt-a",
		},
		{
			name: "other owner conflicts on first held key",
			setup: func(l lock.Locker) {
				require.NoError(t, l.Acquire(ctx, []string{"seat:MB3"}, "attempt-b", time.Minute))
			},
			keys:    []string{"seat:LB1", "seat:MB3"},
			owner:   "attempt-a",
			wantKey: "seat:MB3",
		},
		{
			name: "expired hold is taken over",
			setup: func(l lock.Locker) {
				require.NoError(t, l.Acquire(ctx, []string{"seat:LB1"}, "attempt-b", time.Minute))
				clock.Advance(2 * time.Minute)
			},
			keys:  []string{"seat:LB1"},
			owner: "attempt-a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locker := lock.NewMemoryLocker(clock.Now)
			tt.setup(locker)

			err := locker.Acquire(ctx, tt.keys, tt.owner, time.Minute)

			if tt.wantKey == "" {
				assert.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, lock.ErrHeld)

			var held *lock.HeldError
			require.True(t, errors.As(err, &held))
			assert.Equal(t, tt.wantKey, held.Key)
		})
	}
}

func TestMemoryLocker_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	locker := lock.NewMemoryLocker(time.Now)

	require.NoError(t, locker.Acquire(ctx, []string{"seat:UB5"}, "attempt-b", time.Minute))
	require.Error(t, locker.Acquire(ctx, []string{"seat:LB1", "seat:UB5"}, "attempt-a", time.Minute))

	// LB1 must not have been taken by the failed call.
	assert.NoError(t, locker.Acquire(ctx, []string{"seat:LB1"}, "attempt-c", time.Minute))
}

func TestMemoryLocker_Release(t *testing.T) {
	ctx := context.Background()
	locker := lock.NewMemoryLocker(time.Now)

	require.NoError(t, locker.Acquire(ctx, []string{"seat:LB1"}, "attempt-a", time.Minute))

	require.NoError(t, locker.Release(ctx, []string{"seat:LB1"}, "attempt-b"))
	assert.Error(t, locker.Acquire(ctx, []string{"seat:LB1"}, "attempt-b", time.Minute), "foreign release must be ignored")

	require.NoError(t, locker.Release(ctx, []string{"seat:LB1"}, "attempt-a"))
	assert.NoError(t, locker.Acquire(ctx, []string{"seat:LB1"}, "attempt-b", time.Minute))
}

func TestMemoryLocker_ConcurrentAcquirers(t *testing.T) {
	ctx := context.Background()
	locker := lock.NewMemoryLocker(time.Now)

	const contenders = 32

	var (
		wg      sync.WaitGroup
		winners atomic.Int32
	)

	for i := range contenders {
		wg.Add(1)

		go func(owner string) {
			defer wg.Done()

			if err := locker.Acquire(ctx, []string{"seat:SL7", "seat:UB6"}, owner, time.Minute); err == nil {
				winners.Add(1)
			}
		}(fmt.Sprintf("attempt-%d", i))
	}

	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}
