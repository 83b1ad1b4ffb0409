package lock

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	owner     string
	expiresAt time.Time
}

type memoryLocker struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]entry
}

// NewMemoryLocker keeps locks in process memory with the same semantics as the Redis backend.
func NewMemoryLocker(now func() time.Time) Locker {
	return &memoryLocker{
		now:     now,
		entries: map[string]entry{},
	}
}

func (l *memoryLocker) Acquire(_ context.Context, keys []string, owner string, ttl time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	for _, key := range keys {
		held, ok := l.entries[key]
		if ok && held.owner != owner && now.Before(held.expiresAt) {
			return &HeldError{Key: key}
		}
	}

	for _, key := range keys {
		l.entries[key] = entry{owner: owner, expiresAt: now.Add(ttl)}
	}

	return nil
}

func (l *memoryLocker) Release(_ context.Context, keys []string, owner string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, key := range keys {
		if held, ok := l.entries[key]; ok && held.owner == owner {
			delete(l.entries, key)
		}
	}

	return nil
}
