package lock

//go:generate go run go.uber.org/mock/mockgen -source=./lock.go -destination=./mocks/lock_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"railbook/config"
	"railbook/infras/otel"
	"railbook/shared/constant"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName      = "lock"
	otelKeysAttribute  = "lock.keys"
	otelOwnerAttribute = "lock.owner"
)

var ErrHeld = errors.New("lock is held by another owner")

// HeldError names the first key that could not be acquired.
type HeldError struct {
	Key string
}

func (e *HeldError) Error() string {
	return fmt.Sprintf("%s is held by another owner", e.Key)
}

func (e *HeldError) Is(target error) bool {
	return target == ErrHeld
}

// Locker grants exclusive, expiring ownership of a set of keys.
// Acquire is all-or-nothing; acquiring keys already owned by the same owner refreshes their TTL.
// Release only removes keys still owned by owner.
type Locker interface {
	Acquire(ctx context.Context, keys []string, owner string, ttl time.Duration) error
	Release(ctx context.Context, keys []string, owner string) error
}

// KEYS = lock keys, ARGV[1] = owner, ARGV[2] = ttl in milliseconds.
// Returns 0 on success or the 1-based index of the first conflicting key.
var acquireScript = redis.NewScript(`
for i, key in ipairs(KEYS) do
	local holder = redis.call("GET", key)
	if holder and holder ~= ARGV[1] then
		return i
	end
end
for _, key in ipairs(KEYS) do
	redis.call("SET", key, ARGV[1], "PX", ARGV[2])
end
return 0
`)

var releaseScript = redis.NewScript(`
local released = 0
for _, key in ipairs(KEYS) do
	if redis.call("GET", key) == ARGV[1] then
		redis.call("DEL", key)
		released = released + 1
	end
end
return released
`)

type redisLocker struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisLocker(client *redis.Client, otl otel.Otel) Locker {
	return &redisLocker{
		client: client,
		otel:   otl,
	}
}

// New picks the lock backend configured for this process.
func New(cfg *config.Config, client *redis.Client, otl otel.Otel) Locker {
	if cfg.Booking.LockDriver == constant.LockDriverMemory {
		log.Warn().Msg("Using in-process seat locks, holds are not shared between instances")

		return NewMemoryLocker(time.Now)
	}

	return NewRedisLocker(client, otl)
}

func (l *redisLocker) Acquire(ctx context.Context, keys []string, owner string, ttl time.Duration) (err error) {
	ctx, scope := l.otel.NewScope(ctx, otelScopeName, otelScopeName+".Acquire")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelKeysAttribute:  keys,
		otelOwnerAttribute: owner,
	})

	if len(keys) == 0 {
		return nil
	}

	conflict, err := acquireScript.Run(ctx, l.client, keys, owner, ttl.Milliseconds()).Int()
	if err != nil {
		log.Error().Err(err).Strs("keys", keys).Msg("failed to run acquire script")

		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if conflict > 0 && conflict <= len(keys) {
		return &HeldError{Key: keys[conflict-1]}
	}

	return nil
}

func (l *redisLocker) Release(ctx context.Context, keys []string, owner string) (err error) {
	ctx, scope := l.otel.NewScope(ctx, otelScopeName, otelScopeName+".Release")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelKeysAttribute:  keys,
		otelOwnerAttribute: owner,
	})

	if len(keys) == 0 {
		return nil
	}

	released, err := releaseScript.Run(ctx, l.client, keys, owner).Int()
	if err != nil {
		log.Error().Err(err).Strs("keys", keys).Msg("failed to run release script")

		return fmt.Errorf("failed to release lock: %w", err)
	}

	scope.SetAttribute("lock.released", released)

	return nil
}
