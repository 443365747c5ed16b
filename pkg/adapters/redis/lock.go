package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/ports"
	"github.com/google/uuid"
	backend "github.com/redis/go-redis/v9"
)

var (
	// ErrLockAcquire is returned when the lock cannot be acquired.
	ErrLockAcquire = errors.New("failed to acquire distributed lock")
)

// DefaultPrefix namespaces lock keys.
const DefaultPrefix = "faqbot:"

// unlockScript deletes the key only if it still holds our token.
const unlockScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`

// Locker implements ports.DistributedLocker using Redis.
type Locker struct {
	client       backend.UniversalClient
	prefix       string
	pollInterval time.Duration
}

// Ensure Locker implements ports.DistributedLocker
var _ ports.DistributedLocker = (*Locker)(nil)

// LockerOption configures the Locker.
type LockerOption func(*Locker)

// WithPollInterval sets how often a contended lock is retried.
func WithPollInterval(d time.Duration) LockerOption {
	return func(l *Locker) {
		l.pollInterval = d
	}
}

// NewLocker creates a new Redis locker.
func NewLocker(client backend.UniversalClient, prefix string, opts ...LockerOption) *Locker {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	l := &Locker{
		client:       client,
		prefix:       prefix,
		pollInterval: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Dial connects to addr and verifies the connection with a PING.
func Dial(ctx context.Context, addr string) (*backend.Client, error) {
	client := backend.NewClient(&backend.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

// Lock acquires a distributed lock for the given key using Redis SET NX PX.
// Each holder stores a random token so it can only release its own lock.
func (l *Locker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	lockKey := l.prefix + "lock:" + key
	token := uuid.NewString()

	unlock := func(ctx context.Context) error {
		return l.client.Eval(ctx, unlockScript, []string{lockKey}, token).Err()
	}

	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, lockKey, token, ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("%w: %v", ErrLockAcquire, err)
		}
		if ok {
			return unlock, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			// Retry...
		}
	}
}
