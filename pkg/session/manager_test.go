package session_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/ports"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SerializesSameKey(t *testing.T) {
	manager := session.NewManager()
	ctx := context.Background()

	var inFlight, maxInFlight atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := manager.WithLock(ctx, "chan/msg", func(context.Context) error {
				n := inFlight.Add(1)
				for {
					old := maxInFlight.Load()
					if n <= old || maxInFlight.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond) // Simulate a fetch
				inFlight.Add(-1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInFlight.Load(), "presses on one prompt must not overlap")
	assert.Equal(t, 0, manager.Active())
}

func TestManager_DifferentKeysRunConcurrently(t *testing.T) {
	manager := session.NewManager()
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		_ = manager.WithLock(ctx, "chan/a", func(context.Context) error {
			close(started)
			<-release
			return nil
		})
		close(done)
	}()
	<-started

	// Must not block on chan/a.
	err := manager.WithLock(ctx, "chan/b", func(context.Context) error { return nil })
	require.NoError(t, err)

	close(release)
	<-done
}

func TestManager_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := session.NewManager().WithLock(context.Background(), "k", func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

type fakeLocker struct {
	locked   []string
	unlocked int
	err      error
}

func (f *fakeLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.locked = append(f.locked, key)
	return func(context.Context) error {
		f.unlocked++
		return nil
	}, nil
}

func TestManager_DistributedLocker(t *testing.T) {
	locker := &fakeLocker{}
	manager := session.NewManager(session.WithLocker(locker), session.WithLockTTL(time.Second))

	ran := false
	err := manager.WithLock(context.Background(), "chan/msg", func(context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, []string{"chan/msg"}, locker.locked)
	assert.Equal(t, 1, locker.unlocked)
}

func TestManager_DistributedLockerFailure(t *testing.T) {
	locker := &fakeLocker{err: errors.New("redis down")}
	manager := session.NewManager(session.WithLocker(locker))

	ran := false
	err := manager.WithLock(context.Background(), "chan/msg", func(context.Context) error {
		ran = true
		return nil
	})
	assert.ErrorIs(t, err, session.ErrLockUnavailable)
	assert.ErrorContains(t, err, "redis down")
	assert.False(t, ran)
	assert.Equal(t, 0, manager.Active())
}
