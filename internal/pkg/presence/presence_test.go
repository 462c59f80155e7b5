package presence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestTrackers(t *testing.T) {
	build := map[string]func(t *testing.T, clock *fakeClock) Tracker{
		"memory": func(t *testing.T, clock *fakeClock) Tracker {
			tr := NewMemoryTracker()
			tr.now = clock.now
			return tr
		},
		"redis": func(t *testing.T, clock *fakeClock) Tracker {
			mr := miniredis.RunT(t)
			client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			t.Cleanup(func() { client.Close() })
			tr := NewRedisTracker(client, "")
			tr.now = clock.now
			return tr
		},
	}

	for name, newTracker := range build {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			clock := &fakeClock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
			tracker := newTracker(t, clock)

			// Arrange
			require.NoError(t, tracker.Track(ctx, "u1"))
			require.NoError(t, tracker.Track(ctx, "u2"))
			clock.t = clock.t.Add(3 * time.Minute)
			require.NoError(t, tracker.Track(ctx, "u3"))
			require.NoError(t, tracker.Track(ctx, "u1"))

			// Act
			count, err := tracker.LiveCount(ctx, LiveWindow)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, 3, count)

			clock.t = clock.t.Add(4 * time.Minute)
			count, err = tracker.LiveCount(ctx, LiveWindow)
			require.NoError(t, err)
			assert.Equal(t, 2, count, "u2 idles out, u1 was refreshed")

			clock.t = clock.t.Add(10 * time.Minute)
			count, err = tracker.LiveCount(ctx, LiveWindow)
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestRedisTracker_ConnectionError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	tracker := NewRedisTracker(client, "test:presence")

	assert.Error(t, tracker.Track(context.Background(), "u1"))
	_, err := tracker.LiveCount(context.Background(), LiveWindow)
	assert.Error(t, err)
}
