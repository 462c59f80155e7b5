package presence

import (
	"context"
	"sync"
	"time"
)

// LiveWindow is how long a user counts as online after their last request
const LiveWindow = 5 * time.Minute

// Tracker records user activity and counts recently active users
type Tracker interface {
	Track(ctx context.Context, userID string) error
	LiveCount(ctx context.Context, window time.Duration) (int, error)
}

// MemoryTracker keeps last-seen times in process memory
type MemoryTracker struct {
	mu       sync.Mutex
	lastSeen map[string]time.Time
	now      func() time.Time
}

func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{
		lastSeen: make(map[string]time.Time),
		now:      time.Now,
	}
}

func (t *MemoryTracker) Track(_ context.Context, userID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastSeen[userID] = t.now()
	return nil
}

// LiveCount sweeps entries idle for longer than window and counts the rest
func (t *MemoryTracker) LiveCount(_ context.Context, window time.Duration) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := t.now().Add(-window)
	for id, seen := range t.lastSeen {
		if seen.Before(cutoff) {
			delete(t.lastSeen, id)
		}
	}
	return len(t.lastSeen), nil
}
