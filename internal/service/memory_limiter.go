package service

import (
	"context"
	"sync"
	"time"
)

const (
	maxLimiterEntries      = 10000
	limiterCleanupInterval = time.Minute
	limiterEntryTTL        = 5 * time.Minute
)

type limiterEntry struct {
	timestamps []time.Time
	lastAccess time.Time
}

// MemoryLimiter is a per-process sliding window limiter.
type MemoryLimiter struct {
	mu          sync.Mutex
	store       map[string]*limiterEntry
	lastCleanup time.Time
	now         func() time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		store:       make(map[string]*limiterEntry),
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

func (l *MemoryLimiter) cleanup(now time.Time) {
	if now.Sub(l.lastCleanup) < limiterCleanupInterval {
		return
	}
	l.lastCleanup = now

	for key, entry := range l.store {
		if now.Sub(entry.lastAccess) > limiterEntryTTL {
			delete(l.store, key)
		}
	}

	// Still too large: drop an arbitrary fifth.
	if len(l.store) > maxLimiterEntries {
		drop := len(l.store) / 5
		for key := range l.store {
			if drop == 0 {
				break
			}
			delete(l.store, key)
			drop--
		}
	}
}

func (l *MemoryLimiter) CheckLimit(_ context.Context, key string, limit int, window time.Duration) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.cleanup(now)

	entry, exists := l.store[key]
	if !exists {
		entry = &limiterEntry{}
		l.store[key] = entry
	}
	entry.lastAccess = now

	windowStart := now.Add(-window)
	filtered := entry.timestamps[:0]
	for _, ts := range entry.timestamps {
		if ts.After(windowStart) {
			filtered = append(filtered, ts)
		}
	}
	entry.timestamps = filtered

	if len(entry.timestamps) >= limit {
		if len(entry.timestamps) == 0 {
			return false, now.Add(window)
		}
		return false, entry.timestamps[0].Add(window)
	}

	entry.timestamps = append(entry.timestamps, now)
	return true, entry.timestamps[0].Add(window)
}
