package service

import (
	"sync"
	"time"
)

// sourceLocks is a keyed mutex arena: one mutex per source address, created on
// demand and reaped once idle. It serializes the count-then-insert section of
// the ingestion pipeline per source so concurrent submissions from one address
// cannot slip past the quota together, while different addresses never block
// each other.
//
// The locks are process-local. A multi-instance deployment needs the quota
// check pushed into the store as a conditional insert instead.
type sourceLocks struct {
	mu      sync.Mutex
	entries map[string]*sourceLockEntry
	idleTTL time.Duration
}

type sourceLockEntry struct {
	mu sync.Mutex
	// waiters counts goroutines holding or queued on mu; reaping is only safe
	// at zero.
	waiters  int
	lastUsed time.Time
}

func newSourceLocks(idleTTL time.Duration) *sourceLocks {
	return &sourceLocks{
		entries: make(map[string]*sourceLockEntry),
		idleTTL: idleTTL,
	}
}

// Acquire blocks until the lock for key is held and returns the release func.
func (l *sourceLocks) Acquire(key string) func() {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &sourceLockEntry{}
		l.entries[key] = e
	}
	e.waiters++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.waiters--
		e.lastUsed = time.Now()
		l.mu.Unlock()
	}
}

// janitor periodically removes idle entries. Runs until the process exits.
func (l *sourceLocks) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		l.reapIdle(time.Now())
	}
}

// reapIdle drops entries that have no holders and have been idle past the TTL.
func (l *sourceLocks) reapIdle(now time.Time) {
	cutoff := now.Add(-l.idleTTL)
	l.mu.Lock()
	for key, e := range l.entries {
		if e.waiters == 0 && e.lastUsed.Before(cutoff) {
			delete(l.entries, key)
		}
	}
	l.mu.Unlock()
}
