// Package busy implements the per-identifier busy marker: at most one
// in-flight mutating call per key. A duplicate submission for a busy
// key is rejected before any network call; unrelated keys stay
// independent.
package busy

import (
	"strconv"
	"sync"
)

type Tracker struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{inflight: map[string]struct{}{}}
}

// Key builds the "action:id" key for a mutating action on one record.
func Key(action string, id int) string {
	return action + ":" + strconv.Itoa(id)
}

// TryAcquire marks key busy. It reports false when a call for key is
// already outstanding.
func (t *Tracker) TryAcquire(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.inflight[key]; ok {
		return false
	}
	t.inflight[key] = struct{}{}
	return true
}

func (t *Tracker) Release(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.inflight, key)
}
