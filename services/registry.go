package services

import (
	"context"
	"sync"
)

// Feature names one live-subscription binding on the dashboard.
type Feature string

const (
	FeatureTasks       Feature = "tasks"
	FeatureTaskCounter Feature = "task_counter"
	FeatureNotes       Feature = "notes"
	FeatureChat        Feature = "chat"
	FeatureGrades      Feature = "grades"
	FeatureRanking     Feature = "ranking"
)

type handleKey struct {
	accountID string
	feature   Feature
}

type streamHandle struct {
	cancel context.CancelFunc
}

// StreamRegistry owns every live stream handle, keyed by (account, feature).
// Acquiring a handle for an already-active feature cancels and replaces the
// prior one — repeated session-change events can never stack subscriptions.
type StreamRegistry struct {
	mu      sync.Mutex
	handles map[handleKey]*streamHandle
}

func NewStreamRegistry() *StreamRegistry {
	return &StreamRegistry{handles: make(map[handleKey]*streamHandle)}
}

// Acquire registers a live subscription scoped to parent. The returned
// context is cancelled when the handle is replaced, released, or the session
// is torn down. release is idempotent.
func (r *StreamRegistry) Acquire(parent context.Context, accountID string, feature Feature) (ctx context.Context, release func()) {
	key := handleKey{accountID: accountID, feature: feature}
	ctx, cancel := context.WithCancel(parent)
	h := &streamHandle{cancel: cancel}

	r.mu.Lock()
	if prior, ok := r.handles[key]; ok {
		prior.cancel()
	}
	r.handles[key] = h
	r.mu.Unlock()

	var once sync.Once
	release = func() {
		once.Do(func() {
			cancel()
			r.mu.Lock()
			// remove the slot only if it still belongs to this handle —
			// a replacement may already own it
			if r.handles[key] == h {
				delete(r.handles, key)
			}
			r.mu.Unlock()
		})
	}
	return ctx, release
}

// ReleaseAll tears down every handle the account holds. Called on logout.
func (r *StreamRegistry) ReleaseAll(accountID string) {
	r.mu.Lock()
	for key, h := range r.handles {
		if key.accountID == accountID {
			h.cancel()
			delete(r.handles, key)
		}
	}
	r.mu.Unlock()
}

// ActiveCount reports how many handles the account currently holds.
func (r *StreamRegistry) ActiveCount(accountID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for key := range r.handles {
		if key.accountID == accountID {
			n++
		}
	}
	return n
}
