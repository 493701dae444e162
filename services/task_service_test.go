package services

import (
	"errors"
	"testing"
)

// fakeCompletionStore records the calls completeTask makes so the
// delete-before-increment sequencing can be asserted without a database.
type fakeCompletionStore struct {
	deleteErr    error
	incrementErr error

	deleted     bool
	incremented bool
	awarded     int64
}

func (f *fakeCompletionStore) DeleteTask(taskID, ownerID string) error {
	f.deleted = true
	return f.deleteErr
}

func (f *fakeCompletionStore) IncrementXP(ownerID string, delta int64) error {
	f.incremented = true
	f.awarded = delta
	return f.incrementErr
}

func TestCompleteTaskAwardsXP(t *testing.T) {
	store := &fakeCompletionStore{}
	if err := completeTask(store, "t1", "u1", CompletionAward(2, 3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.deleted {
		t.Fatal("expected task delete")
	}
	if !store.incremented {
		t.Fatal("expected XP increment after successful delete")
	}
	if store.awarded != 100 {
		t.Fatalf("expected 100 XP for priority=2 effort=3, got %d", store.awarded)
	}
}

func TestCompleteTaskFailedDeleteSkipsXP(t *testing.T) {
	store := &fakeCompletionStore{deleteErr: errors.New("delete rejected")}
	err := completeTask(store, "t1", "u1", 100)
	if err == nil {
		t.Fatal("expected error from failed delete")
	}
	if store.incremented {
		t.Fatal("XP must not be incremented when the delete fails")
	}
}

func TestCompleteTaskIncrementFailureSurfaces(t *testing.T) {
	store := &fakeCompletionStore{incrementErr: errors.New("increment rejected")}
	err := completeTask(store, "t1", "u1", 100)
	if err == nil {
		t.Fatal("expected error from failed increment")
	}
	if !store.deleted {
		t.Fatal("delete should have been attempted first")
	}
}
