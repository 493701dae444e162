package services

import (
	"context"
	"testing"
)

func TestAcquireReplacesPriorHandle(t *testing.T) {
	r := NewStreamRegistry()

	ctx1, _ := r.Acquire(context.Background(), "u1", FeatureTasks)
	ctx2, _ := r.Acquire(context.Background(), "u1", FeatureTasks)

	select {
	case <-ctx1.Done():
	default:
		t.Fatal("first handle should be cancelled when the feature is re-acquired")
	}
	select {
	case <-ctx2.Done():
		t.Fatal("replacement handle should still be live")
	default:
	}

	if n := r.ActiveCount("u1"); n != 1 {
		t.Fatalf("redundant re-subscription must not stack handles, got %d", n)
	}
}

func TestAcquireSeparateFeaturesCoexist(t *testing.T) {
	r := NewStreamRegistry()

	ctxTasks, _ := r.Acquire(context.Background(), "u1", FeatureTasks)
	ctxChat, _ := r.Acquire(context.Background(), "u1", FeatureChat)

	select {
	case <-ctxTasks.Done():
		t.Fatal("tasks handle cancelled by unrelated chat acquire")
	default:
	}
	select {
	case <-ctxChat.Done():
		t.Fatal("chat handle should be live")
	default:
	}

	if n := r.ActiveCount("u1"); n != 2 {
		t.Fatalf("expected 2 independent handles, got %d", n)
	}
}

func TestReleaseAllTearsDownSession(t *testing.T) {
	r := NewStreamRegistry()

	ctx1, _ := r.Acquire(context.Background(), "u1", FeatureTasks)
	ctx2, _ := r.Acquire(context.Background(), "u1", FeatureGrades)
	ctxOther, _ := r.Acquire(context.Background(), "u2", FeatureTasks)

	r.ReleaseAll("u1")

	for _, ctx := range []context.Context{ctx1, ctx2} {
		select {
		case <-ctx.Done():
		default:
			t.Fatal("logout must cancel every handle the session holds")
		}
	}
	select {
	case <-ctxOther.Done():
		t.Fatal("another user's handle must survive")
	default:
	}

	if n := r.ActiveCount("u1"); n != 0 {
		t.Fatalf("expected no handles after teardown, got %d", n)
	}
}

func TestReleaseIsIdempotentAndScoped(t *testing.T) {
	r := NewStreamRegistry()

	_, release1 := r.Acquire(context.Background(), "u1", FeatureNotes)
	ctx2, release2 := r.Acquire(context.Background(), "u1", FeatureNotes)

	// releasing the replaced handle must not evict the live replacement
	release1()
	release1()

	select {
	case <-ctx2.Done():
		t.Fatal("stale release cancelled the live handle")
	default:
	}
	if n := r.ActiveCount("u1"); n != 1 {
		t.Fatalf("expected live replacement to remain, got %d", n)
	}

	release2()
	if n := r.ActiveCount("u1"); n != 0 {
		t.Fatalf("expected no handles after release, got %d", n)
	}
}
