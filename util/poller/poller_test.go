package poller

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestPollerRunsImmediatelyAndRepeats(t *testing.T) {
	var runs atomic.Int64
	p := Start(10*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})
	defer p.Stop()

	deadline := time.Now().Add(time.Second)
	for runs.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("expected at least 3 runs, got %d", runs.Load())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestStopHaltsTask(t *testing.T) {
	var runs atomic.Int64
	p := Start(5*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})

	p.Stop()
	after := runs.Load()
	if after < 1 {
		t.Fatalf("expected the immediate run before stop, got %d", after)
	}

	time.Sleep(30 * time.Millisecond)
	if runs.Load() != after {
		t.Fatalf("expected no runs after stop, got %d more", runs.Load()-after)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	p := Start(5*time.Millisecond, func(ctx context.Context) {})
	p.Stop()
	p.Stop()
}
