package timer

import (
	"context"
	"testing"
	"time"
)

func TestPauseElapses(t *testing.T) {
	start := time.Now()
	if !Pause(context.Background(), 20*time.Millisecond) {
		t.Fatalf("Expected pause to elapse")
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Expected at least 20ms, got %v", elapsed)
	}
}

func TestPauseCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	if Pause(ctx, time.Minute) {
		t.Fatalf("Expected pause to be interrupted")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Expected prompt return, took %v", elapsed)
	}
}

func TestPauseAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if Pause(ctx, 0) {
		t.Errorf("Expected cancelled context to report false even for zero duration")
	}
}
