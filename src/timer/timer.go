package timer

import (
	"context"
	"log/slog"
	"time"
)

// Pause blocks for d or until ctx is done. It reports whether the full duration elapsed.
func Pause(ctx context.Context, d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer stopTimer(t)

	select {
	case <-ctx.Done():
		slog.Debug("Pause interrupted", "remaining", d)
		return false
	case <-t.C:
		return true
	}
}

// Stops the timer and drains its channel.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
