// Package simulator feeds a scheduler with random requests.
package simulator

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"elevsim/src/dispatcher"
	"elevsim/src/elev"
	"elevsim/src/timer"
	"elevsim/src/types"
)

// Dispatcher is the part of the scheduler the simulator submits to.
type Dispatcher interface {
	AddRequest(req types.Request) (*elev.Elevator, error)
}

type Stats struct {
	Submitted  int
	Unassigned int
}

// Run submits requests with uniformly random floors in [0, numFloors), pausing a random
// duration below maxInterval between them, until ctx is done.
func Run(ctx context.Context, d Dispatcher, numFloors int, maxInterval time.Duration, rng *rand.Rand) Stats {
	var stats Stats
	var ids types.IDGen
	for {
		req := ids.NewRequest(rng.IntN(numFloors), rng.IntN(numFloors))
		stats.Submitted++
		if _, err := d.AddRequest(req); err != nil {
			stats.Unassigned++
			if !errors.Is(err, dispatcher.ErrNoElevator) {
				slog.Error("Request rejected", "request", req, "err", err)
			}
		}

		var pause time.Duration
		if maxInterval > 0 {
			pause = time.Duration(rng.Int64N(int64(maxInterval)))
		}
		if !timer.Pause(ctx, pause) {
			slog.Info("Request source stopped", "submitted", stats.Submitted, "unassigned", stats.Unassigned)
			return stats
		}
	}
}
