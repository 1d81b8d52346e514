package elev

import (
	"time"

	"elevsim/src/config"
	"elevsim/src/types"
)

// CompletionDuration simulates stop after stop until both indices are empty and returns
// stops*DoorOpen + floors*Travel. It consumes waiting and loaded, so pass clones.
func CompletionDuration(floor int, dir types.Direction, waiting, loaded RequestIndex, timing config.Timing) time.Duration {
	var numStops, numFloors int
	for {
		stop, nextDir, ok := chooseStop(floor, dir, waiting, loaded)
		if !ok {
			break
		}
		dir = nextDir
		numStops++
		numFloors += abs(stop - floor)
		floor = stop
		serveFloor(floor, waiting, loaded)
	}
	return time.Duration(numStops)*timing.DoorOpen + time.Duration(numFloors)*timing.Travel
}

// EstimateCost returns the time the elevator would additionally need to finish its queue
// if it accepted req.
func (e *Elevator) EstimateCost(req types.Request) time.Duration {
	asIs, accepted := e.estimate(req)
	return accepted - asIs
}

// EstimateCompletion returns the time the elevator would need to finish its queue including req.
func (e *Elevator) EstimateCompletion(req types.Request) time.Duration {
	_, accepted := e.estimate(req)
	return accepted
}

func (e *Elevator) estimate(req types.Request) (asIs, accepted time.Duration) {
	var floor int
	var dir types.Direction
	var waiting, loaded, extWaiting, extLoaded RequestIndex
	e.stateMgr.Exec(func(s *ElevState) {
		floor, dir = s.Floor, s.Dir
		waiting, loaded = s.Waiting.Clone(), s.Loaded.Clone()
		extWaiting, extLoaded = s.Waiting.Clone(), s.Loaded.Clone()
	})
	extWaiting.add(req.Origin, req)

	asIs = CompletionDuration(floor, dir, waiting, loaded, e.timing)
	accepted = CompletionDuration(floor, dir, extWaiting, extLoaded, e.timing)
	return asIs, accepted
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
