// Contains the directional sweep that picks the next stop of an elevator.
package elev

import "elevsim/src/types"

// NextStop returns the floor where an elevator at floor travelling in dir has to stop next.
// The current floor counts as a stop if any request is keyed to it. Otherwise the nearest floor
// ahead in dir with a waiting or loaded request is returned. ok is false when nothing lies ahead.
func NextStop(floor int, dir types.Direction, waiting, loaded RequestIndex) (stop int, ok bool) {
	if waiting.hasFloor(floor) || loaded.hasFloor(floor) {
		return floor, true
	}

	var nextWaiting, nextLoaded int
	var hasWaiting, hasLoaded bool
	if dir == types.Up {
		nextWaiting, hasWaiting = waiting.nextAbove(floor)
		nextLoaded, hasLoaded = loaded.nextAbove(floor)
	} else {
		nextWaiting, hasWaiting = waiting.nextBelow(floor)
		nextLoaded, hasLoaded = loaded.nextBelow(floor)
	}

	switch {
	case hasWaiting && hasLoaded:
		if dir == types.Up {
			return min(nextWaiting, nextLoaded), true
		}
		return max(nextWaiting, nextLoaded), true
	case hasWaiting:
		return nextWaiting, true
	case hasLoaded:
		return nextLoaded, true
	}
	return 0, false
}

// chooseStop resolves the next stop in dir, and in the opposite direction if nothing lies ahead.
// The returned direction points towards the stop.
func chooseStop(floor int, dir types.Direction, waiting, loaded RequestIndex) (int, types.Direction, bool) {
	if stop, ok := NextStop(floor, dir, waiting, loaded); ok {
		return stop, dir, true
	}
	dir = dir.Flip()
	stop, ok := NextStop(floor, dir, waiting, loaded)
	return stop, dir, ok
}
