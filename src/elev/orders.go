package elev

import (
	"cmp"
	"slices"

	"elevsim/src/types"

	"github.com/tiendc/go-deepcopy"
)

// RequestIndex groups requests by floor. The waiting index is keyed by origin, the loaded index by
// destination. A floor with no requests has no key.
type RequestIndex map[int]map[types.RequestID]types.Request

func (idx RequestIndex) add(floor int, req types.Request) {
	if idx[floor] == nil {
		idx[floor] = make(map[types.RequestID]types.Request)
	}
	idx[floor][req.ID] = req
}

// removeFloor deletes and returns the requests at floor, ordered by id.
func (idx RequestIndex) removeFloor(floor int) []types.Request {
	reqs, ok := idx[floor]
	if !ok {
		return nil
	}
	delete(idx, floor)
	removed := make([]types.Request, 0, len(reqs))
	for _, req := range reqs {
		removed = append(removed, req)
	}
	slices.SortFunc(removed, func(a, b types.Request) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return removed
}

// addLoaded moves picked up requests into idx under their destination.
func (idx RequestIndex) addLoaded(reqs []types.Request) {
	for _, req := range reqs {
		idx.add(req.Destination, req)
	}
}

func (idx RequestIndex) hasFloor(floor int) bool {
	return len(idx[floor]) > 0
}

// nextAbove returns the lowest floor above floor that has requests.
func (idx RequestIndex) nextAbove(floor int) (int, bool) {
	next, found := 0, false
	for f, reqs := range idx {
		if f > floor && len(reqs) > 0 && (!found || f < next) {
			next, found = f, true
		}
	}
	return next, found
}

// nextBelow returns the highest floor below floor that has requests.
func (idx RequestIndex) nextBelow(floor int) (int, bool) {
	next, found := 0, false
	for f, reqs := range idx {
		if f < floor && len(reqs) > 0 && (!found || f > next) {
			next, found = f, true
		}
	}
	return next, found
}

// Len counts the requests in idx.
func (idx RequestIndex) Len() int {
	n := 0
	for _, reqs := range idx {
		n += len(reqs)
	}
	return n
}

// Clone returns a deep copy that the duration estimate may consume.
func (idx RequestIndex) Clone() RequestIndex {
	clone := RequestIndex{}
	if err := deepcopy.Copy(&clone, idx); err != nil {
		panic(err)
	}
	if clone == nil {
		clone = RequestIndex{}
	}
	return clone
}

// serveFloor drops off the loaded requests at floor and picks up the waiting ones, which are
// moved into loaded under their destination.
func serveFloor(floor int, waiting, loaded RequestIndex) (pickedUp, droppedOff []types.Request) {
	pickedUp = waiting.removeFloor(floor)
	droppedOff = loaded.removeFloor(floor)
	loaded.addLoaded(pickedUp)
	return pickedUp, droppedOff
}
