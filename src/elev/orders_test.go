package elev

import (
	"testing"

	"elevsim/src/types"
)

// asIndex builds an index from {origin, destination} pairs keyed by origin or destination.
func asIndex(gen *types.IDGen, pairs [][2]int, byOrigin bool) RequestIndex {
	idx := RequestIndex{}
	for _, p := range pairs {
		req := gen.NewRequest(p[0], p[1])
		if byOrigin {
			idx.add(req.Origin, req)
		} else {
			idx.add(req.Destination, req)
		}
	}
	return idx
}

func TestAddGroupsByFloor(t *testing.T) {
	var gen types.IDGen
	idx := asIndex(&gen, [][2]int{{4, 5}, {7, 8}, {4, 0}}, true)

	if len(idx) != 2 {
		t.Errorf("Expected 2 floors, got %d", len(idx))
	}
	if len(idx[4]) != 2 {
		t.Errorf("Expected 2 requests at floor 4, got %d", len(idx[4]))
	}
	if idx.Len() != 3 {
		t.Errorf("Expected 3 requests, got %d", idx.Len())
	}
}

func TestRemoveFloorPrunesKey(t *testing.T) {
	var gen types.IDGen
	idx := asIndex(&gen, [][2]int{{4, 5}, {4, 6}, {7, 8}}, true)

	removed := idx.removeFloor(4)
	if len(removed) != 2 || removed[0].ID != 0 || removed[1].ID != 1 {
		t.Errorf("Expected R0 and R1 in id order, got %v", removed)
	}
	if _, ok := idx[4]; ok {
		t.Errorf("Expected floor 4 to be pruned")
	}
	if idx.hasFloor(4) {
		t.Errorf("Expected hasFloor(4) to be false")
	}
	if removed := idx.removeFloor(4); removed != nil {
		t.Errorf("Expected nothing left at floor 4, got %v", removed)
	}
}

func TestServeFloorMovesPickedUpToLoaded(t *testing.T) {
	var gen types.IDGen
	loaded := asIndex(&gen, [][2]int{{6, 7}}, false)
	waiting := asIndex(&gen, [][2]int{{7, 2}, {7, 5}}, true)

	pickedUp, droppedOff := serveFloor(7, waiting, loaded)
	if len(pickedUp) != 2 {
		t.Errorf("Expected 2 pick-ups, got %v", pickedUp)
	}
	if len(droppedOff) != 1 || droppedOff[0].ID != 0 {
		t.Errorf("Expected R0 dropped off, got %v", droppedOff)
	}
	if waiting.Len() != 0 {
		t.Errorf("Expected no waiting requests, got %d", waiting.Len())
	}
	if !loaded.hasFloor(2) || !loaded.hasFloor(5) || loaded.hasFloor(7) {
		t.Errorf("Expected loaded at floors 2 and 5 only, got %v", loaded)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	var gen types.IDGen
	idx := asIndex(&gen, [][2]int{{1, 2}}, true)
	clone := idx.Clone()

	clone.add(3, gen.NewRequest(3, 4))
	clone.removeFloor(1)

	if !idx.hasFloor(1) || idx.hasFloor(3) {
		t.Errorf("Expected original untouched, got %v", idx)
	}
	if clone.hasFloor(1) || !clone.hasFloor(3) {
		t.Errorf("Expected clone to hold only floor 3, got %v", clone)
	}
}

func TestCloneOfEmptyIndexIsUsable(t *testing.T) {
	clone := RequestIndex{}.Clone()
	clone.add(0, types.Request{})
	if clone.Len() != 1 {
		t.Errorf("Expected 1 request, got %d", clone.Len())
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	var gen types.IDGen
	e := NewAt("E0", 4, types.Down, testTiming, nil)
	e.ScheduleRequest(gen.NewRequest(2, 9))

	snap := e.Snapshot()
	e.ScheduleRequest(gen.NewRequest(2, 0))

	if snap.Floor != 4 || snap.Dir != types.Down {
		t.Errorf("Expected floor 4 heading down, got %d %v", snap.Floor, snap.Dir)
	}
	if snap.Waiting.Len() != 1 {
		t.Errorf("Expected snapshot to keep 1 waiting request, got %d", snap.Waiting.Len())
	}
	if e.Pending() != 2 {
		t.Errorf("Expected 2 pending requests, got %d", e.Pending())
	}
}
