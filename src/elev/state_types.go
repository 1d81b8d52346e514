// State types are defined in elev package to make method receivers possible in elev.go.
package elev

import (
	"sync"

	"elevsim/src/types"
)

// ElevState represents the state of the elevator.
type ElevState struct {
	Floor     int
	Dir       types.Direction
	Behaviour types.ElevBehaviour
	Waiting   RequestIndex // keyed by origin
	Loaded    RequestIndex // keyed by destination
}

// ElevStateMgr owns the elevator state and serializes its access.
// Commands must not block: the control loop pauses outside of Exec.
type ElevStateMgr struct {
	mu    sync.Mutex
	state ElevState
}

func newStateMgr(floor int, dir types.Direction) *ElevStateMgr {
	return &ElevStateMgr{
		state: ElevState{
			Floor:     floor,
			Dir:       dir,
			Behaviour: types.Idle,
			Waiting:   RequestIndex{},
			Loaded:    RequestIndex{},
		},
	}
}

// Exec runs cmd with exclusive access to the state.
func (mgr *ElevStateMgr) Exec(cmd func(s *ElevState)) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	cmd(&mgr.state)
}

// GetState returns a copy of the state with cloned indices.
func (mgr *ElevStateMgr) GetState() ElevState {
	var clone ElevState
	mgr.Exec(func(s *ElevState) {
		clone = *s
		clone.Waiting = s.Waiting.Clone()
		clone.Loaded = s.Loaded.Clone()
	})
	return clone
}
