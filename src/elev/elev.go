package elev

import (
	"context"
	"log/slog"
	"time"

	"elevsim/src/config"
	"elevsim/src/timer"
	"elevsim/src/types"
)

// EventHandler receives the events of an elevator. It is called from the elevator goroutine
// outside of the state lock and should return quickly.
type EventHandler func(types.Event)

// Elevator serves the requests scheduled to it along a directional sweep. Cost queries and new
// requests are accepted while it travels or has its doors open.
type Elevator struct {
	id       string
	timing   config.Timing
	stateMgr *ElevStateMgr
	wake     chan struct{}
	onEvent  EventHandler
}

// New creates an elevator at floor 0 heading up. onEvent may be nil.
func New(id string, timing config.Timing, onEvent EventHandler) *Elevator {
	return NewAt(id, 0, types.Up, timing, onEvent)
}

func NewAt(id string, floor int, dir types.Direction, timing config.Timing, onEvent EventHandler) *Elevator {
	return &Elevator{
		id:       id,
		timing:   timing,
		stateMgr: newStateMgr(floor, dir),
		wake:     make(chan struct{}, 1),
		onEvent:  onEvent,
	}
}

func (e *Elevator) ID() string { return e.id }

func (e *Elevator) Floor() int {
	var floor int
	e.stateMgr.Exec(func(s *ElevState) { floor = s.Floor })
	return floor
}

func (e *Elevator) Direction() types.Direction {
	var dir types.Direction
	e.stateMgr.Exec(func(s *ElevState) { dir = s.Dir })
	return dir
}

func (e *Elevator) Behaviour() types.ElevBehaviour {
	var b types.ElevBehaviour
	e.stateMgr.Exec(func(s *ElevState) { b = s.Behaviour })
	return b
}

// Snapshot returns a copy of the state that stays valid while the elevator moves on.
func (e *Elevator) Snapshot() ElevState {
	return e.stateMgr.GetState()
}

// Pending counts the waiting and loaded requests.
func (e *Elevator) Pending() int {
	var n int
	e.stateMgr.Exec(func(s *ElevState) {
		n = s.Waiting.Len() + s.Loaded.Len()
	})
	return n
}

// ScheduleRequest queues req for pick-up at its origin and wakes the elevator if it is idle.
func (e *Elevator) ScheduleRequest(req types.Request) {
	e.stateMgr.Exec(func(s *ElevState) {
		s.Waiting.add(req.Origin, req)
		select {
		case e.wake <- struct{}{}:
		default:
		}
	})
	slog.Debug("Accepted request", "elevator", e.id, "request", req)
}

// Run moves the elevator floor by floor until ctx is cancelled. Waiting and loaded requests are
// abandoned on shutdown. Cancellation is the normal way out, so Run returns nil.
func (e *Elevator) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return e.shutdown()
		}

		var stop, floor int
		var found bool
		e.stateMgr.Exec(func(s *ElevState) {
			stop, s.Dir, found = chooseStop(s.Floor, s.Dir, s.Waiting, s.Loaded)
			floor = s.Floor
			if !found {
				s.Behaviour = types.Idle
				// Every request behind a pending wake-up is already in the indices.
				select {
				case <-e.wake:
				default:
				}
			}
		})

		if !found {
			e.emit(types.EventSuspended, floor, types.Request{})
			select {
			case <-ctx.Done():
				return e.shutdown()
			case <-e.wake:
			}
			e.emit(types.EventStarted, floor, types.Request{})
			continue
		}

		if stop != floor {
			e.stateMgr.Exec(func(s *ElevState) {
				s.Floor += int(s.Dir)
				s.Behaviour = types.Moving
			})
			if !timer.Pause(ctx, e.timing.Travel) {
				return e.shutdown()
			}
		}

		var pickedUp, droppedOff []types.Request
		e.stateMgr.Exec(func(s *ElevState) {
			floor = s.Floor
			pickedUp, droppedOff = serveFloor(s.Floor, s.Waiting, s.Loaded)
			if len(pickedUp) > 0 || len(droppedOff) > 0 {
				s.Behaviour = types.DoorOpen
			}
		})
		if len(pickedUp) == 0 && len(droppedOff) == 0 {
			continue
		}
		for _, req := range pickedUp {
			e.emit(types.EventPickUp, floor, req)
		}
		for _, req := range droppedOff {
			e.emit(types.EventDropOff, floor, req)
		}
		if !timer.Pause(ctx, e.timing.DoorOpen) {
			return e.shutdown()
		}
	}
}

func (e *Elevator) shutdown() error {
	var floor int
	e.stateMgr.Exec(func(s *ElevState) {
		s.Behaviour = types.Shutdown
		floor = s.Floor
	})
	e.emit(types.EventShutdown, floor, types.Request{})
	return nil
}

func (e *Elevator) emit(kind types.EventKind, floor int, req types.Request) {
	if e.onEvent == nil {
		return
	}
	e.onEvent(types.Event{
		Kind:       kind,
		ElevatorID: e.id,
		Floor:      floor,
		Request:    req,
		Time:       time.Now(),
	})
}
