package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"elevsim/src/config"
	"elevsim/src/elev"
	"elevsim/src/types"

	"golang.org/x/sync/errgroup"
)

var (
	ErrNoElevator     = errors.New("no elevator available")
	ErrInvalidRequest = errors.New("invalid request")
)

// Scheduler hands every request to the elevator with the lowest estimated cost.
type Scheduler struct {
	cfg     config.Config
	onEvent elev.EventHandler

	mu        sync.RWMutex
	elevators []*elev.Elevator
	ids       types.IDGen
	group     *errgroup.Group
	runCtx    context.Context
	cancel    context.CancelFunc
}

// New creates a scheduler without elevators. onEvent receives the events of every elevator the
// scheduler starts and may be nil.
func New(cfg config.Config, onEvent elev.EventHandler) *Scheduler {
	return &Scheduler{cfg: cfg, onEvent: onEvent}
}

// Start creates count elevators named E0, E1, ... and runs each in its own goroutine until
// Stop is called or ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.group == nil {
		s.runCtx, s.cancel = context.WithCancel(ctx)
		s.group = new(errgroup.Group)
	}
	timing := s.cfg.Timing()
	for range count {
		e := elev.New(fmt.Sprintf("E%d", s.ids.Next()), timing, s.onEvent)
		s.elevators = append(s.elevators, e)
		runCtx := s.runCtx
		s.group.Go(func() error {
			return e.Run(runCtx)
		})
	}
	slog.Info("Started elevators", "count", count, "total", len(s.elevators), "travel", timing.Travel, "doorOpen", timing.DoorOpen)
}

// Stop cancels every elevator and waits until all of them have shut down.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	cancel, group := s.cancel, s.group
	s.cancel, s.group, s.runCtx = nil, nil, nil
	s.mu.Unlock()

	if group == nil {
		return nil
	}
	cancel()
	err := group.Wait()
	slog.Info("All elevators stopped")
	return err
}

// Elevators returns the elevators in start order.
func (s *Scheduler) Elevators() []*elev.Elevator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.elevators)
}

// AddRequest assigns req to the running elevator with the strictly lowest cost, the first one on
// ties. It returns ErrNoElevator without side effects when no elevator is running.
func (s *Scheduler) AddRequest(req types.Request) (*elev.Elevator, error) {
	if s.cfg.NumFloors > 0 && !inRange(req, s.cfg.NumFloors) {
		return nil, fmt.Errorf("%w: %v outside floors 0-%d", ErrInvalidRequest, req, s.cfg.NumFloors-1)
	}

	var bids []bid
	for _, e := range s.Elevators() {
		if e.Behaviour() == types.Shutdown {
			continue
		}
		bids = append(bids, bid{elevator: e, cost: s.cost(e, req)})
	}

	assignee, cost, ok := findAssignee(bids)
	if !ok {
		slog.Warn("Request unassigned", "request", req, "reason", ErrNoElevator)
		return nil, ErrNoElevator
	}
	assignee.ScheduleRequest(req)
	slog.Debug("Assigned request", "request", req, "elevator", assignee.ID(), "cost", cost, "policy", s.cfg.CostPolicy)
	return assignee, nil
}

func (s *Scheduler) cost(e *elev.Elevator, req types.Request) time.Duration {
	if s.cfg.CostPolicy == config.Completion {
		return e.EstimateCompletion(req)
	}
	return e.EstimateCost(req)
}

type bid struct {
	elevator *elev.Elevator
	cost     time.Duration
}

func findAssignee(bids []bid) (*elev.Elevator, time.Duration, bool) {
	if len(bids) == 0 {
		return nil, 0, false
	}
	best := bids[0]
	for _, b := range bids[1:] {
		if b.cost < best.cost {
			best = b
		}
	}
	return best.elevator, best.cost, true
}

func inRange(req types.Request, numFloors int) bool {
	return req.Origin >= 0 && req.Origin < numFloors &&
		req.Destination >= 0 && req.Destination < numFloors
}
