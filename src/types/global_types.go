package types

import (
	"fmt"
	"sync/atomic"
)

type RequestID uint64

// Request is one passenger transfer from Origin to Destination. Requests are compared by ID;
// two rides between the same floors are different requests.
type Request struct {
	ID          RequestID
	Origin      int
	Destination int
}

func (r Request) String() string {
	return fmt.Sprintf("R%d: %d>%d", r.ID, r.Origin, r.Destination)
}

// IDGen hands out increasing identities. The zero value starts at 0 and is safe for concurrent use.
type IDGen struct {
	counter atomic.Uint64
}

func (g *IDGen) Next() uint64 {
	return g.counter.Add(1) - 1
}

// NewRequest builds a request with the next identity from g.
func (g *IDGen) NewRequest(origin, destination int) Request {
	return Request{ID: RequestID(g.Next()), Origin: origin, Destination: destination}
}
