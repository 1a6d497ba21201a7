package sim

import "fmt"

// RiderStatus tracks where a rider is in their lifecycle.
type RiderStatus string

const (
	// RiderWaiting means the rider has requested a ride and is waiting
	// to be picked up.
	RiderWaiting RiderStatus = "waiting"
	// RiderCancelled means the rider's patience ran out (or the ride was
	// cancelled) before pickup. Terminal.
	RiderCancelled RiderStatus = "cancelled"
	// RiderSatisfied means the rider was picked up. Set at pickup time,
	// not dropoff time. Terminal.
	RiderSatisfied RiderStatus = "satisfied"
)

// Rider is a participant requesting a ride. Riders are created by the
// scenario parser (or test code), handed to the core inside a RiderRequest
// event, and mutated only from within event execution.
type Rider struct {
	ID          string
	Origin      Location
	Destination Location

	// Patience is the time budget (in ticks) after which a still-waiting
	// rider auto-cancels. Every RiderRequest schedules its own future
	// cancellation check at request time + patience.
	Patience int64

	Status RiderStatus
}

// NewRider creates a Rider in the waiting state.
// Patience must be non-negative; a violation is a programming defect.
func NewRider(id string, origin, destination Location, patience int64) *Rider {
	if id == "" {
		panic("NewRider: id must not be empty")
	}
	if patience < 0 {
		panic(fmt.Sprintf("NewRider %s: negative patience %d", id, patience))
	}
	return &Rider{
		ID:          id,
		Origin:      origin,
		Destination: destination,
		Patience:    patience,
		Status:      RiderWaiting,
	}
}

// Satisfy marks the rider as picked up. Idempotent: a Dropoff re-marking an
// already-satisfied rider is a no-op. Satisfying a cancelled rider is a
// defect — the Pickup event checks status before calling this.
func (r *Rider) Satisfy() {
	if r.Status == RiderCancelled {
		panic(fmt.Sprintf("rider %s: satisfy after cancel", r.ID))
	}
	r.Status = RiderSatisfied
}

// Cancel marks the rider as cancelled unless they were already picked up.
// Returns true if the status changed. A pickup that raced ahead of the
// scheduled cancellation wins; the cancellation degrades to a no-op.
func (r *Rider) Cancel() bool {
	if r.Status == RiderSatisfied {
		return false
	}
	r.Status = RiderCancelled
	return true
}

func (r *Rider) String() string {
	return fmt.Sprintf("%s @%s -> %s (%s)", r.ID, r.Origin, r.Destination, r.Status)
}
