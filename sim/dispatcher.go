package sim

import "strings"

// Dispatcher is the matching authority: it owns the idle-driver roster and
// the rider waitlist, and answers "give me a driver" / "give me a rider"
// queries from event execution. The two policies are deliberately
// asymmetric: riders get the nearest idle driver (distance-optimizing),
// drivers get the oldest waiting rider (FIFO fairness). Preserve this.
//
// Both containers are owned exclusively by the dispatcher and mutated only
// inside its operations; no other collaborator holds a reference to them.
type Dispatcher struct {
	drivers  []*Driver // idle roster, in registration order
	waitlist []*Rider  // FIFO, oldest request first
}

// NewDispatcher creates a Dispatcher with an empty roster and waitlist.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		drivers:  make([]*Driver, 0),
		waitlist: make([]*Rider, 0),
	}
}

// RequestDriver returns the idle driver nearest (by Manhattan distance) to
// the rider's origin, or nil if the roster is empty. A matched driver is
// removed from the roster — it is now owned by the caller. When no driver
// is available the rider is appended to the waitlist.
//
// Ties break by roster order: the strict < scan means the earliest
// registered driver wins, keeping replay deterministic.
func (d *Dispatcher) RequestDriver(rider *Rider) *Driver {
	if rider == nil {
		panic("RequestDriver: rider must not be nil")
	}
	if len(d.drivers) == 0 {
		d.waitlist = append(d.waitlist, rider)
		return nil
	}

	best := 0
	bestDist := ManhattanDistance(d.drivers[0].Location, rider.Origin)
	for i, driver := range d.drivers[1:] {
		if dist := ManhattanDistance(driver.Location, rider.Origin); dist < bestDist {
			best, bestDist = i+1, dist
		}
	}

	driver := d.drivers[best]
	d.drivers = append(d.drivers[:best], d.drivers[best+1:]...)
	return driver
}

// RequestRider returns the rider that has been waiting longest, or nil if
// the waitlist is empty. A matched rider is removed from the waitlist. When
// no rider is waiting the driver is registered on the idle roster;
// re-registering an already-idle driver is a no-op.
func (d *Dispatcher) RequestRider(driver *Driver) *Rider {
	if driver == nil {
		panic("RequestRider: driver must not be nil")
	}
	if len(d.waitlist) == 0 {
		d.register(driver)
		return nil
	}
	rider := d.waitlist[0]
	d.waitlist = d.waitlist[1:]
	return rider
}

// CancelRide removes the rider from the waitlist if present. A rider that
// was never enqueued, or was already matched, is a no-op.
func (d *Dispatcher) CancelRide(rider *Rider) {
	if rider == nil {
		panic("CancelRide: rider must not be nil")
	}
	for i, waiting := range d.waitlist {
		if waiting.ID == rider.ID {
			d.waitlist = append(d.waitlist[:i], d.waitlist[i+1:]...)
			return
		}
	}
}

// register adds the driver to the idle roster, idempotent by identity.
func (d *Dispatcher) register(driver *Driver) {
	for _, idle := range d.drivers {
		if idle.ID == driver.ID {
			return
		}
	}
	driver.Idle = true
	d.drivers = append(d.drivers, driver)
}

// IdleDrivers returns the number of drivers on the idle roster.
func (d *Dispatcher) IdleDrivers() int {
	return len(d.drivers)
}

// WaitingRiders returns the number of riders on the waitlist.
func (d *Dispatcher) WaitingRiders() int {
	return len(d.waitlist)
}

func (d *Dispatcher) String() string {
	var sb strings.Builder
	sb.WriteString("idle=[")
	for i, driver := range d.drivers {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(driver.ID)
	}
	sb.WriteString("] waitlist=[")
	for i, rider := range d.waitlist {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(rider.ID)
	}
	sb.WriteString("]")
	return sb.String()
}
