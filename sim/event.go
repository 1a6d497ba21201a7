package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Event is one unit of simulated work. Each kind knows how to mutate
// dispatcher/participant state when invoked and which follow-up events to
// produce. Execute returns the successor events, every one stamped with a
// timestamp >= the triggering event's timestamp; the run loop schedules them.
type Event interface {
	Timestamp() int64
	Execute(sim *Simulator) []Event
}

// RiderRequest is a rider asking the dispatcher for a driver.
type RiderRequest struct {
	time  int64
	Rider *Rider
}

// NewRiderRequest creates a RiderRequest event.
func NewRiderRequest(timestamp int64, rider *Rider) *RiderRequest {
	if rider == nil {
		panic("NewRiderRequest: rider must not be nil")
	}
	return &RiderRequest{time: timestamp, Rider: rider}
}

// Timestamp returns the scheduled time of the request.
func (e *RiderRequest) Timestamp() int64 {
	return e.time
}

// Execute asks the dispatcher for a driver. On a match the driver starts
// driving to the rider's origin and a Pickup is scheduled for its arrival;
// otherwise the dispatcher has waitlisted the rider. Either way a
// Cancellation is scheduled at timestamp + patience — it is a guarded
// future check, not an immediate cancel, and becomes a no-op if the rider
// is picked up first.
func (e *RiderRequest) Execute(sim *Simulator) []Event {
	logrus.Infof("<< RiderRequest: %s at %d ticks", e.Rider.ID, e.time)
	sim.Notify(Notification{
		Timestamp: e.time,
		Subject:   SubjectRider,
		Action:    ActionRequest,
		ID:        e.Rider.ID,
		Location:  e.Rider.Origin,
	})

	events := make([]Event, 0, 2)
	if driver := sim.Dispatcher.RequestDriver(e.Rider); driver != nil {
		travelTime := driver.StartDrive(e.Rider.Origin)
		events = append(events, NewPickup(e.time+travelTime, e.Rider, driver))
	}
	events = append(events, NewCancellation(e.time+e.Rider.Patience, e.Rider))
	return events
}

func (e *RiderRequest) String() string {
	return fmt.Sprintf("%d -- %s: request a driver", e.time, e.Rider)
}

// DriverRequest is a driver asking the dispatcher for a rider.
type DriverRequest struct {
	time   int64
	Driver *Driver
}

// NewDriverRequest creates a DriverRequest event.
func NewDriverRequest(timestamp int64, driver *Driver) *DriverRequest {
	if driver == nil {
		panic("NewDriverRequest: driver must not be nil")
	}
	return &DriverRequest{time: timestamp, Driver: driver}
}

// Timestamp returns the scheduled time of the request.
func (e *DriverRequest) Timestamp() int64 {
	return e.time
}

// Execute asks the dispatcher for a rider. On a match the driver starts
// driving to the rider's origin and a Pickup is scheduled for its arrival.
// Otherwise the dispatcher registers the driver idle and no successor is
// produced: the simulation does not poll — the driver re-requests only when
// a future Dropoff (or no-show Pickup) re-issues a DriverRequest, or a
// RiderRequest pulls it off the roster.
func (e *DriverRequest) Execute(sim *Simulator) []Event {
	logrus.Infof("<< DriverRequest: %s at %d ticks", e.Driver.ID, e.time)
	sim.Notify(Notification{
		Timestamp: e.time,
		Subject:   SubjectDriver,
		Action:    ActionRequest,
		ID:        e.Driver.ID,
		Location:  e.Driver.Location,
	})

	rider := sim.Dispatcher.RequestRider(e.Driver)
	if rider == nil {
		return nil
	}
	travelTime := e.Driver.StartDrive(rider.Origin)
	return []Event{NewPickup(e.time+travelTime, rider, e.Driver)}
}

func (e *DriverRequest) String() string {
	return fmt.Sprintf("%d -- %s: request a rider", e.time, e.Driver)
}

// Pickup is a driver arriving at a rider's origin.
type Pickup struct {
	time   int64
	Rider  *Rider
	Driver *Driver
}

// NewPickup creates a Pickup event for the driver's arrival at the rider's
// origin.
func NewPickup(timestamp int64, rider *Rider, driver *Driver) *Pickup {
	if rider == nil {
		panic("NewPickup: rider must not be nil")
	}
	if driver == nil {
		panic("NewPickup: driver must not be nil")
	}
	return &Pickup{time: timestamp, Rider: rider, Driver: driver}
}

// Timestamp returns the driver's arrival time at the rider's origin.
func (e *Pickup) Timestamp() int64 {
	return e.time
}

// Execute applies the driver's arrival at the rider's origin, then notifies
// the observer of both the rider and driver pickup. The position jump
// happens before the notifications fire so the observer always sees an
// arrival-consistent position.
//
// If the rider cancelled before this event fired (patience ran out while
// the driver was en route), the driver has arrived at a no-show: no ride
// occurs and a fresh DriverRequest for the same driver is issued at the
// same timestamp. If the rider is still waiting, the ride starts: the rider
// is satisfied immediately (which is what turns a later Cancellation into a
// no-op) and a Dropoff is scheduled after the ride leg.
func (e *Pickup) Execute(sim *Simulator) []Event {
	logrus.Infof("<< Pickup: %s by %s at %d ticks", e.Rider.ID, e.Driver.ID, e.time)
	e.Driver.Arrive(e.Rider.Origin)

	sim.Notify(Notification{
		Timestamp: e.time,
		Subject:   SubjectRider,
		Action:    ActionPickup,
		ID:        e.Rider.ID,
		Location:  e.Rider.Origin,
	})
	sim.Notify(Notification{
		Timestamp: e.time,
		Subject:   SubjectDriver,
		Action:    ActionPickup,
		ID:        e.Driver.ID,
		Location:  e.Driver.Location,
	})

	switch e.Rider.Status {
	case RiderCancelled:
		e.Driver.EndDrive()
		return []Event{NewDriverRequest(e.time, e.Driver)}
	case RiderWaiting:
		// The approach term is zero here (the arrival jump already put the
		// driver at the origin); it is kept to preserve the literal
		// approach + ride duration formula.
		approach := e.Driver.StartDrive(e.Rider.Origin)
		ride := e.Driver.RideTime(e.Rider.Origin, e.Rider.Destination)
		dest := e.Rider.Destination
		e.Driver.Destination = &dest
		e.Rider.Satisfy()
		return []Event{NewDropoff(e.time+approach+ride, e.Rider, e.Driver)}
	default:
		// Satisfied before pickup cannot happen: a rider is picked up at
		// most once per run.
		panic(fmt.Sprintf("pickup of rider %s in status %s", e.Rider.ID, e.Rider.Status))
	}
}

func (e *Pickup) String() string {
	return fmt.Sprintf("%d -- pickup %s by %s", e.time, e.Rider.ID, e.Driver.ID)
}

// Dropoff is a driver arriving at a rider's destination.
type Dropoff struct {
	time   int64
	Rider  *Rider
	Driver *Driver
}

// NewDropoff creates a Dropoff event for the driver's arrival at the
// rider's destination.
func NewDropoff(timestamp int64, rider *Rider, driver *Driver) *Dropoff {
	if rider == nil {
		panic("NewDropoff: rider must not be nil")
	}
	if driver == nil {
		panic("NewDropoff: driver must not be nil")
	}
	return &Dropoff{time: timestamp, Rider: rider, Driver: driver}
}

// Timestamp returns the driver's arrival time at the rider's destination.
func (e *Dropoff) Timestamp() int64 {
	return e.time
}

// Execute applies the driver's arrival at the rider's destination (before
// the notification, as with Pickup), re-marks the rider satisfied
// (idempotent — the status was already set at pickup), clears the driver's
// destination, and re-issues a DriverRequest at the same timestamp so the
// driver re-enters matching immediately.
func (e *Dropoff) Execute(sim *Simulator) []Event {
	logrus.Infof("<< Dropoff: %s by %s at %d ticks", e.Rider.ID, e.Driver.ID, e.time)
	e.Driver.Arrive(e.Rider.Destination)

	sim.Notify(Notification{
		Timestamp: e.time,
		Subject:   SubjectDriver,
		Action:    ActionDropoff,
		ID:        e.Driver.ID,
		Location:  e.Driver.Location,
	})

	e.Rider.Satisfy()
	e.Driver.EndDrive()
	return []Event{NewDriverRequest(e.time, e.Driver)}
}

func (e *Dropoff) String() string {
	return fmt.Sprintf("%d -- dropoff %s by %s", e.time, e.Rider.ID, e.Driver.ID)
}

// Cancellation is a rider's patience check firing.
type Cancellation struct {
	time  int64
	Rider *Rider
}

// NewCancellation creates a Cancellation event.
func NewCancellation(timestamp int64, rider *Rider) *Cancellation {
	if rider == nil {
		panic("NewCancellation: rider must not be nil")
	}
	return &Cancellation{time: timestamp, Rider: rider}
}

// Timestamp returns the time the patience check fires.
func (e *Cancellation) Timestamp() int64 {
	return e.time
}

// Execute cancels the rider unless they were already picked up. The status
// check happens here, at execution time, not at schedule time — that is the
// whole mechanism resolving the pickup/patience race. A cancelled rider is
// removed from the waitlist if still on it. No successor events.
func (e *Cancellation) Execute(sim *Simulator) []Event {
	if !e.Rider.Cancel() {
		logrus.Debugf("<< Cancellation: %s already satisfied at %d ticks, no-op", e.Rider.ID, e.time)
		return nil
	}
	logrus.Infof("<< Cancellation: %s at %d ticks", e.Rider.ID, e.time)
	sim.Notify(Notification{
		Timestamp: e.time,
		Subject:   SubjectRider,
		Action:    ActionCancel,
		ID:        e.Rider.ID,
		Location:  e.Rider.Origin,
	})
	sim.Dispatcher.CancelRide(e.Rider)
	return nil
}

func (e *Cancellation) String() string {
	return fmt.Sprintf("%d -- cancellation of %s", e.time, e.Rider.ID)
}
