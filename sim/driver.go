package sim

import (
	"fmt"
	"math"
)

// Driver is a participant offering rides. A driver is owned by exactly one
// collaborator at a time: either the dispatcher's idle roster or an
// in-flight event. Drivers persist for the whole run; they are never
// destroyed, only toggled idle/driving.
//
// Behaviorally this is a 3-state machine (idle, driving-to-pickup,
// driving-to-dropoff) modeled with the Idle flag plus the Destination
// field rather than an explicit enum.
type Driver struct {
	ID       string
	Location Location

	// Speed in distance units per tick. Strictly positive.
	Speed int64

	Idle        bool
	Destination *Location
}

// NewDriver creates an idle Driver at the given location.
// Speed must be strictly positive; a violation is a programming defect
// (the scenario parser rejects non-positive speeds before the core sees them).
func NewDriver(id string, location Location, speed int64) *Driver {
	if id == "" {
		panic("NewDriver: id must not be empty")
	}
	if speed <= 0 {
		panic(fmt.Sprintf("NewDriver %s: non-positive speed %d", id, speed))
	}
	return &Driver{
		ID:       id,
		Location: location,
		Speed:    speed,
		Idle:     true,
	}
}

// TravelTime returns the time (in ticks) to reach destination from the
// driver's current location, rounded to the nearest integer.
func (d *Driver) TravelTime(destination Location) int64 {
	dist := ManhattanDistance(d.Location, destination)
	return int64(math.Round(float64(dist) / float64(d.Speed)))
}

// RideTime returns the time (in ticks) for the ride leg from a rider's
// origin to their destination: distance over speed, truncated.
//
// Note the asymmetry with TravelTime: approach legs round to nearest, the
// ride leg truncates. This matches the reference timing exactly.
func (d *Driver) RideTime(origin, destination Location) int64 {
	return ManhattanDistance(origin, destination) / d.Speed
}

// StartDrive begins driving toward destination and returns the travel time.
// The driver leaves the idle state; its position stays put until the
// corresponding arrival event executes (positions jump discretely, they are
// never interpolated mid-travel).
func (d *Driver) StartDrive(destination Location) int64 {
	d.Idle = false
	dest := destination
	d.Destination = &dest
	return d.TravelTime(destination)
}

// Arrive applies the driver's discrete position jump to location.
func (d *Driver) Arrive(location Location) {
	d.Location = location
}

// EndDrive clears the driver's destination at the end of a leg. The driver
// stays non-idle until the dispatcher re-registers it.
func (d *Driver) EndDrive() {
	d.Destination = nil
}

func (d *Driver) String() string {
	state := "driving"
	if d.Idle {
		state = "idle"
	}
	return fmt.Sprintf("%s @%s speed=%d (%s)", d.ID, d.Location, d.Speed, state)
}
