package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EmptyQueue(t *testing.T) {
	s := NewSimulator(HorizonUnbounded, nil)
	s.Run()
	if s.ExecutedEvents != 0 {
		t.Errorf("executed %d events on an empty queue, want 0", s.ExecutedEvents)
	}
	if s.Clock != 0 {
		t.Errorf("clock = %d, want 0", s.Clock)
	}
}

func TestRun_ClockNeverRegresses(t *testing.T) {
	// Record the clock at every notification; it must be monotone.
	obs := &recordingObserver{}
	s := NewSimulator(HorizonUnbounded, obs)

	s.Schedule(NewDriverRequest(3, NewDriver("d1", NewLocation(0, 0), 1)))
	s.Schedule(NewRiderRequest(0, NewRider("r1", NewLocation(0, 2), NewLocation(0, 4), 50)))
	s.Schedule(NewDriverRequest(1, NewDriver("d2", NewLocation(5, 5), 2)))
	s.Run()

	prev := int64(0)
	for _, n := range obs.notifications {
		if n.Timestamp < prev {
			t.Fatalf("notification at %d after one at %d: time ran backwards", n.Timestamp, prev)
		}
		prev = n.Timestamp
	}
}

func TestRun_HorizonStopsExecution(t *testing.T) {
	obs := &recordingObserver{}
	s := NewSimulator(4, obs)

	// No drivers: the rider waitlists, the patience check at t=10 lies
	// beyond the horizon and must not execute.
	rider := NewRider("r1", NewLocation(0, 0), NewLocation(5, 5), 10)
	s.Schedule(NewRiderRequest(0, rider))
	s.Run()

	if rider.Status != RiderWaiting {
		t.Errorf("rider status = %s, want still waiting (cancellation beyond horizon)", rider.Status)
	}
	if s.ExecutedEvents != 1 {
		t.Errorf("executed %d events, want 1", s.ExecutedEvents)
	}
	if s.QueuedEvents() != 0 {
		t.Errorf("queued events after run = %d, want 0 (the over-horizon event is popped and discarded)", s.QueuedEvents())
	}
}

func TestRun_NoDrivers_PatienceCancels(t *testing.T) {
	// GIVEN a rider request at t=0 with patience 5 and no drivers anywhere
	obs := &recordingObserver{}
	s := NewSimulator(HorizonUnbounded, obs)
	rider := NewRider("r1", NewLocation(0, 0), NewLocation(5, 5), 5)
	s.Schedule(NewRiderRequest(0, rider))

	// WHEN the simulation drains
	s.Run()

	// THEN exactly the request and its cancellation fire, and the
	// cancellation at t=5 leaves the rider cancelled and off the waitlist
	require.Equal(t, [][3]string{
		{"rider", "request", "r1"},
		{"rider", "cancel", "r1"},
	}, obs.actions())
	assert.Equal(t, int64(5), obs.notifications[1].Timestamp)
	assert.Equal(t, RiderCancelled, rider.Status)
	assert.Equal(t, 0, s.Dispatcher.WaitingRiders())
}

func TestRun_FullRide_SatisfiedAtPickup(t *testing.T) {
	// GIVEN driver d at (0,0) speed 1 requesting at t=0, and rider r
	// (origin (0,3), destination (0,5), patience 100) requesting at t=1
	obs := &recordingObserver{}
	s := NewSimulator(HorizonUnbounded, obs)
	driver := NewDriver("d", NewLocation(0, 0), 1)
	rider := NewRider("r", NewLocation(0, 3), NewLocation(0, 5), 100)
	s.Schedule(NewDriverRequest(0, driver))
	s.Schedule(NewRiderRequest(1, rider))

	// WHEN the simulation drains
	s.Run()

	// THEN the pickup lands at t=1+3=4 and the dropoff at t=4+0+2=6
	require.Equal(t, [][3]string{
		{"driver", "request", "d"},
		{"rider", "request", "r"},
		{"rider", "pickup", "r"},
		{"driver", "pickup", "d"},
		{"driver", "dropoff", "d"},
		{"driver", "request", "d"},
	}, obs.actions())

	pickup := obs.notifications[2]
	dropoff := obs.notifications[4]
	assert.Equal(t, int64(4), pickup.Timestamp)
	assert.Equal(t, int64(6), dropoff.Timestamp)

	// Satisfied at pickup time, not dropoff time.
	assert.Equal(t, RiderSatisfied, rider.Status)

	// Observer saw arrival-consistent positions.
	assert.Equal(t, NewLocation(0, 3), obs.notifications[3].Location)
	assert.Equal(t, NewLocation(0, 5), dropoff.Location)

	// The driver ended idle on the roster, back at the rider destination.
	assert.True(t, driver.Idle)
	assert.Nil(t, driver.Destination)
	assert.Equal(t, NewLocation(0, 5), driver.Location)
	assert.Equal(t, 1, s.Dispatcher.IdleDrivers())
}

func TestRun_PatienceBeatsPickup_NoShow(t *testing.T) {
	// GIVEN the same geometry but patience 2: the cancellation fires at
	// t=3, before the pickup at t=4
	obs := &recordingObserver{}
	s := NewSimulator(HorizonUnbounded, obs)
	driver := NewDriver("d", NewLocation(0, 0), 1)
	rider := NewRider("r", NewLocation(0, 3), NewLocation(0, 5), 2)
	s.Schedule(NewDriverRequest(0, driver))
	s.Schedule(NewRiderRequest(1, rider))

	// WHEN the simulation drains
	s.Run()

	// THEN the pickup treats the rider as a no-show: no dropoff, and the
	// driver immediately re-requests and ends up idle at the rider origin
	require.Equal(t, [][3]string{
		{"driver", "request", "d"},
		{"rider", "request", "r"},
		{"rider", "cancel", "r"},
		{"rider", "pickup", "r"},
		{"driver", "pickup", "d"},
		{"driver", "request", "d"},
	}, obs.actions())

	assert.Equal(t, int64(3), obs.notifications[2].Timestamp)
	assert.Equal(t, RiderCancelled, rider.Status)
	assert.Equal(t, NewLocation(0, 3), driver.Location)
	assert.True(t, driver.Idle)
	assert.Equal(t, 1, s.Dispatcher.IdleDrivers())
}

func TestRun_PickupBeatsPatience_CancellationNoOp(t *testing.T) {
	// Patience 100 means the cancellation fires at t=101, long after the
	// ride completed. It must not emit a cancel notification.
	obs := &recordingObserver{}
	s := NewSimulator(HorizonUnbounded, obs)
	s.Schedule(NewDriverRequest(0, NewDriver("d", NewLocation(0, 0), 1)))
	rider := NewRider("r", NewLocation(0, 3), NewLocation(0, 5), 100)
	s.Schedule(NewRiderRequest(1, rider))
	s.Run()

	for _, n := range obs.notifications {
		if n.Action == ActionCancel {
			t.Fatalf("unexpected cancel notification at %d for %s", n.Timestamp, n.ID)
		}
	}
	assert.Equal(t, RiderSatisfied, rider.Status)
}

func TestRun_DriverServesSecondRiderAfterDropoff(t *testing.T) {
	// After a dropoff the driver re-enters matching at the same tick and
	// picks up the rider who has been waiting.
	obs := &recordingObserver{}
	s := NewSimulator(HorizonUnbounded, obs)
	driver := NewDriver("d", NewLocation(0, 0), 1)
	first := NewRider("first", NewLocation(0, 1), NewLocation(0, 3), 50)
	second := NewRider("second", NewLocation(0, 4), NewLocation(0, 6), 50)

	s.Schedule(NewDriverRequest(0, driver))
	s.Schedule(NewRiderRequest(0, first))
	s.Schedule(NewRiderRequest(1, second))
	s.Run()

	assert.Equal(t, RiderSatisfied, first.Status)
	assert.Equal(t, RiderSatisfied, second.Status)
	assert.Equal(t, NewLocation(0, 6), driver.Location)
	assert.True(t, driver.Idle)
}

func TestRun_SuccessorInPast_Panics(t *testing.T) {
	s := NewSimulator(HorizonUnbounded, nil)
	s.Schedule(&backdatingEvent{time: 10})
	defer func() {
		if recover() == nil {
			t.Error("successor scheduled in the past should panic")
		}
	}()
	s.Run()
}

// backdatingEvent returns a successor timestamped before itself.
type backdatingEvent struct {
	time int64
}

func (e *backdatingEvent) Timestamp() int64 { return e.time }

func (e *backdatingEvent) Execute(*Simulator) []Event {
	return []Event{&backdatingEvent{time: e.time - 5}}
}
