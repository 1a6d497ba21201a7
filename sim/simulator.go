// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// HorizonUnbounded makes Run drain the queue with no time limit.
const HorizonUnbounded int64 = -1

// Simulator drives the event loop: it owns the event queue, the virtual
// clock, and the shared state (dispatcher, observer) that events mutate.
// Execution is strictly sequential — pop the earliest event, execute it,
// schedule its successors, repeat — so every mutation of the roster, the
// waitlist, and the participant records happens from exactly one writer at
// a time, and no locking is needed.
type Simulator struct {
	Dispatcher *Dispatcher

	// Clock is the timestamp of the event currently (or most recently)
	// executing. It never moves backwards; a regression is a defect and
	// panics.
	Clock int64

	// Horizon is the maximum timestamp Run will execute. An event popped
	// with a later timestamp stops the run. HorizonUnbounded disables the
	// limit.
	Horizon int64

	// ExecutedEvents counts events executed by Run.
	ExecutedEvents int

	queue    *EventHeap
	observer Observer
}

// NewSimulator creates a Simulator with an empty queue and a fresh
// dispatcher. A nil observer is replaced with NopObserver.
func NewSimulator(horizon int64, observer Observer) *Simulator {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Simulator{
		Dispatcher: NewDispatcher(),
		Horizon:    horizon,
		queue:      NewEventHeap(),
		observer:   observer,
	}
}

// Schedule inserts an event into the queue. Malformed events are rejected
// here, at insertion, by panic (see EventHeap.Schedule).
func (s *Simulator) Schedule(e Event) {
	s.queue.Schedule(e)
}

// QueuedEvents returns the number of events waiting in the queue.
func (s *Simulator) QueuedEvents() int {
	return s.queue.Len()
}

// Notify forwards a notification to the observer. Fire-and-forget.
func (s *Simulator) Notify(n Notification) {
	s.observer.Notify(n)
}

// Run executes events in (timestamp, insertion) order until the queue is
// empty or the next event lies beyond the horizon. Successor events
// returned by each execution are scheduled back into the queue.
func (s *Simulator) Run() {
	for s.queue.Len() > 0 {
		event := s.queue.PopNext()

		if s.Horizon != HorizonUnbounded && event.Timestamp() > s.Horizon {
			logrus.Infof("Horizon %d reached, stopping with %d events unexecuted", s.Horizon, s.queue.Len()+1)
			break
		}

		if event.Timestamp() < s.Clock {
			panic(fmt.Sprintf("clock went backwards: %d < %d (%T)", event.Timestamp(), s.Clock, event))
		}
		s.Clock = event.Timestamp()

		logrus.Debugf("[tick %07d] executing %T", s.Clock, event)
		for _, successor := range event.Execute(s) {
			if successor.Timestamp() < s.Clock {
				panic(fmt.Sprintf("successor %T scheduled in the past: %d < %d", successor, successor.Timestamp(), s.Clock))
			}
			s.Schedule(successor)
		}
		s.ExecutedEvents++
	}
}
