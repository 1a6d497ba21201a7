// Package monitor is the observation side of the simulator: a recording
// Observer that keeps the full ordered notification log plus
// per-participant timelines, summary statistics over them, and an
// exportable run report. The core knows nothing of it beyond the
// sim.Observer contract.
package monitor

import (
	"io"

	"github.com/rideshare-sim/rideshare-sim/sim"
)

// Monitor records every notification the engine emits, in emission order,
// and indexes them per participant.
type Monitor struct {
	notifications []sim.Notification
	riders        map[string][]sim.Notification
	drivers       map[string][]sim.Notification
}

// NewMonitor creates an empty Monitor.
func NewMonitor() *Monitor {
	return &Monitor{
		notifications: make([]sim.Notification, 0),
		riders:        make(map[string][]sim.Notification),
		drivers:       make(map[string][]sim.Notification),
	}
}

// Notify implements sim.Observer. Never panics back into the scheduler.
func (m *Monitor) Notify(n sim.Notification) {
	m.notifications = append(m.notifications, n)
	switch n.Subject {
	case sim.SubjectRider:
		m.riders[n.ID] = append(m.riders[n.ID], n)
	case sim.SubjectDriver:
		m.drivers[n.ID] = append(m.drivers[n.ID], n)
	}
}

// Notifications returns the full log in emission order. Callers must not
// mutate the returned slice.
func (m *Monitor) Notifications() []sim.Notification {
	return m.notifications
}

// Len returns the number of recorded notifications.
func (m *Monitor) Len() int {
	return len(m.notifications)
}

// RiderTimeline returns the recorded activity of one rider, oldest first.
func (m *Monitor) RiderTimeline(id string) []sim.Notification {
	return m.riders[id]
}

// DriverTimeline returns the recorded activity of one driver, oldest first.
func (m *Monitor) DriverTimeline(id string) []sim.Notification {
	return m.drivers[id]
}

// Render writes the notification log line by line, for --print-events.
func (m *Monitor) Render(w io.Writer) error {
	for _, n := range m.notifications {
		if _, err := io.WriteString(w, n.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}
