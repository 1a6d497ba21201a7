package monitor

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/rideshare-sim/rideshare-sim/sim"
)

// Report is the exportable record of one run: identity, the run's bounds,
// raw counts, and the summary statistics.
type Report struct {
	RunID          string    `json:"run_id"`
	CreatedAt      time.Time `json:"created_at"`
	Horizon        int64     `json:"horizon"`
	FinalClock     int64     `json:"final_clock"`
	ExecutedEvents int       `json:"executed_events"`
	Notifications  int       `json:"notifications"`
	Summary        Summary   `json:"summary"`
}

// NewReport assembles a Report from a finished run, assigning a fresh
// run ID.
func NewReport(s *sim.Simulator, m *Monitor) *Report {
	return &Report{
		RunID:          uuid.NewString(),
		CreatedAt:      time.Now().UTC(),
		Horizon:        s.Horizon,
		FinalClock:     s.Clock,
		ExecutedEvents: s.ExecutedEvents,
		Notifications:  m.Len(),
		Summary:        m.Summarize(),
	}
}

// WriteJSON writes the report, indented, to the file at path.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// Render writes a human-readable account of the run.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "run %s\n", r.RunID)
	fmt.Fprintf(w, "  final clock:        %d ticks (horizon %d)\n", r.FinalClock, r.Horizon)
	fmt.Fprintf(w, "  events executed:    %d\n", r.ExecutedEvents)
	fmt.Fprintf(w, "  notifications:      %d\n", r.Notifications)
	fmt.Fprintf(w, "  rider requests:     %d (fulfilled %d, cancelled %d)\n",
		r.Summary.RiderRequests, r.Summary.FulfilledRiders, r.Summary.CancelledRiders)
	fmt.Fprintf(w, "  driver requests:    %d\n", r.Summary.DriverRequests)
	fmt.Fprintf(w, "  pickups/dropoffs:   %d/%d\n", r.Summary.Pickups, r.Summary.Dropoffs)
	fmt.Fprintf(w, "  rider wait:         mean %.2f p50 %.2f p90 %.2f p99 %.2f\n",
		r.Summary.RiderWaitMean, r.Summary.RiderWaitP50, r.Summary.RiderWaitP90, r.Summary.RiderWaitP99)
	fmt.Fprintf(w, "  driver distance:    mean %.2f (ride legs %.2f)\n",
		r.Summary.MeanDriverDistance, r.Summary.MeanRideDistance)
}
