package monitor

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/rideshare-sim/rideshare-sim/sim"
)

// Summary aggregates a run's recorded notifications. All statistics are
// zero-valued on an empty run.
type Summary struct {
	RiderRequests  int `json:"rider_requests"`
	DriverRequests int `json:"driver_requests"`
	Pickups        int `json:"pickups"`
	Dropoffs       int `json:"dropoffs"`
	Cancellations  int `json:"cancellations"`

	// FulfilledRiders counts riders that were picked up; CancelledRiders
	// counts riders whose patience ran out first. A no-show pickup (driver
	// arrives after the rider cancelled) counts toward neither.
	FulfilledRiders int `json:"fulfilled_riders"`
	CancelledRiders int `json:"cancelled_riders"`

	// Wait statistics over request-to-pickup deltas of fulfilled riders,
	// in ticks.
	RiderWaitMean float64 `json:"rider_wait_mean"`
	RiderWaitP50  float64 `json:"rider_wait_p50"`
	RiderWaitP90  float64 `json:"rider_wait_p90"`
	RiderWaitP99  float64 `json:"rider_wait_p99"`

	// MeanDriverDistance is the mean, over drivers, of the total Manhattan
	// distance walked across a driver's consecutive recorded positions.
	// MeanRideDistance is the mean pickup-to-dropoff leg.
	MeanDriverDistance float64 `json:"mean_driver_distance"`
	MeanRideDistance   float64 `json:"mean_ride_distance"`
}

// Summarize computes aggregate statistics from the recorded log.
func (m *Monitor) Summarize() Summary {
	var s Summary
	for _, n := range m.notifications {
		switch {
		case n.Subject == sim.SubjectRider && n.Action == sim.ActionRequest:
			s.RiderRequests++
		case n.Subject == sim.SubjectDriver && n.Action == sim.ActionRequest:
			s.DriverRequests++
		case n.Subject == sim.SubjectRider && n.Action == sim.ActionPickup:
			s.Pickups++
		case n.Action == sim.ActionDropoff:
			s.Dropoffs++
		case n.Action == sim.ActionCancel:
			s.Cancellations++
		}
	}

	waits := make([]float64, 0, len(m.riders))
	for _, timeline := range m.riders {
		if cancelled(timeline) {
			s.CancelledRiders++
			continue
		}
		requested, pickedUp := int64(-1), int64(-1)
		for _, n := range timeline {
			switch n.Action {
			case sim.ActionRequest:
				requested = n.Timestamp
			case sim.ActionPickup:
				pickedUp = n.Timestamp
			}
		}
		if requested >= 0 && pickedUp >= 0 {
			s.FulfilledRiders++
			waits = append(waits, float64(pickedUp-requested))
		}
	}

	if len(waits) > 0 {
		sort.Float64s(waits)
		s.RiderWaitMean = stat.Mean(waits, nil)
		s.RiderWaitP50 = stat.Quantile(0.50, stat.Empirical, waits, nil)
		s.RiderWaitP90 = stat.Quantile(0.90, stat.Empirical, waits, nil)
		s.RiderWaitP99 = stat.Quantile(0.99, stat.Empirical, waits, nil)
	}

	s.MeanDriverDistance, s.MeanRideDistance = m.driverDistances()
	return s
}

func cancelled(timeline []sim.Notification) bool {
	for _, n := range timeline {
		if n.Action == sim.ActionCancel {
			return true
		}
	}
	return false
}

// driverDistances walks each driver's recorded positions. Total distance
// sums every consecutive position delta; ride distance covers only
// pickup-to-dropoff legs.
func (m *Monitor) driverDistances() (meanTotal, meanRide float64) {
	totals := make([]float64, 0, len(m.drivers))
	rides := make([]float64, 0)
	for _, timeline := range m.drivers {
		total := 0.0
		for i := 1; i < len(timeline); i++ {
			step := sim.ManhattanDistance(timeline[i-1].Location, timeline[i].Location)
			total += float64(step)
			if timeline[i-1].Action == sim.ActionPickup && timeline[i].Action == sim.ActionDropoff {
				rides = append(rides, float64(step))
			}
		}
		totals = append(totals, total)
	}
	if len(totals) > 0 {
		meanTotal = stat.Mean(totals, nil)
	}
	if len(rides) > 0 {
		meanRide = stat.Mean(rides, nil)
	}
	return meanTotal, meanRide
}
