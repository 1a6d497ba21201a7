// Package sim provides the core discrete-event engine for the ride-sharing
// marketplace simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: the five event kinds (RiderRequest, DriverRequest, Pickup, Dropoff, Cancellation)
//   - dispatcher.go: the matching authority (idle-driver roster + FIFO rider waitlist)
//   - simulator.go: the clock, the horizon, and the pop-execute-push loop
//
// # Architecture
//
// The engine is a closed, deterministic, single-timeline replay: events are
// ordered by (timestamp, insertion sequence) in an EventHeap, popped one at a
// time, and executed against shared state. Executing an event mutates the
// Dispatcher and the participant records it carries, emits Notifications to
// an Observer, and returns successor events that the loop schedules back
// into the heap. Nothing blocks and nothing runs concurrently; "races"
// between a pickup and a rider's patience timeout are resolved by status
// checks at execution time, not by locking.
//
// External collaborators live in sub-packages:
//   - sim/scenario/: text scenario parsing, validation, and synthetic generation
//   - sim/monitor/: a recording Observer with summary statistics and run reports
package sim
