package sim

import "fmt"

// Subject identifies which kind of participant a notification is about.
type Subject string

const (
	SubjectRider  Subject = "rider"
	SubjectDriver Subject = "driver"
)

// Action identifies the externally-visible occurrence being reported.
type Action string

const (
	ActionRequest Action = "request"
	ActionCancel  Action = "cancel"
	ActionPickup  Action = "pickup"
	ActionDropoff Action = "dropoff"
)

// Notification reports one externally-visible occurrence to the observer.
type Notification struct {
	Timestamp int64
	Subject   Subject
	Action    Action
	ID        string
	Location  Location
}

func (n Notification) String() string {
	return fmt.Sprintf("%7d  %-6s %-7s %s @ %s", n.Timestamp, n.Subject, n.Action, n.ID, n.Location)
}

// Observer receives notifications of externally-visible occurrences for
// later reporting. Notify is fire-and-forget: the core consumes no return
// value, and implementations must not panic back into the scheduler.
type Observer interface {
	Notify(n Notification)
}

// NopObserver discards all notifications. Useful when a run's output is not
// needed, and as the default when no observer is configured.
type NopObserver struct{}

// Notify implements Observer.
func (NopObserver) Notify(Notification) {}
