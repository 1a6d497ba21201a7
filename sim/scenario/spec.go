// Package scenario handles the external input side of the simulator: the
// textual event-list format, its validation, and synthetic scenario
// generation. The core consumes only the typed event list produced here; it
// never parses text itself.
package scenario

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rideshare-sim/rideshare-sim/sim"
)

// Event kinds as they appear in scenario files. Only requests appear in
// input — pickups, dropoffs and cancellations are produced by the engine.
const (
	KindDriverRequest = "DriverRequest"
	KindRiderRequest  = "RiderRequest"
)

// EventSpec is one validated initial-event specification. The participants
// themselves (Driver, Rider) are constructed by Build, outside the core.
type EventSpec struct {
	Timestamp int64  `validate:"gte=0"`
	Kind      string `validate:"oneof=DriverRequest RiderRequest"`
	ID        string `validate:"required"`
	Origin    sim.Location

	// Driver requests only.
	Speed int64

	// Rider requests only.
	Destination sim.Location
	Patience    int64
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(eventSpecStructLevel, EventSpec{})
	return v
}

// eventSpecStructLevel enforces the kind-specific constraints that plain
// field tags cannot express: drivers need a strictly positive speed, riders
// a non-negative patience.
func eventSpecStructLevel(sl validator.StructLevel) {
	spec := sl.Current().Interface().(EventSpec)
	switch spec.Kind {
	case KindDriverRequest:
		if spec.Speed <= 0 {
			sl.ReportError(spec.Speed, "Speed", "Speed", "gt", "0")
		}
	case KindRiderRequest:
		if spec.Patience < 0 {
			sl.ReportError(spec.Patience, "Patience", "Patience", "gte", "0")
		}
	}
}

// Validate checks an EventSpec against its constraints, returning a
// readable error listing every failed field.
func (s EventSpec) Validate() error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages.
func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf(
			"field %s failed %q (value: %v)", e.Field(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}

// Line renders the spec in the scenario-file format.
func (s EventSpec) Line() string {
	if s.Kind == KindDriverRequest {
		return fmt.Sprintf("%d %s %s %s %d", s.Timestamp, s.Kind, s.ID, s.Origin, s.Speed)
	}
	return fmt.Sprintf("%d %s %s %s %s %d", s.Timestamp, s.Kind, s.ID, s.Origin, s.Destination, s.Patience)
}

// Build constructs the initial event batch for the simulator, creating the
// participant records the events carry. Specs must have been validated; an
// unknown kind panics.
func Build(specs []EventSpec) []sim.Event {
	events := make([]sim.Event, 0, len(specs))
	for _, spec := range specs {
		switch spec.Kind {
		case KindDriverRequest:
			driver := sim.NewDriver(spec.ID, spec.Origin, spec.Speed)
			events = append(events, sim.NewDriverRequest(spec.Timestamp, driver))
		case KindRiderRequest:
			rider := sim.NewRider(spec.ID, spec.Origin, spec.Destination, spec.Patience)
			events = append(events, sim.NewRiderRequest(spec.Timestamp, rider))
		default:
			panic(fmt.Sprintf("Build: unknown event kind %q", spec.Kind))
		}
	}
	return events
}
