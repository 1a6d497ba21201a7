package scenario

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rideshare-sim/rideshare-sim/sim"
)

// Parse reads a scenario event list: one event per line, blank lines and
// `#`-comments skipped. Formats:
//
//	<timestamp> DriverRequest <id> <row,col> <speed>
//	<timestamp> RiderRequest  <id> <row,col> <row,col> <patience>
//
// Malformed lines are a hard failure carrying the line number; nothing is
// returned once any line fails, so a bad scenario never reaches the
// scheduler partially parsed.
func Parse(r io.Reader) ([]EventSpec, error) {
	specs := make([]EventSpec, 0)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		spec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		specs = append(specs, spec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return specs, nil
}

// ParseFile reads and parses the scenario file at path.
func ParseFile(path string) ([]EventSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario: %w", err)
	}
	defer f.Close()

	specs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return specs, nil
}

func parseLine(line string) (EventSpec, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return EventSpec{}, fmt.Errorf("want \"<timestamp> <kind> ...\", got %q", line)
	}

	timestamp, err := strconv.ParseInt(tokens[0], 10, 64)
	if err != nil {
		return EventSpec{}, fmt.Errorf("bad timestamp %q: %w", tokens[0], err)
	}

	kind := tokens[1]
	switch kind {
	case KindDriverRequest:
		if len(tokens) != 5 {
			return EventSpec{}, fmt.Errorf("DriverRequest wants 5 fields, got %d", len(tokens))
		}
		origin, err := sim.ParseLocation(tokens[3])
		if err != nil {
			return EventSpec{}, err
		}
		speed, err := strconv.ParseInt(tokens[4], 10, 64)
		if err != nil {
			return EventSpec{}, fmt.Errorf("bad speed %q: %w", tokens[4], err)
		}
		return EventSpec{
			Timestamp: timestamp,
			Kind:      kind,
			ID:        tokens[2],
			Origin:    origin,
			Speed:     speed,
		}, nil

	case KindRiderRequest:
		if len(tokens) != 6 {
			return EventSpec{}, fmt.Errorf("RiderRequest wants 6 fields, got %d", len(tokens))
		}
		origin, err := sim.ParseLocation(tokens[3])
		if err != nil {
			return EventSpec{}, err
		}
		destination, err := sim.ParseLocation(tokens[4])
		if err != nil {
			return EventSpec{}, err
		}
		patience, err := strconv.ParseInt(tokens[5], 10, 64)
		if err != nil {
			return EventSpec{}, fmt.Errorf("bad patience %q: %w", tokens[5], err)
		}
		return EventSpec{
			Timestamp:   timestamp,
			Kind:        kind,
			ID:          tokens[2],
			Origin:      origin,
			Destination: destination,
			Patience:    patience,
		}, nil

	default:
		return EventSpec{}, fmt.Errorf("unknown event kind %q", kind)
	}
}
