package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// Location is a position on the simulated city grid, expressed as integer
// (row, column) coordinates. Immutable value type.
type Location struct {
	Row    int64
	Column int64
}

// NewLocation creates a Location at the given grid coordinates.
func NewLocation(row, column int64) Location {
	return Location{Row: row, Column: column}
}

// String renders the location in the scenario-file format "row,col".
func (l Location) String() string {
	return fmt.Sprintf("%d,%d", l.Row, l.Column)
}

// ManhattanDistance returns the Manhattan distance between two locations:
// the sum of the absolute differences of their row and column coordinates.
func ManhattanDistance(origin, destination Location) int64 {
	return abs(destination.Row-origin.Row) + abs(destination.Column-origin.Column)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// ParseLocation parses a "row,col" string into a Location.
func ParseLocation(s string) (Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Location{}, fmt.Errorf("location %q: want format \"row,col\"", s)
	}
	row, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return Location{}, fmt.Errorf("location %q: bad row: %w", s, err)
	}
	col, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return Location{}, fmt.Errorf("location %q: bad column: %w", s, err)
	}
	return Location{Row: row, Column: col}, nil
}
