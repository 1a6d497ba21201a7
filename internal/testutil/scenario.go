// Package testutil provides shared test fixtures for the rideshare-sim
// packages: canonical scenario/preset texts and temp-file helpers.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleScenario is a small well-formed scenario exercising both request
// kinds, comments and blank lines.
const SampleScenario = `# two drivers, two riders
0 DriverRequest Amaranth 1,1 1
0 DriverRequest Bangock 10,10 2

3 RiderRequest Cerise 4,2 1,5 15
# late rider with little patience
8 RiderRequest Dan 20,20 25,25 2
`

// SampleFleets is a minimal fleet preset file for generator tests.
const SampleFleets = `fleets:
  tiny:
    drivers: 2
    riders: 3
    grid_rows: 10
    grid_columns: 10
    speed_min: 1
    speed_max: 2
    patience_min: 5
    patience_max: 10
    timestamp_span: 20
`

// WriteTempFile writes content under a fresh temp dir and returns the path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}
