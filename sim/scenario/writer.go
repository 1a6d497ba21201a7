package scenario

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Write renders specs in the scenario-file format, one event per line,
// prefixed by a comment header. The output round-trips through Parse.
func Write(w io.Writer, specs []EventSpec) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# rideshare-sim scenario")
	fmt.Fprintln(bw, "# <timestamp> DriverRequest <id> <row,col> <speed>")
	fmt.Fprintln(bw, "# <timestamp> RiderRequest <id> <row,col> <row,col> <patience>")
	for _, spec := range specs {
		if _, err := fmt.Fprintln(bw, spec.Line()); err != nil {
			return fmt.Errorf("writing scenario: %w", err)
		}
	}
	return bw.Flush()
}

// WriteFile writes specs to the scenario file at path.
func WriteFile(path string, specs []EventSpec) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating scenario file: %w", err)
	}
	defer f.Close()

	if err := Write(f, specs); err != nil {
		return err
	}
	return f.Close()
}
