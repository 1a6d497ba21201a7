package scenario

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rideshare-sim/rideshare-sim/sim"
)

const sampleScenario = `# sample scenario
10 RiderRequest Cerise 4,2 1,5 15

0 DriverRequest Amaranth 1,1 1
# trailing comment
5 DriverRequest Crocus 3,1 1
`

func TestParse_Sample(t *testing.T) {
	specs, err := Parse(strings.NewReader(sampleScenario))
	require.NoError(t, err)
	require.Len(t, specs, 3)

	// Blank lines and comments are skipped; file order is preserved.
	assert.Equal(t, EventSpec{
		Timestamp:   10,
		Kind:        KindRiderRequest,
		ID:          "Cerise",
		Origin:      sim.NewLocation(4, 2),
		Destination: sim.NewLocation(1, 5),
		Patience:    15,
	}, specs[0])
	assert.Equal(t, EventSpec{
		Timestamp: 0,
		Kind:      KindDriverRequest,
		ID:        "Amaranth",
		Origin:    sim.NewLocation(1, 1),
		Speed:     1,
	}, specs[1])
	assert.Equal(t, "Crocus", specs[2].ID)
}

func TestParse_MalformedLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"unknown kind", "3 Teleport Cerise 1,1 5"},
		{"negative timestamp", "-1 DriverRequest Amaranth 1,1 1"},
		{"zero speed", "0 DriverRequest Amaranth 1,1 0"},
		{"negative speed", "0 DriverRequest Amaranth 1,1 -2"},
		{"negative patience", "0 RiderRequest Cerise 1,1 2,2 -5"},
		{"missing fields", "0 DriverRequest Amaranth"},
		{"extra fields", "0 DriverRequest Amaranth 1,1 1 9"},
		{"bad location", "0 DriverRequest Amaranth one,1 1"},
		{"bad timestamp", "x DriverRequest Amaranth 1,1 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.line + "\n"))
			require.Error(t, err)
			// The failure carries the (1-based) line number.
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}

func TestParse_ErrorReportsLaterLineNumber(t *testing.T) {
	input := "0 DriverRequest Amaranth 1,1 1\n# fine so far\n\nbroken line here\n"
	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}

func TestParse_EmptyInput(t *testing.T) {
	specs, err := Parse(strings.NewReader("# nothing but comments\n\n"))
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestWrite_RoundTrip(t *testing.T) {
	specs, err := Parse(strings.NewReader(sampleScenario))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Write(&sb, specs))

	again, err := Parse(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, specs, again)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile("does-not-exist.txt")
	require.Error(t, err)
}

func TestBuild_ConstructsParticipants(t *testing.T) {
	specs, err := Parse(strings.NewReader(sampleScenario))
	require.NoError(t, err)

	events := Build(specs)
	require.Len(t, events, 3)

	riderReq, ok := events[0].(*sim.RiderRequest)
	require.True(t, ok, "first event should be a RiderRequest")
	assert.Equal(t, int64(10), riderReq.Timestamp())
	assert.Equal(t, "Cerise", riderReq.Rider.ID)
	assert.Equal(t, sim.RiderWaiting, riderReq.Rider.Status)

	driverReq, ok := events[1].(*sim.DriverRequest)
	require.True(t, ok, "second event should be a DriverRequest")
	assert.Equal(t, "Amaranth", driverReq.Driver.ID)
	assert.True(t, driverReq.Driver.Idle)
}
