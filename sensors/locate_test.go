package sensors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsim/energize"
	"github.com/katalvlaran/gridsim/grid"
	"github.com/katalvlaran/gridsim/netbuild"
	"github.com/katalvlaran/gridsim/sensors"
)

func TestReadings_DefaultDead(t *testing.T) {
	a := sensors.Assignment{Sensors: []int64{3, 6}, Blocks: [][]int64{{1, 2, 3}, {4, 5, 6}}}
	r := sensors.Readings(a, map[int64]bool{3: true})

	assert.True(t, r[3])
	assert.False(t, r[6], "sensor absent from status reads dead")
}

func TestLocate_AllLive(t *testing.T) {
	a := sensors.Assignment{Sensors: []int64{3, 6, 7}}
	idx := sensors.Locate(a, map[int64]bool{3: true, 6: true, 7: true})
	assert.Equal(t, sensors.NoFault, idx)
}

func TestLocate_FirstDeadWins(t *testing.T) {
	a := sensors.Assignment{Sensors: []int64{3, 6, 7}}
	assert.Equal(t, 0, sensors.Locate(a, map[int64]bool{3: false, 6: false, 7: false}))
	assert.Equal(t, 1, sensors.Locate(a, map[int64]bool{3: true, 6: false, 7: false}))
	assert.Equal(t, 2, sensors.Locate(a, map[int64]bool{3: true, 6: true, 7: false}))
}

func TestLocate_MissingReadingTreatedLive(t *testing.T) {
	a := sensors.Assignment{Sensors: []int64{3, 6}}
	assert.Equal(t, 1, sensors.Locate(a, map[int64]bool{6: false}))
}

func TestLocate_NoSensors(t *testing.T) {
	assert.Equal(t, sensors.NoFault, sensors.Locate(sensors.Assignment{}, nil))
}

// TestLocate_Path7EndToEnd runs the full pipeline on the 7-bus path: fault
// on line (4,5) → sensor readings {3:live, 6:dead, 7:dead} → block 1.
func TestLocate_Path7EndToEnd(t *testing.T) {
	net, src := netbuild.Path(7)

	a, err := sensors.Place(net, src)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 6, 7}, a.Sensors)

	status, err := energize.Status(net, src, grid.NewLineSet(4))
	require.NoError(t, err)

	readings := sensors.Readings(a, status)
	assert.True(t, readings[3])
	assert.False(t, readings[6])
	assert.False(t, readings[7])

	assert.Equal(t, 1, sensors.Locate(a, readings),
		"fault lies between sensor 0 (live) and sensor 1 (dead)")
}

func TestReport_Rendering(t *testing.T) {
	a := sensors.Assignment{Sensors: []int64{3, 6}, Blocks: [][]int64{{1, 2, 3}, {4, 5, 6}}}
	readings := map[int64]bool{3: true, 6: false}

	rep := sensors.Report(a, readings, 1)
	assert.Contains(t, rep, "SENSOR STATUS REPORT")
	assert.Contains(t, rep, "Live sensors:  1")
	assert.Contains(t, rep, "Dead sensors:  1")
	assert.Contains(t, rep, "FAULT BLOCK")
	assert.Contains(t, rep, "FAULT localized in block 2")

	clean := sensors.Report(a, map[int64]bool{3: true, 6: true}, sensors.NoFault)
	assert.Contains(t, clean, "No faults detected")
}
