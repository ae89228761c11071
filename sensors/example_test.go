package sensors_test

import (
	"fmt"

	"github.com/katalvlaran/gridsim/energize"
	"github.com/katalvlaran/gridsim/grid"
	"github.com/katalvlaran/gridsim/netbuild"
	"github.com/katalvlaran/gridsim/sensors"
)

// ExamplePlace demonstrates the √n scheme end to end on a 7-bus path:
// place sensors, fault the middle line, and localize the faulty block.
func ExamplePlace() {
	net, source := netbuild.Path(7)

	assignment, _ := sensors.Place(net, source)
	fmt.Println("sensors:", assignment.Sensors)
	fmt.Println("blocks: ", assignment.Blocks)

	// Fault the line joining buses 4 and 5, then read the sensors.
	status, _ := energize.Status(net, source, grid.NewLineSet(4))
	readings := sensors.Readings(assignment, status)

	fmt.Println("faulty block:", sensors.Locate(assignment, readings))
	// Output:
	// sensors: [3 6 7]
	// blocks:  [[1 2 3] [4 5 6] [7]]
	// faulty block: 1
}
