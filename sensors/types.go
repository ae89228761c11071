// Package sensors provides the assignment type and error definitions for
// sensor placement and localization.
package sensors

import "errors"

// NoFault is returned by Locate when every sensor reads live — distinct
// from index 0, which localizes a fault inside the first block.
const NoFault = -1

// ErrNetworkNil is returned if a nil network pointer is passed.
var ErrNetworkNil = errors.New("sensors: network is nil")

// Assignment is the complete output of sensor placement: one sensor per
// block plus the parallel list of blocks.
//
// Invariants: len(Sensors) == len(Blocks); Sensors[i] is the last element of
// Blocks[i]; the blocks concatenate to the full DFS preorder from source.
type Assignment struct {
	// Sensors holds the designated sensor bus ids, in block order.
	Sensors []int64

	// Blocks holds the contiguous preorder runs each sensor monitors.
	Blocks [][]int64
}

// NumBuses returns the total number of buses covered by the assignment.
func (a Assignment) NumBuses() int {
	n := 0
	for _, b := range a.Blocks {
		n += len(b)
	}

	return n
}
