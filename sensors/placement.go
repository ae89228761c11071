package sensors

import (
	"math"

	"github.com/katalvlaran/gridsim/grid"
)

// Place partitions the buses reachable from source into contiguous
// DFS-preorder blocks of size ceil(sqrt(n)) and designates the last bus of
// each block as its sensor.
//
// The preorder walk is iterative: pop the top of an explicit stack, record
// it if unvisited, then push its unvisited neighbors in reverse
// adjacency-list order so neighbors are ultimately visited in adjacency
// order. That ordering fixes which blocks form and keeps boundaries
// deterministic per build; the √n guarantee itself holds for any ordering.
//
// A source unknown to the network yields an empty assignment. The final
// block holds the remainder (n mod k buses, or k when it divides evenly).
func Place(net *grid.Network, source int64) (Assignment, error) {
	if net == nil {
		return Assignment{}, ErrNetworkNil
	}
	order := preorder(net, source)
	n := len(order)
	if n == 0 {
		return Assignment{Sensors: []int64{}, Blocks: [][]int64{}}, nil
	}

	k := int(math.Ceil(math.Sqrt(float64(n))))

	blocks := make([][]int64, 0, (n+k-1)/k)
	sensorIDs := make([]int64, 0, (n+k-1)/k)
	for i := 0; i < n; i += k {
		end := i + k
		if end > n {
			end = n
		}
		block := order[i:end:end]
		blocks = append(blocks, block)
		sensorIDs = append(sensorIDs, block[len(block)-1])
	}

	return Assignment{Sensors: sensorIDs, Blocks: blocks}, nil
}

// preorder returns the DFS preorder from source over the full (fault-free)
// adjacency. Placement deliberately ignores disabled lines: sensors are
// physical installations chosen before any fault occurs.
func preorder(net *grid.Network, source int64) []int64 {
	if !net.HasBus(source) {
		return nil
	}

	order := make([]int64, 0, net.NumBuses())
	visited := make(map[int64]struct{}, net.NumBuses())
	stack := []int64{source}

	for len(stack) > 0 {
		bus := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[bus]; seen {
			continue
		}
		visited[bus] = struct{}{}
		order = append(order, bus)

		edges := net.HalfEdges(bus)
		for i := len(edges) - 1; i >= 0; i-- {
			if _, seen := visited[edges[i].To]; !seen {
				stack = append(stack, edges[i].To)
			}
		}
	}

	return order
}
