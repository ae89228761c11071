package bridges

import (
	"math"

	"github.com/katalvlaran/gridsim/grid"
)

// noArrival marks the root frame, which was not entered through any line.
// No real line id can collide with it.
const noArrival int64 = math.MinInt64

// frame is one explicit-stack entry of the iterative DFS.
type frame struct {
	bus     int64 // current bus
	arrival int64 // line id used to enter bus; noArrival for the root
	next    int   // index of the next half-edge to examine
}

// Find returns the ids of all bridge lines in the component containing
// start, in the order the DFS finishes them.
//
// Detection uses discovery-time and low-link values: line e entering v from
// u is a bridge iff low[v] > disc[u] once v's subtree completes. Back-edge
// candidates at v exclude only the exact line used to enter v, by line
// identity — excluding the parent vertex instead would misclassify parallel
// lines (see package doc).
//
// An empty network, or a start bus with no lines, yields an empty result and
// no error. Self-loops are visited but can never be bridges.
func Find(net *grid.Network, start int64, opts ...Option) ([]int64, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(net.HalfEdges(start)) == 0 {
		return []int64{}, nil
	}

	var (
		timer int
		disc  = make(map[int64]int, net.NumBuses())
		low   = make(map[int64]int, net.NumBuses())
		stack = make([]frame, 0, net.NumBuses())
		out   = []int64{}
	)

	discover := func(bus int64) {
		disc[bus] = timer
		low[bus] = timer
		timer++
	}

	discover(start)
	stack = append(stack, frame{bus: start, arrival: noArrival})

	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return out, o.Ctx.Err()
		default:
		}

		f := &stack[len(stack)-1]
		edges := net.HalfEdges(f.bus)

		if f.next < len(edges) {
			he := edges[f.next]
			f.next++

			// Skip only the exact line used to enter this bus, never every
			// edge back to the parent vertex: a parallel line to the parent
			// is a genuine back edge.
			if he.Line == f.arrival {
				continue
			}
			if d, seen := disc[he.To]; seen {
				if d < low[f.bus] {
					low[f.bus] = d
				}
				continue
			}
			discover(he.To)
			stack = append(stack, frame{bus: he.To, arrival: he.Line})
			continue
		}

		// Subtree of f.bus complete: propagate low-link to the parent and
		// test the tree edge that led here.
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			break
		}
		parent := &stack[len(stack)-1]
		if low[f.bus] < low[parent.bus] {
			low[parent.bus] = low[f.bus]
		}
		if low[f.bus] > disc[parent.bus] {
			out = append(out, f.arrival)
		}
	}

	return out, nil
}
