package energize

import (
	"github.com/katalvlaran/gridsim/grid"
)

// queueItem pairs a bus id with its BFS depth from the source.
type queueItem struct {
	bus   int64
	depth int
}

// Reachable returns the set of bus ids reachable from source through lines
// not present in disabled.
//
// A half-edge (u→v, line) is traversed only if disabled does not contain
// line; each bus is enqueued at most once. If source has no adjacency entry
// — including a source unknown to the network — the result is the singleton
// {source}: a source with no recorded lines is still energized at that one
// point.
//
// Returns ErrNetworkNil for a nil network, or the context error if the
// traversal is cancelled.
func Reachable(net *grid.Network, source int64, disabled grid.LineSet, opts ...Option) (map[int64]struct{}, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	visited := make(map[int64]struct{}, net.NumBuses())
	visited[source] = struct{}{}
	queue := make([]queueItem, 0, net.NumBuses())
	queue = append(queue, queueItem{bus: source})

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return visited, o.Ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]
		o.OnVisit(item.bus, item.depth)

		for _, he := range net.HalfEdges(item.bus) {
			if disabled.Has(he.Line) {
				continue
			}
			if _, seen := visited[he.To]; seen {
				continue
			}
			visited[he.To] = struct{}{}
			queue = append(queue, queueItem{bus: he.To, depth: item.depth + 1})
		}
	}

	return visited, nil
}

// Status returns the total live/dead mapping over every bus known to the
// network: status[b] is true iff b is reachable from source with the given
// lines disabled.
//
// The domain is always net.BusIDs() — including isolated buses and buses
// unreachable even with no faults — so an empty network yields an empty
// mapping, never an error.
func Status(net *grid.Network, source int64, disabled grid.LineSet, opts ...Option) (map[int64]bool, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	reach, err := Reachable(net, source, disabled, opts...)
	if err != nil {
		return nil, err
	}

	status := make(map[int64]bool, net.NumBuses())
	for _, id := range net.BusIDs() {
		_, live := reach[id]
		status[id] = live
	}

	return status, nil
}

// CountLive returns how many entries of status are live. Convenience for
// reporting layers.
func CountLive(status map[int64]bool) int {
	live := 0
	for _, ok := range status {
		if ok {
			live++
		}
	}

	return live
}
