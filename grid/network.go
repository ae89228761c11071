package grid

// Network is the in-memory adjacency representation of a transmission
// topology. Built once by NewNetwork and read-only thereafter.
type Network struct {
	buses     []Bus           // insertion order
	busIndex  map[int64]int   // bus id → index into buses
	lines     []Line          // insertion order
	lineIndex map[int64]int   // line id → index into lines
	adj       map[int64][]HalfEdge
}

// NewNetwork constructs the adjacency for the given buses and lines.
//
// Every line inserts both half-edges (from→to) and (to→from); endpoint buses
// absent from the buses slice are created with zero metadata. Self-loops are
// stored but never affect reachability. Duplicate line ids are a caller bug
// and are not detected here — the loading collaborator must guarantee
// uniqueness.
//
// Complexity: O(V + E).
func NewNetwork(buses []Bus, lines []Line) *Network {
	n := &Network{
		buses:     make([]Bus, 0, len(buses)),
		busIndex:  make(map[int64]int, len(buses)),
		lines:     make([]Line, 0, len(lines)),
		lineIndex: make(map[int64]int, len(lines)),
		adj:       make(map[int64][]HalfEdge, len(buses)),
	}
	for _, b := range buses {
		n.ensureBus(b)
	}
	for _, l := range lines {
		n.ensureBus(Bus{ID: l.From})
		n.ensureBus(Bus{ID: l.To})
		n.lineIndex[l.ID] = len(n.lines)
		n.lines = append(n.lines, l)
		n.adj[l.From] = append(n.adj[l.From], HalfEdge{To: l.To, Line: l.ID})
		n.adj[l.To] = append(n.adj[l.To], HalfEdge{To: l.From, Line: l.ID})
	}

	return n
}

// ensureBus registers b unless a bus with the same id already exists.
func (n *Network) ensureBus(b Bus) {
	if _, ok := n.busIndex[b.ID]; ok {
		return
	}
	n.busIndex[b.ID] = len(n.buses)
	n.buses = append(n.buses, b)
}

// NumBuses returns the number of known buses, including isolated ones.
func (n *Network) NumBuses() int { return len(n.buses) }

// NumLines returns the number of lines.
func (n *Network) NumLines() int { return len(n.lines) }

// HasBus reports whether id is a known bus.
func (n *Network) HasBus(id int64) bool {
	_, ok := n.busIndex[id]

	return ok
}

// Bus returns the bus with the given id.
func (n *Network) Bus(id int64) (Bus, bool) {
	i, ok := n.busIndex[id]
	if !ok {
		return Bus{}, false
	}

	return n.buses[i], true
}

// Buses returns a fresh copy of all buses in insertion order.
func (n *Network) Buses() []Bus {
	out := make([]Bus, len(n.buses))
	copy(out, n.buses)

	return out
}

// BusIDs returns all bus ids in insertion order. This is the authoritative
// superset of vertices for total energization mappings.
func (n *Network) BusIDs() []int64 {
	out := make([]int64, len(n.buses))
	for i, b := range n.buses {
		out[i] = b.ID
	}

	return out
}

// Line returns the line with the given id, or ErrLineNotFound.
func (n *Network) Line(id int64) (Line, error) {
	i, ok := n.lineIndex[id]
	if !ok {
		return Line{}, ErrLineNotFound
	}

	return n.lines[i], nil
}

// Lines returns a fresh copy of all lines in insertion order.
func (n *Network) Lines() []Line {
	out := make([]Line, len(n.lines))
	copy(out, n.lines)

	return out
}

// HalfEdges returns the half-edges incident to bus id, in insertion order.
// The returned slice is the internal one; callers must treat it as read-only.
// A bus with no lines (or an unknown id) yields nil.
func (n *Network) HalfEdges(id int64) []HalfEdge {
	return n.adj[id]
}
