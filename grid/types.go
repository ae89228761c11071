// Package grid declares Bus, Line, HalfEdge, LineSet, and the Network
// constructor input contracts.
package grid

import "errors"

// Sentinel errors for network construction and lookups.
var (
	// ErrNetworkNil is returned when a nil *Network is passed to an operation.
	ErrNetworkNil = errors.New("grid: network is nil")

	// ErrLineNotFound indicates a lookup referenced a non-existent line id.
	ErrLineNotFound = errors.New("grid: line not found")
)

// Bus is a vertex in the transmission network.
//
// ID uniquely identifies the bus. Lon/Lat are carried through untouched for
// rendering collaborators and play no role in any algorithm here.
type Bus struct {
	ID  int64
	Lon float64
	Lat float64

	// VoltageKV is the nominal voltage observed at this bus, if known.
	VoltageKV float64
}

// Line is an edge in the network. ID is unique across the whole network and
// is the edge identifier: several lines may join the same bus pair, so
// (From, To) never identifies an edge.
type Line struct {
	ID   int64
	From int64
	To   int64

	// Opaque attributes, passed through for consumers of fault descriptors.
	Name      string
	VoltageKV float64
	LengthKM  float64
}

// HalfEdge is one directed half of a line as stored in the adjacency list.
type HalfEdge struct {
	// To is the neighbor bus id reached through this half-edge.
	To int64
	// Line is the id of the line this half-edge belongs to.
	Line int64
}

// LineSet is a set of line ids, used to mark lines as disabled (faulted)
// for a single simulation action. The zero value (nil) is the empty set.
type LineSet map[int64]struct{}

// NewLineSet builds a LineSet from the given line ids.
func NewLineSet(ids ...int64) LineSet {
	s := make(LineSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Has reports whether id is in the set. Safe on a nil set.
func (s LineSet) Has(id int64) bool {
	_, ok := s[id]

	return ok
}
