// Package grid defines the transmission-network data model: buses
// (vertices), lines (uniquely identified edges, possibly parallel), and the
// Network adjacency built once per topology load.
//
// A Network is an undirected multigraph. Every line contributes two
// half-edges, (from→to, lineID) and (to→from, lineID), so adjacency is
// symmetric by construction. Line identity — never the endpoint pair — is
// what distinguishes parallel circuits between the same two buses.
//
// A Network is immutable after NewNetwork returns; all accessors are pure
// reads and safe for concurrent use. Half-edge order is insertion order,
// which makes every traversal in the sibling packages deterministic per
// build.
package grid
