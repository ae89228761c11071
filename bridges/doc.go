// Package bridges detects bridge lines: lines whose removal increases the
// number of connected components of the network.
//
// Find runs Tarjan's low-link bridge algorithm generalized to multigraphs.
// The critical multigraph rule: when descending from u to v through line e,
// only e itself is excluded from v's back-edge candidates — never "all edges
// back to u". Two parallel lines between the same bus pair therefore see
// each other as back edges and are correctly reported as non-bridges.
//
// The traversal is iterative with an explicit frame stack, so networks with
// tens of thousands of buses on a long path cannot exhaust the call stack.
// Only the component containing the start bus is explored; the simulated
// networks are single-component from the source by construction.
//
// Complexity: O(V + E). Output order is deterministic given the network's
// insertion-order adjacency.
package bridges
