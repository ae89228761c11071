// Package energize computes which buses remain reachable from the power
// source when a set of lines is disabled.
//
// Reachable performs a breadth-first search over a grid.Network, traversing a
// half-edge only when its line id is not in the disabled set. Status extends
// the reachable set to a total live/dead mapping over every known bus, so
// downstream consumers (sensor readings, UI layers) can distinguish "known
// dead" from "unknown".
//
// Both operations are pure functions of their inputs and recompute from
// scratch on every call: edge removal can only be handled correctly by a
// fresh traversal, never by incremental patching.
//
// Complexity: O(V + E) per call.
package energize
