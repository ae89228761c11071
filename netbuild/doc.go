// Package netbuild constructs synthetic transmission networks with known
// shapes: paths, cycles, stars, random trees, and parallel-circuit pairs.
//
// These constructors exist for demos and tests: each returns a fully wired
// grid.Network plus the bus id to use as the power source, with bus ids
// 1..n and line ids numbered from 1 in creation order, so expected
// reachable sets, bridge sets, and sensor blocks can be written down by
// hand.
package netbuild
