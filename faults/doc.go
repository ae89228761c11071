// Package faults chooses transmission lines to fault during a simulation.
//
// Select picks a bridge line whose removal de-energizes a fraction of buses
// close to a target (10% of the network by default). Because networks can
// carry thousands of bridges, candidates are bounded by uniform sampling
// without replacement before each one's impact is measured with a fresh
// reachability run. Randomness comes from an injectable *rand.Rand so tests
// are reproducible; production callers may seed from system entropy.
//
// Random picks a uniform in-service line with no bridge guarantee — the
// fallback when the network is fully biconnected and Select reports
// ErrNoBridge.
package faults
