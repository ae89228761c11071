// Package sensors implements the √n sparse-sensor fault-localization scheme.
//
// Placement walks the network depth-first from the power source, partitions
// the preorder into contiguous blocks of size ceil(sqrt(n)), and designates
// the last bus of each block as that block's sensor — Θ(√n) sensors by
// construction. Because a fault de-energizes a downstream suffix of the
// ordering, the first sensor reading dead narrows the fault to a single
// block: between the last known-live sensor and the first known-dead one.
//
// Locate is deliberately a linear scan returning the first dead sensor's
// index, with NoFault (-1) meaning every sensor is live; block-boundary
// reporting downstream depends on exactly this convention.
package sensors
