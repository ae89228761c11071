// Package topology loads a transmission network from an Overpass GeoJSON
// export.
//
// Features are classified by their "power" property (line, minor_line,
// cable, substation, …). Each LineString contributes one bus per coordinate
// — deduplicated by rounding to 4 decimal places — and one line per
// consecutive coordinate pair, with haversine length and parsed voltage.
// Only the largest connected component is kept, and the power source is the
// substation bus with the highest voltage, falling back to the first bus.
//
// The loader is the only part of the repository that touches the
// filesystem; everything it produces is the immutable grid.Network the
// engine packages consume.
package topology
