package netbuild

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridsim/grid"
)

// Path returns a path network 1-2-…-n with source 1. Every line is a
// bridge. n < 1 yields an empty network.
func Path(n int) (*grid.Network, int64) {
	buses := make([]grid.Bus, 0, max(n, 0))
	lines := make([]grid.Line, 0, max(n-1, 0))
	for i := 1; i <= n; i++ {
		buses = append(buses, grid.Bus{ID: int64(i)})
	}
	for i := 1; i < n; i++ {
		lines = append(lines, line(int64(i), int64(i), int64(i+1)))
	}

	return grid.NewNetwork(buses, lines), 1
}

// Cycle returns a cycle network 1-2-…-n-1 with source 1. No line is a
// bridge. n < 3 falls back to Path(n).
func Cycle(n int) (*grid.Network, int64) {
	if n < 3 {
		return Path(n)
	}
	net, src := Path(n)
	buses, lines := net.Buses(), net.Lines()
	lines = append(lines, line(int64(n), int64(n), 1))

	return grid.NewNetwork(buses, lines), src
}

// Star returns a star network with hub 1 and n-1 leaves, source at the hub.
// Every line is a bridge disconnecting exactly one leaf. n < 1 yields an
// empty network.
func Star(n int) (*grid.Network, int64) {
	buses := make([]grid.Bus, 0, max(n, 0))
	lines := make([]grid.Line, 0, max(n-1, 0))
	for i := 1; i <= n; i++ {
		buses = append(buses, grid.Bus{ID: int64(i)})
	}
	for i := 2; i <= n; i++ {
		lines = append(lines, line(int64(i-1), 1, int64(i)))
	}

	return grid.NewNetwork(buses, lines), 1
}

// RandomTree returns a uniformly random attachment tree on n buses rooted
// at 1: bus i attaches to a random earlier bus. Every line is a bridge.
// n < 1 yields an empty network.
func RandomTree(n int, r *rand.Rand) (*grid.Network, int64) {
	buses := make([]grid.Bus, 0, max(n, 0))
	lines := make([]grid.Line, 0, max(n-1, 0))
	for i := 1; i <= n; i++ {
		buses = append(buses, grid.Bus{ID: int64(i)})
	}
	for i := 2; i <= n; i++ {
		parent := int64(r.Intn(i-1) + 1)
		lines = append(lines, line(int64(i-1), parent, int64(i)))
	}

	return grid.NewNetwork(buses, lines), 1
}

// ParallelPair returns the regression topology for multigraph bridge
// detection: a 4-cycle 1-2-3-4-1 plus one extra parallel line between
// 1 and 2. Every line lies on a cycle or is doubled, so the bridge set
// must be empty.
func ParallelPair() (*grid.Network, int64) {
	net, src := Cycle(4)
	buses, lines := net.Buses(), net.Lines()
	lines = append(lines, line(int64(len(lines)+1), 1, 2))

	return grid.NewNetwork(buses, lines), src
}

func line(id, from, to int64) grid.Line {
	return grid.Line{
		ID:        id,
		From:      from,
		To:        to,
		Name:      fmt.Sprintf("L_%d_%d", from, to),
		VoltageKV: 11,
	}
}
