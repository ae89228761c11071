package faults_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsim/faults"
	"github.com/katalvlaran/gridsim/grid"
	"github.com/katalvlaran/gridsim/netbuild"
)

func seeded() *rand.Rand { return rand.New(rand.NewSource(42)) }

func TestSelect_NilNetwork(t *testing.T) {
	_, err := faults.Select(nil, 1)
	assert.ErrorIs(t, err, faults.ErrNetworkNil)
}

func TestSelect_NoBridge(t *testing.T) {
	net, src := netbuild.Cycle(6)
	_, err := faults.Select(net, src, faults.WithRand(seeded()))
	assert.ErrorIs(t, err, faults.ErrNoBridge)
}

func TestSelect_TargetsTenPercent(t *testing.T) {
	// Path of 40 buses: line i disconnects 40-i buses. Target = 4, so the
	// best candidate is line 36 (disconnects buses 37..40). Bridge count
	// (39) is below the sample limit, so selection is deterministic.
	net, src := netbuild.Path(40)
	desc, err := faults.Select(net, src, faults.WithRand(seeded()))
	require.NoError(t, err)
	assert.Equal(t, int64(36), desc.Line)
	assert.Equal(t, 4, desc.Disconnected)
	assert.Equal(t, int64(36), desc.From)
	assert.Equal(t, int64(37), desc.To)
}

func TestSelect_StarPicksAnyLeafLine(t *testing.T) {
	// Star: every line disconnects exactly 1 bus; target = 1 for n=10.
	// First-encountered tie-break makes the first line win (no sampling).
	net, src := netbuild.Star(10)
	desc, err := faults.Select(net, src, faults.WithRand(seeded()))
	require.NoError(t, err)
	assert.Equal(t, int64(1), desc.Line)
	assert.Equal(t, 1, desc.Disconnected)
}

func TestSelect_SamplingBounded(t *testing.T) {
	// 200 bridges with limit 10: still returns a valid measured bridge.
	net, src := netbuild.Path(201)
	desc, err := faults.Select(net, src,
		faults.WithRand(seeded()), faults.WithSampleLimit(10))
	require.NoError(t, err)
	assert.Positive(t, desc.Disconnected)

	_, lerr := net.Line(desc.Line)
	assert.NoError(t, lerr)
}

func TestSelect_Reproducible(t *testing.T) {
	net, src := netbuild.RandomTree(300, rand.New(rand.NewSource(7)))
	a, err := faults.Select(net, src, faults.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	b, err := faults.Select(net, src, faults.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must select the same fault")
}

func TestSelect_CustomTargetFraction(t *testing.T) {
	// Target 50% of 40 buses = 20: line 20 disconnects exactly 20.
	net, src := netbuild.Path(40)
	desc, err := faults.Select(net, src,
		faults.WithRand(seeded()), faults.WithTargetFraction(0.5))
	require.NoError(t, err)
	assert.Equal(t, int64(20), desc.Line)
	assert.Equal(t, 20, desc.Disconnected)
}

func TestSelect_OptionViolations(t *testing.T) {
	net, src := netbuild.Path(5)

	_, err := faults.Select(net, src, faults.WithTargetFraction(0))
	assert.ErrorIs(t, err, faults.ErrOptionViolation)

	_, err = faults.Select(net, src, faults.WithSampleLimit(0))
	assert.ErrorIs(t, err, faults.ErrOptionViolation)
}

func TestRandom_UniformChoice(t *testing.T) {
	net, _ := netbuild.Path(10)
	desc, err := faults.Random(net, nil, seeded())
	require.NoError(t, err)

	l, lerr := net.Line(desc.Line)
	require.NoError(t, lerr)
	assert.Equal(t, l.From, desc.From)
	assert.Equal(t, l.To, desc.To)
}

func TestRandom_SkipsDisabled(t *testing.T) {
	net := grid.NewNetwork(nil, []grid.Line{
		{ID: 1, From: 1, To: 2},
		{ID: 2, From: 2, To: 3},
	})

	desc, err := faults.Random(net, grid.NewLineSet(1), seeded())
	require.NoError(t, err)
	assert.Equal(t, int64(2), desc.Line)
}

func TestRandom_NoLines(t *testing.T) {
	net := grid.NewNetwork([]grid.Bus{{ID: 1}}, nil)
	_, err := faults.Random(net, nil, seeded())
	assert.ErrorIs(t, err, faults.ErrNoLines)
}
