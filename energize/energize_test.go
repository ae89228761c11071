package energize_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsim/energize"
	"github.com/katalvlaran/gridsim/grid"
	"github.com/katalvlaran/gridsim/netbuild"
)

func reachableIDs(t *testing.T, net *grid.Network, source int64, disabled grid.LineSet) []int64 {
	t.Helper()
	reach, err := energize.Reachable(net, source, disabled)
	require.NoError(t, err)
	ids := make([]int64, 0, len(reach))
	for id := range reach {
		ids = append(ids, id)
	}

	return ids
}

func TestReachable_NilNetwork(t *testing.T) {
	_, err := energize.Reachable(nil, 1, nil)
	assert.ErrorIs(t, err, energize.ErrNetworkNil)
}

func TestReachable_NoFaults_FullComponent(t *testing.T) {
	net, src := netbuild.Path(5)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5}, reachableIDs(t, net, src, nil))
}

func TestReachable_UnknownSource_Singleton(t *testing.T) {
	net, _ := netbuild.Path(3)
	assert.ElementsMatch(t, []int64{77}, reachableIDs(t, net, 77, nil))
}

func TestReachable_DisabledLineCutsSuffix(t *testing.T) {
	// Path 1-2-3-4-5-6-7, cut line (4,5): lines are numbered 1..6 in order,
	// so line 4 joins buses 4 and 5.
	net, src := netbuild.Path(7)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4},
		reachableIDs(t, net, src, grid.NewLineSet(4)))
}

func TestReachable_ParallelLineSurvivesSingleFault(t *testing.T) {
	// Two parallel lines 1-2: disabling one must keep 2 reachable.
	net := grid.NewNetwork(nil, []grid.Line{
		{ID: 1, From: 1, To: 2},
		{ID: 2, From: 1, To: 2},
	})
	assert.ElementsMatch(t, []int64{1, 2}, reachableIDs(t, net, 1, grid.NewLineSet(1)))
	assert.ElementsMatch(t, []int64{1}, reachableIDs(t, net, 1, grid.NewLineSet(1, 2)))
}

func TestReachable_MonotoneUnderRemoval(t *testing.T) {
	net, src := netbuild.RandomTree(60, rand.New(rand.NewSource(42)))
	base := reachableIDs(t, net, src, nil)
	for _, l := range net.Lines() {
		cut := reachableIDs(t, net, src, grid.NewLineSet(l.ID))
		assert.LessOrEqual(t, len(cut), len(base),
			"removing line %d must never grow the reachable set", l.ID)
	}
}

func TestReachable_SelfLoopIgnored(t *testing.T) {
	net := grid.NewNetwork(nil, []grid.Line{
		{ID: 1, From: 1, To: 1},
		{ID: 2, From: 1, To: 2},
	})
	assert.ElementsMatch(t, []int64{1, 2}, reachableIDs(t, net, 1, nil))
}

func TestReachable_Cancellation(t *testing.T) {
	net, src := netbuild.Path(1000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := energize.Reachable(net, src, nil, energize.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatus_TotalDomain(t *testing.T) {
	// Bus 99 is isolated: known, never energized.
	net := grid.NewNetwork(
		[]grid.Bus{{ID: 99}},
		[]grid.Line{{ID: 1, From: 1, To: 2}},
	)

	status, err := energize.Status(net, 1, nil)
	require.NoError(t, err)
	assert.Len(t, status, 3)
	assert.True(t, status[1])
	assert.True(t, status[2])
	assert.False(t, status[99], "isolated bus is known dead, not unknown")
}

func TestStatus_EmptyNetwork(t *testing.T) {
	net := grid.NewNetwork(nil, nil)
	status, err := energize.Status(net, 1, nil)
	require.NoError(t, err)
	assert.Empty(t, status)
}

func TestStatus_FaultScenario(t *testing.T) {
	// Path 1..7, fault on (4,5) → dead set {5,6,7}.
	net, src := netbuild.Path(7)
	status, err := energize.Status(net, src, grid.NewLineSet(4))
	require.NoError(t, err)

	for _, live := range []int64{1, 2, 3, 4} {
		assert.True(t, status[live], "bus %d should be live", live)
	}
	for _, dead := range []int64{5, 6, 7} {
		assert.False(t, status[dead], "bus %d should be dead", dead)
	}
}

func TestCountLive(t *testing.T) {
	assert.Equal(t, 2, energize.CountLive(map[int64]bool{1: true, 2: false, 3: true}))
	assert.Equal(t, 0, energize.CountLive(nil))
}
