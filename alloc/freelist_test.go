package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirstFitDeterminism(t *testing.T) {
	a, pids := newTestAllocator(t, 1)
	p := pids[0]

	// Lay out candidate blocks with one-byte live separators so freeing
	// them cannot coalesce: capacities 8, 4, 16 in ascending start order.
	big := mustAlloc(t, a, p, 8)
	mustAlloc(t, a, p, 1)
	exact := mustAlloc(t, a, p, 4)
	mustAlloc(t, a, p, 1)
	large := mustAlloc(t, a, p, 16)

	for _, s := range []Span{big, exact, large} {
		out, err := a.Free(p, s.Start)
		require.NoError(t, err)
		require.Equal(t, FreeReturned, out.Kind)
	}
	require.Equal(t, 3, a.Metrics().FreeSpans)

	// First fit must take the capacity-8 entry, not the exact-fit 4.
	got := mustAlloc(t, a, p, 4)
	require.Equal(t, big.Start, got.Start)
	require.Equal(t, uint32(4), got.Len())

	// The rest of the capacity-8 entry stays free as a residual span.
	m := a.Metrics()
	require.Equal(t, 3, m.FreeSpans)
	require.Equal(t, uint32(4+4+16), m.FreeBytes)
	checkConservation(t, a)
}

func TestExactFitLeavesNoResidual(t *testing.T) {
	a, pids := newTestAllocator(t, 1)
	p := pids[0]

	span := mustAlloc(t, a, p, 8)
	mustAlloc(t, a, p, 1) // separator to pin the free span
	_, err := a.Free(p, span.Start)
	require.NoError(t, err)

	got := mustAlloc(t, a, p, 8)
	require.Equal(t, span, got)
	require.Zero(t, a.Metrics().FreeBytes)
}

func TestReuseSplitsFromTheFront(t *testing.T) {
	a, pids := newTestAllocator(t, 1)
	p := pids[0]

	span := mustAlloc(t, a, p, 8)
	mustAlloc(t, a, p, 1)
	_, err := a.Free(p, span.Start)
	require.NoError(t, err)

	got := mustAlloc(t, a, p, 3)
	require.Equal(t, span.Start, got.Start, "reuse carves from the front of the free span")
	require.Equal(t, uint32(3), got.Len())

	m := a.Metrics()
	require.Equal(t, uint32(5), m.FreeBytes)
	require.Equal(t, 1, m.FreeSpans)
	checkConservation(t, a)
}

func TestGrowWhenNothingFits(t *testing.T) {
	a, pids := newTestAllocator(t, 1)
	p := pids[0]

	small := mustAlloc(t, a, p, 4)
	mustAlloc(t, a, p, 1)
	_, err := a.Free(p, small.Start)
	require.NoError(t, err)

	before := a.Metrics()
	span := mustAlloc(t, a, p, 8)
	m := a.Metrics()

	require.Equal(t, before.ArenaSize, span.Start, "oversized request allocates at the old arena tail")
	require.Equal(t, before.ArenaSize+8, m.ArenaSize)
	require.Equal(t, before.FreeBytes, m.FreeBytes, "the too-small span stays on the list")
	require.Equal(t, before.Grows+1, m.Grows)
	checkConservation(t, a)
}

func TestCoalesceOutOfOrderFrees(t *testing.T) {
	a, pids := newTestAllocator(t, 1)
	p := pids[0]

	first := mustAlloc(t, a, p, 4)  // [0, 3]
	middle := mustAlloc(t, a, p, 4) // [4, 7]
	last := mustAlloc(t, a, p, 4)   // [8, 11]

	out, err := a.Free(p, first.Start)
	require.NoError(t, err)
	require.Equal(t, FreeOutcome{Kind: FreeReturned, Capacity: 4}, out)

	out, err = a.Free(p, last.Start)
	require.NoError(t, err)
	require.Equal(t, FreeOutcome{Kind: FreeReturned, Capacity: 4}, out,
		"non-adjacent spans must not merge")

	// Freeing the middle block bridges all three spans.
	out, err = a.Free(p, middle.Start)
	require.NoError(t, err)
	require.Equal(t, FreeMerged, out.Kind)
	require.Equal(t, uint32(12), out.Capacity)

	m := a.Metrics()
	require.Equal(t, 1, m.FreeSpans)
	require.Equal(t, uint32(12), m.FreeBytes)
	require.Equal(t, []freeSpan{{cap: 12, span: Span{Start: first.Start, End: last.End}}}, a.free)
	checkNoAdjacentFree(t, a)
	checkConservation(t, a)
}

func TestCoalescePairMerges(t *testing.T) {
	a, pids := newTestAllocator(t, 1)
	p := pids[0]

	left := mustAlloc(t, a, p, 4)
	right := mustAlloc(t, a, p, 4)
	mustAlloc(t, a, p, 1) // keep the arena tail live

	_, err := a.Free(p, left.Start)
	require.NoError(t, err)

	out, err := a.Free(p, right.Start)
	require.NoError(t, err)
	require.Equal(t, FreeOutcome{Kind: FreeMerged, Capacity: 8}, out)

	m := a.Metrics()
	require.Equal(t, 1, m.FreeSpans)
	require.Equal(t, uint32(8), m.FreeBytes)
	checkNoAdjacentFree(t, a)
}
