package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"procheap/procid"
)

// ============================================================================
// Test Helpers
// ============================================================================

// newTestAllocator returns a fresh allocator with n sequentially-numbered
// processes already registered.
func newTestAllocator(t *testing.T, n int) (*Allocator, []procid.PID) {
	t.Helper()

	a := New()
	ids := procid.NewBuilder(0)
	pids := make([]procid.PID, n)
	for i := range pids {
		pids[i] = ids.Next()
		require.NoError(t, a.Register(pids[i]))
	}
	return a, pids
}

// checkConservation asserts that every arena byte is accounted for: arena
// length must equal live record bytes plus free-list capacity.
func checkConservation(t *testing.T, a *Allocator) {
	t.Helper()

	m := a.Metrics()
	require.Equal(t, m.ArenaSize, m.LiveBytes+m.FreeBytes,
		"arena bytes must split exactly into live and free")
}

// checkNoAdjacentFree asserts the free list holds no two spans that touch,
// i.e. coalescing left nothing behind.
func checkNoAdjacentFree(t *testing.T, a *Allocator) {
	t.Helper()

	for i := range a.free {
		for j := range a.free {
			if i == j {
				continue
			}
			require.False(t, adjacent(a.free[i].span, a.free[j].span),
				"free spans %v and %v are adjacent", a.free[i].span, a.free[j].span)
		}
	}
}

// mustAlloc allocates or fails the test.
func mustAlloc(t *testing.T, a *Allocator, pid procid.PID, size uint32) Span {
	t.Helper()

	span, err := a.Alloc(pid, size)
	require.NoError(t, err)
	return span
}
