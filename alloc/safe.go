package alloc

import (
	"sync"

	"procheap/procid"
)

// Guarded is a reader/writer-locked wrapper around an Allocator for use from
// multiple goroutines. The core allocator stays single-writer: only the
// refcount inside each record is atomic, so every mutating call here holds
// the write lock for its full duration.
//
// Borrow and Metrics take the read lock. The views Borrow and BorrowMut hand
// out alias the arena; a caller must not hold one across a later mutating
// call, since arena growth can remap the underlying bytes.
type Guarded struct {
	mu sync.RWMutex
	a  *Allocator
}

// NewGuarded wraps a fresh allocator.
func NewGuarded() *Guarded {
	return &Guarded{a: New()}
}

// Register creates an empty ledger entry for pid.
func (g *Guarded) Register(pid procid.PID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.a.Register(pid)
}

// Alloc hands pid a fresh block of exactly size bytes.
func (g *Guarded) Alloc(pid procid.PID, size uint32) (Span, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.a.Alloc(pid, size)
}

// Free drops pid's reference to the block starting at start.
func (g *Guarded) Free(pid procid.PID, start uint32) (FreeOutcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.a.Free(pid, start)
}

// FreeZero is Free with the block's bytes cleared before reuse.
func (g *Guarded) FreeZero(pid procid.PID, start uint32) (FreeOutcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.a.FreeZero(pid, start)
}

// Borrow returns a read-only view of span.
func (g *Guarded) Borrow(pid procid.PID, span Span) ([]byte, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.a.Borrow(pid, span)
}

// BorrowMut returns a writable view of span. It takes the write lock: the
// caller is declaring intent to mutate bytes other readers may be viewing.
func (g *Guarded) BorrowMut(pid procid.PID, span Span) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.a.BorrowMut(pid, span)
}

// Share grants target access to the source block containing start.
func (g *Guarded) Share(source, target procid.PID, start uint32) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.a.Share(source, target, start)
}

// Teardown frees everything pid holds and unregisters it.
func (g *Guarded) Teardown(pid procid.PID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.a.Teardown(pid)
}

// Metrics returns a snapshot of the allocator's current state.
func (g *Guarded) Metrics() Metrics {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.a.Metrics()
}
