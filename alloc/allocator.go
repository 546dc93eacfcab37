package alloc

import "procheap/procid"

// Allocator owns the byte arena, the per-process ledger of shared range
// records, and the free list, and is the sole mutator of all three. Every
// operation runs to completion before returning and performs no mutation
// before its precondition checks pass.
//
// An Allocator is not safe for concurrent use; wrap it in a Guarded when
// calls can arrive from more than one goroutine.
type Allocator struct {
	arena  arena
	ledger map[procid.PID][]*block
	free   []freeSpan
	stats  stats
}

// New returns an empty allocator: no arena bytes, no processes, no free spans.
func New() *Allocator {
	return &Allocator{ledger: make(map[procid.PID][]*block)}
}

// Register creates an empty ledger entry for pid. It has no effect on the
// arena or the free list.
func (a *Allocator) Register(pid procid.PID) error {
	if _, ok := a.ledger[pid]; ok {
		return ErrAlreadyRegistered
	}
	a.ledger[pid] = nil
	return nil
}

// Alloc hands pid a fresh block of exactly size bytes and returns its span.
// The free list is scanned first-fit in its current order; when nothing fits,
// the arena grows by size zeroed bytes and the block lands at the new tail.
// The returned span's Start is the handle later passed to Free.
func (a *Allocator) Alloc(pid procid.PID, size uint32) (Span, error) {
	if _, ok := a.ledger[pid]; !ok {
		return Span{}, ErrNoSuchProcess
	}
	if size == 0 {
		return Span{}, ErrZeroSize
	}

	span, err := a.take(size)
	if err != nil {
		return Span{}, err
	}
	a.ledger[pid] = append(a.ledger[pid], newBlock(span))
	a.stats.allocs++
	return span, nil
}

// Free drops pid's reference to the block starting exactly at start. The
// caller always loses access to the block; the bytes return to the free list
// only when the last reference goes away, at which point adjacent free spans
// are merged eagerly.
func (a *Allocator) Free(pid procid.PID, start uint32) (FreeOutcome, error) {
	return a.release(pid, start, false)
}

// FreeZero is Free with the block's bytes cleared before they are handed back
// to the free list. Clearing only happens when the call drops the last
// reference; a block still shared with other processes keeps its contents.
func (a *Allocator) FreeZero(pid procid.PID, start uint32) (FreeOutcome, error) {
	return a.release(pid, start, true)
}

func (a *Allocator) release(pid procid.PID, start uint32, zero bool) (FreeOutcome, error) {
	blocks, ok := a.ledger[pid]
	if !ok {
		return FreeOutcome{}, ErrNoSuchProcess
	}

	idx := -1
	for i, b := range blocks {
		if b.span.Start == start {
			idx = i
			break
		}
	}
	if idx < 0 {
		return FreeOutcome{}, ErrBlockNotFound
	}

	b := blocks[idx]
	remaining := b.refs.Add(^uint32(0))

	// The process loses access regardless of the remaining refcount.
	blocks[idx] = blocks[len(blocks)-1]
	a.ledger[pid] = blocks[:len(blocks)-1]
	a.stats.frees++

	if remaining > 0 {
		return FreeOutcome{Kind: FreeReleased}, nil
	}

	if zero {
		a.arena.zero(b.span)
	}
	return a.reclaim(b.span), nil
}

// Borrow returns a read-only view of span. The span must lie inside a single
// block in pid's ledger: two byte-adjacent blocks cannot be borrowed across
// in one call, since the block is the unit of access control. The view
// aliases the arena directly; callers must not write through it (use
// BorrowMut) and must not hold it across a later Alloc, which may remap the
// arena.
func (a *Allocator) Borrow(pid procid.PID, span Span) ([]byte, error) {
	return a.view(pid, span)
}

// BorrowMut returns a writable view of span under the same single-block
// containment rule as Borrow. Writes land directly in the arena and are
// visible to every process sharing the block.
func (a *Allocator) BorrowMut(pid procid.PID, span Span) ([]byte, error) {
	return a.view(pid, span)
}

func (a *Allocator) view(pid procid.PID, span Span) ([]byte, error) {
	blocks, ok := a.ledger[pid]
	if !ok {
		return nil, ErrNoSuchProcess
	}
	if !span.valid() {
		return nil, ErrBadSpan
	}
	for _, b := range blocks {
		if b.span.contains(span) {
			return a.arena.slice(span), nil
		}
	}
	return nil, ErrNotOwned
}

// Share grants target access to the source block containing start. Both
// ledgers end up referencing the same record: the refcount goes up by one and
// both processes see the identical underlying bytes through their own borrow
// calls. Nothing is copied and no copy-on-write is provided; serializing
// writes from two holders is the callers' business.
//
// The source block is matched by containment (Start <= start <= End), so any
// offset inside a block selects it, not only its start.
func (a *Allocator) Share(source, target procid.PID, start uint32) error {
	src, ok := a.ledger[source]
	if !ok {
		return ErrNoSuchProcess
	}
	if _, ok := a.ledger[target]; !ok {
		return ErrNoSuchProcess
	}
	for _, b := range src {
		if b.span.containsOffset(start) {
			b.refs.Add(1)
			a.ledger[target] = append(a.ledger[target], b)
			a.stats.shares++
			return nil
		}
	}
	return ErrNotOwned
}

// Teardown frees every block pid still holds and removes it from the ledger.
// Blocks shared with other processes survive with their refcount decremented;
// exclusively held blocks return to the free list with normal coalescing.
func (a *Allocator) Teardown(pid procid.PID) error {
	blocks, ok := a.ledger[pid]
	if !ok {
		return ErrNoSuchProcess
	}

	// Snapshot the start offsets first: release mutates the slice being
	// walked.
	starts := make([]uint32, len(blocks))
	for i, b := range blocks {
		starts[i] = b.span.Start
	}
	for _, start := range starts {
		if _, err := a.release(pid, start, false); err != nil {
			return err
		}
	}

	delete(a.ledger, pid)
	return nil
}
