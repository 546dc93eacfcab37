package alloc

import "sync/atomic"

// block is one shared range record: a reference-counted handle to a span of
// the arena. The same *block may sit in several process ledgers at once; refs
// counts how many ledger entries reference it. The counter is atomic so it can
// be observed without tearing, but nothing else in the allocator is safe to
// touch without exclusive access.
type block struct {
	refs atomic.Uint32
	span Span
}

// newBlock returns a record for span with a single reference.
func newBlock(span Span) *block {
	b := &block{span: span}
	b.refs.Store(1)
	return b
}

// freeSpan is a span of the arena owned by nobody, available for reuse.
// cap duplicates span.Len(); keeping it explicit makes the first-fit scan a
// plain field comparison.
type freeSpan struct {
	cap  uint32
	span Span
}

// FreeKind classifies what a free call did to the underlying block.
type FreeKind uint8

const (
	// FreeReleased means the caller's reference was dropped but other holders
	// remain; the arena and free list are untouched.
	FreeReleased FreeKind = iota

	// FreeReturned means the last reference was dropped and the bytes went
	// back to the free list without touching a neighbor.
	FreeReturned

	// FreeMerged means the returned bytes coalesced with adjacent free spans.
	FreeMerged
)

// String returns the kind's name for test failures and trace output.
func (k FreeKind) String() string {
	switch k {
	case FreeReleased:
		return "released"
	case FreeReturned:
		return "returned"
	case FreeMerged:
		return "merged"
	}
	return "unknown"
}

// FreeOutcome reports what a successful Free or FreeZero call did. Capacity
// is the number of bytes handed back for FreeReturned, the total size of the
// merged span for FreeMerged, and zero for FreeReleased.
type FreeOutcome struct {
	Kind     FreeKind
	Capacity uint32
}
