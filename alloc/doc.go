// Package alloc implements a user-space memory allocator over a single
// growable byte arena, with per-process ownership and reference-counted
// sharing of ranges between processes.
//
// # Overview
//
// The allocator manages three structures:
//
//   - Arena: one contiguous byte buffer that only ever grows
//   - Ledger: per-process lists of the range records each process may access
//   - Free list: spans of the arena currently owned by nobody
//
// Processes are opaque 32-bit identifiers (see package procid). A process is
// registered first, then allocates, frees, borrows, and shares ranges against
// its identifier. The allocator is the sole mutator of all three structures.
//
// # Spans
//
// All ranges are closed intervals [Start, End] with both bounds inclusive, so
// a 4-byte block at the arena's base covers Span{Start: 0, End: 3}. Spans are
// 32-bit offsets into the arena.
//
// # Basic Usage
//
//	ids := procid.NewBuilder(0)
//	a := alloc.New()
//
//	p := ids.Next()
//	_ = a.Register(p)
//
//	span, err := a.Alloc(p, 64)
//	if err != nil {
//	    return err
//	}
//
//	buf, err := a.BorrowMut(p, span)
//	if err != nil {
//	    return err
//	}
//	copy(buf, payload)
//
//	outcome, err := a.Free(p, span.Start)
//
// # Allocation Strategy
//
// Alloc scans the free list first-fit in its current order and carves the
// request from the front of the first span with enough capacity, returning
// any remainder to the list. When nothing fits, the arena grows by exactly
// the requested size; the new bytes are zeroed. Reused bytes are not zeroed
// unless the previous holder released them with FreeZero.
//
// # Sharing
//
// Share makes one physical record visible to a second process: both ledgers
// reference the same refcounted record and both processes read and write the
// identical underlying bytes. There is no copy-on-write. Free decrements the
// refcount and always revokes the caller's access; the bytes return to the
// free list only when the count reaches zero. Adjacent free spans are merged
// eagerly on every terminal free, so the free list never holds two spans that
// touch.
//
// # Access Control
//
// Borrow and BorrowMut require the requested span to sit inside a single
// record of the calling process. Two separately allocated blocks cannot be
// borrowed across in one call even when their bytes are adjacent in the
// arena: the allocation unit is the unit of access control.
//
// # Thread Safety
//
// Allocator is not safe for concurrent use. Record refcounts are atomic, but
// the ledger, the free list, and the arena all require exclusive access for
// the duration of each call. Guarded wraps an allocator in a reader/writer
// lock for multi-goroutine use.
//
// # Errors
//
// Every failure is a sentinel error returned to the caller before any state
// is mutated: ErrAlreadyRegistered, ErrNoSuchProcess, ErrNotOwned,
// ErrBlockNotFound, ErrZeroSize, ErrBadSpan. Nothing is retried and nothing
// is logged.
package alloc
