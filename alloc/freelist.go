package alloc

import (
	"cmp"
	"slices"
)

// take produces a span of exactly size bytes, reusing the first free span
// with enough capacity and growing the arena when none fits. A reused span is
// carved from the front; any leftover capacity goes back on the list as a new
// entry. Reused bytes keep whatever contents they last had.
func (a *Allocator) take(size uint32) (Span, error) {
	for i := range a.free {
		if a.free[i].cap < size {
			continue
		}
		fs := a.free[i]

		// Swap-remove. The list's order only matters immediately after
		// a coalescing pass, and reclaim re-sorts every time.
		a.free[i] = a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]

		span := spanFrom(fs.span.Start, size)
		if rest := fs.cap - size; rest > 0 {
			a.free = append(a.free, freeSpan{
				cap:  rest,
				span: Span{Start: span.End + 1, End: fs.span.End},
			})
		}
		a.stats.reused++
		return span, nil
	}

	span, err := a.arena.grow(size)
	if err != nil {
		return Span{}, err
	}
	a.stats.grows++
	return span, nil
}

// reclaim returns span to the free list and eagerly merges adjacent entries.
// The list is sorted ascending by start, then scanned once for runs of
// mutually adjacent spans. Because this runs on every terminal free, the list
// holds no adjacencies beforehand, so at most one run exists and it covers at
// most three entries: the reclaimed span plus its immediate left and right
// neighbors. Any merge found therefore involves the reclaimed span.
func (a *Allocator) reclaim(span Span) FreeOutcome {
	a.free = append(a.free, freeSpan{cap: span.Len(), span: span})
	slices.SortFunc(a.free, func(x, y freeSpan) int {
		return cmp.Compare(x.span.Start, y.span.Start)
	})

	merged := false
	var mergedCap uint32
	out := make([]freeSpan, 0, len(a.free))
	for _, fs := range a.free {
		if n := len(out); n > 0 && adjacent(out[n-1].span, fs.span) {
			out[n-1].span.End = fs.span.End
			out[n-1].cap += fs.cap
			merged = true
			mergedCap = out[n-1].cap
			continue
		}
		out = append(out, fs)
	}
	a.free = out

	if merged {
		a.stats.merges++
		return FreeOutcome{Kind: FreeMerged, Capacity: mergedCap}
	}
	return FreeOutcome{Kind: FreeReturned, Capacity: span.Len()}
}
