package alloc

// Span is a closed byte range [Start, End] within the arena. Both bounds are
// inclusive: a span covering the first four arena bytes has Start 0 and End 3.
type Span struct {
	Start uint32
	End   uint32
}

// Len returns the number of bytes the span covers.
func (s Span) Len() uint32 { return s.End - s.Start + 1 }

// valid reports whether the span is well formed. A span with End < Start must
// never reach arena slicing.
func (s Span) valid() bool { return s.End >= s.Start }

// contains reports whether s fully covers other.
func (s Span) contains(other Span) bool {
	return s.Start <= other.Start && s.End >= other.End
}

// containsOffset reports whether off lies inside the span.
func (s Span) containsOffset(off uint32) bool {
	return s.Start <= off && off <= s.End
}

// bounds converts the inclusive span into exclusive slice indices. Every
// arena-slicing site goes through here so the closed-interval convention is
// handled in exactly one place.
func (s Span) bounds() (lo, hi int) {
	return int(s.Start), int(s.End) + 1
}

// spanFrom builds the span starting at start and covering size bytes. size
// must be nonzero; zero-size requests are rejected before this point.
func spanFrom(start, size uint32) Span {
	return Span{Start: start, End: start + size - 1}
}

// adjacent reports whether b begins immediately after a ends.
func adjacent(a, b Span) bool { return a.End+1 == b.Start }
