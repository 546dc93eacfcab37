package alloc

import "procheap/internal/mem"

// arenaPage is the granularity the backing mapping grows by.
const arenaPage = 1 << 16

// arena is the single contiguous byte buffer backing all allocations. It only
// ever grows; it is never compacted or shrunk. Storage comes from page
// mappings (see internal/mem); when the current mapping is exhausted the
// arena copies into a larger one and releases the old mapping, so the logical
// buffer stays contiguous throughout.
type arena struct {
	buf []byte // len = logical arena size, cap = mapped size
}

// size returns the arena's logical length in bytes.
func (a *arena) size() uint32 { return uint32(len(a.buf)) }

// grow appends size zeroed bytes and returns the span covering them.
func (a *arena) grow(size uint32) (Span, error) {
	old := len(a.buf)
	need := old + int(size)
	if need > cap(a.buf) {
		mapped := cap(a.buf)
		if mapped == 0 {
			mapped = arenaPage
		}
		for mapped < need {
			mapped *= 2
		}
		fresh, err := mem.Map(mapped)
		if err != nil {
			return Span{}, err
		}
		copy(fresh, a.buf)
		if a.buf != nil {
			// Unmap wants the original full-capacity slice.
			_ = mem.Unmap(a.buf[:cap(a.buf)])
		}
		a.buf = fresh[:old]
	}
	// Mapped pages beyond len have never been handed out, so they are
	// still zero.
	a.buf = a.buf[:need]
	return spanFrom(uint32(old), size), nil
}

// slice returns the arena bytes covered by span.
func (a *arena) slice(s Span) []byte {
	lo, hi := s.bounds()
	return a.buf[lo:hi]
}

// zero clears the bytes covered by span.
func (a *arena) zero(s Span) {
	lo, hi := s.bounds()
	clear(a.buf[lo:hi])
}
