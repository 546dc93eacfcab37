package alloc

// stats accumulates operation counters. Counters only ever go up.
type stats struct {
	allocs uint64
	frees  uint64
	shares uint64
	reused uint64
	grows  uint64
	merges uint64
}

// Metrics is a point-in-time snapshot of allocator state. ArenaSize always
// equals LiveBytes + FreeBytes: every arena byte is either covered by exactly
// one live record (counted once however many processes hold it) or sitting on
// the free list.
type Metrics struct {
	ArenaSize  uint32 // total arena length in bytes
	LiveBytes  uint32 // bytes covered by live records, each record counted once
	FreeBytes  uint32 // bytes on the free list
	LiveBlocks int    // distinct live records
	FreeSpans  int    // free-list entries
	Processes  int    // registered processes

	Allocs uint64 // successful Alloc calls
	Frees  uint64 // successful Free and FreeZero calls
	Shares uint64 // successful Share calls
	Reused uint64 // allocations served from the free list
	Grows  uint64 // allocations that grew the arena
	Merges uint64 // terminal frees that coalesced adjacent spans
}

// Metrics returns a snapshot of the allocator's current state.
func (a *Allocator) Metrics() Metrics {
	m := Metrics{
		ArenaSize: a.arena.size(),
		Processes: len(a.ledger),
		FreeSpans: len(a.free),
		Allocs:    a.stats.allocs,
		Frees:     a.stats.frees,
		Shares:    a.stats.shares,
		Reused:    a.stats.reused,
		Grows:     a.stats.grows,
		Merges:    a.stats.merges,
	}

	// A shared record shows up in several ledgers; count it once.
	seen := make(map[*block]struct{})
	for _, blocks := range a.ledger {
		for _, b := range blocks {
			if _, dup := seen[b]; dup {
				continue
			}
			seen[b] = struct{}{}
			m.LiveBytes += b.span.Len()
		}
	}
	m.LiveBlocks = len(seen)

	for _, fs := range a.free {
		m.FreeBytes += fs.cap
	}
	return m
}
