// Package procid generates process identifiers for the allocator: opaque,
// copyable 32-bit values usable as map keys. The allocator never looks inside
// a PID; producing unique ones is this package's job.
package procid

// defaultSeed keeps the xorshift stream out of its zero fixed point.
const defaultSeed = 0x9E3779B97F4A7C15

// PID identifies a logical owner of allocator memory.
type PID uint32

// Builder hands out PIDs either sequentially or from a xorshift PRNG. The
// zero value is usable: sequential PIDs count from zero and the PRNG falls
// back to a fixed seed. A Builder is not safe for concurrent use.
type Builder struct {
	counter uint32
	state   uint64
}

// NewBuilder seeds the pseudo-random mode. A zero seed selects a fixed
// default; the sequential mode ignores the seed entirely.
func NewBuilder(seed uint64) *Builder {
	if seed == 0 {
		seed = defaultSeed
	}
	return &Builder{state: seed}
}

// Next returns the next sequential PID, starting at zero. Sequential PIDs
// are unique for the lifetime of the Builder (up to wraparound at 2^32).
func (b *Builder) Next() PID {
	pid := PID(b.counter)
	b.counter++
	return pid
}

// Rand returns a PID drawn from a xorshift64* stream. Values are well
// distributed but not guaranteed collision-free; callers needing hard
// uniqueness use Next.
func (b *Builder) Rand() PID {
	if b.state == 0 {
		b.state = defaultSeed
	}
	x := b.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	b.state = x
	return PID((x * 0x2545F4914F6CDD1D) >> 32)
}
