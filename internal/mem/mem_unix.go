//go:build linux || darwin || freebsd

package mem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Map allocates a zeroed region of size bytes using an anonymous mapping.
// Anonymous pages arrive zero-filled from the kernel.
func Map(size int) ([]byte, error) {
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("mem: anonymous map of %d bytes: %w", size, err)
	}
	return b, nil
}

// Unmap releases a region returned by Map. It must be passed the same slice
// Map returned, not a derived one.
func Unmap(b []byte) error {
	if err := unix.Munmap(b); err != nil {
		return fmt.Errorf("mem: unmap: %w", err)
	}
	return nil
}
