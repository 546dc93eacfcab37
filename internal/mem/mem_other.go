//go:build !linux && !darwin && !freebsd

package mem

// Map allocates a zeroed region of size bytes on the Go heap.
func Map(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// Unmap releases a region returned by Map. On this platform the garbage
// collector reclaims it once unreferenced.
func Unmap([]byte) error {
	return nil
}
