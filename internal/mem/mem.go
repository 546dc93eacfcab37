// Package mem provides backing storage for allocator arenas: large zeroed
// byte regions held outside the Go heap where the platform allows it.
package mem
