package alloc

import "errors"

var (
	// ErrAlreadyRegistered indicates a second Register call for the same process.
	ErrAlreadyRegistered = errors.New("alloc: process already registered")

	// ErrNoSuchProcess indicates an operation referencing an unregistered process.
	ErrNoSuchProcess = errors.New("alloc: no such process")

	// ErrNotOwned indicates a span that is not fully contained in a single block
	// owned by the requesting process.
	ErrNotOwned = errors.New("alloc: span not owned by process")

	// ErrBlockNotFound indicates a free request whose start offset matches no
	// block in the requesting process's ledger.
	ErrBlockNotFound = errors.New("alloc: no block starts at the given offset")

	// ErrZeroSize indicates an allocation request for zero bytes.
	ErrZeroSize = errors.New("alloc: zero-size allocation")

	// ErrBadSpan indicates a malformed span (end before start).
	ErrBadSpan = errors.New("alloc: bad span")
)
