package budget

import "errors"

// Sentinel errors returned by the store and the ledger. They are always
// wrapped with context, match them with errors.Is.
var (
	// ErrNotFound reports an id-based lookup miss.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable reports that the durable medium could not be
	// read or written.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCorruptData reports that the durable content does not parse into
	// the expected shape.
	ErrCorruptData = errors.New("corrupt data")

	// ErrPersistence reports that the write step failed after an in-memory
	// mutation was already applied. Memory and durable state may disagree;
	// callers should reload from storage before trusting in-memory data.
	ErrPersistence = errors.New("persistence failure")
)
