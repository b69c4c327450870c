package catalog

// notFoundError signals a model id missing from the current snapshot.
type notFoundError struct{ id string }

func (e notFoundError) Error() string { return "model not found: " + e.id }

// ErrModelNotFound returns an error for a model id not present in the catalog.
func ErrModelNotFound(id string) error { return notFoundError{id: id} }

// IsModelNotFound reports whether the error indicates a missing model id.
func IsModelNotFound(err error) bool {
	_, ok := err.(notFoundError)
	return ok
}

// persistError signals that the in-memory catalog changed but the snapshot
// could not be written or removed. The change still holds for this process.
type persistError struct {
	op  string
	err error
}

func (e persistError) Error() string { return "persist " + e.op + ": " + e.err.Error() }
func (e persistError) Unwrap() error { return e.err }

// ErrPersist wraps a snapshot write/remove failure.
func ErrPersist(op string, err error) error { return persistError{op: op, err: err} }

// IsPersistFailure reports whether err indicates a snapshot persistence
// failure (the in-memory update already took effect).
func IsPersistFailure(err error) bool {
	_, ok := err.(persistError)
	return ok
}

// badSnapshotError signals a snapshot document that is not valid JSON for an
// ordered list of models. The catalog is left untouched.
type badSnapshotError struct{ err error }

func (e badSnapshotError) Error() string { return "bad snapshot: " + e.err.Error() }
func (e badSnapshotError) Unwrap() error { return e.err }

// ErrBadSnapshot wraps a snapshot parse failure.
func ErrBadSnapshot(err error) error { return badSnapshotError{err: err} }

// IsBadSnapshot reports whether err indicates an unparseable snapshot.
func IsBadSnapshot(err error) bool {
	_, ok := err.(badSnapshotError)
	return ok
}
