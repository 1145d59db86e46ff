package domain

import (
	"errors"
	"fmt"
)

// ErrPrefixTooShort rejects lookup prefixes below the minimum length.
var ErrPrefixTooShort = errors.New("id prefix must be at least 6 characters")

// ValidationError reports an entry that fails its invariants. It is always
// surfaced before persistence, never auto-corrected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid entry: %s %s", e.Field, e.Reason)
}

// AmbiguousIDError reports a lookup prefix matching two or more entries.
// The caller must not guess; the operation aborts with no mutation.
type AmbiguousIDError struct {
	Prefix  string
	Matches int
}

func (e *AmbiguousIDError) Error() string {
	return fmt.Sprintf("id prefix %q is ambiguous: %d entries match", e.Prefix, e.Matches)
}

// CorruptError reports a collection document that cannot be parsed. It is
// fatal for the current operation; replacing the document with an empty
// collection would be silent data loss, so the store never does that.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("storage document %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// WriteError reports a failed collection write after a successful rollback.
// The document on disk is the previous collection, unchanged.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write storage document %s (previous state restored): %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// FatalError reports a failed collection write whose rollback also failed.
// The document on disk is in an unknown state; this is non-recoverable.
type FatalError struct {
	Path        string
	WriteErr    error
	RollbackErr error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("storage document %s may be corrupted: write failed (%v) and rollback failed (%v)",
		e.Path, e.WriteErr, e.RollbackErr)
}
