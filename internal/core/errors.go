package core

import (
	"errors"
	"fmt"
)

// ErrNoLicense is returned when a strict narrowing leaves no candidates.
var ErrNoLicense = errors.New("no matching license")

// ErrAmbiguous is returned when a strict Get finds more than one valid candidate.
var ErrAmbiguous = errors.New("multiple matching licenses")

// ErrInvalidSpec is returned for package queries that are not a single
// exact version. This is caller misuse, never a data condition.
var ErrInvalidSpec = errors.New("invalid package spec")

// MatchError reports a failed narrowing together with the candidate set
// it rejected. It unwraps to ErrNoLicense or ErrAmbiguous, so callers
// catching license absence do not accidentally swallow ErrInvalidSpec.
type MatchError struct {
	Message  string
	Rejected []Record

	reason error
}

// NewMatchError creates a not-found match error with no rejected set.
func NewMatchError(message string) *MatchError {
	return &MatchError{Message: message, reason: ErrNoLicense}
}

// NewMatchErrorRejecting creates a not-found match error that snapshots
// the candidate set in place before the failing narrowing.
func NewMatchErrorRejecting(message string, rejected []Record) *MatchError {
	return &MatchError{Message: message, Rejected: snapshot(rejected), reason: ErrNoLicense}
}

func newAmbiguousError(message string, rejected []Record) *MatchError {
	return &MatchError{Message: message, Rejected: snapshot(rejected), reason: ErrAmbiguous}
}

func (e *MatchError) Error() string {
	return e.Message
}

func (e *MatchError) Unwrap() error {
	return e.reason
}

// First returns the first rejected record, if any.
func (e *MatchError) First() (Record, bool) {
	if len(e.Rejected) == 0 {
		return Record{}, false
	}
	return e.Rejected[0], true
}

func invalidSpecf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSpec, fmt.Sprintf(format, args...))
}

func snapshot(records []Record) []Record {
	if len(records) == 0 {
		return nil
	}
	out := make([]Record, len(records))
	copy(out, records)
	return out
}
