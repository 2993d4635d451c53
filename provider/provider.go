// Package provider supplies license records to the narrowing engine,
// with optional retry and circuit-breaking wrappers around the host's
// record source.
package provider

import (
	"context"
	"errors"

	"github.com/git-pkgs/licenses"
)

// ErrUnavailable is returned when the record source cannot be consulted.
var ErrUnavailable = errors.New("license provider unavailable")

// Provider enumerates the license records known to the host system.
// The narrowing engine consults it exactly once, at construction.
type Provider interface {
	Records(ctx context.Context) ([]licenses.Record, error)
}

// Func adapts a function to the Provider interface.
type Func func(ctx context.Context) ([]licenses.Record, error)

func (f Func) Records(ctx context.Context) ([]licenses.Record, error) {
	return f(ctx)
}

// Static serves a fixed record list.
type Static struct {
	records []licenses.Record
}

// NewStatic creates a provider over a copy of records.
func NewStatic(records []licenses.Record) *Static {
	out := make([]licenses.Record, len(records))
	copy(out, records)
	return &Static{records: out}
}

// Records returns a copy of the stored records.
func (s *Static) Records(_ context.Context) ([]licenses.Record, error) {
	out := make([]licenses.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Load consults p once and seeds a filter over the result.
func Load(ctx context.Context, p Provider) (*licenses.Filter, error) {
	records, err := p.Records(ctx)
	if err != nil {
		return nil, err
	}
	return licenses.New(records), nil
}
