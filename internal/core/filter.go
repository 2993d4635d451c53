package core

import (
	"fmt"
	"strings"
)

// Filter narrows a set of license records until at most one candidate
// remains. Construct one per validation attempt; it never re-consults
// the record source and holds no resources. A single Filter must not be
// narrowed concurrently.
type Filter struct {
	candidates []Record
}

// NewFilter creates a filter over a copy of records.
func NewFilter(records []Record) *Filter {
	return &Filter{candidates: snapshot(records)}
}

// Clone returns an independent filter over the current candidates.
// Narrowing the clone does not affect the original.
func (f *Filter) Clone() *Filter {
	return &Filter{candidates: snapshot(f.candidates)}
}

// Candidates returns a copy of the current candidate set.
func (f *Filter) Candidates() []Record {
	return snapshot(f.candidates)
}

// Len returns the number of remaining candidates.
func (f *Filter) Len() int {
	return len(f.candidates)
}

// narrow replaces the candidate set with the subsequence satisfying
// keep, preserving order. In strict mode an empty result fails with a
// MatchError carrying the pre-narrowing candidates.
func (f *Filter) narrow(message string, strict bool, keep Predicate) error {
	prior := f.candidates

	kept := make([]Record, 0, len(prior))
	for _, r := range prior {
		if keep(r) {
			kept = append(kept, r)
		}
	}
	f.candidates = kept

	if strict && len(kept) == 0 {
		return NewMatchErrorRejecting(message, prior)
	}
	return nil
}

// FindAll narrows by an arbitrary predicate. message names the missing
// criterion in the failure raised when strict narrowing empties the set.
func (f *Filter) FindAll(message string, keep Predicate, strict bool) error {
	return f.narrow(message, strict, keep)
}

// FindVendor keeps records issued by vendor.
func (f *Filter) FindVendor(vendor Ref, strict bool) error {
	return f.narrow(fmt.Sprintf("no license for vendor %s", vendor), strict, ByVendor(vendor))
}

// FindProduct keeps records licensing product.
func (f *Filter) FindProduct(product Ref, strict bool) error {
	return f.narrow(fmt.Sprintf("no license for product %s", product), strict, ByProduct(product))
}

// FindProducts keeps records licensing any of the given products.
func (f *Filter) FindProducts(products []Ref, strict bool) error {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.String()
	}
	message := fmt.Sprintf("no license for products %s", strings.Join(names, ", "))
	return f.narrow(message, strict, ByProducts(products))
}

// FindPackage keeps records declaring a package dependency that covers
// the queried version. The query must pin a single exact version;
// ranges and plus-qualified versions are rejected before any filtering,
// regardless of strict.
func (f *Filter) FindPackage(query *Spec, strict bool) error {
	if !query.IsExact() {
		return invalidSpecf("package query %q must pin a single exact version", query)
	}
	return f.narrow(fmt.Sprintf("no license for package %s", query), strict, ByPackage(query))
}

// FindLicenses keeps records whose declared license expression is
// satisfied by the allowed SPDX license IDs.
func (f *Filter) FindLicenses(allowed []string, strict bool) error {
	message := fmt.Sprintf("no license satisfying %s", strings.Join(allowed, " OR "))
	return f.narrow(message, strict, ByLicenseExpression(allowed))
}

// FindValid keeps records that passed external validation. The
// narrowing happens unconditionally, so the candidate set reflects only
// valid records even when strict mode is about to fail; the strict
// failure distinguishes an empty prior set ("no license found") from a
// present-but-invalid one, reporting the first record's validation
// error when it has one.
func (f *Filter) FindValid(strict bool) error {
	prior := f.candidates

	_ = f.narrow("", false, Valid())
	if !strict || len(f.candidates) > 0 {
		return nil
	}

	if len(prior) == 0 {
		return NewMatchError("no license found")
	}
	message := "license found, but it is not valid"
	if reason := prior[0].ValidationError; reason != "" {
		message += ": " + reason
	}
	return NewMatchErrorRejecting(message, prior)
}

// Get returns the sole valid candidate. With strict set, zero valid
// candidates fail as not-found (rejecting the whole current set) and
// more than one fails as ambiguous (rejecting the valid subset).
// Without it, Get returns the first valid candidate, or nil when none
// remain. Get does not change the candidate set.
func (f *Filter) Get(strict bool) (*Record, error) {
	valid := make([]Record, 0, len(f.candidates))
	for _, r := range f.candidates {
		if r.Valid {
			valid = append(valid, r)
		}
	}

	switch {
	case strict && len(valid) == 0:
		return nil, NewMatchErrorRejecting("no valid license found", f.candidates)
	case strict && len(valid) > 1:
		return nil, newAmbiguousError("multiple valid licenses found", valid)
	case len(valid) == 0:
		return nil, nil
	}

	r := valid[0]
	return &r, nil
}
