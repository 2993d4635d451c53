package core

import "github.com/github/go-spdx/v2/spdxexp"

// Predicate decides whether a record survives a narrowing pass.
type Predicate func(Record) bool

// ByVendor keeps records issued by the given vendor.
func ByVendor(vendor Ref) Predicate {
	return func(r Record) bool {
		return r.Vendor.Equals(vendor)
	}
}

// ByProduct keeps records licensing the given product.
func ByProduct(product Ref) Predicate {
	return func(r Record) bool {
		return r.Product.Equals(product)
	}
}

// ByProducts keeps records licensing any of the given products.
func ByProducts(products []Ref) Predicate {
	return func(r Record) bool {
		for _, p := range products {
			if r.Product.Equals(p) {
				return true
			}
		}
		return false
	}
}

// ByPackage keeps records whose "packages" property declares a
// dependency whose name matches the query and whose version constraint
// contains the query's version. Any one declared dependency suffices.
func ByPackage(query *Spec) Predicate {
	return func(r Record) bool {
		v, ok := query.Exact()
		if !ok {
			return false
		}
		for _, declared := range DeclaredPackages(r) {
			if declared.Matches(query.Name, v) {
				return true
			}
		}
		return false
	}
}

// Valid keeps records whose external signature/expiry check passed.
func Valid() Predicate {
	return func(r Record) bool {
		return r.Valid
	}
}

// ByLicenseExpression keeps records whose "licenses" property is an
// SPDX expression satisfied by the allowed license IDs.
func ByLicenseExpression(allowed []string) Predicate {
	return func(r Record) bool {
		expr, ok := r.Property(PropLicenses)
		if !ok {
			return false
		}
		satisfied, err := spdxexp.Satisfies(expr, allowed)
		return err == nil && satisfied
	}
}

// And composes predicates; a record must satisfy all of them.
func And(preds ...Predicate) Predicate {
	return func(r Record) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}
