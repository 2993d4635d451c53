// Package licenses narrows a pool of license records down to the single
// record covering a vendor, product, and package version that passes
// validation.
//
// Records come from the host platform; construct a Filter over them and
// chain narrowing calls, then Get the surviving record:
//
//	f := licenses.New(records)
//	if err := f.FindVendor(licenses.Ref{ID: "acme"}, true); err != nil {
//		log.Fatal(err)
//	}
//	if err := f.FindValid(true); err != nil {
//		log.Fatal(err)
//	}
//	lic, err := f.Get(true)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(lic.Licensee)
//
// Every narrowing call takes an explicit strict flag. A strict call
// that empties the candidate set fails with a *MatchError carrying the
// set it rejected, so hosts can report what was considered before
// disabling the dependent feature. Non-strict calls never fail for
// absence; they leave the set empty.
package licenses

import "github.com/git-pkgs/licenses/internal/core"

// Re-export types from internal/core
type (
	// Record is a read-only view of one license issued by the
	// distribution platform.
	Record = core.Record

	// Ref identifies a vendor or a product by ID; labels are display-only.
	Ref = core.Ref

	// Property is one entry of a record's ordered property list.
	Property = core.Property

	// Filter is the narrowing engine over a candidate record set.
	Filter = core.Filter

	// Spec is a parsed package dependency: name plus version constraint.
	Spec = core.Spec

	// Predicate decides whether a record survives a narrowing pass.
	Predicate = core.Predicate

	// MatchError reports a failed narrowing and the candidates it rejected.
	MatchError = core.MatchError
)

// Property keys with formats the engine understands.
const (
	PropPackages = core.PropPackages
	PropCapacity = core.PropCapacity
	PropLicenses = core.PropLicenses
)

// Re-export errors
var (
	// ErrNoLicense is returned when a strict narrowing leaves no candidates.
	ErrNoLicense = core.ErrNoLicense

	// ErrAmbiguous is returned when a strict Get finds more than one
	// valid candidate.
	ErrAmbiguous = core.ErrAmbiguous

	// ErrInvalidSpec is returned for package queries that are not a
	// single exact version.
	ErrInvalidSpec = core.ErrInvalidSpec
)

// New creates a filter over a copy of records.
func New(records []Record) *Filter {
	return core.NewFilter(records)
}

// ParseSpec parses a "<name> <version>" dependency token. The version
// part is a single version, a plus-qualified lower bound ("1.2+"), or a
// constraint range (">=1.0, <2.0").
func ParseSpec(token string) (*Spec, error) {
	return core.ParseSpec(token)
}

// QueryFromPURL builds an exact-version query spec from a Package URL,
// e.g. "pkg:cargo/serde@1.0.193". The PURL must carry a version.
func QueryFromPURL(purl string) (*Spec, error) {
	return core.QueryFromPURL(purl)
}

// ParseCapacity parses a record's "capacity" property into quantities
// by unit. A record without the property yields an empty map.
func ParseCapacity(r Record) (map[string]int64, error) {
	return core.ParseCapacity(r)
}

// Capacity returns the quantity the record declares for one unit, or
// zero when the unit is not declared.
func Capacity(r Record, unit string) (int64, error) {
	return core.Capacity(r, unit)
}

// Predicate library for use with Filter.FindAll.
var (
	// ByVendor keeps records issued by the given vendor.
	ByVendor = core.ByVendor

	// ByProduct keeps records licensing the given product.
	ByProduct = core.ByProduct

	// ByProducts keeps records licensing any of the given products.
	ByProducts = core.ByProducts

	// ByPackage keeps records declaring a dependency the query satisfies.
	ByPackage = core.ByPackage

	// Valid keeps records whose external signature/expiry check passed.
	Valid = core.Valid

	// ByLicenseExpression keeps records whose SPDX license expression is
	// satisfied by the allowed license IDs.
	ByLicenseExpression = core.ByLicenseExpression

	// And composes predicates; a record must satisfy all of them.
	And = core.And
)
