// Package core implements the license narrowing engine, its predicate
// library, and the property-string parsers.
package core

// Property keys with formats the engine understands.
const (
	PropPackages = "packages" // "name version;name version;..."
	PropCapacity = "capacity" // "qty unit;qty unit;..."
	PropLicenses = "licenses" // SPDX license expression
)

// Ref identifies a vendor or a product. The label is display-only;
// equality is decided by the ID alone.
type Ref struct {
	ID    string
	Label string
}

// Equals reports whether two refs name the same entity, ignoring labels.
func (r Ref) Equals(other Ref) bool {
	return r.ID == other.ID
}

func (r Ref) String() string {
	if r.Label != "" {
		return r.Label
	}
	return r.ID
}

// Property is one key/value entry of a record's ordered property list.
// Keys the engine does not understand are carried but ignored.
type Property struct {
	Key   string
	Value string
}

// Record is a read-only view of one license issued by the distribution
// platform. Validity is computed externally (signature and expiry) and
// carried as a plain boolean plus an explanatory message.
type Record struct {
	Vendor          Ref
	Product         Ref
	Licensee        string
	Properties      []Property
	Valid           bool
	ValidationError string
}

// Property returns the value stored under key, and whether the record
// carries that key at all.
func (r Record) Property(key string) (string, bool) {
	for _, p := range r.Properties {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}
