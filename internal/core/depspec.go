package core

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/git-pkgs/purl"
)

// Spec is a parsed package dependency: a name plus a version constraint.
// Licenses declare specs in their "packages" property; callers pass an
// exact-version spec as the query to Filter.FindPackage.
type Spec struct {
	Name string

	raw        string
	constraint *semver.Constraints
	exact      *semver.Version
	plus       bool
}

// ParseSpec parses a "<name> <version>" token. The version part is a
// single version ("1.2.0"), a plus-qualified open lower bound ("1.2+",
// meaning 1.2 or later), or a constraint range (">=1.0, <2.0").
func ParseSpec(token string) (*Spec, error) {
	name, version, ok := strings.Cut(strings.TrimSpace(token), " ")
	version = strings.TrimSpace(version)
	if !ok || name == "" || version == "" {
		return nil, invalidSpecf("%q: want \"<name> <version>\"", token)
	}

	s := &Spec{Name: name, raw: version}

	rangeExpr := version
	if base, found := strings.CutSuffix(version, "+"); found {
		s.plus = true
		rangeExpr = ">=" + base
	}

	c, err := semver.NewConstraint(rangeExpr)
	if err != nil {
		return nil, invalidSpecf("%q: %v", token, err)
	}
	s.constraint = c

	if !s.plus && !strings.ContainsAny(version, "<>=^~*|, ") {
		if v, err := semver.NewVersion(version); err == nil {
			s.exact = v
		}
	}

	return s, nil
}

// QueryFromPURL builds an exact-version query spec from a Package URL,
// e.g. "pkg:cargo/serde@1.0.193". The PURL must carry a version.
func QueryFromPURL(purlStr string) (*Spec, error) {
	p, err := purl.Parse(purlStr)
	if err != nil {
		return nil, invalidSpecf("%q: %v", purlStr, err)
	}
	if p.Version == "" {
		return nil, invalidSpecf("PURL has no version: %s", purlStr)
	}

	name := p.Name
	if p.Namespace != "" {
		name = p.Namespace + "/" + p.Name
	}

	return ParseSpec(name + " " + p.Version)
}

// Matches reports whether a package at version v satisfies this spec's
// name and version constraint.
func (s *Spec) Matches(name string, v *semver.Version) bool {
	return s.Name == name && s.constraint.Check(v)
}

// Exact returns the single version this spec pins, when it pins one.
func (s *Spec) Exact() (*semver.Version, bool) {
	return s.exact, s.exact != nil
}

// IsExact reports whether the spec pins one plain version rather than a
// range or a plus-qualified lower bound.
func (s *Spec) IsExact() bool {
	return s.exact != nil
}

// String returns the spec in its "name version" wire form.
func (s *Spec) String() string {
	return s.Name + " " + s.raw
}

// DeclaredPackages parses a record's "packages" property into the specs
// it declares. Empty and malformed tokens are skipped; a license with a
// broken declaration simply cannot match it.
func DeclaredPackages(r Record) []*Spec {
	value, ok := r.Property(PropPackages)
	if !ok {
		return nil
	}

	var specs []*Spec
	for _, token := range splitList(value) {
		s, err := ParseSpec(token)
		if err != nil {
			continue
		}
		specs = append(specs, s)
	}
	return specs
}

// splitList splits a ;-delimited property value, dropping empty tokens.
func splitList(value string) []string {
	var out []string
	for _, token := range strings.Split(value, ";") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		out = append(out, token)
	}
	return out
}
