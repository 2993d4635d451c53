package core

import (
	"errors"
	"testing"

	"github.com/Masterminds/semver/v3"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		token     string
		wantName  string
		wantExact bool
		wantErr   bool
	}{
		{token: "acmeExt 1.0", wantName: "acmeExt", wantExact: true},
		{token: "acmeExt 1.2.3", wantName: "acmeExt", wantExact: true},
		{token: "acmeExt v1.8.4", wantName: "acmeExt", wantExact: true},
		{token: "acmeExt 1.0+", wantName: "acmeExt", wantExact: false},
		{token: "acmeExt >=1.0, <2.0", wantName: "acmeExt", wantExact: false},
		{token: "  acmeExt 1.0  ", wantName: "acmeExt", wantExact: true},
		{token: "acmeExt", wantErr: true},
		{token: "", wantErr: true},
		{token: "acmeExt ", wantErr: true},
		{token: "acmeExt not-a-version", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			s, err := ParseSpec(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSpec(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidSpec) {
					t.Errorf("expected ErrInvalidSpec, got %v", err)
				}
				return
			}
			if s.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", s.Name, tt.wantName)
			}
			if s.IsExact() != tt.wantExact {
				t.Errorf("IsExact() = %v, want %v", s.IsExact(), tt.wantExact)
			}
		})
	}
}

func TestSpecMatches(t *testing.T) {
	tests := []struct {
		declared string
		name     string
		version  string
		want     bool
	}{
		{"acmeExt 1.0", "acmeExt", "1.0", true},
		{"acmeExt 2.0", "acmeExt", "1.0", false},
		{"acmeExt 1.0", "otherPkg", "1.0", false},
		{"acmeExt >=1.0, <2.0", "acmeExt", "1.5", true},
		{"acmeExt >=1.0, <2.0", "acmeExt", "2.0", false},
		{"acmeExt 1.2+", "acmeExt", "1.2", true},
		{"acmeExt 1.2+", "acmeExt", "3.0", true},
		{"acmeExt 1.2+", "acmeExt", "1.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.declared+" vs "+tt.version, func(t *testing.T) {
			s, err := ParseSpec(tt.declared)
			if err != nil {
				t.Fatalf("ParseSpec(%q) failed: %v", tt.declared, err)
			}
			v := semver.MustParse(tt.version)
			if got := s.Matches(tt.name, v); got != tt.want {
				t.Errorf("Matches(%q, %s) = %v, want %v", tt.name, tt.version, got, tt.want)
			}
		})
	}
}

func TestSpecString(t *testing.T) {
	s, err := ParseSpec("acmeExt 1.0+")
	if err != nil {
		t.Fatalf("ParseSpec failed: %v", err)
	}
	if got := s.String(); got != "acmeExt 1.0+" {
		t.Errorf("String() = %q, want the wire form back", got)
	}
}

func TestQueryFromPURL(t *testing.T) {
	t.Run("plain name", func(t *testing.T) {
		s, err := QueryFromPURL("pkg:cargo/serde@1.0.193")
		if err != nil {
			t.Fatalf("QueryFromPURL failed: %v", err)
		}
		if s.Name != "serde" {
			t.Errorf("Name = %q, want %q", s.Name, "serde")
		}
		if !s.IsExact() {
			t.Error("expected an exact query spec")
		}
	})

	t.Run("namespaced name", func(t *testing.T) {
		s, err := QueryFromPURL("pkg:golang/github.com/stretchr/testify@v1.8.4")
		if err != nil {
			t.Fatalf("QueryFromPURL failed: %v", err)
		}
		if s.Name != "github.com/stretchr/testify" {
			t.Errorf("Name = %q, want the namespace folded in", s.Name)
		}
	})

	t.Run("missing version", func(t *testing.T) {
		_, err := QueryFromPURL("pkg:cargo/serde")
		if !errors.Is(err, ErrInvalidSpec) {
			t.Fatalf("expected ErrInvalidSpec, got %v", err)
		}
	})

	t.Run("not a purl", func(t *testing.T) {
		_, err := QueryFromPURL("serde@1.0.193")
		if !errors.Is(err, ErrInvalidSpec) {
			t.Fatalf("expected ErrInvalidSpec, got %v", err)
		}
	})
}

func TestDeclaredPackages(t *testing.T) {
	r := rec("acme", "reporting", true,
		Property{Key: PropPackages, Value: "acmeExt 1.0; otherPkg 2.0+ ;;garbage"})

	specs := DeclaredPackages(r)
	if len(specs) != 2 {
		t.Fatalf("expected 2 parsed specs, got %d", len(specs))
	}
	if specs[0].Name != "acmeExt" || specs[1].Name != "otherPkg" {
		t.Errorf("unexpected spec names: %q, %q", specs[0].Name, specs[1].Name)
	}

	if got := DeclaredPackages(rec("acme", "reporting", true)); got != nil {
		t.Errorf("expected nil for a record without a packages property, got %v", got)
	}
}
