// pkg/pyver/pyver_test.go
package pyver

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		expected Spec
		actual   Spec
		want     bool
	}{
		{"wildcard minor accepts any minor", AnyMinor(3), Exact(3, 8), true},
		{"wildcard minor accepts another minor", AnyMinor(3), Exact(3, 12), true},
		{"exact minor accepts equal", Exact(3, 8), Exact(3, 8), true},
		{"exact minor rejects different", Exact(3, 8), Exact(3, 9), false},
		{"major mismatch rejects", Exact(3, 8), Exact(2, 8), false},
		{"major mismatch rejects wildcard", AnyMinor(3), Exact(2, 7), false},
		{"exact expected rejects open actual", Exact(3, 8), AnyMinor(3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.expected, tt.actual); got != tt.want {
				t.Errorf("Matches(%s, %s) = %v, want %v", tt.expected, tt.actual, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := Exact(3, 9).String(); got != "3.9" {
		t.Errorf("Exact(3, 9).String() = %q, want %q", got, "3.9")
	}
	if got := AnyMinor(3).String(); got != "3.*" {
		t.Errorf("AnyMinor(3).String() = %q, want %q", got, "3.*")
	}
}

func TestParseReport(t *testing.T) {
	tests := []struct {
		line    string
		want    string
		wantErr bool
	}{
		{"(3, 9)", "3.9", false},
		{"(2, 7)", "2.7", false},
		{"(3, 12)", "3.12", false},
		{"3.9", "", true},
		{"(3,9)", "", true},
		{"version (3, 9) here", "3.9", false},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseReport(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseReport(%q) expected error, got %s", tt.line, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseReport(%q) unexpected error: %v", tt.line, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseReport(%q) = %s, want %s", tt.line, got, tt.want)
			}
			if !got.Concrete() {
				t.Errorf("ParseReport(%q) should be concrete", tt.line)
			}
		})
	}
}

func TestParseSpec(t *testing.T) {
	tests := []struct {
		text    string
		want    string
		wantErr bool
	}{
		{"3", "3.*", false},
		{"3.9", "3.9", false},
		{"3.0", "3.0", false},
		{" 3.9 ", "3.9", false},
		{"", "", true},
		{"python3", "", true},
		{"3.x", "", true},
		{"0", "", true},
		{"-3", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseSpec(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSpec(%q) expected error, got %s", tt.text, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSpec(%q) unexpected error: %v", tt.text, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseSpec(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestMatches_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("open minor matches every minor of its major", prop.ForAll(
		func(major, minor int) bool {
			return Matches(AnyMinor(major), Exact(major, minor))
		},
		gen.IntRange(2, 4),
		gen.IntRange(0, 13),
	))

	properties.Property("different majors never match", prop.ForAll(
		func(major, minor int) bool {
			return !Matches(AnyMinor(major), Exact(major+1, minor)) &&
				!Matches(Exact(major, minor), Exact(major+1, minor))
		},
		gen.IntRange(2, 4),
		gen.IntRange(0, 13),
	))

	properties.Property("pinned minor matches exactly itself", prop.ForAll(
		func(major, minor, other int) bool {
			got := Matches(Exact(major, minor), Exact(major, other))
			return got == (minor == other)
		},
		gen.IntRange(2, 4),
		gen.IntRange(0, 13),
		gen.IntRange(0, 13),
	))

	properties.TestingRun(t)
}
