// pkg/pyver/pyver.go
package pyver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Spec represents a requested or discovered Python version.
// A nil Minor means any minor version is acceptable.
type Spec struct {
	Major int
	Minor *int
}

// reportRe matches the interpreter's version report, e.g. "(3, 9)".
var reportRe = regexp.MustCompile(`\((\d+), (\d+)\)`)

// Exact returns a fully concrete version spec.
func Exact(major, minor int) Spec {
	return Spec{Major: major, Minor: &minor}
}

// AnyMinor returns a spec that accepts any minor version of the given major.
func AnyMinor(major int) Spec {
	return Spec{Major: major}
}

// Concrete reports whether both major and minor are pinned.
func (s Spec) Concrete() bool {
	return s.Minor != nil
}

// String renders the spec as "3.9", or "3.*" when the minor is open.
func (s Spec) String() string {
	if s.Minor == nil {
		return fmt.Sprintf("%d.*", s.Major)
	}
	return fmt.Sprintf("%d.%d", s.Major, *s.Minor)
}

// ParseReport parses an interpreter version report of the form "(3, 9)"
// as printed by sys.version_info[0:2].
func ParseReport(line string) (Spec, error) {
	m := reportRe.FindStringSubmatch(line)
	if m == nil {
		return Spec{}, fmt.Errorf("unexpected response to version query %q", line)
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Spec{}, fmt.Errorf("parsing major version: %w", err)
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Spec{}, fmt.Errorf("parsing minor version: %w", err)
	}
	return Exact(major, minor), nil
}

// ParseSpec parses a user-supplied version request such as "3" or "3.9".
func ParseSpec(text string) (Spec, error) {
	parts := strings.SplitN(strings.TrimSpace(text), ".", 2)
	major, err := strconv.Atoi(parts[0])
	if err != nil || major <= 0 {
		return Spec{}, fmt.Errorf("invalid python version %q", text)
	}
	if len(parts) == 1 {
		return AnyMinor(major), nil
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil || minor < 0 {
		return Spec{}, fmt.Errorf("invalid python version %q", text)
	}
	return Exact(major, minor), nil
}

// Matches reports whether a discovered version satisfies the expected spec.
// The rule is asymmetric: majors must be equal, and the expected minor, if
// pinned, must equal the discovered minor. It is never applied in the
// reverse direction.
func Matches(expected, actual Spec) bool {
	if actual.Major != expected.Major {
		return false
	}
	if expected.Minor == nil {
		return true
	}
	return actual.Minor != nil && *actual.Minor == *expected.Minor
}
