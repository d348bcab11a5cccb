// pkg/interp/locator_test.go
package interp

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/arc-language/pyconfig/pkg/platform"
	"github.com/arc-language/pyconfig/pkg/pyver"
)

// fakeRunner answers identity probes per interpreter name and records
// every probe it receives.
type fakeRunner struct {
	identities map[string]string // interpreter name -> identity output
	probed     []string
}

func (f *fakeRunner) Run(ctx context.Context, interpreter, script string) (string, error) {
	f.probed = append(f.probed, interpreter)
	out, ok := f.identities[interpreter]
	if !ok {
		return "", fmt.Errorf("no such interpreter %q", interpreter)
	}
	return out, nil
}

func identityOutput(path string, major, minor int) string {
	return fmt.Sprintf("%s\n(%d, %d)\n/usr/lib\n1\n%d.%d\n/usr\n", path, major, minor, major, minor)
}

func newTestLocator(runner *fakeRunner) *Locator {
	return NewLocator(&Config{
		Runner:   runner,
		Platform: &platform.Platform{OS: "linux", Arch: "amd64"},
	})
}

func TestCandidateNames(t *testing.T) {
	tests := []struct {
		name     string
		expected pyver.Spec
		want     []string
	}{
		{"pinned minor", pyver.Exact(3, 8), []string{"python", "python3", "python3.8"}},
		{"open minor", pyver.AnyMinor(3), []string{"python", "python3"}},
		{"python 2", pyver.Exact(2, 7), []string{"python", "python2", "python2.7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CandidateNames(tt.expected); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CandidateNames(%s) = %v, want %v", tt.expected, got, tt.want)
			}
		})
	}
}

func TestLocate_FirstMatchWins(t *testing.T) {
	runner := &fakeRunner{identities: map[string]string{
		"python":  identityOutput("/usr/bin/python", 3, 9),
		"python3": identityOutput("/usr/bin/python3", 3, 9),
	}}

	id, err := newTestLocator(runner).Locate(context.Background(), pyver.Exact(3, 9), "")
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if id.Executable != "/usr/bin/python" {
		t.Errorf("resolved %q, want the first matching candidate", id.Executable)
	}
	if !reflect.DeepEqual(runner.probed, []string{"python"}) {
		t.Errorf("probed %v, want to stop after the first match", runner.probed)
	}
}

func TestLocate_SkipsFailedAndMismatchedCandidates(t *testing.T) {
	// "python" is missing entirely and "python3" is the wrong minor;
	// both failures are swallowed and the search continues.
	runner := &fakeRunner{identities: map[string]string{
		"python3":   identityOutput("/usr/bin/python3", 3, 11),
		"python3.8": identityOutput("/opt/py38/bin/python3.8", 3, 8),
	}}

	id, err := newTestLocator(runner).Locate(context.Background(), pyver.Exact(3, 8), "")
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if id.Executable != "/opt/py38/bin/python3.8" {
		t.Errorf("resolved %q", id.Executable)
	}
	if !reflect.DeepEqual(runner.probed, []string{"python", "python3", "python3.8"}) {
		t.Errorf("probed %v, want the full preference order", runner.probed)
	}
}

func TestLocate_NotFound(t *testing.T) {
	runner := &fakeRunner{identities: map[string]string{}}

	_, err := newTestLocator(runner).Locate(context.Background(), pyver.Exact(3, 8), "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Locate error = %v, want ErrNotFound", err)
	}
	if want := "3.8"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q should name the expected version %s", err, want)
	}
}

func TestLocate_OverrideMatch(t *testing.T) {
	runner := &fakeRunner{identities: map[string]string{
		"/custom/python": identityOutput("/custom/python", 3, 9),
	}}

	id, err := newTestLocator(runner).Locate(context.Background(), pyver.AnyMinor(3), "/custom/python")
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if id.Executable != "/custom/python" {
		t.Errorf("resolved %q", id.Executable)
	}
	if !reflect.DeepEqual(runner.probed, []string{"/custom/python"}) {
		t.Errorf("probed %v, want only the override", runner.probed)
	}
}

func TestLocate_OverrideVersionMismatchIsFatal(t *testing.T) {
	runner := &fakeRunner{identities: map[string]string{
		"/custom/python": identityOutput("/custom/python", 3, 7),
		"python":         identityOutput("/usr/bin/python", 3, 9),
	}}

	_, err := newTestLocator(runner).Locate(context.Background(), pyver.Exact(3, 9), "/custom/python")
	if !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("Locate error = %v, want ErrVersionMismatch", err)
	}
	// no fallback search after an explicit override
	if !reflect.DeepEqual(runner.probed, []string{"/custom/python"}) {
		t.Errorf("probed %v, want no fallback probing", runner.probed)
	}
}

func TestLocate_OverrideSpawnFailureIsFatal(t *testing.T) {
	runner := &fakeRunner{identities: map[string]string{
		"python": identityOutput("/usr/bin/python", 3, 9),
	}}

	_, err := newTestLocator(runner).Locate(context.Background(), pyver.Exact(3, 9), "/missing/python")
	if err == nil {
		t.Fatal("expected error for an unprobeable override")
	}
	if !reflect.DeepEqual(runner.probed, []string{"/missing/python"}) {
		t.Errorf("probed %v, want no fallback probing", runner.probed)
	}
}
