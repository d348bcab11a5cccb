// pkg/interp/locator.go
package interp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/arc-language/pyconfig/pkg/platform"
	"github.com/arc-language/pyconfig/pkg/pyver"
	"github.com/arc-language/pyconfig/pkg/script"
	"github.com/arc-language/pyconfig/pkg/sysconfig"
)

// GenericName is the base executable name probed for the runtime family.
const GenericName = "python"

var (
	// ErrNotFound indicates every candidate name was probed without a match.
	ErrNotFound = errors.New("no python interpreter found")

	// ErrVersionMismatch indicates an explicitly specified interpreter
	// reported a version that does not satisfy the request. There is no
	// fallback search in that case.
	ErrVersionMismatch = errors.New("python version mismatch")
)

// Config configures a Locator.
type Config struct {
	Runner   script.Runner
	Platform *platform.Platform
	Logger   *log.Logger
	Debug    bool
}

// Locator finds a python interpreter matching a requested version by
// probing candidate executable names in a fixed preference order.
type Locator struct {
	runner   script.Runner
	platform *platform.Platform
	logger   *log.Logger
}

// NewLocator creates a Locator, filling in defaults the way the rest of
// the components do.
func NewLocator(cfg *Config) *Locator {
	if cfg == nil {
		cfg = &Config{}
	}

	runner := cfg.Runner
	if runner == nil {
		runner = script.ExecRunner{}
	}

	plat := cfg.Platform
	if plat == nil {
		plat = platform.Detect()
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			// stdout carries the directive protocol, so debug goes to stderr
			logger = log.New(os.Stderr, "[LOCATE] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &Locator{
		runner:   runner,
		platform: plat,
		logger:   logger,
	}
}

// CandidateNames returns the executable names to probe for the expected
// version, most generic first. The major.minor name is only tried when
// the request pins a minor version.
func CandidateNames(expected pyver.Spec) []string {
	names := []string{
		GenericName,
		fmt.Sprintf("%s%d", GenericName, expected.Major),
	}
	if expected.Minor != nil {
		names = append(names, fmt.Sprintf("%s%d.%d", GenericName, expected.Major, *expected.Minor))
	}
	return names
}

// Locate resolves an interpreter for the expected version.
//
// When overridePath names an explicit interpreter it is probed
// exclusively, and a version mismatch is fatal. Otherwise candidates are
// probed in preference order and the first whose extraction succeeds and
// whose reported version matches wins; per-candidate failures are
// swallowed and the search continues. Probing is sequential on purpose:
// discovery happens once per build and must be deterministic and
// explainable when several installations coexist.
func (l *Locator) Locate(ctx context.Context, expected pyver.Spec, overridePath string) (*sysconfig.Identity, error) {
	if overridePath != "" {
		id, err := l.probe(ctx, overridePath)
		if err != nil {
			return nil, fmt.Errorf("probing interpreter %q: %w", overridePath, err)
		}
		if !pyver.Matches(expected, id.Version) {
			return nil, fmt.Errorf("%w: %s reports %s, expected %s",
				ErrVersionMismatch, id.Executable, id.Version, expected)
		}
		return id, nil
	}

	for _, name := range CandidateNames(expected) {
		id, err := l.probe(ctx, name)
		if err != nil {
			l.logger.Printf("candidate %q failed: %v", name, err)
			continue
		}
		if !pyver.Matches(expected, id.Version) {
			l.logger.Printf("candidate %q is %s, want %s", name, id.Version, expected)
			continue
		}
		l.logger.Printf("resolved %s at %s", id.Version, id.Executable)
		return id, nil
	}

	return nil, fmt.Errorf("%w of version %s", ErrNotFound, expected)
}

// probe runs the identity script against one candidate name.
func (l *Locator) probe(ctx context.Context, name string) (*sysconfig.Identity, error) {
	out, err := l.runner.Run(ctx, name, sysconfig.IdentityScript)
	if err != nil {
		return nil, err
	}
	return sysconfig.ParseIdentity(out, l.platform.Newline())
}
