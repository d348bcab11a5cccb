// pkg/linkplan/planner.go
package linkplan

import (
	"context"
	"errors"

	"github.com/arc-language/pyconfig/pkg/directive"
	"github.com/arc-language/pyconfig/pkg/platform"
	"github.com/arc-language/pyconfig/pkg/script"
	"github.com/arc-language/pyconfig/pkg/sysconfig"
)

var (
	// ErrLinkModeConflict indicates mutually exclusive link modes were
	// requested. Checked eagerly, before any interpreter is probed.
	ErrLinkModeConflict = errors.New("link-mode-default and link-mode-unresolved-static are mutually exclusive")

	// ErrUnknownLinkModel indicates the interpreter reported a link-model
	// classification this tool does not recognize. Always fatal.
	ErrUnknownLinkModel = errors.New("unknown linkmodel")
)

// Mode selects how the python runtime library is linked.
type Mode int

const (
	// ModeDefault links dynamically or statically according to the
	// interpreter's shared-library configuration.
	ModeDefault Mode = iota
	// ModeUnresolvedStatic links statically without bundling an artifact;
	// a downstream consumer supplies the library at its own link step.
	// Only meaningful on windows, where it prevents import-symbol name
	// mangling without requiring the import library at build time.
	ModeUnresolvedStatic
)

// ModeFromToggles maps the two request toggles onto a Mode. Neither set
// means ModeDefault; both set is a configuration error.
func ModeFromToggles(dflt, unresolvedStatic bool) (Mode, error) {
	if dflt && unresolvedStatic {
		return 0, ErrLinkModeConflict
	}
	if unresolvedStatic {
		return ModeUnresolvedStatic, nil
	}
	return ModeDefault, nil
}

// Request carries the link decisions requested by the caller.
type Request struct {
	Mode Mode
	// ExtensionModule marks an embeddable-extension build: the runtime
	// hosts us, so no link directive is emitted except on windows, where
	// extension modules still link against the import library.
	ExtensionModule bool
}

// Planner decides which linker directives to emit for a resolved
// interpreter. One implementation exists per platform family, selected
// at runtime through ForPlatform.
type Planner interface {
	Plan(ctx context.Context, id *sysconfig.Identity, req Request) ([]string, error)
}

// ForPlatform returns the link-planning strategy for the given platform.
func ForPlatform(p *platform.Platform, runner script.Runner) Planner {
	switch p.OS {
	case "darwin":
		return &DarwinPlanner{Runner: runner}
	case "windows":
		return &WindowsPlanner{}
	default:
		return &PosixPlanner{}
	}
}

// searchDirective emits the native search-path directive when the
// library directory is known.
func searchDirective(id *sysconfig.Identity) []string {
	if id.LibDir == "" {
		return nil
	}
	return []string{directive.LinkSearch(id.LibDir)}
}
