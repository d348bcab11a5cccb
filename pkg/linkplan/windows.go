// pkg/linkplan/windows.go
package linkplan

import (
	"context"
	"fmt"

	"github.com/arc-language/pyconfig/pkg/directive"
	"github.com/arc-language/pyconfig/pkg/sysconfig"
)

// importAlias is the alias the decorated import library is bound to.
const importAlias = "pythonXY"

// WindowsPlanner handles windows, where the import library carries the
// major and minor digits in its name and Py_ENABLE_SHARED is not a
// reliable signal, so it is ignored entirely.
type WindowsPlanner struct{}

// Plan implements Planner.
func (WindowsPlanner) Plan(ctx context.Context, id *sysconfig.Identity, req Request) ([]string, error) {
	if req.Mode == ModeUnresolvedStatic {
		// no bundled artifact and no search path; the consumer brings
		// its own pythonXY library
		return []string{directive.LinkLibStaticNoBundle(importAlias)}, nil
	}

	// extension modules still link against the import library here
	lines := []string{directive.LinkLibNamed(importAlias, decoratedName(id))}
	if id.LibDir != "" {
		lines = append(lines, directive.LinkSearch(id.LibDir))
	} else {
		// sysconfig has no LIBDIR on windows; guess the conventional
		// location under the exec prefix
		lines = append(lines, directive.LinkSearch(id.ExecPrefix+`\libs`))
	}
	return lines, nil
}

// decoratedName renders the import library name, e.g. python39.
func decoratedName(id *sysconfig.Identity) string {
	if id.Version.Minor == nil {
		return fmt.Sprintf("python%d", id.Version.Major)
	}
	return fmt.Sprintf("python%d%d", id.Version.Major, *id.Version.Minor)
}
