// pkg/linkplan/posix.go
package linkplan

import (
	"context"

	"github.com/arc-language/pyconfig/pkg/directive"
	"github.com/arc-language/pyconfig/pkg/sysconfig"
)

// PosixPlanner is the default strategy: link dynamically when the
// interpreter was built with a shared libpython, statically otherwise,
// naming the library by the link-version suffix.
type PosixPlanner struct{}

// Plan implements Planner.
func (PosixPlanner) Plan(ctx context.Context, id *sysconfig.Identity, req Request) ([]string, error) {
	if req.Mode == ModeUnresolvedStatic {
		// nothing to emit; the consumer resolves the symbols later
		return nil, nil
	}
	if req.ExtensionModule {
		// the hosting runtime already carries the symbols
		return nil, nil
	}

	lib := "python" + id.LDVersion
	var lines []string
	if id.EnableShared {
		lines = append(lines, directive.LinkLib(lib))
	} else {
		lines = append(lines, directive.LinkLibStatic(lib))
	}
	return append(lines, searchDirective(id)...), nil
}
