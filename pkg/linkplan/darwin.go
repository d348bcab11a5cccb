// pkg/linkplan/darwin.go
package linkplan

import (
	"context"
	"fmt"
	"strings"

	"github.com/arc-language/pyconfig/pkg/directive"
	"github.com/arc-language/pyconfig/pkg/script"
	"github.com/arc-language/pyconfig/pkg/sysconfig"
)

// linkModelScript classifies how the interpreter's runtime library is
// distributed. A framework build is a shared library in a different
// wrapper, so it links like one.
const linkModelScript = "import sysconfig; " +
	"print('framework' if sysconfig.get_config_var('PYTHONFRAMEWORK') " +
	"else ('shared' if sysconfig.get_config_var('Py_ENABLE_SHARED') else 'static'));"

// DarwinPlanner handles macOS, where python may ship static, shared, or
// as a framework and Py_ENABLE_SHARED is wrong for framework builds. The
// classification is probed from the already resolved interpreter rather
// than rediscovering one, so the answer always describes the interpreter
// the rest of the run is configured against.
type DarwinPlanner struct {
	Runner script.Runner
}

// Plan implements Planner.
func (p *DarwinPlanner) Plan(ctx context.Context, id *sysconfig.Identity, req Request) ([]string, error) {
	if req.Mode == ModeUnresolvedStatic {
		return nil, nil
	}
	if req.ExtensionModule {
		return nil, nil
	}

	model, err := p.linkModel(ctx, id)
	if err != nil {
		return nil, err
	}

	lib := "python" + id.LDVersion
	var lines []string
	switch model {
	case "static":
		lines = append(lines, directive.LinkLibStatic(lib))
	case "shared", "framework":
		lines = append(lines, directive.LinkLib(lib))
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownLinkModel, model)
	}
	return append(lines, searchDirective(id)...), nil
}

// linkModel queries the resolved interpreter for its distribution model.
func (p *DarwinPlanner) linkModel(ctx context.Context, id *sysconfig.Identity) (string, error) {
	out, err := p.Runner.Run(ctx, id.Executable, linkModelScript)
	if err != nil {
		return "", fmt.Errorf("querying link model: %w", err)
	}
	return strings.TrimRight(out, "\r\n"), nil
}
