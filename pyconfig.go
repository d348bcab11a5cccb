// pyconfig.go
package pyconfig

import (
	"context"

	"github.com/arc-language/pyconfig/pkg/pyver"
	"github.com/arc-language/pyconfig/pkg/resolve"
	"github.com/arc-language/pyconfig/pkg/sysconfig"
)

// Re-export core types for convenience
type (
	Request  = resolve.Request
	Output   = resolve.Output
	Spec     = pyver.Spec
	Identity = sysconfig.Identity
)

// Exact returns a fully concrete version spec.
func Exact(major, minor int) Spec {
	return pyver.Exact(major, minor)
}

// AnyMinor returns a spec accepting any minor version of the given major.
func AnyMinor(major int) Spec {
	return pyver.AnyMinor(major)
}

// Resolve runs the full resolution pipeline with default components:
// the host platform, the exec-based script runner, and no debug logging.
// Tools embedding the resolver directly (instead of shelling out to the
// pyconfig binary) go through here.
func Resolve(ctx context.Context, req Request) (*Output, error) {
	out, err := resolve.New(nil).Resolve(ctx, req)
	if err != nil {
		return nil, &Error{Op: "resolve", Interpreter: req.Interpreter, Err: err}
	}
	return out, nil
}
