// pkg/resolve/resolver.go
package resolve

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/arc-language/pyconfig/pkg/cfgflags"
	"github.com/arc-language/pyconfig/pkg/directive"
	"github.com/arc-language/pyconfig/pkg/interp"
	"github.com/arc-language/pyconfig/pkg/linkplan"
	"github.com/arc-language/pyconfig/pkg/platform"
	"github.com/arc-language/pyconfig/pkg/pyver"
	"github.com/arc-language/pyconfig/pkg/script"
	"github.com/arc-language/pyconfig/pkg/sysconfig"
)

// featureBaseline is the lowest minor version a Py_3_<minor> feature gate
// is emitted for.
const featureBaseline = 4

// Request is the full resolution request, assembled by the caller from
// flags, environment toggles, and the config file.
type Request struct {
	Version     pyver.Spec
	Interpreter string // explicit interpreter path; disables the search

	LinkModeDefault          bool
	LinkModeUnresolvedStatic bool
	ExtensionModule          bool
	LimitedAPI               bool
}

// Output is a complete resolution result. Directives are buffered here
// and only written once the whole pipeline has succeeded, so a failed
// run emits nothing at all.
type Output struct {
	Directives  []string
	Flags       string // serialized propagation string
	Interpreter string // resolved executable path
}

// Emit writes the directive lines and the two published values to w.
func (o *Output) Emit(w io.Writer) error {
	for _, d := range o.Directives {
		if _, err := fmt.Fprintln(w, d); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, directive.Flags(o.Flags)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, directive.Interpreter(o.Interpreter))
	return err
}

// Config configures a Resolver.
type Config struct {
	Runner   script.Runner
	Platform *platform.Platform
	Logger   *log.Logger
	Debug    bool
}

// Resolver composes location, extraction, link planning, and flag
// derivation into one run-to-completion pipeline. The whole resolution
// is strictly sequential; the only blocking operations are the
// interpreter probes.
type Resolver struct {
	runner   script.Runner
	platform *platform.Platform
	locator  *interp.Locator
	logger   *log.Logger
}

// New creates a Resolver, filling in defaults for any unset component.
func New(cfg *Config) *Resolver {
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
			logger = log.New(os.Stderr, "[PYCONFIG] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &Resolver{
		runner:   runner,
		platform: plat,
		locator: interp.NewLocator(&interp.Config{
			Runner:   runner,
			Platform: plat,
			Logger:   logger,
		}),
		logger: logger,
	}
}

// Resolve runs the end-to-end pipeline: validate the request, locate a
// matching interpreter, extract its build configuration, plan the link
// directives, derive the conditional-compilation flags, and assemble the
// buffered output. Any error aborts the run with nothing emitted.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Output, error) {
	// configuration conflicts surface before any subprocess is spawned
	mode, err := linkplan.ModeFromToggles(req.LinkModeDefault, req.LinkModeUnresolvedStatic)
	if err != nil {
		return nil, err
	}
	if req.Version.Major == 0 {
		return nil, fmt.Errorf("no python version requested: set --python, a PYCONFIG_PYTHON_* toggle, or the config file")
	}

	id, err := r.locator.Locate(ctx, req.Version, req.Interpreter)
	if err != nil {
		return nil, err
	}
	r.logger.Printf("using %s (%s)", id.Executable, id.Version)

	extractor := sysconfig.ExtractorFor(r.platform, r.runner)
	vars, err := extractor.ConfigVars(ctx, id.Executable)
	if err != nil {
		return nil, err
	}
	cfgflags.Apply(vars)

	planner := linkplan.ForPlatform(r.platform, r.runner)
	linkLines, err := planner.Plan(ctx, id, linkplan.Request{
		Mode:            mode,
		ExtensionModule: req.ExtensionModule,
	})
	if err != nil {
		return nil, err
	}

	out := &Output{
		Flags:       cfgflags.Propagation(vars),
		Interpreter: id.Executable,
	}
	out.Directives = append(out.Directives, linkLines...)
	out.Directives = append(out.Directives, cfgflags.CfgLines(vars)...)
	out.Directives = append(out.Directives, featureGates(id.Version, req.LimitedAPI)...)
	return out, nil
}

// featureGates emits the version-gated flags for a python 3 runtime: one
// Py_3_<i> flag per minor from the baseline up to and including the
// discovered minor, so dependents can gate on "at least this feature
// level". The limited-API flag is independent of the discovered minor
// and emitted only on explicit request.
func featureGates(v pyver.Spec, limitedAPI bool) []string {
	if v.Major != 3 {
		return nil
	}
	var lines []string
	if limitedAPI {
		lines = append(lines, directive.Cfg("Py_LIMITED_API"))
	}
	if v.Minor != nil {
		for i := featureBaseline; i <= *v.Minor; i++ {
			lines = append(lines, directive.Cfg(fmt.Sprintf("Py_3_%d", i)))
		}
	}
	return lines
}
