// pkg/sysconfig/extract.go
package sysconfig

import (
	"context"
	"fmt"
	"strings"

	"github.com/arc-language/pyconfig/pkg/platform"
	"github.com/arc-language/pyconfig/pkg/script"
)

// noneSentinel is what python prints for an absent config var.
const noneSentinel = "None"

// Extractor obtains the interpreter's build-time flag map. One
// implementation exists per platform family; selection happens at
// runtime through ExtractorFor.
type Extractor interface {
	ConfigVars(ctx context.Context, interpreter string) (map[string]string, error)
}

// ExtractorFor returns the flag-map extraction strategy for the given
// platform. Windows lacks a queryable sysconfig registry, so it gets the
// static fallback table; everything else interrogates the interpreter.
func ExtractorFor(p *platform.Platform, runner script.Runner) Extractor {
	if p.OS == "windows" {
		return &StaticExtractor{}
	}
	return &QueryExtractor{Runner: runner, Newline: p.Newline()}
}

// QueryExtractor asks the interpreter itself for its build-config vars
// through sysconfig.get_config_vars.
type QueryExtractor struct {
	Runner  script.Runner
	Newline string
}

// varsScript builds the script printing every registered var in registry
// order. Flags default to 0 when absent, values to None so they can be
// dropped rather than stored as a fake zero.
func varsScript() string {
	var b strings.Builder
	b.WriteString("import sysconfig; config = sysconfig.get_config_vars();")
	for _, v := range Registry {
		dflt := "0"
		if v.Kind == KindValue {
			dflt = noneSentinel
		}
		fmt.Fprintf(&b, "print(config.get('%s', %s));", v.Name, dflt)
	}
	return b.String()
}

// ConfigVars runs the var query against the interpreter and zips the
// printed lines with the registry. A line count mismatch is fatal.
func (q *QueryExtractor) ConfigVars(ctx context.Context, interpreter string) (map[string]string, error) {
	out, err := q.Runner.Run(ctx, interpreter, varsScript())
	if err != nil {
		return nil, fmt.Errorf("querying build config: %w", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\r\n"), q.Newline)
	if len(lines) != len(Registry) {
		return nil, fmt.Errorf("%w: build config query printed %d lines, want %d",
			ErrExtractionShape, len(lines), len(Registry))
	}

	vars := make(map[string]string, len(Registry))
	for i, v := range Registry {
		if v.Kind == KindValue && lines[i] == noneSentinel {
			// absent value vars are dropped entirely, not stored as zero
			continue
		}
		vars[v.Name] = lines[i]
	}
	return vars, nil
}

// StaticExtractor is the windows fallback: sysconfig is missing the build
// flags there, so we return the defaults from the python source's
// PC\pyconfig.h. Best effort only; a custom-built python with a modified
// pyconfig.h will not be reflected.
type StaticExtractor struct{}

// ConfigVars returns the historically correct default flag values.
func (StaticExtractor) ConfigVars(ctx context.Context, interpreter string) (map[string]string, error) {
	return map[string]string{
		"Py_USING_UNICODE": "1",
		"Py_UNICODE_WIDE":  "0",
		"WITH_THREAD":      "1",
		"Py_UNICODE_SIZE":  "2",
	}, nil
}
