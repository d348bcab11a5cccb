// pkg/resolve/env.go
package resolve

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/arc-language/pyconfig/pkg/pyver"
)

// Environment toggle names. A toggle counts as enabled when the variable
// is set, whatever its value, matching feature-flag conventions.
const (
	EnvInterpreter              = "PYCONFIG_INTERPRETER"
	EnvLinkModeDefault          = "PYCONFIG_LINK_MODE_DEFAULT"
	EnvLinkModeUnresolvedStatic = "PYCONFIG_LINK_MODE_UNRESOLVED_STATIC"
	EnvExtensionModule          = "PYCONFIG_EXTENSION_MODULE"
	EnvLimitedAPI               = "PYCONFIG_LIMITED_API"
)

// versionToggleRe matches version feature toggles: PYCONFIG_PYTHON_3 or
// PYCONFIG_PYTHON_3_9.
var versionToggleRe = regexp.MustCompile(`^PYCONFIG_PYTHON_(\d+)(?:_(\d+))?$`)

// ApplyEnviron overlays environment toggles onto the request. Only
// fields the environment actually sets are touched, so caller-supplied
// values survive where the environment is silent.
func ApplyEnviron(req *Request, environ []string) error {
	spec, ok, err := versionFromEnviron(environ)
	if err != nil {
		return err
	}
	if ok {
		req.Version = spec
	}

	for _, kv := range environ {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			continue
		}
		switch key {
		case EnvInterpreter:
			if value != "" {
				req.Interpreter = value
			}
		case EnvLinkModeDefault:
			req.LinkModeDefault = true
		case EnvLinkModeUnresolvedStatic:
			req.LinkModeUnresolvedStatic = true
		case EnvExtensionModule:
			req.ExtensionModule = true
		case EnvLimitedAPI:
			req.LimitedAPI = true
		}
	}
	return nil
}

// versionFromEnviron scans for version feature toggles and picks the
// requested version by specificity: an explicit major.minor toggle
// outranks a bare major one. Two distinct versions at the same
// specificity are a hard configuration error rather than an arbitrary
// tie-break.
func versionFromEnviron(environ []string) (pyver.Spec, bool, error) {
	var majorOnly, exact []pyver.Spec
	for _, kv := range environ {
		key, _, _ := strings.Cut(kv, "=")
		m := versionToggleRe.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		major, err := strconv.Atoi(m[1])
		if err != nil {
			return pyver.Spec{}, false, fmt.Errorf("parsing %s: %w", key, err)
		}
		if m[2] == "" {
			majorOnly = append(majorOnly, pyver.AnyMinor(major))
			continue
		}
		minor, err := strconv.Atoi(m[2])
		if err != nil {
			return pyver.Spec{}, false, fmt.Errorf("parsing %s: %w", key, err)
		}
		exact = append(exact, pyver.Exact(major, minor))
	}

	if spec, ok, err := pickOne(exact); err != nil || ok {
		return spec, ok, err
	}
	return pickOne(majorOnly)
}

// pickOne returns the single spec of a specificity tier, or an error
// when the tier holds conflicting requests.
func pickOne(specs []pyver.Spec) (pyver.Spec, bool, error) {
	if len(specs) == 0 {
		return pyver.Spec{}, false, nil
	}
	first := specs[0]
	for _, s := range specs[1:] {
		if s.String() != first.String() {
			return pyver.Spec{}, false, fmt.Errorf(
				"conflicting python version toggles: %s and %s", first, s)
		}
	}
	return first, true, nil
}
