// pkg/sysconfig/identity.go
package sysconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arc-language/pyconfig/pkg/pyver"
)

// ErrExtractionShape indicates an extraction script printed an unexpected
// number of lines. This means the interpreter drifted from the assumed
// protocol and is always fatal.
var ErrExtractionShape = errors.New("unexpected extraction output shape")

// identityLines is the number of lines IdentityScript prints.
const identityLines = 6

// IdentityScript prints the six identity facts of an interpreter, one per
// line, in the order ParseIdentity expects. LDVERSION is synthesized from
// the short version and debug suffix on runtimes where the native config
// var is absent.
const IdentityScript = "import sys; import sysconfig; " +
	"print(sys.executable); " +
	"print(sys.version_info[0:2]); " +
	"print(sysconfig.get_config_var('LIBDIR')); " +
	"print(sysconfig.get_config_var('Py_ENABLE_SHARED')); " +
	"print(sysconfig.get_config_var('LDVERSION') or '%s%s' % (sysconfig.get_config_var('py_version_short'), sysconfig.get_config_var('DEBUG_EXT') or '')); " +
	"print(sys.exec_prefix);"

// Identity holds the facts reported by a resolved interpreter. It is
// produced once per resolution run and immutable thereafter.
type Identity struct {
	Executable   string     // absolute path the interpreter reports for itself
	Version      pyver.Spec // fully concrete
	LibDir       string     // platform library directory; empty when unknown
	EnableShared bool       // Py_ENABLE_SHARED
	LDVersion    string     // link-version suffix, e.g. "3.9" or "3.9d"
	ExecPrefix   string
}

// ParseIdentity parses the output of IdentityScript, split on the
// platform line terminator. Any line count other than six is a hard
// extraction error.
func ParseIdentity(out, newline string) (*Identity, error) {
	lines := strings.Split(strings.TrimRight(out, "\r\n"), newline)
	if len(lines) != identityLines {
		return nil, fmt.Errorf("%w: identity query printed %d lines, want %d",
			ErrExtractionShape, len(lines), identityLines)
	}

	version, err := pyver.ParseReport(lines[1])
	if err != nil {
		return nil, fmt.Errorf("parsing interpreter version: %w", err)
	}

	libDir := lines[2]
	if libDir == noneSentinel {
		// sysconfig reports None when the library directory is unknown
		// (typical on windows builds)
		libDir = ""
	}

	return &Identity{
		Executable:   lines[0],
		Version:      version,
		LibDir:       libDir,
		EnableShared: lines[3] == "1",
		LDVersion:    lines[4],
		ExecPrefix:   lines[5],
	}, nil
}
