// errors.go
package pyconfig

import (
	"fmt"

	"github.com/arc-language/pyconfig/pkg/interp"
	"github.com/arc-language/pyconfig/pkg/linkplan"
	"github.com/arc-language/pyconfig/pkg/sysconfig"
)

var (
	// ErrNotFound indicates no interpreter of the requested version exists
	ErrNotFound = interp.ErrNotFound

	// ErrVersionMismatch indicates the explicit interpreter has the wrong version
	ErrVersionMismatch = interp.ErrVersionMismatch

	// ErrExtractionShape indicates an extraction script printed an unexpected line count
	ErrExtractionShape = sysconfig.ErrExtractionShape

	// ErrUnknownLinkModel indicates an unrecognized link-model classification
	ErrUnknownLinkModel = linkplan.ErrUnknownLinkModel

	// ErrLinkModeConflict indicates mutually exclusive link modes were requested
	ErrLinkModeConflict = linkplan.ErrLinkModeConflict
)

// Error wraps an error with additional context
type Error struct {
	Op          string // Operation that failed
	Interpreter string // Interpreter path or name if applicable
	Err         error  // Underlying error
}

func (e *Error) Error() string {
	if e.Interpreter != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Interpreter, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
