// pkg/script/runner.go
package script

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"unicode/utf8"
)

// Runner executes a short program with an interpreter binary and returns
// its standard output. All subprocess interaction funnels through here.
type Runner interface {
	Run(ctx context.Context, interpreter, script string) (string, error)
}

// ExecRunner runs scripts by spawning the interpreter with its
// execute-program flag ("-c"). The call blocks until the child exits;
// no timeout is imposed, so a hanging interpreter stalls the resolution.
type ExecRunner struct{}

// Run invokes `interpreter -c script` and captures both streams.
func (ExecRunner) Run(ctx context.Context, interpreter, script string) (string, error) {
	cmd := exec.CommandContext(ctx, interpreter, "-c", script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &RunError{Interpreter: interpreter, Stderr: stderr.String()}
		}
		return "", &SpawnError{Interpreter: interpreter, Err: err}
	}

	if !utf8.ValidString(stdout.String()) {
		return "", &EncodingError{Interpreter: interpreter}
	}

	return stdout.String(), nil
}

// SpawnError indicates the interpreter binary could not be started at all
// (missing from PATH, not executable). During candidate search this is
// recoverable; for an explicit interpreter it is fatal.
type SpawnError struct {
	Interpreter string
	Err         error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to run interpreter %q: %v", e.Interpreter, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// RunError indicates the interpreter started but the script exited with a
// nonzero status. Stderr carries the interpreter's diagnostic.
type RunError struct {
	Interpreter string
	Stderr      string
}

func (e *RunError) Error() string {
	return fmt.Sprintf("script failed on %q with stderr:\n\n%s", e.Interpreter, e.Stderr)
}

// EncodingError indicates the interpreter printed output that is not
// valid UTF-8 text.
type EncodingError struct {
	Interpreter string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("interpreter %q produced non-text output", e.Interpreter)
}
