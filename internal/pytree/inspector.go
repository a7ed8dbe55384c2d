package pytree

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gorewood/symref/internal/output"
)

//go:embed inspector.py
var inspectorScript string

// Inspector exit codes, matched against inspector.py.
const (
	exitNotFound      = 3
	exitModuleFailure = 4
)

// NotFoundError reports that the target package could not be imported by
// the Python interpreter.
type NotFoundError struct {
	Package string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("package not found: %s (is it installed?)", e.Package)
}

// Inspector runs the embedded inspector script against a Python
// interpreter. It carries no process-global state; independent inspectors
// can run concurrently.
type Inspector struct {
	// Python is the interpreter executable to invoke.
	Python string
}

// DefaultPython resolves the interpreter to use when none is configured:
// $SYMREF_PYTHON if set, otherwise python3.
func DefaultPython() string {
	if py := os.Getenv("SYMREF_PYTHON"); py != "" {
		return py
	}
	return "python3"
}

// New creates an Inspector for the given interpreter. An empty interpreter
// falls back to DefaultPython.
func New(python string) *Inspector {
	if python == "" {
		python = DefaultPython()
	}
	return &Inspector{Python: python}
}

// Inspect resolves packageName into its module tree.
//
// Failures map to the error taxonomy: a missing interpreter or a module
// processing failure is a system error; an unimportable package is a
// NotFoundError wrapped as a user error.
func (ins *Inspector) Inspect(ctx context.Context, packageName string) (*Tree, error) {
	if packageName == "" {
		return nil, output.NewUserError("package name is required")
	}

	cmd := exec.CommandContext(ctx, ins.Python, "-c", inspectorScript, packageName)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, ins.runError(err, packageName, &stderr)
	}

	tree, err := DecodeTree(stdout.Bytes())
	if err != nil {
		return nil, output.NewSystemErrorWithCause(
			fmt.Sprintf("inspecting package %s: %v", packageName, err), err)
	}
	return tree, nil
}

// runError converts an exec failure into a typed error using the
// inspector's exit-code protocol.
func (ins *Inspector) runError(err error, packageName string, stderr *bytes.Buffer) error {
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return output.NewSystemError(fmt.Sprintf(
			"python interpreter %q not found: ensure it is installed and in PATH", ins.Python))
	}

	msg := strings.TrimSpace(stderr.String())
	if msg == "" {
		msg = err.Error()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		switch exitErr.ExitCode() {
		case exitNotFound:
			notFound := &NotFoundError{Package: packageName}
			return &output.ExitError{
				Code:    output.ExitUserError,
				Message: notFound.Error(),
				Cause:   notFound,
			}
		case exitModuleFailure:
			return output.NewSystemErrorWithCause(msg, err)
		}
	}
	return output.NewSystemErrorWithCause("inspector failed: "+msg, err)
}
