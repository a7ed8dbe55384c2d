package pytree

import (
	"context"
	"strings"
	"testing"

	"github.com/gorewood/symref/internal/output"
)

func TestDefaultPython(t *testing.T) {
	t.Setenv("SYMREF_PYTHON", "")
	if got := DefaultPython(); got != "python3" {
		t.Errorf("DefaultPython() = %q, want %q", got, "python3")
	}

	t.Setenv("SYMREF_PYTHON", "/opt/python/bin/python3.12")
	if got := DefaultPython(); got != "/opt/python/bin/python3.12" {
		t.Errorf("DefaultPython() = %q, want env override", got)
	}
}

func TestNew_EmptyFallsBack(t *testing.T) {
	t.Setenv("SYMREF_PYTHON", "")
	if ins := New(""); ins.Python != "python3" {
		t.Errorf("New(\"\").Python = %q, want %q", ins.Python, "python3")
	}
	if ins := New("pypy3"); ins.Python != "pypy3" {
		t.Errorf("New(\"pypy3\").Python = %q", ins.Python)
	}
}

func TestInspect_EmptyPackageName(t *testing.T) {
	ins := New("python3")
	_, err := ins.Inspect(context.Background(), "")
	if err == nil {
		t.Fatal("Inspect(\"\") error = nil, want user error")
	}
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
}

func TestInspect_MissingInterpreter(t *testing.T) {
	ins := New("symref-definitely-not-an-interpreter")
	_, err := ins.Inspect(context.Background(), "json")
	if err == nil {
		t.Fatal("Inspect() error = nil, want system error for missing interpreter")
	}
	if output.GetExitCode(err) != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitSystemError)
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %q, want interpreter-not-found message", err)
	}
}

func TestNotFoundError_Message(t *testing.T) {
	err := &NotFoundError{Package: "nosuchpkg"}
	want := "package not found: nosuchpkg (is it installed?)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
