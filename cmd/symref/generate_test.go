package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/gorewood/symref/internal/config"
)

func TestGenerateCommand_RequiresPackageArg(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"generate"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() error = nil, want missing-argument error")
	}
}

func TestResolvePython(t *testing.T) {
	t.Setenv("SYMREF_PYTHON", "")

	tests := []struct {
		name     string
		flag     string
		settings config.Settings
		want     string
	}{
		{"flag wins", "/flag/python", config.Settings{Python: "/cfg/python"}, "/flag/python"},
		{"config next", "", config.Settings{Python: "/cfg/python"}, "/cfg/python"},
		{"default last", "", config.Settings{}, "python3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolvePython(tt.flag, tt.settings); got != tt.want {
				t.Errorf("resolvePython() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDestinationPath(t *testing.T) {
	tests := []struct {
		name     string
		pkg      string
		flag     string
		settings config.Settings
		want     string
	}{
		{"explicit flag", "requests", "out.md", config.Settings{}, "out.md"},
		{"stdout marker", "requests", "-", config.Settings{OutputDir: "./docs"}, "-"},
		{"default name", "requests", "", config.Settings{}, "requests.md"},
		{"config output dir", "requests", "", config.Settings{OutputDir: "./docs"}, filepath.Join("./docs", "requests.md")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := destinationPath(tt.pkg, tt.flag, tt.settings); got != tt.want {
				t.Errorf("destinationPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerate_MissingInterpreterFails(t *testing.T) {
	t.Setenv("SYMREF_CONFIG_HOME", t.TempDir())
	t.Setenv("SYMREF_PYTHON", "")

	cmd := newRootCmd()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"generate", "whatever", "--python", "symref-no-such-interpreter", "-o", "-"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() error = nil, want interpreter failure")
	}
}
