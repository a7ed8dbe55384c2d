package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckInterpreter_MissingBinary(t *testing.T) {
	result := checkInterpreter("symref-no-such-interpreter")

	if result.Status != checkFail {
		t.Errorf("Status = %q, want %q", result.Status, checkFail)
	}
	if result.Hint == "" {
		t.Error("failed interpreter check should carry a hint")
	}
}

func TestCheckConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SYMREF_CONFIG_HOME", dir)

	_, result := checkConfig()
	if result.Status != checkPass {
		t.Errorf("Status = %q, want %q for missing config", result.Status, checkPass)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("python: [broken"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, result = checkConfig()
	if result.Status != checkWarn {
		t.Errorf("Status = %q, want %q for malformed config", result.Status, checkWarn)
	}
}
