// Package main provides the entry point for the symref CLI.
package main

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/gorewood/symref/internal/config"
	"github.com/gorewood/symref/internal/output"
	"github.com/gorewood/symref/internal/pytree"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results.
type doctorResult struct {
	Version string        `json:"version"`
	Checks  []checkResult `json:"checks"`
	Summary doctorSummary `json:"summary"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd() *cobra.Command {
	var pythonFlag string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check installation health and suggest fixes",
		Long: `Check symref installation health and suggest fixes.

Runs health checks against the Python toolchain:
  interpreter - the configured interpreter is on PATH
  inspector   - the embedded inspector can walk a stdlib package
  config      - the config file (if present) parses

Each check reports pass, warn, or fail.

Examples:
  symref doctor              # Run all health checks
  symref doctor --json       # Output results as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, pythonFlag)
		},
	}

	cmd.Flags().StringVar(&pythonFlag, "python", "", "Python interpreter to check (default from config or python3)")

	return cmd
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, pythonFlag string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	settings, configCheck := checkConfig()
	python := resolvePython(pythonFlag, settings)

	result := doctorResult{Version: buildVersion()}
	result.Checks = append(result.Checks, checkInterpreter(python))
	result.Checks = append(result.Checks, checkInspector(cmd, python))
	result.Checks = append(result.Checks, configCheck)

	for _, check := range result.Checks {
		switch check.Status {
		case checkPass:
			result.Summary.Passed++
		case checkWarn:
			result.Summary.Warnings++
		case checkFail:
			result.Summary.Failed++
		}
	}

	if printer.IsJSON() {
		if err := printer.WriteJSON(result); err != nil {
			return err
		}
	} else {
		printChecks(printer, result)
	}

	if result.Summary.Failed > 0 {
		return output.NewSystemError(fmt.Sprintf("%d check(s) failed", result.Summary.Failed))
	}
	return nil
}

// checkInterpreter verifies the interpreter is on PATH.
func checkInterpreter(python string) checkResult {
	path, err := exec.LookPath(python)
	if err != nil {
		return checkResult{
			Name:    "interpreter",
			Status:  checkFail,
			Message: fmt.Sprintf("%s not found in PATH", python),
			Hint:    "install Python 3 or set python in config.yaml / SYMREF_PYTHON",
		}
	}
	return checkResult{
		Name:    "interpreter",
		Status:  checkPass,
		Message: path,
	}
}

// checkInspector runs the embedded inspector against a stdlib package.
func checkInspector(cmd *cobra.Command, python string) checkResult {
	inspector := pytree.New(python)
	tree, err := inspector.Inspect(cmd.Context(), "json")
	if err != nil {
		return checkResult{
			Name:    "inspector",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "the interpreter must be Python 3.9+ with a working stdlib",
		}
	}
	return checkResult{
		Name:    "inspector",
		Status:  checkPass,
		Message: fmt.Sprintf("walked stdlib package json (%d modules)", len(tree.Modules)),
	}
}

// checkConfig loads settings and reports whether the config file parses.
func checkConfig() (config.Settings, checkResult) {
	settings, err := config.Load()
	if err != nil {
		return config.Settings{}, checkResult{
			Name:    "config",
			Status:  checkWarn,
			Message: err.Error(),
			Hint:    "fix or remove config.yaml in " + config.Dir(),
		}
	}
	return settings, checkResult{
		Name:    "config",
		Status:  checkPass,
		Message: "config ok",
	}
}

// printChecks renders check results for human output.
func printChecks(printer *output.Printer, result doctorResult) {
	for _, check := range result.Checks {
		printer.KeyValue(fmt.Sprintf("[%s] %s", check.Status, check.Name), check.Message)
		if check.Hint != "" {
			printer.Println("       hint: " + check.Hint)
		}
	}
	printer.Println()
	printer.Print("%d passed, %d warnings, %d failed\n",
		result.Summary.Passed, result.Summary.Warnings, result.Summary.Failed)
}
