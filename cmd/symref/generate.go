// Package main provides the entry point for the symref CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gorewood/symref/internal/config"
	"github.com/gorewood/symref/internal/output"
	"github.com/gorewood/symref/internal/pytree"
	"github.com/gorewood/symref/internal/render"
)

// generateFlags holds the command-line flags for the generate command.
type generateFlags struct {
	outputPath          string
	python              string
	includeUndocumented bool
	verbose             bool
}

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate <package>",
		Short: "Generate a markdown symbol reference for a Python package",
		Long: `Generate a markdown symbol reference for an installed Python package.

Walks the package's module tree and documents every public function and
class: signature, decorators, and docstring. Modules without qualifying
symbols are skipped. Top-level functions without a docstring are dropped
unless --include-undocumented is set; classes and methods are always
listed.

Examples:
  symref generate requests                         # Write requests.md
  symref generate requests -o docs/requests.md     # Explicit output path
  symref generate requests -o -                    # Write to stdout
  symref generate requests --include-undocumented  # Keep bare functions
  symref generate requests --verbose               # Per-module progress`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output file (default <package>.md, '-' for stdout)")
	cmd.Flags().StringVar(&flags.python, "python", "", "Python interpreter to use (default from config or python3)")
	cmd.Flags().BoolVar(&flags.includeUndocumented, "include-undocumented", false, "Include top-level functions without docstrings")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Report per-module progress on stderr")

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, packageName string, flags *generateFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	settings, err := config.Load()
	if err != nil {
		sysErr := output.NewSystemErrorWithCause(err.Error(), err)
		printer.Error(sysErr)
		return sysErr
	}

	inspector := pytree.New(resolvePython(flags.python, settings))
	tree, err := inspector.Inspect(cmd.Context(), packageName)
	if err != nil {
		printer.Error(err)
		return err
	}

	doc, err := render.Assemble(tree, render.Options{
		IncludeUndocumented: flags.includeUndocumented || settings.IncludeUndocumented,
	}, diagFor(printer, flags.verbose))
	if err != nil {
		sysErr := output.NewSystemErrorWithCause(err.Error(), err)
		printer.Error(sysErr)
		return sysErr
	}

	return writeDocument(printer, doc, destinationPath(packageName, flags.outputPath, settings), len(tree.Modules))
}

// resolvePython picks the interpreter: flag, then config, then default.
func resolvePython(flagValue string, settings config.Settings) string {
	if flagValue != "" {
		return flagValue
	}
	if settings.Python != "" {
		return settings.Python
	}
	return pytree.DefaultPython()
}

// diagFor returns a render diagnostic bound to the printer, or nil when
// verbose output is off.
func diagFor(printer *output.Printer, verbose bool) render.Diag {
	if !verbose {
		return nil
	}
	return printer.Verbose
}

// destinationPath resolves the output destination. An explicit flag wins;
// otherwise <package>.md, placed under the configured output directory
// when one is set.
func destinationPath(packageName, flagValue string, settings config.Settings) string {
	if flagValue != "" {
		return flagValue
	}
	name := packageName + ".md"
	if settings.OutputDir != "" {
		return filepath.Join(settings.OutputDir, name)
	}
	return name
}

// writeDocument hands the assembled document to its destination: stdout
// for "-", a file otherwise.
func writeDocument(printer *output.Printer, doc, dest string, moduleCount int) error {
	if dest == "-" {
		if printer.IsJSON() {
			return printer.WriteJSON(map[string]any{"markdown": doc, "modules": moduleCount})
		}
		printer.Print("%s", doc)
		return nil
	}

	if err := os.WriteFile(dest, []byte(doc), 0o600); err != nil {
		sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("failed to write %s: %v", dest, err), err)
		printer.Error(sysErr)
		return sysErr
	}

	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Documentation generated in %s", dest),
		"output":  dest,
		"modules": moduleCount,
	})
}
