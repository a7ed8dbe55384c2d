// Package main provides the entry point for the symref CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/symref/internal/config"
	"github.com/gorewood/symref/internal/output"
	"github.com/gorewood/symref/internal/pytree"
	"github.com/gorewood/symref/internal/symbol"
)

// moduleListing is the JSON shape of one listed module.
type moduleListing struct {
	Name    string `json:"name"`
	Symbols int    `json:"symbols"`
}

// newModulesCmd creates the modules command.
func newModulesCmd() *cobra.Command {
	var pythonFlag string

	cmd := &cobra.Command{
		Use:   "modules <package>",
		Short: "List a package's module tree with public symbol counts",
		Long: `List the module tree of an installed Python package.

Shows each module in traversal order with its public symbol count, the
same order the generated document uses.

Examples:
  symref modules requests          # Table of modules and symbol counts
  symref modules requests --json   # Structured listing`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModules(cmd, args[0], pythonFlag)
		},
	}

	cmd.Flags().StringVar(&pythonFlag, "python", "", "Python interpreter to use (default from config or python3)")

	return cmd
}

// runModules executes the modules command.
func runModules(cmd *cobra.Command, packageName, pythonFlag string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	settings, err := config.Load()
	if err != nil {
		sysErr := output.NewSystemErrorWithCause(err.Error(), err)
		printer.Error(sysErr)
		return sysErr
	}

	inspector := pytree.New(resolvePython(pythonFlag, settings))
	tree, err := inspector.Inspect(cmd.Context(), packageName)
	if err != nil {
		printer.Error(err)
		return err
	}

	listings, err := listModules(tree)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"package": tree.Package,
			"count":   len(listings),
			"modules": listings,
		})
	}

	rows := make([][]string, 0, len(listings))
	for _, listing := range listings {
		rows = append(rows, []string{listing.Name, strconv.Itoa(listing.Symbols)})
	}
	printer.Table([]string{"MODULE", "SYMBOLS"}, rows)
	return nil
}

// listModules counts public symbols per module in traversal order.
// Undocumented functions count as symbols here: the listing reflects
// visibility, not the docstring-inclusion policy.
func listModules(tree *pytree.Tree) ([]moduleListing, error) {
	listings := make([]moduleListing, 0, len(tree.Modules))
	for _, mod := range tree.Modules {
		descriptors, err := symbol.Collect(mod, true)
		if err != nil {
			return nil, err
		}
		listings = append(listings, moduleListing{Name: mod.Name, Symbols: len(descriptors)})
	}
	return listings, nil
}
