package render

import (
	"fmt"
	"strings"

	"github.com/gorewood/symref/internal/pytree"
	"github.com/gorewood/symref/internal/symbol"
)

// Options controls document assembly.
type Options struct {
	// IncludeUndocumented keeps top-level functions that have no
	// docstring. Classes and methods are listed either way.
	IncludeUndocumented bool
}

// Diag receives progress strings ("processing module X"). It is purely
// observational and never affects the document bytes. A nil Diag is
// silent.
type Diag func(format string, args ...any)

func (d Diag) logf(format string, args ...any) {
	if d != nil {
		d(format, args...)
	}
}

// Assemble produces the final markdown document for a package's module
// tree: a package title, then one rendered section per module that has at
// least one qualifying symbol. Modules with none are skipped entirely. A
// failure in any module aborts the whole run with the module's name
// attached; there is no partial-success document.
func Assemble(tree *pytree.Tree, opts Options, diag Diag) (string, error) {
	var builder strings.Builder

	builder.WriteString("# ")
	builder.WriteString(tree.Package)
	builder.WriteString(" Module Documentation\n\n")

	for _, mod := range tree.Modules {
		diag.logf("processing module %s", mod.Name)

		descriptors, err := symbol.Collect(mod, opts.IncludeUndocumented)
		if err != nil {
			return "", fmt.Errorf("processing module %s: %w", mod.Name, err)
		}
		if len(descriptors) == 0 {
			diag.logf("no public symbols in %s", mod.Name)
			continue
		}
		builder.WriteString(Module(mod.Name, Report{Doc: mod.Doc, Symbols: descriptors}))
	}
	return builder.String(), nil
}
