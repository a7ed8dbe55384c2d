package symbol

import (
	"strings"

	"github.com/gorewood/symref/internal/pytree"
)

// NormalizeParams renders a function node's parameter list as canonical
// text: bare positional names in declared order, then *name for a variadic
// positional parameter, then **name for a variadic keyword parameter.
// Default values and positional/keyword-only markers are not reconstructed.
func NormalizeParams(fn *pytree.FuncNode) string {
	parts := make([]string, 0, len(fn.Params)+2)
	parts = append(parts, fn.Params...)
	if fn.VarArg != "" {
		parts = append(parts, "*"+fn.VarArg)
	}
	if fn.KwArg != "" {
		parts = append(parts, "**"+fn.KwArg)
	}
	return strings.Join(parts, ", ")
}
