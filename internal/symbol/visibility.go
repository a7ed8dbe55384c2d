package symbol

import "strings"

// IsPublic reports whether a binding name is public: no leading
// underscore, or a dunder name (double underscore on both ends). Names
// like _helper or __mangled are private; __init__ stays public.
func IsPublic(name string) bool {
	if !strings.HasPrefix(name, "_") {
		return true
	}
	return strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}
