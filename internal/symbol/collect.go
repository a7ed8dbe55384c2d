package symbol

import (
	"fmt"

	"github.com/gorewood/symref/internal/pytree"
)

// Collect gathers descriptors for a module's public top-level bindings in
// declaration order. Function bindings pass through the docstring-inclusion
// policy; class bindings are always kept; other binding kinds produce
// nothing. A failure while processing one binding is wrapped with the
// symbol's name and aborts collection for the whole module.
func Collect(mod *pytree.Module, includeUndocumented bool) ([]Descriptor, error) {
	var descriptors []Descriptor
	for _, binding := range mod.Bindings {
		if !IsPublic(binding.Name) {
			continue
		}
		switch binding.Kind {
		case pytree.KindFunction:
			desc, err := BuildFunction(binding.Func, binding.Name, includeUndocumented)
			if err != nil {
				return nil, wrapSymbolError(binding.Name, err)
			}
			if desc != nil {
				descriptors = append(descriptors, *desc)
			}
		case pytree.KindClass:
			desc, err := BuildClass(binding.Class, binding.Name)
			if err != nil {
				return nil, wrapSymbolError(binding.Name, err)
			}
			descriptors = append(descriptors, *desc)
		}
	}
	return descriptors, nil
}

// wrapSymbolError names the failing symbol, matching the error taxonomy's
// narrowest-scope-first wrapping.
func wrapSymbolError(name string, err error) error {
	return fmt.Errorf("processing symbol %s: %w", name, err)
}
