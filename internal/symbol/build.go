package symbol

import (
	"errors"
	"fmt"

	"github.com/gorewood/symref/internal/pytree"
)

var errNilNode = errors.New("binding has no node data")

// BuildFunction converts a function node into a descriptor. It returns
// nil when the function has no docstring and includeUndocumented is
// false: the symbol is intentionally dropped, which is distinct from an
// error.
func BuildFunction(fn *pytree.FuncNode, name string, includeUndocumented bool) (*Descriptor, error) {
	if fn == nil {
		return nil, errNilNode
	}
	if !includeUndocumented && fn.Doc == "" {
		return nil, nil
	}
	return &Descriptor{
		Kind:       KindFunction,
		Name:       name,
		Signature:  fmt.Sprintf("%s(%s)", name, NormalizeParams(fn)),
		Doc:        fn.Doc,
		Decorators: fn.Decorators,
	}, nil
}

// BuildClass converts a class node into a descriptor. Classes are always
// kept regardless of the docstring-inclusion policy; the asymmetry with
// functions is deliberate. The method list keeps only members that are
// function-like and pass the visibility filter, and an empty method list
// is valid.
func BuildClass(cls *pytree.ClassNode, name string) (*Descriptor, error) {
	if cls == nil {
		return nil, errNilNode
	}
	var methods []Method
	for _, m := range cls.Methods {
		if m.Func == nil || !IsPublic(m.Name) {
			continue
		}
		methods = append(methods, Method{
			Name:       m.Name,
			Signature:  fmt.Sprintf("%s(%s)", m.Name, NormalizeParams(m.Func)),
			Doc:        m.Func.Doc,
			Decorators: m.Func.Decorators,
		})
	}
	return &Descriptor{
		Kind:       KindClass,
		Name:       name,
		Doc:        cls.Doc,
		Decorators: cls.Decorators,
		Methods:    methods,
	}, nil
}
