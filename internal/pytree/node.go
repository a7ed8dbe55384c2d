// Package pytree resolves a Python package into a traversable module tree.
// It shells out to an embedded inspector script that walks the package's
// submodules and dumps their top-level bindings as JSON.
package pytree

import (
	"encoding/json"
	"fmt"
)

// Kind classifies a top-level binding. It is resolved once at decode time;
// anything the inspector does not recognize as a function or class arrives
// as KindOther and is ignored downstream.
type Kind string

const (
	KindFunction Kind = "function"
	KindClass    Kind = "class"
	KindOther    Kind = "other"
)

// FuncNode is a function-like binding: a def at module or class scope.
type FuncNode struct {
	// Params holds ordinary positional parameter names in declared order.
	Params []string `json:"params"`
	// VarArg is the *args-style parameter name, empty if absent.
	VarArg string `json:"vararg"`
	// KwArg is the **kwargs-style parameter name, empty if absent.
	KwArg string `json:"kwarg"`
	// Decorators holds decorator expression texts without the leading @.
	Decorators []string `json:"decorators"`
	Doc        string   `json:"doc"`
}

// NamedFunc pairs a class member name with its function node. Func is nil
// for members that are not function-like (nested classes, assignments).
type NamedFunc struct {
	Name string    `json:"name"`
	Func *FuncNode `json:"func"`
}

// ClassNode is a class-like binding with its members in declaration order.
type ClassNode struct {
	Decorators []string    `json:"decorators"`
	Doc        string      `json:"doc"`
	Methods    []NamedFunc `json:"methods"`
}

// Binding is one top-level name in a module. Exactly one of Func or Class
// is set when Kind is KindFunction or KindClass; both are nil for KindOther.
type Binding struct {
	Name  string     `json:"name"`
	Kind  Kind       `json:"kind"`
	Func  *FuncNode  `json:"func,omitempty"`
	Class *ClassNode `json:"class,omitempty"`
}

// Module is one importable module: its docstring and top-level bindings in
// declaration order.
type Module struct {
	Name     string    `json:"name"`
	Doc      string    `json:"doc"`
	Bindings []Binding `json:"bindings"`
}

// Tree is the full module tree of one package, in traversal order.
type Tree struct {
	Package string    `json:"package"`
	Modules []*Module `json:"modules"`
}

// DecodeTree parses inspector JSON output into a Tree and normalizes
// binding kinds into the closed Kind set.
func DecodeTree(data []byte) (*Tree, error) {
	var tree Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decoding inspector output: %w", err)
	}
	if tree.Package == "" {
		return nil, fmt.Errorf("decoding inspector output: missing package name")
	}
	for _, mod := range tree.Modules {
		for i := range mod.Bindings {
			normalizeBinding(&mod.Bindings[i])
		}
	}
	return &tree, nil
}

// normalizeBinding folds unknown kinds and kind/node mismatches into
// KindOther so downstream code only ever sees the three-case variant.
func normalizeBinding(b *Binding) {
	switch b.Kind {
	case KindFunction:
		if b.Func == nil {
			b.Kind = KindOther
		}
		b.Class = nil
	case KindClass:
		if b.Class == nil {
			b.Kind = KindOther
		}
		b.Func = nil
	default:
		b.Kind = KindOther
		b.Func = nil
		b.Class = nil
	}
}
