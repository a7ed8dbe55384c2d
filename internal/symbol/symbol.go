// Package symbol builds renderer-ready descriptors from a module's
// top-level bindings: it filters names by visibility, normalizes function
// signatures, and applies the docstring-inclusion policy.
package symbol

// Kind tags a Descriptor as a function or a class.
type Kind string

const (
	KindFunction Kind = "function"
	KindClass    Kind = "class"
)

// Method is one qualifying class method: name, rendered signature,
// docstring, and decorator texts.
type Method struct {
	Name       string   `json:"name"`
	Signature  string   `json:"signature"`
	Doc        string   `json:"doc"`
	Decorators []string `json:"decorators,omitempty"`
}

// Descriptor is the normalized record for one public symbol. Signature is
// set for functions; Methods is set for classes.
type Descriptor struct {
	Kind       Kind     `json:"kind"`
	Name       string   `json:"name"`
	Signature  string   `json:"signature,omitempty"`
	Doc        string   `json:"doc"`
	Decorators []string `json:"decorators,omitempty"`
	Methods    []Method `json:"methods,omitempty"`
}
