package symbol

import (
	"strings"
	"testing"

	"github.com/gorewood/symref/internal/pytree"
)

// mixedModule has one public documented function, one private function,
// and one public class with one public and one private method.
func mixedModule() *pytree.Module {
	return &pytree.Module{
		Name: "pkg.mixed",
		Bindings: []pytree.Binding{
			{
				Name: "fetch",
				Kind: pytree.KindFunction,
				Func: &pytree.FuncNode{Params: []string{"url"}, Doc: "Fetch a URL."},
			},
			{
				Name: "_internal",
				Kind: pytree.KindFunction,
				Func: &pytree.FuncNode{Doc: "Hidden."},
			},
			{
				Name: "Client",
				Kind: pytree.KindClass,
				Class: &pytree.ClassNode{
					Doc: "A client.",
					Methods: []pytree.NamedFunc{
						{Name: "get", Func: &pytree.FuncNode{Params: []string{"self", "url"}, Doc: "Get."}},
						{Name: "_connect", Func: &pytree.FuncNode{Params: []string{"self"}}},
					},
				},
			},
		},
	}
}

func TestCollect_MixedModule(t *testing.T) {
	descriptors, err := Collect(mixedModule(), false)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(descriptors) != 2 {
		t.Fatalf("len(descriptors) = %d, want 2", len(descriptors))
	}
	if descriptors[0].Name != "fetch" || descriptors[0].Kind != KindFunction {
		t.Errorf("descriptors[0] = %+v, want function fetch", descriptors[0])
	}
	if descriptors[1].Name != "Client" || descriptors[1].Kind != KindClass {
		t.Errorf("descriptors[1] = %+v, want class Client", descriptors[1])
	}
	if len(descriptors[1].Methods) != 1 {
		t.Errorf("len(Client.Methods) = %d, want 1", len(descriptors[1].Methods))
	}
}

func TestCollect_IgnoresOtherBindings(t *testing.T) {
	mod := &pytree.Module{
		Name: "pkg.vars",
		Bindings: []pytree.Binding{
			{Name: "VERSION", Kind: pytree.KindOther},
			{Name: "DEFAULT_TIMEOUT", Kind: pytree.KindOther},
		},
	}

	descriptors, err := Collect(mod, true)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(descriptors) != 0 {
		t.Errorf("len(descriptors) = %d, want 0 for variable-only module", len(descriptors))
	}
}

func TestCollect_PreservesDeclarationOrder(t *testing.T) {
	mod := &pytree.Module{
		Name: "pkg.ordered",
		Bindings: []pytree.Binding{
			{Name: "zeta", Kind: pytree.KindFunction, Func: &pytree.FuncNode{Doc: "z"}},
			{Name: "Alpha", Kind: pytree.KindClass, Class: &pytree.ClassNode{}},
			{Name: "mid", Kind: pytree.KindFunction, Func: &pytree.FuncNode{Doc: "m"}},
		},
	}

	descriptors, err := Collect(mod, false)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := []string{"zeta", "Alpha", "mid"}
	if len(descriptors) != len(want) {
		t.Fatalf("len(descriptors) = %d, want %d", len(descriptors), len(want))
	}
	for i, name := range want {
		if descriptors[i].Name != name {
			t.Errorf("descriptors[%d].Name = %q, want %q", i, descriptors[i].Name, name)
		}
	}
}

func TestCollect_WrapsSymbolError(t *testing.T) {
	mod := &pytree.Module{
		Name: "pkg.broken",
		Bindings: []pytree.Binding{
			// Malformed: function kind with no node data. DecodeTree
			// normalizes this away, but Collect must still fail loudly if
			// it ever sees one.
			{Name: "ghost", Kind: pytree.KindFunction},
		},
	}

	_, err := Collect(mod, true)
	if err == nil {
		t.Fatal("Collect() error = nil, want wrapped symbol error")
	}
	if !strings.Contains(err.Error(), "processing symbol ghost") {
		t.Errorf("error = %q, want symbol name in message", err)
	}
}
