package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/symref/internal/render"
	"github.com/gorewood/symref/internal/symbol"
)

// ReferenceInput is the input for the reference tool.
type ReferenceInput struct {
	Package             string `json:"package"                        jsonschema:"name of the installed Python package to document"`
	IncludeUndocumented bool   `json:"include_undocumented,omitempty" jsonschema:"include top-level functions that have no docstring"`
}

// ReferenceOutput is the output for the reference tool.
type ReferenceOutput struct {
	Markdown string `json:"markdown" jsonschema:"the generated markdown document"`
	Modules  int    `json:"modules"  jsonschema:"number of modules traversed"`
}

func handleReference(inspector Inspector) mcp.ToolHandlerFor[ReferenceInput, ReferenceOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ReferenceInput) (*mcp.CallToolResult, ReferenceOutput, error) {
		tree, err := inspector.Inspect(ctx, input.Package)
		if err != nil {
			return nil, ReferenceOutput{}, err
		}

		doc, err := render.Assemble(tree, render.Options{IncludeUndocumented: input.IncludeUndocumented}, nil)
		if err != nil {
			return nil, ReferenceOutput{}, err
		}

		return nil, ReferenceOutput{Markdown: doc, Modules: len(tree.Modules)}, nil
	}
}

// ModulesInput is the input for the modules tool.
type ModulesInput struct {
	Package string `json:"package" jsonschema:"name of the installed Python package to list"`
}

// ModuleInfo describes one module in the tree.
type ModuleInfo struct {
	Name    string `json:"name"    jsonschema:"importable module name"`
	Symbols int    `json:"symbols" jsonschema:"number of public symbols"`
}

// ModulesOutput is the output for the modules tool.
type ModulesOutput struct {
	Count   int          `json:"count"   jsonschema:"number of modules in the tree"`
	Modules []ModuleInfo `json:"modules" jsonschema:"modules in traversal order"`
}

func handleModules(inspector Inspector) mcp.ToolHandlerFor[ModulesInput, ModulesOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ModulesInput) (*mcp.CallToolResult, ModulesOutput, error) {
		tree, err := inspector.Inspect(ctx, input.Package)
		if err != nil {
			return nil, ModulesOutput{}, err
		}

		infos := make([]ModuleInfo, 0, len(tree.Modules))
		for _, mod := range tree.Modules {
			descriptors, err := symbol.Collect(mod, true)
			if err != nil {
				return nil, ModulesOutput{}, err
			}
			infos = append(infos, ModuleInfo{Name: mod.Name, Symbols: len(descriptors)})
		}

		return nil, ModulesOutput{Count: len(infos), Modules: infos}, nil
	}
}
