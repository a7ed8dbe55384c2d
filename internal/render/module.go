package render

import (
	"strings"

	"github.com/gorewood/symref/internal/symbol"
)

// Report is one module's renderable content: its docstring plus its
// descriptors in declaration order. Reports are built fresh per module
// visit and discarded after rendering.
type Report struct {
	Doc     string
	Symbols []symbol.Descriptor
}

// Module formats a whole module for document assembly: a "##" heading,
// the blockquoted module docstring, then each symbol in order. Unlike the
// standalone Symbol path, the def/class keyword is always present and
// every docstring block is followed by a blank line.
func Module(moduleName string, report Report) string {
	var builder strings.Builder

	builder.WriteString("## ")
	builder.WriteString(moduleName)
	builder.WriteString("\n\n")

	if report.Doc != "" {
		writeBlockquote(&builder, report.Doc)
	}

	for _, desc := range report.Symbols {
		switch desc.Kind {
		case symbol.KindClass:
			writeClass(&builder, desc)
		default:
			writeFunction(&builder, desc)
		}
	}
	return builder.String()
}

// writeBlockquote renders the module docstring with each stripped line
// prefixed by "> ", followed by a blank line.
func writeBlockquote(builder *strings.Builder, doc string) {
	lines := strings.Split(strings.TrimSpace(doc), "\n")
	builder.WriteString("> ")
	builder.WriteString(strings.Join(lines, "\n> "))
	builder.WriteString("\n\n")
}

// writeFunction renders a top-level function bullet and its docstring.
func writeFunction(builder *strings.Builder, desc symbol.Descriptor) {
	builder.WriteString("- `")
	builder.WriteString(decoratorPrefix(desc.Decorators))
	builder.WriteString("def ")
	builder.WriteString(desc.Signature)
	builder.WriteString("`\n")
	writeDocBlock(builder, desc.Doc, "    ")
}

// writeClass renders a class bullet, its docstring, and its methods as
// nested bullets, closing the class block with one blank line.
func writeClass(builder *strings.Builder, desc symbol.Descriptor) {
	builder.WriteString("- `")
	builder.WriteString(decoratorPrefix(desc.Decorators))
	builder.WriteString("class ")
	builder.WriteString(desc.Name)
	builder.WriteString("`\n")
	writeDocBlock(builder, desc.Doc, "    ")

	for _, method := range desc.Methods {
		builder.WriteString("    - `")
		builder.WriteString(decoratorPrefix(method.Decorators))
		builder.WriteString("def ")
		builder.WriteString(method.Signature)
		builder.WriteString("`\n")
		writeDocBlock(builder, method.Doc, "        ")
	}
	builder.WriteString("\n")
}

// writeDocBlock renders an indented docstring block followed by a blank
// line; empty docstrings produce nothing.
func writeDocBlock(builder *strings.Builder, doc, indent string) {
	if doc == "" {
		return
	}
	builder.WriteString(indentBlock(doc, indent))
	builder.WriteString("\n")
}
