package render

import "strings"

// Symbol formats a single symbol as a markdown bullet. The signature may
// be a full "name(params)" form; only the parenthesized parameter list is
// used. Methods are rendered without the "def " keyword.
func Symbol(name, signature, doc string, decorators []string, isMethod bool) string {
	var builder strings.Builder

	keyword := "def "
	if isMethod {
		keyword = ""
	}
	builder.WriteString("- `")
	builder.WriteString(decoratorPrefix(decorators))
	builder.WriteString(keyword)
	builder.WriteString(name)
	builder.WriteString("(")
	builder.WriteString(paramsOf(signature))
	builder.WriteString(")`\n")

	if doc != "" {
		builder.WriteString(indentBlock(doc, "    "))
	}
	return builder.String()
}

// paramsOf extracts the parameter list from a "name(params)" signature.
// Returns empty text when the signature has no parenthesized part.
func paramsOf(signature string) string {
	open := strings.Index(signature, "(")
	if open < 0 {
		return ""
	}
	rest := signature[open+1:]
	end := strings.LastIndex(rest, ")")
	if end < 0 {
		return rest
	}
	return rest[:end]
}

// decoratorPrefix renders decorators as "@a @b " with a trailing space,
// or empty text when there are none. The leading @ is added here, not
// stored on the descriptor.
func decoratorPrefix(decorators []string) string {
	if len(decorators) == 0 {
		return ""
	}
	var builder strings.Builder
	for _, d := range decorators {
		builder.WriteString("@")
		builder.WriteString(d)
		builder.WriteString(" ")
	}
	return builder.String()
}

// indentBlock strips the docstring and re-indents every line with the
// given prefix, terminating with a single line break.
func indentBlock(doc, indent string) string {
	lines := strings.Split(strings.TrimSpace(doc), "\n")
	return indent + strings.Join(lines, "\n"+indent) + "\n"
}
