package render

import "testing"

func TestSymbol(t *testing.T) {
	tests := []struct {
		name       string
		symName    string
		signature  string
		doc        string
		decorators []string
		isMethod   bool
		want       string
	}{
		{
			name:      "documented function",
			symName:   "hello",
			signature: "hello()",
			doc:       "This is a test function",
			want:      "- `def hello()`\n    This is a test function\n",
		},
		{
			name:      "method drops def keyword",
			symName:   "hello",
			signature: "hello()",
			doc:       "This is a test function",
			isMethod:  true,
			want:      "- `hello()`\n    This is a test function\n",
		},
		{
			name:       "decorated function",
			symName:    "cached",
			signature:  "cached(key)",
			doc:        "",
			decorators: []string{"lru_cache", "staticmethod"},
			want:       "- `@lru_cache @staticmethod def cached(key)`\n",
		},
		{
			name:      "multiline docstring indented per line",
			symName:   "multi",
			signature: "multi(a, b)",
			doc:       "First line\nSecond line",
			want:      "- `def multi(a, b)`\n    First line\n    Second line\n",
		},
		{
			name:      "docstring stripped before indenting",
			symName:   "padded",
			signature: "padded()",
			doc:       "\n  Trimmed text\n\n",
			want:      "- `def padded()`\n    Trimmed text\n",
		},
		{
			name:      "signature without parentheses",
			symName:   "weird",
			signature: "weird",
			doc:       "",
			want:      "- `def weird()`\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Symbol(tt.symName, tt.signature, tt.doc, tt.decorators, tt.isMethod)
			if got != tt.want {
				t.Errorf("Symbol() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSymbol_Idempotent(t *testing.T) {
	first := Symbol("hello", "hello(x)", "Doc.", []string{"wraps"}, false)
	second := Symbol("hello", "hello(x)", "Doc.", []string{"wraps"}, false)
	if first != second {
		t.Errorf("rendering is not idempotent: %q vs %q", first, second)
	}
}
