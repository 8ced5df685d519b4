package selector_test

import (
	"errors"
	"io"
	"testing"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"cssb/selector"
)

// lexTokens runs a rendered selector through the CSS lexer and returns the
// token types up to end of input.
func lexTokens(t *testing.T, input string) []css.TokenType {
	t.Helper()

	l := css.NewLexer(parse.NewInputString(input))
	var types []css.TokenType
	for {
		tt, _ := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); !errors.Is(err, io.EOF) {
				t.Fatalf("lexing %q: %v", input, err)
			}
			return types
		}
		types = append(types, tt)
	}
}

// Rendered selectors must survive CSS tokenization cleanly, and the leading
// token must match the first fragment kind.
func TestRenderedSelectorsLex(t *testing.T) {
	tests := []struct {
		name  string
		build func() *selector.Builder
		first css.TokenType
	}{
		{
			name:  "id and classes",
			build: func() *selector.Builder { return selector.ID("main").Class("container").Class("editable") },
			first: css.HashToken,
		},
		{
			name: "element attribute pseudo-class",
			build: func() *selector.Builder {
				return selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus")
			},
			first: css.IdentToken,
		},
		{
			name: "full compound",
			build: func() *selector.Builder {
				return selector.Element("div").ID("main").Class("box").Attr("checked").PseudoClass("hover").PseudoElement("after")
			},
			first: css.IdentToken,
		},
		{
			name: "combined",
			build: func() *selector.Builder {
				return selector.Combine(selector.Element("div").ID("main"), selector.NextSibling, selector.Element("table").ID("data"))
			},
			first: css.IdentToken,
		},
		{
			name:  "pseudo-element only",
			build: func() *selector.Builder { return selector.PseudoElement("first-line") },
			first: css.ColonToken,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rendered, err := tc.build().Render()
			if err != nil {
				t.Fatalf("unexpected render error: %v", err)
			}

			types := lexTokens(t, rendered)
			if len(types) == 0 {
				t.Fatalf("no tokens lexed from %q", rendered)
			}
			if types[0] != tc.first {
				t.Errorf("first token of %q: got %v, want %v", rendered, types[0], tc.first)
			}
			for _, tt := range types {
				if tt == css.BadStringToken || tt == css.BadURLToken {
					t.Errorf("bad token %v in %q", tt, rendered)
				}
			}
		})
	}
}
