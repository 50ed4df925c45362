package wikitext_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dpotapov/wikitext"
	"github.com/dpotapov/wikitext/token"
)

func TestTokenize_HeadingEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Token
	}{
		{
			name:  "unterminated heading falls back to text",
			input: "== Title",
			want:  []token.Token{txt("== Title")},
		},
		{
			name:  "newline before closing equals fails the whole heading",
			input: "== Title\nmore",
			want:  []token.Token{txt("== Title\nmore")},
		},
		{
			name: "closing run shorter than opening prefixes surplus equals onto the title",
			// Opening run is 4 "="; only 3 are found closing, so the
			// resolved level is 3 and the extra leading "=" becomes part
			// of the literal title text instead of the heading markup.
			input: "==== x ===",
			want: []token.Token{
				heading(3),
				txt("= x "),
				tok(token.HeadingEnd),
			},
		},
		{
			name:  "heading not at line start is just text",
			input: "foo == bar ==",
			want:  []token.Token{txt("foo == bar ==")},
		},
		{
			name:  "two sequential headings on separate lines",
			input: "== A ==\n== B ==\n",
			want: []token.Token{
				heading(2),
				txt(" A "),
				tok(token.HeadingEnd),
				txt("\n"),
				heading(2),
				txt(" B "),
				tok(token.HeadingEnd),
				txt("\n"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wikitext.Tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}
