package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"svlift/internal/source"
	"svlift/internal/token"
)

// TokenOutput is the JSON shape of one decoded token.
type TokenOutput struct {
	Kind string      `json:"kind"`
	Text string      `json:"text,omitempty"`
	Span source.Span `json:"span"`
}

// FormatTokensPretty lists decoded tokens in a human readable form.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) {
	for i, tok := range tokens {
		fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %s", fs.Position(tok.Span))
		fmt.Fprintln(w)
	}
}

// FormatTokensJSON lists decoded tokens as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		text := tok.Text
		if tok.Kind == token.ScopedIdent {
			text = tok.Scope + "::" + tok.Text
		}
		output = append(output, TokenOutput{
			Kind: tok.Kind.String(),
			Text: text,
			Span: tok.Span,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
