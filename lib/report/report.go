package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	"github.com/vyPal/langscan/lib/diag"
	"github.com/vyPal/langscan/lib/lexer"
	"github.com/vyPal/langscan/lib/symbols"
	"github.com/vyPal/langscan/lib/token"
)

// Result is everything a finished scan produced for one source file.
type Result struct {
	File        string            `json:"file"`
	Tokens      []token.Token     `json:"tokens"`
	Symbols     []symbols.Entry   `json:"symbols"`
	Diagnostics []diag.Diagnostic `json:"diagnostics"`
}

// Scan runs a scanner over src to end-of-stream.
func Scan(file string, src []byte) (*Result, error) {
	s, err := lexer.New(src)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", file, err)
	}
	tokens := s.All()
	return &Result{
		File:        file,
		Tokens:      tokens,
		Symbols:     s.Symbols().Entries(),
		Diagnostics: s.Diagnostics().List(),
	}, nil
}

func (r *Result) Clean() bool {
	return len(r.Diagnostics) == 0
}

// Options selects the sections written by Write.
type Options struct {
	Tokens  bool
	Symbols bool
	Errors  bool
}

var DefaultOptions = Options{
	Tokens:  true,
	Symbols: true,
	Errors:  true,
}

const rule = "||============================================================||"

func (r *Result) Write(w io.Writer, opts Options) {
	color.New(color.Bold).Fprintf(w, "--- Running %s ---\n", r.File)
	if opts.Tokens {
		r.WriteTokens(w)
		fmt.Fprintln(w)
	}
	if opts.Symbols {
		symbols.WriteListing(w, r.Symbols)
		fmt.Fprintln(w)
	}
	if opts.Errors {
		sorted := slices.Clone(r.Diagnostics)
		diag.Sort(sorted)
		diag.WriteReport(w, sorted)
		fmt.Fprintln(w)
	}
}

var (
	keywordColor  = color.New(color.FgBlue, color.Bold)
	literalColor  = color.New(color.FgGreen)
	operatorColor = color.New(color.FgYellow)
	errorColor    = color.New(color.FgRed)
)

func tokenColor(kind token.Kind) *color.Color {
	switch {
	case kind == token.ERROR:
		return errorColor
	case kind.IsKeyword():
		return keywordColor
	case kind.IsLiteral():
		return literalColor
	case kind.IsOperator() || kind.IsPunctuation():
		return operatorColor
	}
	return nil
}

func (r *Result) WriteTokens(w io.Writer) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "||                        TOKEN STREAM                        ||")
	fmt.Fprintln(w, rule)
	for _, tok := range r.Tokens {
		if c := tokenColor(tok.Kind); c != nil {
			c.Fprintln(w, "  "+tok.String())
			continue
		}
		fmt.Fprintln(w, "  "+tok.String())
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "||  Total tokens: %-45d||\n", len(r.Tokens))
	fmt.Fprintln(w, rule)
}

// WriteJSON encodes results as an indented JSON array.
func WriteJSON(w io.Writer, results []*Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
