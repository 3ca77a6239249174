package lexer

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	plex "github.com/alecthomas/participle/v2/lexer"
	"github.com/vyPal/langscan/lib/token"
)

// Definition exposes the scanner to participle grammars. Symbol names are
// the token kind names, so a grammar can match @IDENTIFIER or @INTEGER and
// literal keywords such as 'declare'.
var Definition plex.Definition = &definition{}

type definition struct{}

func (d *definition) Symbols() map[string]plex.TokenType {
	symbols := make(map[string]plex.TokenType)
	for _, kind := range token.Kinds() {
		symbols[kind.String()] = tokenType(kind)
	}
	return symbols
}

func (d *definition) Lex(filename string, r io.Reader) (plex.Lexer, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return d.LexBytes(filename, src)
}

func (d *definition) LexString(filename string, input string) (plex.Lexer, error) {
	return d.LexBytes(filename, []byte(input))
}

func (d *definition) LexBytes(filename string, input []byte) (plex.Lexer, error) {
	if input == nil {
		input = []byte{}
	}
	s, err := New(input)
	if err != nil {
		return nil, err
	}
	return &participleLexer{
		filename: filename,
		scanner:  s,
	}, nil
}

type participleLexer struct {
	filename string
	scanner  *Scanner
}

func (l *participleLexer) Next() (plex.Token, error) {
	tok := l.scanner.Next()
	pos := plex.Position{
		Filename: l.filename,
		Offset:   l.scanner.start,
		Line:     tok.Line,
		Column:   tok.Column,
	}
	if tok.Kind == token.ERROR {
		return plex.Token{}, participle.Errorf(pos, "%s", l.lastDiagnostic())
	}
	return plex.Token{
		Type:  tokenType(tok.Kind),
		Value: tok.Text,
		Pos:   pos,
	}, nil
}

func (l *participleLexer) lastDiagnostic() string {
	diags := l.scanner.Diagnostics().List()
	if len(diags) == 0 {
		return "invalid token"
	}
	d := diags[len(diags)-1]
	return strings.ToLower(d.Kind.String()) + ": " + d.Message
}

func tokenType(kind token.Kind) plex.TokenType {
	if kind == token.EOF {
		return plex.EOF
	}
	return plex.TokenType(kind)
}
