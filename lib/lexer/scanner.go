package lexer

import (
	"errors"
	"fmt"
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/vyPal/langscan/lib/diag"
	"github.com/vyPal/langscan/lib/symbols"
	"github.com/vyPal/langscan/lib/token"
)

// ErrNoInput is returned when a scanner is constructed without a source buffer.
var ErrNoInput = errors.New("lexer: no input buffer")

const (
	MaxFractionDigits = 6
	MaxIdentLength    = 31
)

const eof rune = -1

// Scanner turns a source buffer into tokens one call at a time. Lexical
// errors never stop the scan: each one is recorded in the scanner's
// diagnostics and surfaces as an ERROR token.
type Scanner struct {
	src []byte

	// cursor, always describing the next unread character
	offset int
	line   int
	column int

	// byte offset of the most recently produced token
	start int

	diags   *diag.Sink
	symbols *symbols.Table
}

type mark struct {
	offset int
	line   int
	column int
}

func New(src []byte) (*Scanner, error) {
	if src == nil {
		return nil, ErrNoInput
	}
	return newScanner(src), nil
}

func FromString(src string) *Scanner {
	return newScanner([]byte(src))
}

func newScanner(src []byte) *Scanner {
	return &Scanner{
		src:     src,
		line:    1,
		column:  1,
		diags:   diag.NewSink(),
		symbols: symbols.NewTable(),
	}
}

func (s *Scanner) Diagnostics() *diag.Sink {
	return s.diags
}

func (s *Scanner) Symbols() *symbols.Table {
	return s.symbols
}

// Next returns the next token. Once the input is exhausted every call
// returns an EOF token positioned just past the last character.
func (s *Scanner) Next() token.Token {
	s.skip()

	m := s.mark()
	s.start = m.offset
	if s.done() {
		return token.New(token.EOF, "", m.line, m.column)
	}

	switch r := s.peek(); {
	case r == '"':
		return s.scanString(m)
	case r == '\'':
		return s.scanChar(m)
	case isDigit(r):
		return s.scanNumber(m)
	case isLetter(r) || r == '_':
		return s.scanWord(m)
	}
	return s.scanOperator(m)
}

// All drains the scanner. The returned slice ends with the EOF token.
func (s *Scanner) All() []token.Token {
	var tokens []token.Token
	for tok := range s.Tokens() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// Tokens yields tokens up to and including EOF.
func (s *Scanner) Tokens() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok := s.Next()
			if !yield(tok) || tok.Kind == token.EOF {
				return
			}
		}
	}
}

func (s *Scanner) done() bool {
	return s.offset >= len(s.src)
}

func (s *Scanner) peek() rune {
	return s.peekAt(0)
}

// peekAt returns the rune n positions past the cursor without consuming it.
func (s *Scanner) peekAt(n int) rune {
	off := s.offset
	for off < len(s.src) {
		r, size := utf8.DecodeRune(s.src[off:])
		if n == 0 {
			return r
		}
		off += size
		n--
	}
	return eof
}

func (s *Scanner) advance() rune {
	if s.done() {
		return eof
	}
	r, size := utf8.DecodeRune(s.src[s.offset:])
	s.offset += size
	if r == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return r
}

func (s *Scanner) accept(r rune) bool {
	if s.peek() != r {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) mark() mark {
	return mark{
		offset: s.offset,
		line:   s.line,
		column: s.column,
	}
}

func (s *Scanner) text(m mark) string {
	return string(s.src[m.offset:s.offset])
}

func (s *Scanner) emit(kind token.Kind, m mark) token.Token {
	return token.New(kind, s.text(m), m.line, m.column)
}

// fail records a diagnostic for everything consumed since m and returns it
// as an ERROR token.
func (s *Scanner) fail(m mark, kind diag.Kind, message string) token.Token {
	text := s.text(m)
	s.diags.Add(kind, m.line, m.column, text, message)
	return token.New(token.ERROR, text, m.line, m.column)
}

func (s *Scanner) skip() {
	for !s.done() {
		switch r := s.peek(); {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			s.advance()
		case r == '#' && s.peekAt(1) == '#':
			s.skipLineComment()
		case r == '#' && s.peekAt(1) == '|':
			s.skipBlockComment()
		default:
			return
		}
	}
}

// skipLineComment stops before the terminating newline.
func (s *Scanner) skipLineComment() {
	for !s.done() && s.peek() != '\n' {
		s.advance()
	}
}

// skipBlockComment consumes up to the first "|#". Comments do not nest.
func (s *Scanner) skipBlockComment() {
	m := s.mark()
	s.advance()
	s.advance()
	for !s.done() {
		if s.peek() == '|' && s.peekAt(1) == '#' {
			s.advance()
			s.advance()
			return
		}
		s.advance()
	}
	s.diags.Add(diag.UnclosedComment, m.line, m.column, "#|...", "Multi-line comment was never terminated with |#.")
}

func (s *Scanner) scanString(m mark) token.Token {
	s.advance()
	for !s.done() && s.peek() != '"' {
		if s.peek() == '\\' {
			s.scanEscape(isStringEscape)
			continue
		}
		s.advance()
	}
	if s.done() {
		return s.fail(m, diag.UnclosedString, "String literal was never terminated.")
	}
	s.advance()
	return s.emit(token.STRING, m)
}

// scanEscape consumes a backslash and the character after it. An escapee
// outside the legal set is reported but the literal keeps going.
func (s *Scanner) scanEscape(legal func(rune) bool) {
	m := s.mark()
	s.advance()
	if s.done() {
		return
	}
	if r := s.advance(); !legal(r) {
		s.diags.Add(diag.InvalidEscape, m.line, m.column, s.text(m), "Unrecognized escape sequence.")
	}
}

func (s *Scanner) scanChar(m mark) token.Token {
	s.advance()
	switch s.peek() {
	case eof, '\n':
		return s.fail(m, diag.UnclosedChar, "Character literal was never terminated.")
	case '\'':
		s.advance()
		return s.fail(m, diag.MalformedLiteral, "Empty character literal.")
	case '\\':
		if r := s.peekAt(1); r == eof || r == '\n' {
			s.advance()
			return s.fail(m, diag.UnclosedChar, "Character literal was never terminated.")
		}
		s.scanEscape(isCharEscape)
	default:
		s.advance()
	}

	if s.accept('\'') {
		return s.emit(token.CHAR, m)
	}

	for r := s.peek(); r != eof && r != '\'' && r != '\n'; r = s.peek() {
		s.advance()
	}
	if s.accept('\'') {
		return s.fail(m, diag.MalformedLiteral, "Character literal contains more than one character.")
	}
	return s.fail(m, diag.UnclosedChar, "Character literal was never terminated.")
}

// scanNumber scans an integer or float. m may sit on a sign that has
// already been consumed.
func (s *Scanner) scanNumber(m mark) token.Token {
	s.digits()
	if s.peek() != '.' || !isDigit(s.peekAt(1)) {
		return s.emit(token.INTEGER, m)
	}

	s.advance()
	if s.digits() > MaxFractionDigits {
		return s.fail(m, diag.MalformedLiteral, fmt.Sprintf("Float literal exceeds maximum of %d decimal digits.", MaxFractionDigits))
	}

	if r := s.peek(); r == 'e' || r == 'E' {
		s.advance()
		if r := s.peek(); r == '+' || r == '-' {
			s.advance()
		}
		if s.digits() == 0 {
			return s.fail(m, diag.MalformedLiteral, "Exponent part of float is incomplete.")
		}
	}
	return s.emit(token.FLOAT, m)
}

func (s *Scanner) digits() int {
	n := 0
	for isDigit(s.peek()) {
		s.advance()
		n++
	}
	return n
}

func (s *Scanner) scanWord(m mark) token.Token {
	for r := s.peek(); isLetter(r) || unicode.IsDigit(r) || r == '_'; r = s.peek() {
		s.advance()
	}
	word := s.text(m)

	if kind, ok := token.Lookup(word); ok {
		return s.emit(kind, m)
	}
	if token.IsBoolean(word) {
		return s.emit(token.BOOLEAN, m)
	}

	first, size := utf8.DecodeRuneInString(word)
	if first < 'A' || first > 'Z' {
		return s.fail(m, diag.InvalidIdentifier, "Identifiers must start with an uppercase letter [A-Z].")
	}
	for _, r := range word[size:] {
		if (r < 'a' || r > 'z') && !isDigit(r) && r != '_' {
			return s.fail(m, diag.InvalidIdentifier, "Identifiers may only contain lowercase letters, digits, and underscores after the first character.")
		}
	}
	if utf8.RuneCountInString(word) > MaxIdentLength {
		return s.fail(m, diag.IdentifierTooLong, fmt.Sprintf("Identifier exceeds maximum length of %d characters.", MaxIdentLength))
	}

	s.symbols.Add(word, m.line)
	return s.emit(token.IDENTIFIER, m)
}

func (s *Scanner) scanOperator(m mark) token.Token {
	r := s.advance()
	op, ok := operators[r]
	if !ok {
		return s.fail(m, diag.InvalidCharacter, "Character is not part of the language alphabet.")
	}
	if kind, ok := op.follow[s.peek()]; ok {
		s.advance()
		return s.emit(kind, m)
	}
	if (r == '+' || r == '-') && isDigit(s.peek()) {
		return s.scanNumber(m)
	}
	if op.kind == token.ERROR {
		return s.fail(m, diag.InvalidCharacter, "Character is not part of the language alphabet.")
	}
	return s.emit(op.kind, m)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

func isStringEscape(r rune) bool {
	switch r {
	case '"', '\\', 'n', 't', 'r':
		return true
	}
	return false
}

func isCharEscape(r rune) bool {
	return r == '\'' || isStringEscape(r)
}
