package diag

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
)

type Kind int

const (
	InvalidCharacter Kind = iota
	MalformedLiteral
	UnclosedString
	UnclosedChar
	UnclosedComment
	IdentifierTooLong
	InvalidEscape
	InvalidIdentifier
)

var kindNames = map[Kind]string{
	InvalidCharacter:  "Invalid Character",
	MalformedLiteral:  "Malformed Literal",
	UnclosedString:    "Unclosed String",
	UnclosedChar:      "Unclosed Char",
	UnclosedComment:   "Unclosed Comment",
	IdentifierTooLong: "Identifier Too Long",
	InvalidEscape:     "Invalid Escape",
	InvalidIdentifier: "Invalid Identifier",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for kind, n := range kindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown diagnostic kind %q", name)
}

// Diagnostic is one lexical error, anchored at the position where the
// offending lexeme starts.
type Diagnostic struct {
	Kind    Kind   `json:"kind"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Lexeme  string `json:"lexeme"`
	Message string `json:"message"`
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("Error: [%s] at Line %d, Col %d: Lexeme %q - %s", d.Kind, d.Line, d.Column, d.Lexeme, d.Message)
}

// Sink is an append-only log of diagnostics kept in discovery order.
type Sink struct {
	entries []Diagnostic
}

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) Add(kind Kind, line, column int, lexeme, message string) {
	s.entries = append(s.entries, Diagnostic{
		Kind:    kind,
		Line:    line,
		Column:  column,
		Lexeme:  lexeme,
		Message: message,
	})
}

func (s *Sink) Any() bool {
	return len(s.entries) > 0
}

func (s *Sink) Count() int {
	return len(s.entries)
}

// List returns the diagnostics in the order they were recorded.
func (s *Sink) List() []Diagnostic {
	out := make([]Diagnostic, len(s.entries))
	copy(out, s.entries)
	return out
}

// Sorted returns a copy ordered by kind name, then line, then column.
func (s *Sink) Sorted() []Diagnostic {
	out := s.List()
	Sort(out)
	return out
}

func Sort(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.Kind != b.Kind {
			return a.Kind.String() < b.Kind.String()
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

func (s *Sink) Err() error {
	if len(s.entries) == 0 {
		return nil
	}
	errs := make([]error, len(s.entries))
	for i, d := range s.entries {
		errs[i] = d
	}
	return errors.Join(errs...)
}

const rule = "||============================================================||"

// Report writes the sorted diagnostics, or a clean notice when there are none.
func (s *Sink) Report(w io.Writer) {
	WriteReport(w, s.Sorted())
}

func WriteReport(w io.Writer, diags []Diagnostic) {
	if len(diags) == 0 {
		color.New(color.FgGreen).Fprintln(w, "[ErrorHandler] No lexical errors detected.")
		return
	}

	red := color.New(color.FgRed)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "||                     LEXICAL ERRORS                         ||")
	fmt.Fprintln(w, rule)
	for _, d := range diags {
		red.Fprintln(w, "||  "+d.Error())
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "||  Total errors: %-45d ||\n", len(diags))
	fmt.Fprintln(w, rule)
}
