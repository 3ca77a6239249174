package token

import (
	"encoding/json"
	"fmt"
)

type Kind int

const (
	START Kind = iota
	FINISH
	LOOP
	CONDITION
	DECLARE
	OUTPUT
	INPUT
	FUNCTION
	RETURN
	BREAK
	CONTINUE
	ELSE

	INTEGER // [+-]?[0-9]+
	FLOAT   // [+-]?[0-9]+\.[0-9]{1,6}([eE][+-]?[0-9]+)?
	STRING
	CHAR
	BOOLEAN

	IDENTIFIER // [A-Z][a-z0-9_]{0,30}

	PLUS
	MINUS
	MULTIPLY
	DIVIDE
	MODULO
	POWER
	EQUAL
	NOT_EQUAL
	LESS_EQUAL
	GREATER_EQUAL
	LESS_THAN
	GREATER_THAN
	LOGICAL_AND
	LOGICAL_OR
	LOGICAL_NOT
	ASSIGN
	PLUS_ASSIGN
	MINUS_ASSIGN
	MULT_ASSIGN
	DIV_ASSIGN
	INCREMENT
	DECREMENT

	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	COMMA
	SEMICOLON
	COLON

	EOF
	ERROR

	kindCount
)

var kindNames = [...]string{
	START:         "START",
	FINISH:        "FINISH",
	LOOP:          "LOOP",
	CONDITION:     "CONDITION",
	DECLARE:       "DECLARE",
	OUTPUT:        "OUTPUT",
	INPUT:         "INPUT",
	FUNCTION:      "FUNCTION",
	RETURN:        "RETURN",
	BREAK:         "BREAK",
	CONTINUE:      "CONTINUE",
	ELSE:          "ELSE",
	INTEGER:       "INTEGER",
	FLOAT:         "FLOAT",
	STRING:        "STRING",
	CHAR:          "CHAR",
	BOOLEAN:       "BOOLEAN",
	IDENTIFIER:    "IDENTIFIER",
	PLUS:          "PLUS",
	MINUS:         "MINUS",
	MULTIPLY:      "MULTIPLY",
	DIVIDE:        "DIVIDE",
	MODULO:        "MODULO",
	POWER:         "POWER",
	EQUAL:         "EQUAL",
	NOT_EQUAL:     "NOT_EQUAL",
	LESS_EQUAL:    "LESS_EQUAL",
	GREATER_EQUAL: "GREATER_EQUAL",
	LESS_THAN:     "LESS_THAN",
	GREATER_THAN:  "GREATER_THAN",
	LOGICAL_AND:   "LOGICAL_AND",
	LOGICAL_OR:    "LOGICAL_OR",
	LOGICAL_NOT:   "LOGICAL_NOT",
	ASSIGN:        "ASSIGN",
	PLUS_ASSIGN:   "PLUS_ASSIGN",
	MINUS_ASSIGN:  "MINUS_ASSIGN",
	MULT_ASSIGN:   "MULT_ASSIGN",
	DIV_ASSIGN:    "DIV_ASSIGN",
	INCREMENT:     "INCREMENT",
	DECREMENT:     "DECREMENT",
	LPAREN:        "LPAREN",
	RPAREN:        "RPAREN",
	LBRACE:        "LBRACE",
	RBRACE:        "RBRACE",
	LBRACKET:      "LBRACKET",
	RBRACKET:      "RBRACKET",
	COMMA:         "COMMA",
	SEMICOLON:     "SEMICOLON",
	COLON:         "COLON",
	EOF:           "EOF",
	ERROR:         "ERROR",
}

func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
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
	kind, ok := KindByName(name)
	if !ok {
		return fmt.Errorf("unknown token kind %q", name)
	}
	*k = kind
	return nil
}

// Kinds returns every token kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := START; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return ERROR, false
}

func (k Kind) IsKeyword() bool {
	return k >= START && k <= ELSE
}

func (k Kind) IsLiteral() bool {
	return k >= INTEGER && k <= BOOLEAN
}

func (k Kind) IsOperator() bool {
	return k >= PLUS && k <= DECREMENT
}

func (k Kind) IsPunctuation() bool {
	return k >= LPAREN && k <= COLON
}

// Token is a single lexeme together with the position of its first character.
type Token struct {
	Kind   Kind   `json:"kind"`
	Text   string `json:"text"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func New(kind Kind, text string, line, column int) Token {
	return Token{
		Kind:   kind,
		Text:   text,
		Line:   line,
		Column: column,
	}
}

func (t Token) String() string {
	return fmt.Sprintf("<%s, %q, Line: %d, Col: %d>", t.Kind, t.Text, t.Line, t.Column)
}
