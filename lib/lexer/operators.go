package lexer

import "github.com/vyPal/langscan/lib/token"

// operator describes what a leading character may become. kind is the
// token for the character on its own, or ERROR when it is only valid as
// the first half of a pair. follow holds the two-character forms, which
// win over kind.
type operator struct {
	kind   token.Kind
	follow map[rune]token.Kind
}

var operators = map[rune]operator{
	'+': {token.PLUS, map[rune]token.Kind{'+': token.INCREMENT, '=': token.PLUS_ASSIGN}},
	'-': {token.MINUS, map[rune]token.Kind{'-': token.DECREMENT, '=': token.MINUS_ASSIGN}},
	'*': {token.MULTIPLY, map[rune]token.Kind{'*': token.POWER, '=': token.MULT_ASSIGN}},
	'/': {token.DIVIDE, map[rune]token.Kind{'=': token.DIV_ASSIGN}},
	'%': {token.MODULO, nil},
	'=': {token.ASSIGN, map[rune]token.Kind{'=': token.EQUAL}},
	'!': {token.LOGICAL_NOT, map[rune]token.Kind{'=': token.NOT_EQUAL}},
	'<': {token.LESS_THAN, map[rune]token.Kind{'=': token.LESS_EQUAL}},
	'>': {token.GREATER_THAN, map[rune]token.Kind{'=': token.GREATER_EQUAL}},
	'&': {token.ERROR, map[rune]token.Kind{'&': token.LOGICAL_AND}},
	'|': {token.ERROR, map[rune]token.Kind{'|': token.LOGICAL_OR}},

	'(': {token.LPAREN, nil},
	')': {token.RPAREN, nil},
	'{': {token.LBRACE, nil},
	'}': {token.RBRACE, nil},
	'[': {token.LBRACKET, nil},
	']': {token.RBRACKET, nil},
	',': {token.COMMA, nil},
	';': {token.SEMICOLON, nil},
	':': {token.COLON, nil},
}
