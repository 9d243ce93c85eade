package token

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type TokenType int

const (
	NUMBER TokenType = iota
	PLUS
	MINUS
	STAR
	SLASH
)

var tokenTypeNames = [...]string{
	NUMBER: "NUMBER",
	PLUS:   "PLUS",
	MINUS:  "MINUS",
	STAR:   "STAR",
	SLASH:  "SLASH",
}

// String implements fmt.Stringer.
func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypeNames) {
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
	return tokenTypeNames[t]
}

// IsOperator reports whether t is one of the four binary operators.
func (t TokenType) IsOperator() bool {
	_, ok := precedence[t]
	return ok
}

// Precedence returns the binding rank of an operator, higher binds tighter.
// Numbers have no rank and report 0.
func (t TokenType) Precedence() int {
	return precedence[t]
}

var precedence = map[TokenType]int{
	PLUS:  1,
	MINUS: 1,
	STAR:  2,
	SLASH: 2,
}

var operators = map[string]TokenType{
	"+": PLUS,
	"-": MINUS,
	"*": STAR,
	"/": SLASH,
}

// LookupOperator maps a lexeme to its operator type.
func LookupOperator(lexeme string) (TokenType, bool) {
	t, ok := operators[lexeme]
	return t, ok
}

// Operators returns the supported operator lexemes in sorted order.
func Operators() []string {
	keys := maps.Keys(operators)
	slices.Sort(keys)
	return keys
}

// Token represents a lexical token. Pos is the zero based index of the
// token in the whitespace separated input.
type Token struct {
	Type   TokenType
	Lexeme string
	Value  decimal.Decimal
	Pos    int
}

func NewNumber(lexeme string, value decimal.Decimal, pos int) Token {
	return Token{
		Type:   NUMBER,
		Lexeme: lexeme,
		Value:  value,
		Pos:    pos,
	}
}

func NewOperator(t TokenType, lexeme string, pos int) Token {
	return Token{
		Type:   t,
		Lexeme: lexeme,
		Pos:    pos,
	}
}

func (t Token) IsNumber() bool {
	return t.Type == NUMBER
}

func (t Token) IsOperator() bool {
	return t.Type.IsOperator()
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return t.Lexeme
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	if t.IsNumber() {
		return fmt.Sprintf("{Type: %s, Lexeme: %q, Value: %s, Pos: %d}", t.Type, t.Lexeme, t.Value, t.Pos)
	}
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Pos: %d}", t.Type, t.Lexeme, t.Pos)
}

// Lexemes renders a token sequence as its source lexemes.
func Lexemes(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Lexeme
	}
	return out
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
