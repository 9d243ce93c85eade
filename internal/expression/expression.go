// Package expression ties tokenizing, postfix conversion and evaluation
// together. It performs no I/O.
package expression

import (
	"github.com/shopspring/decimal"

	"github.com/yuminhwan/calculator/internal/calcerrors"
	"github.com/yuminhwan/calculator/internal/interpreter"
	"github.com/yuminhwan/calculator/internal/parser"
	"github.com/yuminhwan/calculator/internal/scanner"
	"github.com/yuminhwan/calculator/internal/token"
)

var defaultInterpreter = interpreter.NewInterpreter()

// Expression is a validated infix expression held in postfix order.
type Expression struct {
	raw     string
	postfix []token.Token
	eval    interpreter.Interpreter
}

// From validates raw and converts it to postfix. Any tokenizing or
// structural failure is reported as calcerrors.ErrInvalidExpression.
func From(raw string, options ...interpreter.InterpreterOption) (*Expression, error) {
	postfix, err := ParseAndConvert(raw)
	if err != nil {
		return nil, err
	}

	eval := defaultInterpreter
	if len(options) > 0 {
		eval = interpreter.NewInterpreter(options...)
	}

	return &Expression{raw: raw, postfix: postfix, eval: eval}, nil
}

// ParseAndConvert tokenizes raw and returns its postfix sequence.
func ParseAndConvert(raw string) ([]token.Token, error) {
	tokens, err := scanner.Tokenize(raw)
	if err != nil {
		return nil, calcerrors.ErrInvalidExpression
	}

	postfix, err := parser.ToPostfix(tokens)
	if err != nil {
		return nil, calcerrors.ErrInvalidExpression
	}
	return postfix, nil
}

// Evaluate reduces a postfix sequence with the default interpreter.
func Evaluate(postfix []token.Token) (decimal.Decimal, error) {
	return defaultInterpreter.Evaluate(postfix)
}

// Calculate evaluates the stored postfix sequence.
func (e *Expression) Calculate() (decimal.Decimal, error) {
	return e.eval.Evaluate(e.postfix)
}

// Postfix returns a copy of the postfix sequence.
func (e *Expression) Postfix() []token.Token {
	return append([]token.Token(nil), e.postfix...)
}

// String returns the expression as it was entered.
func (e *Expression) String() string {
	return e.raw
}
