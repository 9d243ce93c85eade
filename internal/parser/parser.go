package parser

import (
	"fmt"

	"github.com/yuminhwan/calculator/internal/calcerrors"
	"github.com/yuminhwan/calculator/internal/token"
)

// Parser converts an infix token sequence into postfix order.
type Parser interface {
	Parse() ([]token.Token, error)
}

type parser struct {
	tokens    []token.Token
	output    []token.Token
	operators []token.Token
	previous  *token.Token
	err       error
}

func NewParser(tokens []token.Token) Parser {
	return &parser{tokens: tokens}
}

// ToPostfix is a shorthand for NewParser(tokens).Parse().
func ToPostfix(tokens []token.Token) ([]token.Token, error) {
	return NewParser(tokens).Parse()
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, output: %#v, operators: %#v, err: %#v}", p.tokens, p.output, p.operators, p.err)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, err: %v}", len(p.tokens), p.err)
}

// Parse implements Parser.
//
// Operators of equal precedence pop the stacked one first, so "1 / 5 / 3"
// becomes "1 5 / 3 /". The input slice is left untouched.
func (p *parser) Parse() ([]token.Token, error) {
	p.reset()

	if len(p.tokens) == 0 {
		return nil, calcerrors.ErrInvalidExpression
	}

	for i := 0; i < len(p.tokens) && !p.hasErr(); i++ {
		p.scan(&p.tokens[i])
	}

	for !p.hasErr() && len(p.operators) > 0 {
		p.output = append(p.output, p.pop())
	}

	if !p.hasErr() {
		p.verify()
	}

	if p.hasErr() {
		return nil, p.err
	}
	return p.output, nil
}

func (p *parser) scan(tok *token.Token) {
	switch {
	case tok.IsNumber():
		p.number(tok)
	case tok.IsOperator():
		p.operator(tok)
	default:
		p.reportError()
	}
	p.previous = tok
}

func (p *parser) number(tok *token.Token) {
	if p.previous != nil && p.previous.IsNumber() {
		p.reportError()
		return
	}
	p.output = append(p.output, *tok)
}

func (p *parser) operator(tok *token.Token) {
	if p.previous != nil && p.previous.IsOperator() {
		p.reportError()
		return
	}

	for len(p.operators) > 0 && p.peek().Type.Precedence() >= tok.Type.Precedence() {
		p.output = append(p.output, p.pop())
	}
	p.operators = append(p.operators, *tok)
}

func (p *parser) verify() {
	first, last := p.tokens[0], p.tokens[len(p.tokens)-1]
	if !first.IsNumber() || !last.IsNumber() {
		p.reportError()
		return
	}

	if len(p.output) != len(p.tokens) {
		p.reportError()
	}
}

func (p *parser) peek() token.Token {
	return p.operators[len(p.operators)-1]
}

func (p *parser) pop() token.Token {
	top := p.peek()
	p.operators = p.operators[:len(p.operators)-1]
	return top
}

func (p *parser) hasErr() bool {
	return p.err != nil
}

func (p *parser) reportError() {
	p.err = calcerrors.ErrInvalidExpression
}

func (p *parser) reset() {
	p.output = make([]token.Token, 0, len(p.tokens))
	p.operators = nil
	p.previous = nil
	p.err = nil
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
