package interpreter

import (
	"github.com/shopspring/decimal"

	"github.com/yuminhwan/calculator/internal/calcerrors"
	"github.com/yuminhwan/calculator/internal/token"
)

type Interpreter interface {
	// Evaluate reduces a postfix sequence to a single value.
	// Returns ErrDivisionByZero or ErrMalformedPostfix wrapped in an
	// EvalError on failure.
	//
	// Safe for concurrent use, no state survives between calls.
	Evaluate(postfix []token.Token) (decimal.Decimal, error)
}

type interpreter struct {
	opts *interpreterOpts
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	return &interpreter{opts: newInterpreterOpts(options...)}
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(postfix []token.Token) (decimal.Decimal, error) {
	stack := make([]decimal.Decimal, 0, len(postfix))

	for idx := range postfix {
		tok := &postfix[idx]

		if tok.IsNumber() {
			stack = append(stack, tok.Value)
			continue
		}

		if !tok.IsOperator() || len(stack) < 2 {
			return decimal.Zero, calcerrors.NewEvalError(tok, calcerrors.ErrMalformedPostfix)
		}

		right, left := stack[len(stack)-1], stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		value, err := i.apply(tok, left, right)
		if err != nil {
			return decimal.Zero, err
		}
		stack = append(stack, value)
	}

	if len(stack) != 1 {
		return decimal.Zero, calcerrors.NewEvalError(nil, calcerrors.ErrMalformedPostfix)
	}
	return stack[0], nil
}

func (i *interpreter) apply(tok *token.Token, left, right decimal.Decimal) (decimal.Decimal, error) {
	switch tok.Type {
	case token.PLUS:
		return left.Add(right), nil
	case token.MINUS:
		return left.Sub(right), nil
	case token.STAR:
		return left.Mul(right), nil
	case token.SLASH:
		if right.IsZero() {
			return decimal.Zero, calcerrors.NewEvalError(tok, calcerrors.ErrDivisionByZero)
		}
		return left.DivRound(right, i.divisionPlaces(left, right)), nil
	}

	return decimal.Zero, calcerrors.NewEvalError(tok, calcerrors.ErrMalformedPostfix)
}

// divisionPlaces keeps about divisionPrecision significant digits in the
// quotient, and never fewer than divisionPrecision fraction digits.
func (i *interpreter) divisionPlaces(left, right decimal.Decimal) int32 {
	places := i.opts.divisionPrecision - magnitude(left) + magnitude(right)
	if places < i.opts.divisionPrecision {
		return i.opts.divisionPrecision
	}
	return places
}

// magnitude is the power of ten just above the leading digit of d.
func magnitude(d decimal.Decimal) int32 {
	return int32(d.NumDigits()) + d.Exponent()
}

var _ Interpreter = (*interpreter)(nil)
