package calcerrors

import (
	"errors"
	"fmt"

	"github.com/yuminhwan/calculator/internal/token"
)

var (
	ErrInvalidExpression = errors.New("invalid expression, please enter it again.")
	ErrDivisionByZero    = errors.New("division by zero.")
	ErrMalformedPostfix  = errors.New("malformed postfix expression.")
	ErrUnknownMenu       = errors.New("unknown menu, please choose again.")
)

// EvalError ties an evaluation failure to the operator that raised it.
// tok is nil when the failure is detected after the scan.
type EvalError struct {
	tok   *token.Token
	cause error
}

func NewEvalError(tok *token.Token, cause error) error {
	return &EvalError{tok: tok, cause: cause}
}

// Error implements error.
func (e *EvalError) Error() string {
	if e.tok == nil {
		return fmt.Sprintf("evaluation error at end: %v", e.cause)
	}
	return fmt.Sprintf("evaluation error at '%s' (token %d): %v", e.tok.Lexeme, e.tok.Pos, e.cause)
}

func (e *EvalError) Unwrap() error {
	return e.cause
}

var _ error = (*EvalError)(nil)
var _ interface{ Unwrap() error } = (*EvalError)(nil)
