package interpreter_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuminhwan/calculator/internal/calcerrors"
	"github.com/yuminhwan/calculator/internal/interpreter"
	"github.com/yuminhwan/calculator/internal/parser"
	"github.com/yuminhwan/calculator/internal/scanner"
	"github.com/yuminhwan/calculator/internal/token"
)

func TestEvaluate(t *testing.T) {
	testcases := []struct {
		name          string
		input         string
		expectedEval  string
		expectedError error
	}{
		{name: `single number`, input: `7`, expectedEval: `7`},
		{name: `sum`, input: `1 2 +`, expectedEval: `3`},
		{name: `minus order`, input: `5 3 -`, expectedEval: `2`},
		{name: `division order`, input: `6 3 /`, expectedEval: `2`},
		{name: `precedence`, input: `1 3 2 / +`, expectedEval: `2.5`},
		{name: `left associative`, input: `1 5 / 3 /`, expectedEval: `0.06666666666666667`},
		{name: `right grouped`, input: `1 5 3 / /`, expectedEval: `0.6`},
		{name: `decimal exact`, input: `0.1 0.2 +`, expectedEval: `0.3`},
		{name: `literal precision`, input: `2.012 1000 *`, expectedEval: `2012`},
		{name: `signed literals`, input: `-1.5 3.5 * -5.5 2.012 / +`, expectedEval: `-7.9835984095427435`},
		{name: `tiny quotient`, input: `1 30000000000000000 /`, expectedEval: `0.00000000000000003333333333333333`},
		{name: `tiny dividend`, input: `0.00000000000000001 3 /`, expectedEval: `0.000000000000000003333333333333333`},
		{name: `large dividend keeps fraction digits`, input: `100000000000000000000 3 /`, expectedEval: `33333333333333333333.3333333333333333`},
		{name: `division by zero`, input: `5 0 /`, expectedError: calcerrors.ErrDivisionByZero},
		{name: `division by signed zero`, input: `5 -0.0 /`, expectedError: calcerrors.ErrDivisionByZero},
		{name: `extra operator`, input: `1 2 + +`, expectedError: calcerrors.ErrMalformedPostfix},
		{name: `operator first`, input: `+ 1 2`, expectedError: calcerrors.ErrMalformedPostfix},
		{name: `leftover operands`, input: `1 2 3 +`, expectedError: calcerrors.ErrMalformedPostfix},
	}

	eval := interpreter.NewInterpreter()
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := scanner.Tokenize(tc.input)
			require.NoError(t, err)

			value, err := eval.Evaluate(tokens)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.True(t, decimal.RequireFromString(tc.expectedEval).Equal(value), "got %s", value)
			}
		})
	}
}

func TestEvaluateEmpty(t *testing.T) {
	_, err := interpreter.NewInterpreter().Evaluate(nil)
	assert.ErrorIs(t, err, calcerrors.ErrMalformedPostfix)
}

func TestEvaluateReportsOperator(t *testing.T) {
	tokens, err := scanner.Tokenize("1 0 / 2 +")
	require.NoError(t, err)

	_, err = interpreter.NewInterpreter().Evaluate(tokens)
	var evalErr *calcerrors.EvalError
	require.ErrorAs(t, err, &evalErr)
	assert.EqualError(t, err, "evaluation error at '/' (token 2): division by zero.")
}

func TestWithDivisionPrecision(t *testing.T) {
	tokens, err := scanner.Tokenize("2 3 /")
	require.NoError(t, err)

	value, err := interpreter.NewInterpreter(interpreter.WithDivisionPrecision(4)).Evaluate(tokens)
	require.NoError(t, err)
	assert.Equal(t, "0.6667", value.String())
}

func TestDivisionKeepsSignificantDigits(t *testing.T) {
	testcases := []struct {
		input    string
		expected string
	}{
		{`1 30000000000000000 / 30000000000000000 *`, `1`},
		{`0.00000000000000001 3 / 300000000000000000 *`, `1`},
		{`1 3 / 3 *`, `1`},
	}

	eval := interpreter.NewInterpreter()
	for _, tc := range testcases {
		t.Run(tc.input, func(t *testing.T) {
			tokens, err := scanner.Tokenize(tc.input)
			require.NoError(t, err)

			value, err := eval.Evaluate(tokens)
			require.NoError(t, err)
			assert.False(t, value.IsZero())
			assert.Equal(t, tc.expected, value.Round(10).String())
		})
	}
}

func TestEvaluateConvertedInfix(t *testing.T) {
	eval := interpreter.NewInterpreter()

	evaluate := func(input string) decimal.Decimal {
		t.Helper()
		tokens, err := scanner.Tokenize(input)
		require.NoError(t, err)
		postfix, err := parser.ToPostfix(tokens)
		require.NoError(t, err)
		value, err := eval.Evaluate(postfix)
		require.NoError(t, err)
		return value
	}

	assert.Equal(t, "7", evaluate("1 + 2 * 3").String())
	assert.Equal(t, "4", evaluate("1 + 9 / 3").String())
	assert.Equal(t, "4", evaluate("1 + 2 * 6 / 4").String())
	assert.Equal(t, "3", evaluate("8 - 3 - 2").String())
	assert.Equal(t, "-7.9835984095427435", evaluate("-1.5 * 3.5 + -5.5 / 2.012").String())
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	postfix := []token.Token{
		token.NewNumber("1", decimal.NewFromInt(1), 0),
		token.NewNumber("2", decimal.NewFromInt(2), 1),
		token.NewOperator(token.PLUS, "+", 2),
	}
	original := append([]token.Token(nil), postfix...)

	_, err := interpreter.NewInterpreter().Evaluate(postfix)
	require.NoError(t, err)
	assert.Equal(t, original, postfix)
}
