package scanner

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yuminhwan/calculator/internal/calcerrors"
	"github.com/yuminhwan/calculator/internal/token"
)

// Scanner splits a raw expression into number and operator tokens.
type Scanner interface {
	Scan() ([]token.Token, error)
}

// An optional minus sign, digits, and at most one fraction part.
var numberPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

type scanner struct {
	source []string
	tokens []token.Token
	err    error
}

// NewScanner returns a new Scanner. Tokens are separated by whitespace
// only: "1+2" is a single lexeme and is rejected as such.
func NewScanner(input string) Scanner {
	return &scanner{source: strings.Fields(input)}
}

// Tokenize is a shorthand for NewScanner(input).Scan().
func Tokenize(input string) ([]token.Token, error) {
	return NewScanner(input).Scan()
}

// Scan implements Scanner.
//
// Alternation of numbers and operators is not checked here, the parser
// owns it.
func (s *scanner) Scan() ([]token.Token, error) {
	if len(s.source) == 0 {
		return nil, calcerrors.ErrInvalidExpression
	}

	s.tokens = make([]token.Token, 0, len(s.source))
	for pos := 0; pos < len(s.source) && !s.hasErr(); pos++ {
		s.scanToken(pos)
	}

	if s.hasErr() {
		return nil, s.err
	}
	return s.tokens, nil
}

func (s *scanner) hasErr() bool {
	return s.err != nil
}

func (s *scanner) scanToken(pos int) {
	lexeme := s.source[pos]

	if t, ok := token.LookupOperator(lexeme); ok {
		s.tokens = append(s.tokens, token.NewOperator(t, lexeme, pos))
		return
	}

	if numberPattern.MatchString(lexeme) {
		s.number(lexeme, pos)
		return
	}

	s.reportError()
}

func (s *scanner) number(lexeme string, pos int) {
	value, err := decimal.NewFromString(lexeme)
	if err != nil {
		s.reportError()
		return
	}
	s.tokens = append(s.tokens, token.NewNumber(lexeme, value, pos))
}

func (s *scanner) reportError() {
	s.err = calcerrors.ErrInvalidExpression
}

var _ Scanner = (*scanner)(nil)
