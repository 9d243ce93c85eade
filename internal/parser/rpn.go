package parser

import (
	"strings"

	"github.com/yuminhwan/calculator/internal/token"
)

type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

// Print renders a postfix sequence as space separated lexemes.
func (p *RPNPrinter) Print(tokens []token.Token) string {
	out := new(strings.Builder)
	for i, tok := range tokens {
		if i > 0 {
			_, _ = out.WriteString(" ")
		}
		_, _ = out.WriteString(tok.Lexeme)
	}
	return out.String()
}
