package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuminhwan/calculator/internal/calcerrors"
	"github.com/yuminhwan/calculator/internal/token"
)

// LineReader is the subset of *readline.Instance the console needs.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type InputView interface {
	InputMenu() (string, error)
	InputExpression() (string, error)
}

type OutputView interface {
	PrintMenu()
	PrintResult(result string)
	PrintResults(results []string)
	PrintError(err error)
}

// Prompts are shown before each kind of input.
type Prompts struct {
	Menu       string
	Expression string
}

type console struct {
	in       LineReader
	out      io.Writer
	reporter calcerrors.ErrReporter
	prompts  Prompts
}

// Console is the terminal facing input and output of the calculator.
type Console interface {
	InputView
	OutputView
}

func NewConsole(in LineReader, out io.Writer, reporter calcerrors.ErrReporter, prompts Prompts) Console {
	return &console{in: in, out: out, reporter: reporter, prompts: prompts}
}

// InputMenu implements InputView.
func (c *console) InputMenu() (string, error) {
	c.in.SetPrompt(c.prompts.Menu)
	line, err := c.in.Readline()
	return strings.TrimSpace(line), err
}

// InputExpression implements InputView.
func (c *console) InputExpression() (string, error) {
	fmt.Fprintf(c.out, "Enter an expression, tokens separated by spaces (operators: %s)\n", strings.Join(token.Operators(), " "))
	c.in.SetPrompt(c.prompts.Expression)
	line, err := c.in.Readline()
	return strings.TrimRight(line, "\r\n"), err
}

// PrintMenu implements OutputView.
func (c *console) PrintMenu() {
	fmt.Fprintln(c.out, "1. Calculate")
	fmt.Fprintln(c.out, "2. History")
	fmt.Fprintln(c.out, "3. Exit")
}

// PrintResult implements OutputView.
func (c *console) PrintResult(result string) {
	fmt.Fprintln(c.out, result)
}

// PrintResults implements OutputView.
func (c *console) PrintResults(results []string) {
	for _, r := range results {
		fmt.Fprintln(c.out, r)
	}
}

// PrintError implements OutputView.
func (c *console) PrintError(err error) {
	c.reporter.ReportError(err)
}

var _ Console = (*console)(nil)
