package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/yuminhwan/calculator/internal/config"
	"github.com/yuminhwan/calculator/internal/expression"
	"github.com/yuminhwan/calculator/internal/interpreter"
	"github.com/yuminhwan/calculator/internal/parser"
	"github.com/yuminhwan/calculator/internal/view"
)

const (
	exitOK       = 0
	exitUsage    = 64
	exitSoftware = 70
)

type CalculatorApp struct {
	err         error
	cfg         config.Config
	opts        *appOpts
	showPostfix bool
}

func NewCalculatorApp(options ...AppOption) *CalculatorApp {
	return &CalculatorApp{cfg: config.Default(), opts: newAppOpts(options...)}
}

func (app *CalculatorApp) reportError(err error) {
	app.opts.reporter.ReportError(err)
	app.err = err
}

func (app *CalculatorApp) resetError() {
	app.err = nil
}

// Main runs the calculator and returns the process exit code. With
// positional arguments every argument is evaluated as one expression,
// otherwise an interactive session is started.
func (app *CalculatorApp) Main(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			app.opts.reporter.ReportPanic(fmt.Errorf("%v", r))
			code = exitSoftware
		}
	}()

	fs := flag.NewFlagSet("calculator", flag.ContinueOnError)
	fs.SetOutput(app.opts.stderr)
	configPath := fs.String("config", "", "path to a YAML config file (default "+config.DefaultConfigFile+")")
	fs.BoolVar(&app.showPostfix, "postfix", false, "print the postfix form of each expression argument before its result")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		app.reportError(err)
		return exitUsage
	}
	app.cfg = cfg

	if fs.NArg() > 0 {
		err = app.runArgs(fs.Args())
	} else {
		err = app.runPrompt()
	}

	if err != nil {
		app.reportError(err)
	}

	if app.err != nil {
		return exitUsage
	}

	return exitOK
}

func (app *CalculatorApp) runArgs(exprs []string) error {
	printer := parser.NewRPNPrinter()
	for _, raw := range exprs {
		if app.showPostfix {
			postfix, err := expression.ParseAndConvert(raw)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.opts.stdout, printer.Print(postfix))
		}

		result, err := app.calculate(raw)
		if err != nil {
			return err
		}
		fmt.Fprintln(app.opts.stdout, result)
	}
	return nil
}

func (app *CalculatorApp) runPrompt() error {
	in := app.opts.lineReader
	if in == nil {
		rl, err := readline.NewEx(&readline.Config{
			Prompt: app.cfg.MenuPrompt,
			Stdin:  io.NopCloser(app.opts.stdin),
			Stdout: app.opts.stdout,
			Stderr: app.opts.stderr,
		})
		if err != nil {
			return err
		}
		defer rl.Close()
		in = rl
	}

	console := view.NewConsole(in, app.opts.stdout, app.opts.reporter, view.Prompts{
		Menu:       app.cfg.MenuPrompt,
		Expression: app.cfg.ExpressionPrompt,
	})

	err := app.runSession(console)
	if isEndOfInput(err) {
		return nil
	}
	return err
}

func (app *CalculatorApp) runSession(console view.Console) error {
	state := StateRunning
	for state == StateRunning {
		menu, err := app.inputMenu(console)
		if err != nil {
			return err
		}

		switch menu {
		case MenuCalculate:
			if err := app.calculateExpression(console); err != nil {
				return err
			}
		case MenuHistory:
			console.PrintResults(app.opts.repository.FindAll())
		}

		state = state.Next(menu)
	}
	return nil
}

func (app *CalculatorApp) inputMenu(console view.Console) (MenuType, error) {
	for {
		console.PrintMenu()
		command, err := console.InputMenu()
		if err != nil {
			return 0, err
		}

		menu, err := ParseMenu(command)
		if err == nil {
			return menu, nil
		}
		console.PrintError(err)
	}
}

// calculateExpression prompts until one expression evaluates successfully.
func (app *CalculatorApp) calculateExpression(console view.Console) error {
	for {
		raw, err := console.InputExpression()
		if err != nil {
			return err
		}

		result, err := app.calculate(raw)
		if err == nil {
			console.PrintResult(result)
			return nil
		}
		app.reportError(err)
		app.resetError()
	}
}

// calculate evaluates raw, records it in the repository and returns the
// formatted result.
func (app *CalculatorApp) calculate(raw string) (string, error) {
	// Records keep the expression without surrounding whitespace, so history
	// lines read "1 + 2 = 3" however the line was padded.
	expr, err := expression.From(strings.TrimSpace(raw), interpreter.WithDivisionPrecision(app.cfg.DivisionPrecision))
	if err != nil {
		return "", err
	}

	value, err := expr.Calculate()
	if err != nil {
		return "", err
	}

	result := view.Format(value, app.cfg.DecimalPlaces)
	app.opts.repository.Save(view.Record(expr.String(), result))
	return result, nil
}

func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt)
}
