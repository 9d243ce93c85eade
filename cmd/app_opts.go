package cmd

import (
	"io"
	"os"

	"github.com/yuminhwan/calculator/internal/calcerrors"
	"github.com/yuminhwan/calculator/internal/repository"
	"github.com/yuminhwan/calculator/internal/view"
)

type appOpts struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	reporter   calcerrors.ErrReporter
	lineReader view.LineReader
	repository repository.ResultRepository
}

var defaultAppOpts = appOpts{
	stdin:  os.Stdin,
	stdout: os.Stdout,
	stderr: os.Stderr,
}

type AppOption func(*appOpts)

func WithStdin(stdin io.Reader) AppOption {
	return func(opts *appOpts) {
		opts.stdin = stdin
	}
}

func WithStdout(stdout io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stderr = stderr
	}
}

func WithErrorReporter(r calcerrors.ErrReporter) AppOption {
	return func(opts *appOpts) {
		opts.reporter = r
	}
}

// WithLineReader replaces the readline prompt, mostly useful in tests.
func WithLineReader(r view.LineReader) AppOption {
	return func(opts *appOpts) {
		opts.lineReader = r
	}
}

func WithRepository(repo repository.ResultRepository) AppOption {
	return func(opts *appOpts) {
		opts.repository = repo
	}
}

func newAppOpts(options ...AppOption) *appOpts {
	opts := defaultAppOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.reporter == nil {
		opts.reporter = calcerrors.NewErrReporter(opts.stderr)
	}
	if opts.repository == nil {
		opts.repository = repository.NewMemoryRepository()
	}

	return &opts
}
