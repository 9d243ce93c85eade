package calcerrors

import (
	"fmt"
	"io"
)

// ErrReporter prints errors for the user. ReportPanic is for failures that
// end the process, ReportError for those the session recovers from.
type ErrReporter interface {
	ReportPanic(err error)
	ReportError(err error)
}

type errReporter struct {
	w io.Writer
}

func NewErrReporter(w io.Writer) ErrReporter {
	return &errReporter{w: w}
}

// ReportPanic implements ErrReporter.
func (e *errReporter) ReportPanic(err error) {
	e.report("FATAL", err)
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	e.report("ERROR", err)
}

func (e *errReporter) report(level string, err error) {
	fmt.Fprintf(e.w, "%s %v\n", level, err)
}

var _ ErrReporter = (*errReporter)(nil)
