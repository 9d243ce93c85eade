package interpreter

// DefaultDivisionPrecision is the number of fraction digits kept by
// division, which is the only operation that can produce an unbounded
// expansion.
const DefaultDivisionPrecision int32 = 16

type interpreterOpts struct {
	divisionPrecision int32
}

var defaultInterpreterOpts = interpreterOpts{
	divisionPrecision: DefaultDivisionPrecision,
}

type InterpreterOption func(*interpreterOpts)

func WithDivisionPrecision(places int32) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.divisionPrecision = places
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := defaultInterpreterOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.divisionPrecision < 0 {
		opts.divisionPrecision = DefaultDivisionPrecision
	}

	return &opts
}
