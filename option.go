package quantizelabels

import (
	"io"

	"github.com/bwagner/quantize-labels/condition"
	"github.com/bwagner/quantize-labels/label"
	"github.com/bwagner/quantize-labels/logger"
)

// Option represents a modification of the Quantizer's default behavior.
type Option func(*Quantizer)

// WithLogger sets a custom logger.
//
// Example:
//
//	customLogger := logger.NewLogger(logger.DEBUG, os.Stderr)
//	q := quantizelabels.New(quantizelabels.WithLogger(customLogger))
func WithLogger(log logger.Logger) Option {
	return func(q *Quantizer) {
		logger.SetDefault(log)
	}
}

// WithLogLevel sets the log level on the default logger.
//
// Example:
//
//	q := quantizelabels.New(quantizelabels.WithLogLevel(logger.DEBUG))
func WithLogLevel(level logger.Level) Option {
	return func(q *Quantizer) {
		logger.GetDefault().SetLevel(level)
	}
}

// WithLogOutput directs logs to the given writer at the given level.
//
// Example:
//
//	logFile, _ := os.OpenFile("quantize.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
//	q := quantizelabels.New(quantizelabels.WithLogOutput(logFile, logger.INFO))
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(q *Quantizer) {
		logger.SetDefault(logger.NewLogger(level, output))
	}
}

// WithDiscardLog disables all log output.
func WithDiscardLog() Option {
	return func(q *Quantizer) {
		logger.SetDefault(logger.NewDiscardLogger())
	}
}

// WithVerbose enables per-record adjustment logging. Shorthand for
// lowering the log level to DEBUG.
func WithVerbose(verbose bool) Option {
	return func(q *Quantizer) {
		if verbose {
			logger.GetDefault().SetLevel(logger.DEBUG)
		}
	}
}

// WithInPlace writes the quantized labels back over the target file
// instead of the output writer.
func WithInPlace(inPlace bool) Option {
	return func(q *Quantizer) {
		q.inPlace = inPlace
	}
}

// WithOutput sets the destination for quantized labels when not in
// in-place mode. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(q *Quantizer) {
		q.output = w
	}
}

// WithPrecision sets the number of decimal places written for times.
// Negative values select the default of 6.
func WithPrecision(precision int) Option {
	return func(q *Quantizer) {
		if precision < 0 {
			precision = label.DefaultPrecision
		}
		q.precision = precision
	}
}

// WithFilter restricts quantization to records matching the given
// expression; other records pass through unchanged. The expression is
// compiled on first use and an invalid one fails the run.
//
// Example:
//
//	q := quantizelabels.New(quantizelabels.WithFilter("duration > 0.5"))
func WithFilter(expression string) Option {
	return func(q *Quantizer) {
		q.filterExpr = expression
		q.filter = nil
	}
}

// WithCondition sets a pre-compiled filter condition directly.
func WithCondition(cond condition.Condition) Option {
	return func(q *Quantizer) {
		q.filter = cond
	}
}
