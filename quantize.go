package quantizelabels

import (
	"fmt"
	"io"
	"os"

	"github.com/bwagner/quantize-labels/condition"
	"github.com/bwagner/quantize-labels/label"
	"github.com/bwagner/quantize-labels/logger"
	"github.com/bwagner/quantize-labels/snap"
)

// Quantizer is the main interface of quantize-labels. It holds the
// configured behavior and runs the read, snap, write pipeline.
//
// Usage:
//
//	q := quantizelabels.New(quantizelabels.WithInPlace(true))
//	report, err := q.QuantizeFile("reference.txt", "target.txt")
type Quantizer struct {
	inPlace   bool
	precision int
	output    io.Writer

	filterExpr string
	filter     condition.Condition
}

// New creates a Quantizer. Defaults: output to stdout, 6 decimal
// places, no filter, not in place.
func New(options ...Option) *Quantizer {
	q := &Quantizer{
		precision: label.DefaultPrecision,
		output:    os.Stdout,
	}
	for _, option := range options {
		option(q)
	}
	return q
}

// Quantize snaps every time value of target to the grid formed by the
// start times of reference. The inputs are not mutated. Returns the
// transformed document and the adjustment report.
//
// The returned document has exactly the records of target, in order,
// with unchanged text; only numeric fields differ. Records not matching
// the configured filter are passed through untouched.
func (q *Quantizer) Quantize(reference, target *label.Document) (*label.Document, *snap.Report, error) {
	grid, err := snap.GridFromDocument(reference)
	if err != nil {
		return nil, nil, err
	}
	filter, err := q.compiledFilter()
	if err != nil {
		return nil, nil, err
	}

	out := &label.Document{Labels: make([]label.Label, 0, target.Len())}
	report := &snap.Report{}
	for i, l := range target.Labels {
		if filter != nil && !filter.Evaluate(filterEnv(i, l)) {
			out.Labels = append(out.Labels, l)
			report.Pass()
			continue
		}

		snapped := grid.Apply(l)
		startDelta := snapped.Start - l.Start
		if l.Form == label.FormTime {
			report.Observe(startDelta)
			logAdjustment(i, "time", l.Start, snapped.Start, q.precision)
		} else {
			endDelta := snapped.End - l.End
			report.Observe(startDelta, endDelta)
			logAdjustment(i, "start", l.Start, snapped.Start, q.precision)
			logAdjustment(i, "end", l.End, snapped.End, q.precision)
		}
		out.Labels = append(out.Labels, snapped)
	}
	return out, report, nil
}

// QuantizeFile runs the full pipeline on two files. The result is
// written back over targetPath when in-place mode is on, otherwise to
// the configured output writer. Nothing is written when any stage
// fails.
func (q *Quantizer) QuantizeFile(referencePath, targetPath string) (*snap.Report, error) {
	reference, err := label.ReadFile(referencePath)
	if err != nil {
		return nil, fmt.Errorf("reference file: %w", err)
	}
	target, err := label.ReadFile(targetPath)
	if err != nil {
		return nil, fmt.Errorf("target file: %w", err)
	}

	out, report, err := q.Quantize(reference, target)
	if err != nil {
		return nil, err
	}

	if q.inPlace {
		if err := label.WriteFile(targetPath, out, q.precision); err != nil {
			return nil, err
		}
	} else {
		w := q.output
		if w == nil {
			w = os.Stdout
		}
		if err := label.Write(w, out, q.precision); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// compiledFilter returns the configured filter, compiling a pending
// expression on first use.
func (q *Quantizer) compiledFilter() (condition.Condition, error) {
	if q.filter != nil {
		return q.filter, nil
	}
	if q.filterExpr == "" {
		return nil, nil
	}
	cond, err := condition.NewExprCondition(q.filterExpr)
	if err != nil {
		return nil, fmt.Errorf("filter expression: %w", err)
	}
	q.filter = cond
	return cond, nil
}

// filterEnv exposes one record to a filter expression.
func filterEnv(index int, l label.Label) map[string]interface{} {
	return map[string]interface{}{
		"start":    l.Start,
		"end":      l.End,
		"duration": l.Duration(),
		"text":     l.Text,
		"index":    index,
	}
}

func logAdjustment(index int, field string, from, to float64, precision int) {
	if from == to {
		return
	}
	logger.Debug("record %d: %s %.*f -> %.*f (%+.*f)",
		index, field, precision, from, precision, to, precision, to-from)
}
