// Package label reads and writes line-oriented timed-label files.
//
// Two line shapes are supported, and may be mixed within one file:
//
//	1.234567				a bare timestamp (one value per line)
//	1.234567	2.345678	some text	an Audacity-style label
//
// Fields are tab-separated; files that separate fields with plain
// whitespace are accepted on input. Times are seconds as real numbers.
package label

// Form identifies the on-disk shape of a record, so that a document
// round-trips in the shape it was read in.
type Form int

const (
	// FormSpan is the Audacity label shape: start time, end time, free text.
	FormSpan Form = iota
	// FormTime is a bare timestamp, one per line.
	FormTime
)

// DefaultPrecision is the number of decimal places written for times
// unless the caller configures otherwise.
const DefaultPrecision = 6

// Label is a single timed annotation.
type Label struct {
	// Start is the start time in seconds.
	Start float64
	// End is the end time in seconds. Equal to Start for point labels
	// and for FormTime records.
	End float64
	// Text is the free-text annotation. Empty for FormTime records.
	Text string
	// Form is the on-disk shape this record was read in.
	Form Form
}

// Duration returns End - Start in seconds.
func (l Label) Duration() float64 {
	return l.End - l.Start
}

// IsPoint reports whether the label marks a single instant.
func (l Label) IsPoint() bool {
	return l.End == l.Start
}

// Document is an ordered sequence of labels in source-file order.
// No sorting is applied at any point.
type Document struct {
	Labels []Label
}

// Len returns the number of records.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Labels)
}

// StartTimes returns the start time of every record, in document order.
// FormTime records contribute their single value.
func (d *Document) StartTimes() []float64 {
	if d == nil {
		return nil
	}
	times := make([]float64, 0, len(d.Labels))
	for _, l := range d.Labels {
		times = append(times, l.Start)
	}
	return times
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{Labels: make([]Label, len(d.Labels))}
	copy(out.Labels, d.Labels)
	return out
}
