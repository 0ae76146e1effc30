package snap

import "math"

// Report accumulates adjustment statistics over one quantization run.
// Each snapped time value counts as one sample, so a span record
// contributes two samples and a bare-timestamp record one.
type Report struct {
	// Records is the number of target records seen, snapped or not.
	Records int
	// Adjusted is the number of records whose times actually changed.
	Adjusted int
	// Samples is the number of time values snapped.
	Samples int
	// TotalAdjustment is the sum of absolute adjustments in seconds.
	TotalAdjustment float64
}

// Observe records the adjustments applied to one record, one delta per
// snapped time value.
func (r *Report) Observe(deltas ...float64) {
	r.Records++
	changed := false
	for _, d := range deltas {
		r.Samples++
		r.TotalAdjustment += math.Abs(d)
		if d != 0 {
			changed = true
		}
	}
	if changed {
		r.Adjusted++
	}
}

// Pass records a target record that was passed through without
// snapping, e.g. because it did not match a filter.
func (r *Report) Pass() {
	r.Records++
}

// AverageAdjustment returns the mean absolute adjustment per snapped
// time value, or 0 when nothing was snapped.
func (r *Report) AverageAdjustment() float64 {
	if r.Samples == 0 {
		return 0
	}
	return r.TotalAdjustment / float64(r.Samples)
}
