package snap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwagner/quantize-labels/label"
)

// TestNewGrid tests grid construction
func TestNewGrid(t *testing.T) {
	tests := []struct {
		name    string
		times   []float64
		wantErr error
		wantLen int
	}{
		{
			name:    "empty reference set",
			times:   nil,
			wantErr: ErrEmptyReference,
		},
		{
			name:    "single value",
			times:   []float64{3.5},
			wantLen: 1,
		},
		{
			name:    "unsorted input",
			times:   []float64{5.0, 1.0, 2.0},
			wantLen: 3,
		},
		{
			name:    "duplicates tolerated",
			times:   []float64{1.0, 1.0, 2.0},
			wantLen: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.times)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, g)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantLen, g.Len())
			}
		})
	}
}

// TestNewGrid_DoesNotMutateInput tests that the caller's slice stays untouched
func TestNewGrid_DoesNotMutateInput(t *testing.T) {
	times := []float64{5.0, 1.0, 2.0}
	_, err := NewGrid(times)
	require.NoError(t, err)
	assert.Equal(t, []float64{5.0, 1.0, 2.0}, times)
}

// TestGrid_Nearest tests nearest-value lookup including tie-breaking
func TestGrid_Nearest(t *testing.T) {
	g, err := NewGrid([]float64{1.0, 2.0, 5.0})
	require.NoError(t, err)

	tests := []struct {
		name     string
		t        float64
		expected float64
	}{
		{"below range", -3.0, 1.0},
		{"above range", 100.0, 5.0},
		{"closer to left", 1.4, 1.0},
		{"closer to right", 4.9, 5.0},
		{"tie picks smaller", 1.5, 1.0},
		{"tie picks smaller mid-range", 3.5, 2.0},
		{"exact hit", 2.0, 2.0},
		{"exact hit at boundary", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, g.Nearest(tt.t))
		})
	}
}

// TestGrid_Nearest_AlwaysOnGrid tests that results are grid members
func TestGrid_Nearest_AlwaysOnGrid(t *testing.T) {
	ref := []float64{0.0, 0.75, 3.2, 3.25, 10.0}
	g, err := NewGrid(ref)
	require.NoError(t, err)

	onGrid := func(v float64) bool {
		for _, r := range ref {
			if r == v {
				return true
			}
		}
		return false
	}

	for x := -2.0; x <= 12.0; x += 0.13 {
		got := g.Nearest(x)
		assert.True(t, onGrid(got), "Nearest(%v) = %v is not a grid value", x, got)
	}
}

// TestGrid_Nearest_Idempotent tests that snapping a snapped value is a no-op
func TestGrid_Nearest_Idempotent(t *testing.T) {
	g, err := NewGrid([]float64{1.0, 2.0, 5.0})
	require.NoError(t, err)

	for x := -1.0; x <= 7.0; x += 0.31 {
		once := g.Nearest(x)
		assert.Equal(t, once, g.Nearest(once))
	}
}

// TestGrid_Apply tests snapping of whole records
func TestGrid_Apply(t *testing.T) {
	g, err := NewGrid([]float64{1.0, 2.0, 5.0})
	require.NoError(t, err)

	tests := []struct {
		name     string
		in       label.Label
		expected label.Label
	}{
		{
			name:     "span start and end snapped independently",
			in:       label.Label{Start: 1.4, End: 4.9, Text: "a", Form: label.FormSpan},
			expected: label.Label{Start: 1.0, End: 5.0, Text: "a", Form: label.FormSpan},
		},
		{
			name:     "span may collapse to a point",
			in:       label.Label{Start: 1.8, End: 2.2, Text: "b", Form: label.FormSpan},
			expected: label.Label{Start: 2.0, End: 2.0, Text: "b", Form: label.FormSpan},
		},
		{
			name:     "point label stays a point",
			in:       label.Label{Start: 4.2, End: 4.2, Text: "c", Form: label.FormSpan},
			expected: label.Label{Start: 5.0, End: 5.0, Text: "c", Form: label.FormSpan},
		},
		{
			name:     "bare timestamp snapped once",
			in:       label.Label{Start: 0.2, End: 0.2, Form: label.FormTime},
			expected: label.Label{Start: 1.0, End: 1.0, Form: label.FormTime},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, g.Apply(tt.in))
		})
	}
}

// TestGridFromDocument tests grid extraction from a reference document
func TestGridFromDocument(t *testing.T) {
	doc := &label.Document{Labels: []label.Label{
		{Start: 2.0, End: 3.0, Form: label.FormSpan},
		{Start: 0.5, End: 0.5, Form: label.FormTime},
	}}

	g, err := GridFromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())
	// End times of reference spans are not grid points.
	assert.Equal(t, 2.0, g.Nearest(2.9))

	_, err = GridFromDocument(&label.Document{})
	assert.ErrorIs(t, err, ErrEmptyReference)
}

// TestReport tests adjustment accounting
func TestReport(t *testing.T) {
	var r Report
	r.Observe(-0.4, 0.1) // span record, both times moved
	r.Observe(0, 0)      // span record, unchanged
	r.Observe(0.5)       // bare timestamp, moved
	r.Pass()             // filtered out

	assert.Equal(t, 4, r.Records)
	assert.Equal(t, 2, r.Adjusted)
	assert.Equal(t, 5, r.Samples)
	assert.InDelta(t, 1.0, r.TotalAdjustment, 1e-12)
	assert.InDelta(t, 0.2, r.AverageAdjustment(), 1e-12)
}

// TestReport_Empty tests the zero-sample average
func TestReport_Empty(t *testing.T) {
	var r Report
	assert.Equal(t, 0.0, r.AverageAdjustment())
}
