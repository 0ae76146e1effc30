// Package snap quantizes times to the nearest value of a reference set.
package snap

import (
	"errors"
	"sort"

	"github.com/bwagner/quantize-labels/label"
)

// ErrEmptyReference is returned when a grid is built from a reference
// set with no timestamps. Quantization is undefined in that case.
var ErrEmptyReference = errors.New("reference set is empty")

// Grid is a set of reference timestamps prepared for nearest-neighbor
// lookup. A grid is immutable after creation.
type Grid struct {
	times []float64
}

// NewGrid builds a grid from the given timestamps. Input order does not
// matter and duplicates are tolerated. Returns ErrEmptyReference for an
// empty input.
func NewGrid(times []float64) (*Grid, error) {
	if len(times) == 0 {
		return nil, ErrEmptyReference
	}
	sorted := make([]float64, len(times))
	copy(sorted, times)
	sort.Float64s(sorted)
	return &Grid{times: sorted}, nil
}

// GridFromDocument builds a grid from the start times of a reference
// document. Bare-timestamp records contribute their single value.
func GridFromDocument(doc *label.Document) (*Grid, error) {
	return NewGrid(doc.StartTimes())
}

// Len returns the number of grid points, including duplicates.
func (g *Grid) Len() int {
	return len(g.times)
}

// Nearest returns the grid value closest to t under absolute
// difference. When t is equidistant from two grid values the smaller
// one wins. A t already on the grid is returned unchanged.
func (g *Grid) Nearest(t float64) float64 {
	i := sort.SearchFloat64s(g.times, t)
	if i == 0 {
		return g.times[0]
	}
	if i == len(g.times) {
		return g.times[len(g.times)-1]
	}
	before, after := g.times[i-1], g.times[i]
	if t-before <= after-t {
		return before
	}
	return after
}

// Apply returns a copy of l with its times snapped to the grid. Start
// and end are snapped independently against the same grid;
// bare-timestamp records carry one value and are snapped once.
func (g *Grid) Apply(l label.Label) label.Label {
	out := l
	out.Start = g.Nearest(l.Start)
	if l.Form == label.FormTime {
		out.End = out.Start
	} else {
		out.End = g.Nearest(l.End)
	}
	return out
}
