package layout

import (
	"strconv"

	"github.com/matzehuels/stackbar/pkg/chart"
)

// Legend row geometry, in pixels.
const (
	LegendRowHeight = 20
	LegendSwatch    = 18
	LegendTop       = 24
	LegendTextTop   = 39
	LegendTextGap   = 24
	LegendFontSize  = 12
)

// Box is one segment of one bar, in data units.
type Box struct {
	ID       string  // BarID + ":" + Segment
	BarID    string  // owning bar's unique_id
	BarIndex int     // owning bar's position in the dataset
	Segment  int     // index into the bar's boxes and the legend
	Position int     // stack position, 0 at the bottom
	Label    string  // legend label of Segment
	Value    float64 // segment magnitude
	Y0, Y1   float64 // interval [Y0, Y1] within [0, total]
	X        float64 // left edge of the bar's band, in pixels
}

// Height returns the box's extent in data units.
func (b Box) Height() float64 { return b.Y1 - b.Y0 }

// BoxID names the box showing segment of bar.
func BoxID(barID string, segment int) string {
	return barID + ":" + strconv.Itoa(segment)
}

// LegendEntry is one legend row.
type LegendEntry struct {
	Label string // legend label
	Index int    // segment index the row describes
	Row   int    // rendered row, 0 at the bottom, matching stack position
}

// Stack computes a bar's boxes bottom to top.
// Position i holds segment cfg.Rotate(i, n); the boxes partition [0, total]
// contiguously. X is left zero.
func Stack(bar chart.Bar, barIndex int, legend []string, cfg chart.Config) []Box {
	n := len(bar.Boxes)
	boxes := make([]Box, 0, n)
	var y0 float64
	for i := 0; i < n; i++ {
		seg := cfg.Rotate(i, n)
		value := bar.Boxes[seg]
		var label string
		if seg < len(legend) {
			label = legend[seg]
		}
		boxes = append(boxes, Box{
			ID:       BoxID(bar.UniqueID, seg),
			BarID:    bar.UniqueID,
			BarIndex: barIndex,
			Segment:  seg,
			Position: i,
			Label:    label,
			Value:    value,
			Y0:       y0,
			Y1:       y0 + value,
		})
		y0 += value
	}
	return boxes
}

// Legend lists legend rows in the same rotated order as the stacks.
func Legend(legend []string, cfg chart.Config) []LegendEntry {
	n := len(legend)
	entries := make([]LegendEntry, n)
	for i := range entries {
		idx := cfg.Rotate(i, n)
		entries[i] = LegendEntry{Label: legend[idx], Index: idx, Row: i}
	}
	return entries
}

// Boxes stacks every bar of ds and places it on the band scale.
func (l Layout) Boxes(ds chart.Dataset) ([]Box, error) {
	boxes := make([]Box, 0, len(ds.Bars)*len(l.Legend))
	for i, bar := range ds.Bars {
		x, err := l.X.Scale(bar.UniqueID)
		if err != nil {
			return nil, err
		}
		for _, b := range Stack(bar, i, l.Legend, l.Config) {
			b.X = x
			boxes = append(boxes, b)
		}
	}
	return boxes, nil
}

// LegendEntries returns the legend rows for this layout.
func (l Layout) LegendEntries() []LegendEntry {
	return Legend(l.Legend, l.Config)
}
