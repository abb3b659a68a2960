package layout

import (
	"strconv"

	"github.com/matzehuels/stackbar/pkg/chart"
)

// Rect is an axis-aligned rectangle in plot coordinates (y grows downward).
type Rect struct {
	X, Y, W, H float64
}

// Point is a position in plot coordinates.
type Point struct {
	X, Y float64
}

// BoxRect returns the pixel rectangle of b.
func (l Layout) BoxRect(b Box) Rect {
	top := l.Y.Scale(b.Y1)
	return Rect{
		X: b.X,
		Y: top,
		W: l.X.Width(),
		H: l.Y.Scale(b.Y0) - top,
	}
}

// BoxCenter returns the pixel center of b, where its value overlay is shown.
func (l Layout) BoxCenter(b Box) Point {
	return Point{
		X: b.X + l.X.Width()/2,
		Y: l.Y.Scale(b.Y1 - b.Height()/2),
	}
}

// LegendSwatch returns the color square of legend row e.
// Row 0 is drawn lowest so the legend reads like the stacks.
func (l Layout) LegendSwatch(e LegendEntry) Rect {
	return Rect{
		X: l.Width - LegendSwatch,
		Y: l.legendOffset(e) + LegendTop,
		W: LegendSwatch,
		H: LegendSwatch,
	}
}

// LegendText returns the right-aligned anchor of legend row e's label.
func (l Layout) LegendText(e LegendEntry) Point {
	return Point{
		X: l.Width - LegendTextGap,
		Y: l.legendOffset(e) + LegendTextTop,
	}
}

func (l Layout) legendOffset(e LegendEntry) float64 {
	return float64((len(l.Legend)-e.Row-1)*LegendRowHeight)
}

// TotalAnchor returns the center-bottom anchor of bar's total label.
func (l Layout) TotalAnchor(bar chart.Bar) (Point, error) {
	x, err := l.X.Scale(bar.UniqueID)
	if err != nil {
		return Point{}, err
	}
	return Point{
		X: x + l.X.Width()/2,
		Y: l.Y.Scale(bar.Total()) - TotalGap,
	}, nil
}

// ImageRect returns the square image slot below bar.
func (l Layout) ImageRect(bar chart.Bar) (Rect, error) {
	x, err := l.X.Scale(bar.UniqueID)
	if err != nil {
		return Rect{}, err
	}
	side := l.X.Width()
	return Rect{X: x, Y: l.Y.Scale(0) + ImageGap, W: side, H: side}, nil
}

// Orientation is the side of the plot an axis is drawn on.
type Orientation string

const (
	OrientBottom Orientation = "bottom"
	OrientLeft   Orientation = "left"
)

// Tick is one labeled axis position.
type Tick struct {
	Label string
	Pos   float64
}

// Axis describes an axis group: where it is translated to and its ticks.
type Axis struct {
	Orientation Orientation
	X, Y        float64
	Length      float64
	Ticks       []Tick
}

// XAxis returns the category axis along the plot bottom.
// Ticks sit at band centers and show bar labels rather than ids.
func (l Layout) XAxis(ds chart.Dataset) Axis {
	ticks := make([]Tick, 0, len(ds.Bars))
	for _, bar := range ds.Bars {
		x, err := l.X.Scale(bar.UniqueID)
		if err != nil {
			continue
		}
		ticks = append(ticks, Tick{Label: bar.Label, Pos: x + l.X.Width()/2})
	}
	return Axis{Orientation: OrientBottom, Y: l.Height, Length: l.Width, Ticks: ticks}
}

// YAxis returns the value axis along the plot's left edge.
func (l Layout) YAxis() Axis {
	values := l.Y.Ticks(0)
	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{Label: strconv.FormatFloat(v, 'f', -1, 64), Pos: l.Y.Scale(v)}
	}
	return Axis{Orientation: OrientLeft, Length: l.Height, Ticks: ticks}
}
