package layout

import (
	"slices"

	"github.com/matzehuels/stackbar/pkg/chart"
	"github.com/matzehuels/stackbar/pkg/chart/scale"
	"github.com/matzehuels/stackbar/pkg/errors"
)

// Fixed chart geometry, in pixels.
const (
	MarginTop   = 30
	MarginLeft  = 60
	MarginRight = 10

	// BottomBase is the part of the bottom margin not taken by the image slot.
	BottomBase = 30

	// BandInset is where the first band may start, measured from the plot's left edge.
	BandInset = 3

	// ValueTop is the pixel offset of the largest total from the plot top.
	ValueTop = 24

	// ImageGap separates the x-axis from the image slot below each bar.
	ImageGap = 30

	// TotalGap lifts the total label above its bar.
	TotalGap = 4
)

// Viewport is the caller-supplied canvas size.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Validate checks both sides are finite and positive.
func (v Viewport) Validate() error {
	if err := errors.ValidateDimension("width", v.Width); err != nil {
		return err
	}
	return errors.ValidateDimension("height", v.Height)
}

// Margins surround the plot area inside the viewport.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Layout holds every scale and derived size for one invocation.
type Layout struct {
	Viewport Viewport
	Margins  Margins

	// Width and Height are the plot area's size inside the margins.
	Width  float64
	Height float64

	X      scale.Band
	Y      scale.Linear
	Colors scale.Color

	Legend []string
	Config chart.Config
}

// New validates ds and vp and builds the layout for them.
// A bottom margin that consumes the canvas leaves a plot height below
// ValueTop; the value scale then maps onto that range as is.
func New(ds chart.Dataset, vp Viewport) (Layout, error) {
	if err := vp.Validate(); err != nil {
		return Layout{}, err
	}
	if err := ds.Validate(); err != nil {
		return Layout{}, err
	}

	colors, err := scale.NewColor(ds.Legend, ds.Colors)
	if err != nil {
		return Layout{}, err
	}

	l := Layout{
		Viewport: vp,
		Margins:  Margins{Top: MarginTop, Right: MarginRight, Left: MarginLeft},
		Colors:   colors,
		Legend:   slices.Clone(ds.Legend),
		Config:   ds.Config,
	}
	l.Width = vp.Width - l.Margins.Left - l.Margins.Right
	if l.Width <= BandInset {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "viewport width %v leaves no room for bars", vp.Width)
	}

	// Pass one: the band width fixes the bottom margin.
	l.X = scale.NewBand(ds.IDs(), BandInset, l.Width, scale.DefaultPadding)
	l.Margins.Bottom = BottomBase + l.X.Width()

	// Pass two: the remaining height fixes the value scale.
	l.Height = vp.Height - l.Margins.Top - l.Margins.Bottom
	l.Y = scale.NewValue(maxTotal(ds), l.Height, ValueTop)
	return l, nil
}

// BandWidth returns the width of every bar column.
func (l Layout) BandWidth() float64 { return l.X.Width() }

func maxTotal(ds chart.Dataset) float64 {
	var m float64
	for _, t := range ds.Totals() {
		m = max(m, t)
	}
	return m
}
