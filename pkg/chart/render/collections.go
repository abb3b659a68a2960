package render

import (
	"strconv"

	"github.com/matzehuels/stackbar/pkg/chart"
	"github.com/matzehuels/stackbar/pkg/chart/animate"
	"github.com/matzehuels/stackbar/pkg/chart/layout"
	"github.com/matzehuels/stackbar/pkg/chart/scene"
)

// Collection names a keyed group of elements. It doubles as the elements'
// class.
type Collection string

const (
	CollectionChart      Collection = "main_chart"
	CollectionAxes       Collection = "axis"
	CollectionLegendRect Collection = "legend-rect"
	CollectionLegendText Collection = "legend-text"
	CollectionBoxes      Collection = "bar-box"
	CollectionTotals     Collection = "bar-label"
	CollectionImages     Collection = "bar-pic"
)

// Axis keys.
const (
	KeyXAxis = "x-axis"
	KeyYAxis = "y-axis"
)

// Collections lists every collection in drawing order.
var Collections = []Collection{
	CollectionChart,
	CollectionAxes,
	CollectionLegendRect,
	CollectionLegendText,
	CollectionBoxes,
	CollectionTotals,
	CollectionImages,
}

type collectionInfo struct {
	kind   scene.Kind
	fade   string // attribute faded on enter and exit; empty never fades
	policy animate.Policy
}

var collectionInfos = map[Collection]collectionInfo{
	CollectionChart:      {kind: scene.KindGroup, policy: animate.Static},
	CollectionAxes:       {kind: scene.KindAxis, policy: animate.Axes},
	CollectionLegendRect: {kind: scene.KindRect, fade: scene.AttrFillOpacity, policy: animate.Legend},
	CollectionLegendText: {kind: scene.KindText, fade: scene.AttrOpacity, policy: animate.Legend},
	CollectionBoxes:      {kind: scene.KindRect, fade: scene.AttrFillOpacity, policy: animate.Boxes},
	CollectionTotals:     {kind: scene.KindText, fade: scene.AttrOpacity, policy: animate.Boxes},
	CollectionImages:     {kind: scene.KindImage, fade: scene.AttrOpacity, policy: animate.Boxes},
}

// ElementID returns the surface id of key within c.
func ElementID(c Collection, key string) string {
	if c == CollectionChart {
		return string(c)
	}
	return string(c) + "/" + key
}

// element is the target state of one keyed element.
type element struct {
	key   string
	num   map[string]float64
	str   map[string]string
	ticks []scene.Tick
}

func chartElements(l layout.Layout) []element {
	return []element{{
		key: string(CollectionChart),
		num: map[string]float64{scene.AttrX: l.Margins.Left, scene.AttrY: l.Margins.Top},
	}}
}

func axisElements(l layout.Layout, ds chart.Dataset, yLabel string) []element {
	return []element{
		axisElement(KeyXAxis, l.XAxis(ds), ""),
		axisElement(KeyYAxis, l.YAxis(), yLabel),
	}
}

func axisElement(key string, a layout.Axis, label string) element {
	ticks := make([]scene.Tick, len(a.Ticks))
	for i, t := range a.Ticks {
		ticks[i] = scene.Tick{Label: t.Label, Pos: t.Pos}
	}
	return element{
		key: key,
		num: map[string]float64{
			scene.AttrX:      a.X,
			scene.AttrY:      a.Y,
			scene.AttrLength: a.Length,
		},
		str: map[string]string{
			scene.AttrOrient: string(a.Orientation),
			scene.AttrLabel:  label,
		},
		ticks: ticks,
	}
}

func legendRectElements(l layout.Layout) ([]element, error) {
	entries := l.LegendEntries()
	out := make([]element, 0, len(entries))
	for _, e := range entries {
		fill, err := l.Colors.Lookup(e.Label)
		if err != nil {
			return nil, err
		}
		r := l.LegendSwatch(e)
		out = append(out, element{
			key: strconv.Itoa(e.Index),
			num: map[string]float64{
				scene.AttrX:      r.X,
				scene.AttrY:      r.Y,
				scene.AttrWidth:  r.W,
				scene.AttrHeight: r.H,
			},
			str: map[string]string{scene.AttrFill: fill},
		})
	}
	return out, nil
}

func legendTextElements(l layout.Layout) []element {
	entries := l.LegendEntries()
	out := make([]element, 0, len(entries))
	for _, e := range entries {
		p := l.LegendText(e)
		out = append(out, element{
			key: strconv.Itoa(e.Index),
			num: map[string]float64{
				scene.AttrX:        p.X,
				scene.AttrY:        p.Y,
				scene.AttrFontSize: layout.LegendFontSize,
			},
			str: map[string]string{
				scene.AttrText:   e.Label,
				scene.AttrAnchor: "end",
			},
		})
	}
	return out
}

func boxElements(l layout.Layout, boxes []layout.Box) ([]element, error) {
	out := make([]element, 0, len(boxes))
	for _, b := range boxes {
		fill, err := l.Colors.Lookup(b.Label)
		if err != nil {
			return nil, err
		}
		r := l.BoxRect(b)
		out = append(out, element{
			key: b.ID,
			num: map[string]float64{
				scene.AttrX:      r.X,
				scene.AttrY:      r.Y,
				scene.AttrWidth:  r.W,
				scene.AttrHeight: r.H,
			},
			str: map[string]string{
				scene.AttrFill:  fill,
				scene.AttrValue: PlainNumber(b.Value),
			},
		})
	}
	return out, nil
}

func totalElements(l layout.Layout, ds chart.Dataset, format func(float64) string) ([]element, error) {
	out := make([]element, 0, len(ds.Bars))
	for i, bar := range ds.Bars {
		p, err := l.TotalAnchor(bar)
		if err != nil {
			return nil, err
		}
		out = append(out, element{
			key: strconv.Itoa(i),
			num: map[string]float64{scene.AttrX: p.X, scene.AttrY: p.Y},
			str: map[string]string{
				scene.AttrText:   format(bar.Total()),
				scene.AttrAnchor: "middle",
			},
		})
	}
	return out, nil
}

func imageElements(l layout.Layout, ds chart.Dataset) ([]element, error) {
	out := make([]element, 0, len(ds.Bars))
	for i, bar := range ds.Bars {
		r, err := l.ImageRect(bar)
		if err != nil {
			return nil, err
		}
		out = append(out, element{
			key: strconv.Itoa(i),
			num: map[string]float64{
				scene.AttrX:      r.X,
				scene.AttrY:      r.Y,
				scene.AttrWidth:  r.W,
				scene.AttrHeight: r.H,
			},
			str: map[string]string{scene.AttrHref: bar.Image},
		})
	}
	return out, nil
}
