package scene

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
)

const tickSize = 6

// WriteSVG draws the scene's current state as a standalone SVG document.
// Coordinates are rounded to whole pixels. Images without an href are
// skipped.
func WriteSVG(w io.Writer, g *Graph) error {
	width, height := g.Size()
	elements := g.Elements()

	var buf strings.Builder
	canvas := svg.New(&buf)
	canvas.Start(px(width), px(height), `font-family="sans-serif"`, `font-size="10"`)

	open := false
	for _, e := range elements {
		if e.Kind == KindGroup {
			if open {
				canvas.Gend()
			}
			canvas.Gtransform(fmt.Sprintf("translate(%d,%d)", px(e.Num[AttrX]), px(e.Num[AttrY])))
			open = true
			continue
		}
		drawElement(canvas, e)
	}
	if open {
		canvas.Gend()
	}
	canvas.End()

	_, err := io.WriteString(w, buf.String())
	return err
}

func drawElement(canvas *svg.SVG, e Element) {
	class := classAttr(e.Class)
	switch e.Kind {
	case KindRect:
		style := fmt.Sprintf("fill:%s;fill-opacity:%s", fill(e), num(e, AttrFillOpacity, 1))
		attrs := []string{class, style}
		if v, ok := e.Str[AttrValue]; ok {
			attrs = append(attrs, fmt.Sprintf(`data-value=%q`, v))
		}
		canvas.Rect(px(e.Num[AttrX]), px(e.Num[AttrY]), px(e.Num[AttrWidth]), px(e.Num[AttrHeight]), attrs...)

	case KindText:
		attrs := []string{class, fmt.Sprintf("opacity:%s", num(e, AttrOpacity, 1))}
		if a := e.Str[AttrAnchor]; a != "" {
			attrs = append(attrs, fmt.Sprintf(`text-anchor=%q`, a))
		}
		if b := e.Str[AttrBaseline]; b != "" {
			attrs = append(attrs, fmt.Sprintf(`dominant-baseline=%q`, b))
		}
		if fs, ok := e.Num[AttrFontSize]; ok {
			attrs = append(attrs, fmt.Sprintf(`font-size="%d"`, px(fs)))
		}
		canvas.Text(px(e.Num[AttrX]), px(e.Num[AttrY]), e.Str[AttrText], attrs...)

	case KindImage:
		href := e.Str[AttrHref]
		if href == "" {
			return
		}
		canvas.Image(px(e.Num[AttrX]), px(e.Num[AttrY]), px(e.Num[AttrWidth]), px(e.Num[AttrHeight]), href,
			class, fmt.Sprintf("opacity:%s", num(e, AttrOpacity, 1)))

	case KindAxis:
		drawAxis(canvas, e)
	}
}

func drawAxis(canvas *svg.SVG, e Element) {
	canvas.Gtransform(fmt.Sprintf("translate(%d,%d)", px(e.Num[AttrX]), px(e.Num[AttrY])))
	defer canvas.Gend()

	const stroke = "stroke:#000;shape-rendering:crispEdges"
	length := px(e.Num[AttrLength])
	switch e.Str[AttrOrient] {
	case "left":
		canvas.Line(0, 0, 0, length, classAttr(e.Class), stroke)
		for _, t := range e.Ticks {
			y := px(t.Pos)
			canvas.Line(-tickSize, y, 0, y, stroke)
			canvas.Text(-tickSize-3, y, t.Label, `text-anchor="end"`, `dy=".32em"`)
		}
		if label := e.Str[AttrLabel]; label != "" {
			canvas.Text(-24, 3, label, `transform="rotate(-90)"`, `dy=".71em"`, `text-anchor="end"`)
		}
	default:
		canvas.Line(0, 0, length, 0, classAttr(e.Class), stroke)
		for _, t := range e.Ticks {
			x := px(t.Pos)
			canvas.Line(x, 0, x, tickSize, stroke)
			canvas.Text(x, tickSize+3, t.Label, `text-anchor="middle"`, `dy=".71em"`)
		}
	}
}

func classAttr(class string) string {
	return fmt.Sprintf(`class=%q`, class)
}

func fill(e Element) string {
	if f := e.Str[AttrFill]; f != "" {
		return f
	}
	return "#000000"
}

func num(e Element, attr string, def float64) string {
	v, ok := e.Num[attr]
	if !ok {
		v = def
	}
	return fmt.Sprintf("%.3g", v)
}

func px(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}
