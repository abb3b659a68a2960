package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/stackbar/pkg/chart/scene"
)

// Terminal colors of the empty canvas and of text.
var (
	rasterBackground = colorful.Color{R: 0.1, G: 0.1, B: 0.1}
	rasterText       = "#e0e0e0"
)

type cell struct {
	bg colorful.Color
	ch rune
}

// raster is a character grid onto which a scene is projected. One cell
// covers (width/cols) × (height/rows) scene pixels.
type raster struct {
	cols, rows int
	sx, sy     float64
	cells      []cell
}

func newRaster(cols, rows int, width, height float64) *raster {
	r := &raster{
		cols:  cols,
		rows:  rows,
		sx:    float64(cols) / width,
		sy:    float64(rows) / height,
		cells: make([]cell, cols*rows),
	}
	for i := range r.cells {
		r.cells[i] = cell{bg: rasterBackground, ch: ' '}
	}
	return r
}

// rasterize draws g's rects and text into a cols × rows grid. Rect fills are
// blended over the background by their fill-opacity, so fading elements
// dim in place.
func rasterize(g *scene.Graph, cols, rows int) string {
	w, h := g.Size()
	if cols < 1 || rows < 1 || w <= 0 || h <= 0 {
		return ""
	}
	r := newRaster(cols, rows, w, h)

	var dx, dy float64
	for _, e := range g.Elements() {
		switch e.Kind {
		case scene.KindGroup:
			dx, dy = e.Num[scene.AttrX], e.Num[scene.AttrY]
		case scene.KindRect:
			r.rect(e, dx, dy)
		case scene.KindText:
			r.text(e, dx, dy)
		}
	}
	return r.String()
}

func (r *raster) rect(e scene.Element, dx, dy float64) {
	fill, err := colorful.Hex(e.Str[scene.AttrFill])
	if err != nil {
		return
	}
	alpha := 1.0
	if v, ok := e.Num[scene.AttrFillOpacity]; ok {
		alpha = min(max(v, 0), 1)
	}
	x0 := int(math.Round((e.Num[scene.AttrX] + dx) * r.sx))
	y0 := int(math.Round((e.Num[scene.AttrY] + dy) * r.sy))
	x1 := int(math.Round((e.Num[scene.AttrX] + dx + e.Num[scene.AttrWidth]) * r.sx))
	y1 := int(math.Round((e.Num[scene.AttrY] + dy + e.Num[scene.AttrHeight]) * r.sy))
	for y := max(y0, 0); y < min(y1, r.rows); y++ {
		for x := max(x0, 0); x < min(x1, r.cols); x++ {
			c := &r.cells[y*r.cols+x]
			c.bg = c.bg.BlendRgb(fill, alpha).Clamped()
		}
	}
}

func (r *raster) text(e scene.Element, dx, dy float64) {
	if v, ok := e.Num[scene.AttrOpacity]; ok && v < 0.5 {
		return
	}
	runes := []rune(e.Str[scene.AttrText])
	if len(runes) == 0 {
		return
	}
	x := int(math.Round((e.Num[scene.AttrX] + dx) * r.sx))
	y := int(math.Round((e.Num[scene.AttrY]+dy)*r.sy)) - 1
	switch e.Str[scene.AttrAnchor] {
	case "middle":
		x -= len(runes) / 2
	case "end":
		x -= len(runes)
	}
	if y < 0 || y >= r.rows {
		return
	}
	for i, ch := range runes {
		if cx := x + i; cx >= 0 && cx < r.cols {
			r.cells[y*r.cols+cx].ch = ch
		}
	}
}

// String renders the grid, merging runs of equal background into one
// styled segment.
func (r *raster) String() string {
	var b strings.Builder
	fg := lipgloss.Color(rasterText)
	for y := 0; y < r.rows; y++ {
		row := r.cells[y*r.cols : (y+1)*r.cols]
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].bg == row[start].bg {
				end++
			}
			var run strings.Builder
			for _, c := range row[start:end] {
				run.WriteRune(c.ch)
			}
			style := lipgloss.NewStyle().Background(lipgloss.Color(row[start].bg.Hex())).Foreground(fg)
			b.WriteString(style.Render(run.String()))
			start = end
		}
		if y < r.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
