// Package scene is a retained, backend-neutral drawing surface.
//
// A [Graph] holds flat, ordered elements with numeric and string attributes.
// The renderer creates and mutates elements through it, the animation
// scheduler writes interpolated attribute values into it, and sinks
// ([WriteSVG], [WriteJSON]) serialize whatever state it holds at the moment
// they run. Drawing order is creation order.
package scene

import (
	"maps"
	"slices"
	"sync"
)

// Kind is an element's shape.
type Kind string

const (
	KindGroup Kind = "group"
	KindRect  Kind = "rect"
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindAxis  Kind = "axis"
)

// Attribute names shared by the renderer and the sinks.
const (
	AttrX           = "x"
	AttrY           = "y"
	AttrWidth       = "width"
	AttrHeight      = "height"
	AttrOpacity     = "opacity"
	AttrFillOpacity = "fill-opacity"
	AttrFontSize    = "font-size"
	AttrLength      = "length"

	AttrFill     = "fill"
	AttrText     = "text"
	AttrAnchor   = "text-anchor"
	AttrBaseline = "dominant-baseline"
	AttrHref     = "href"
	AttrValue    = "data-value"
	AttrOrient   = "orient"
	AttrLabel    = "label"
)

// Tick is one axis tick in the axis' own coordinates.
type Tick struct {
	Label string  `json:"label"`
	Pos   float64 `json:"pos"`
}

// Element is one drawable node.
// Group elements translate every element created after them by (x, y);
// nesting is one level deep.
type Element struct {
	ID    string             `json:"id"`
	Kind  Kind               `json:"kind"`
	Class string             `json:"class,omitempty"`
	Num   map[string]float64 `json:"num,omitempty"`
	Str   map[string]string  `json:"str,omitempty"`
	Ticks []Tick             `json:"ticks,omitempty"`
}

func (e *Element) clone() Element {
	c := *e
	c.Num = maps.Clone(e.Num)
	c.Str = maps.Clone(e.Str)
	c.Ticks = slices.Clone(e.Ticks)
	return c
}

// Graph is a retained scene. It is safe for concurrent use.
type Graph struct {
	mu     sync.RWMutex
	width  float64
	height float64
	order  []string
	nodes  map[string]*Element
}

// New returns an empty scene of the given canvas size.
func New(width, height float64) *Graph {
	return &Graph{
		width:  width,
		height: height,
		nodes:  make(map[string]*Element),
	}
}

// Size returns the canvas size.
func (g *Graph) Size() (float64, float64) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.width, g.height
}

// Resize changes the canvas size.
func (g *Graph) Resize(width, height float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.width, g.height = width, height
}

// Create appends a new element. It returns false, leaving the scene
// unchanged, if id already exists.
func (g *Graph) Create(id string, kind Kind, class string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.nodes[id]; ok {
		return false
	}
	g.nodes[id] = &Element{
		ID:    id,
		Kind:  kind,
		Class: class,
		Num:   make(map[string]float64),
		Str:   make(map[string]string),
	}
	g.order = append(g.order, id)
	return true
}

// Has reports whether id exists.
func (g *Graph) Has(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// Num returns a numeric attribute.
func (g *Graph) Num(id, attr string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.nodes[id]
	if !ok {
		return 0, false
	}
	v, ok := e.Num[attr]
	return v, ok
}

// SetNum sets a numeric attribute. Unknown ids are ignored.
func (g *Graph) SetNum(id, attr string, v float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if e, ok := g.nodes[id]; ok {
		e.Num[attr] = v
	}
}

// Str returns a string attribute.
func (g *Graph) Str(id, attr string) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.nodes[id]
	if !ok {
		return "", false
	}
	v, ok := e.Str[attr]
	return v, ok
}

// SetStr sets a string attribute. Unknown ids are ignored.
func (g *Graph) SetStr(id, attr, v string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if e, ok := g.nodes[id]; ok {
		e.Str[attr] = v
	}
}

// SetTicks replaces an axis element's ticks.
func (g *Graph) SetTicks(id string, ticks []Tick) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if e, ok := g.nodes[id]; ok {
		e.Ticks = slices.Clone(ticks)
	}
}

// Remove deletes id. Unknown ids are ignored.
func (g *Graph) Remove(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.nodes[id]; !ok {
		return
	}
	delete(g.nodes, id)
	g.order = slices.DeleteFunc(g.order, func(s string) bool { return s == id })
}

// Element returns a copy of id.
func (g *Graph) Element(id string) (Element, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.nodes[id]
	if !ok {
		return Element{}, false
	}
	return e.clone(), true
}

// Elements returns copies of every element in drawing order.
func (g *Graph) Elements() []Element {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Element, len(g.order))
	for i, id := range g.order {
		out[i] = g.nodes[id].clone()
	}
	return out
}

// ByClass returns copies of the elements with class, in drawing order.
func (g *Graph) ByClass(class string) []Element {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []Element
	for _, id := range g.order {
		if e := g.nodes[id]; e.Class == class {
			out = append(out, e.clone())
		}
	}
	return out
}

// Len returns the number of elements.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.order)
}
