package render

import (
	"github.com/matzehuels/stackbar/pkg/chart/layout"
	"github.com/matzehuels/stackbar/pkg/chart/scene"
	"github.com/matzehuels/stackbar/pkg/errors"
)

// HoverID is the surface id of the box value overlay.
const HoverID = "box_value_text"

// Hover shows boxID's value centered on the box. Only one overlay exists at
// a time; hovering another box moves it. The overlay is not a bound element
// and never animates.
func (r *Renderer) Hover(boxID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.boxes[boxID]
	if !ok || r.layout == nil {
		return errors.New(errors.ErrCodeLookupFailure, "no bound box %q", boxID)
	}
	r.unhover()

	r.surface.Create(HoverID, scene.KindText, HoverID)
	r.surface.SetNum(HoverID, scene.AttrOpacity, 1)
	r.surface.SetStr(HoverID, scene.AttrAnchor, "middle")
	r.surface.SetStr(HoverID, scene.AttrBaseline, "central")
	r.placeHover(b)
	r.hover = boxID
	return nil
}

// placeHover moves the overlay to b's center in the current layout and shows
// its value. Re-renders call it so the overlay follows the box.
func (r *Renderer) placeHover(b layout.Box) {
	p := r.layout.BoxCenter(b)
	r.surface.SetNum(HoverID, scene.AttrX, p.X)
	r.surface.SetNum(HoverID, scene.AttrY, p.Y)
	r.surface.SetStr(HoverID, scene.AttrText, PlainNumber(b.Value))
}

// Unhover removes the overlay, if any.
func (r *Renderer) Unhover() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unhover()
}

// Hovered returns the box the overlay shows, or "".
func (r *Renderer) Hovered() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hover
}

func (r *Renderer) unhover() {
	if r.hover == "" {
		return
	}
	r.surface.Remove(HoverID)
	r.hover = ""
}
