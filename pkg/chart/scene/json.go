package scene

import (
	"encoding/json"
	"io"
)

// Snapshot is the serialized form of a scene.
type Snapshot struct {
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Elements []Element `json:"elements"`
}

// Capture returns a copy of the scene's current state.
func Capture(g *Graph) Snapshot {
	w, h := g.Size()
	return Snapshot{Width: w, Height: h, Elements: g.Elements()}
}

// WriteJSON writes the scene's current state as indented JSON.
func WriteJSON(w io.Writer, g *Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Capture(g))
}
