package scale

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/stackbar/pkg/errors"
)

// Color assigns each legend label the color at the same index.
type Color struct {
	index  map[string]int
	colors []colorful.Color
}

// NewColor pairs labels with colors by position.
// Every label needs a parsable hex color (#rgb or #rrggbb); extra colors are
// ignored. Duplicate labels keep their first color.
func NewColor(labels, colors []string) (Color, error) {
	if len(colors) < len(labels) {
		return Color{}, errors.New(errors.ErrCodeConfigMismatch, "%d colors for %d legend labels", len(colors), len(labels))
	}

	c := Color{
		index:  make(map[string]int, len(labels)),
		colors: make([]colorful.Color, len(labels)),
	}
	for i, label := range labels {
		parsed, err := colorful.Hex(colors[i])
		if err != nil {
			return Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "color %q for label %q", colors[i], label)
		}
		c.colors[i] = parsed
		if _, ok := c.index[label]; !ok {
			c.index[label] = i
		}
	}
	return c, nil
}

// Lookup returns label's color as a normalized "#rrggbb" string.
func (c Color) Lookup(label string) (string, error) {
	col, err := c.Value(label)
	if err != nil {
		return "", err
	}
	return col.Hex(), nil
}

// Value returns label's parsed color.
func (c Color) Value(label string) (colorful.Color, error) {
	i, ok := c.index[label]
	if !ok {
		return colorful.Color{}, errors.New(errors.ErrCodeLookupFailure, "color scale has no label %q", label)
	}
	return c.colors[i], nil
}
