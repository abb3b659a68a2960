package chart

import (
	"github.com/matzehuels/stackbar/pkg/errors"
)

// Dataset is one snapshot of chart data.
// Legend and Colors are index-aligned; every bar carries one box per legend label.
type Dataset struct {
	Bars   []Bar    `json:"data" toml:"data"`
	Legend []string `json:"legend" toml:"legend"`
	Colors []string `json:"colors" toml:"colors"`
	Config Config   `json:"config" toml:"config"`
}

// Config holds per-snapshot rendering options.
type Config struct {
	// StartIndex selects which segment sits at the bottom of every stack.
	// Any non-negative value is valid; it is reduced modulo the segment count.
	StartIndex int `json:"start_index" toml:"start_index"`
}

// Bar is a single stacked column.
type Bar struct {
	UniqueID string    `json:"unique_id" toml:"unique_id"`
	Label    string    `json:"label" toml:"label"`
	Boxes    []float64 `json:"boxes" toml:"boxes"`
	Image    string    `json:"image,omitempty" toml:"image"`
}

// Total returns the sum of the bar's segment magnitudes.
func (b Bar) Total() float64 {
	var sum float64
	for _, v := range b.Boxes {
		sum += v
	}
	return sum
}

// Totals returns every bar's total in dataset order.
func (d Dataset) Totals() []float64 {
	totals := make([]float64, len(d.Bars))
	for i, b := range d.Bars {
		totals[i] = b.Total()
	}
	return totals
}

// IDs returns the bars' unique ids in dataset order.
func (d Dataset) IDs() []string {
	ids := make([]string, len(d.Bars))
	for i, b := range d.Bars {
		ids[i] = b.UniqueID
	}
	return ids
}

// Rotate maps stack position i to the segment index it shows.
// It returns 0 when there are no segments.
func (c Config) Rotate(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i + c.StartIndex) % n
}

// Validate rejects datasets the engine cannot stack safely.
//
// Rules:
//   - StartIndex must be non-negative (MALFORMED_INPUT)
//   - Colors must cover every legend label (CONFIG_MISMATCH)
//   - Every bar needs a unique, non-empty id (MALFORMED_INPUT)
//   - Every bar has exactly len(Legend) boxes (CONFIG_MISMATCH)
//   - Every box is finite and non-negative (MALFORMED_INPUT)
//
// Color syntax is checked when the color scale is built.
func (d Dataset) Validate() error {
	if d.Config.StartIndex < 0 {
		return errors.New(errors.ErrCodeMalformedInput, "start_index must be non-negative, got %d", d.Config.StartIndex)
	}
	if len(d.Colors) < len(d.Legend) {
		return errors.New(errors.ErrCodeConfigMismatch, "%d colors for %d legend labels", len(d.Colors), len(d.Legend))
	}

	seen := make(map[string]struct{}, len(d.Bars))
	for i, b := range d.Bars {
		if err := errors.ValidateIdentity(b.UniqueID); err != nil {
			return errors.Wrap(errors.ErrCodeMalformedInput, err, "bar %d", i)
		}
		if _, dup := seen[b.UniqueID]; dup {
			return errors.New(errors.ErrCodeMalformedInput, "duplicate unique_id %q", b.UniqueID)
		}
		seen[b.UniqueID] = struct{}{}

		if len(b.Boxes) != len(d.Legend) {
			return errors.New(errors.ErrCodeConfigMismatch, "bar %q has %d boxes, legend has %d labels",
				b.UniqueID, len(b.Boxes), len(d.Legend))
		}
		for j, v := range b.Boxes {
			if err := errors.ValidateMagnitude(v); err != nil {
				return errors.Wrap(errors.ErrCodeMalformedInput, err, "bar %q box %d", b.UniqueID, j)
			}
		}
	}
	return nil
}
