package scale

import (
	"math"

	"github.com/matzehuels/stackbar/pkg/errors"
)

// DefaultPadding is the fraction of each step left empty between bands.
// The same fraction is used for the outer padding at both ends.
const DefaultPadding = 0.1

// Band assigns each key a column of uniform width inside a pixel range.
// Steps are whole pixels; leftover space is split evenly at both ends.
type Band struct {
	index  map[string]int
	domain []string
	start  float64
	step   float64
	width  float64
}

// NewBand lays out len(domain) bands across [lo, hi].
// With n keys and padding p the step is floor((hi-lo)/(n-p+2p)) and the band
// width is round(step*(1-p)). Duplicate keys keep their first position.
func NewBand(domain []string, lo, hi, padding float64) Band {
	b := Band{index: make(map[string]int, len(domain))}
	for _, k := range domain {
		if _, ok := b.index[k]; ok {
			continue
		}
		b.index[k] = len(b.domain)
		b.domain = append(b.domain, k)
	}

	n := float64(len(b.domain))
	if n == 0 || hi <= lo {
		b.start = lo
		return b
	}

	span := hi - lo
	b.step = math.Floor(span / (n - padding + 2*padding))
	b.start = lo + roundHalfUp((span-(n-padding)*b.step)/2)
	b.width = roundHalfUp(b.step * (1 - padding))
	return b
}

// Scale returns the left edge of key's band.
func (b Band) Scale(key string) (float64, error) {
	i, ok := b.index[key]
	if !ok {
		return 0, errors.New(errors.ErrCodeLookupFailure, "band scale has no key %q", key)
	}
	return b.start + float64(i)*b.step, nil
}

// Width returns the rounded width of every band.
func (b Band) Width() float64 { return b.width }

// Step returns the distance between the left edges of adjacent bands.
func (b Band) Step() float64 { return b.step }

// Domain returns the keys in band order.
func (b Band) Domain() []string { return append([]string(nil), b.domain...) }

// Len returns the number of distinct keys.
func (b Band) Len() int { return len(b.domain) }
