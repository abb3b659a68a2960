package scale

import "math"

// DefaultTicks is the approximate tick count used when callers pass zero.
const DefaultTicks = 10

// Linear is a continuous mapping from a numeric domain to a numeric range.
// Outputs are rounded to whole units.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear maps [d0, d1] onto [r0, r1].
// A degenerate domain (d1 == d0) is widened to [d0, d0+1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	if d1 == d0 {
		d1 = d0 + 1
	}
	return Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

// NewValue builds the vertical value scale for a stacked chart.
// It maps [0, maxTotal] to [plotHeight, top]; maxTotal is floored to 1 so an
// all-zero dataset still yields finite, zero-height boxes.
func NewValue(maxTotal, plotHeight, top float64) Linear {
	return NewLinear(0, math.Max(maxTotal, 1), plotHeight, top)
}

// Scale maps v into the range and rounds the result.
func (l Linear) Scale(v float64) float64 {
	t := (v - l.d0) / (l.d1 - l.d0)
	return roundHalfUp(l.r0 + t*(l.r1-l.r0))
}

// Invert maps a range value back into the domain without rounding.
func (l Linear) Invert(y float64) float64 {
	if l.r1 == l.r0 {
		return l.d0
	}
	t := (y - l.r0) / (l.r1 - l.r0)
	return l.d0 + t*(l.d1-l.d0)
}

// Domain returns the domain bounds.
func (l Linear) Domain() (float64, float64) { return l.d0, l.d1 }

// Range returns the range bounds.
func (l Linear) Range() (float64, float64) { return l.r0, l.r1 }

// Ticks returns roughly count evenly spaced, human-friendly values covering
// the domain. Steps are 1, 2 or 5 times a power of ten.
func (l Linear) Ticks(count int) []float64 {
	if count <= 0 {
		count = DefaultTicks
	}
	lo, hi := math.Min(l.d0, l.d1), math.Max(l.d0, l.d1)
	span := hi - lo
	if span <= 0 {
		return []float64{lo}
	}

	step := math.Pow(10, math.Floor(math.Log10(span/float64(count))))
	switch err := float64(count) / span * step; {
	case err <= 0.15:
		step *= 10
	case err <= 0.35:
		step *= 5
	case err <= 0.75:
		step *= 2
	}

	start := math.Ceil(lo/step) * step
	stop := math.Floor(hi/step)*step + step*0.5

	var ticks []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v >= stop {
			break
		}
		ticks = append(ticks, math.Round(v/step)*step)
	}
	return ticks
}
