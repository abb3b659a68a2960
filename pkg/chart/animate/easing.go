package animate

import (
	"math"

	"github.com/matzehuels/stackbar/pkg/errors"
)

// Easing names an interpolation curve over t in [0, 1].
type Easing string

const (
	Linear     Easing = "linear"
	EaseIn     Easing = "ease-in"
	EaseOut    Easing = "ease-out"
	EaseInOut  Easing = "ease-in-out"
	CubicIn    Easing = "cubic-in"
	CubicOut   Easing = "cubic-out"
	CubicInOut Easing = "cubic-in-out"
	BackOut    Easing = "back-out"
	ElasticOut Easing = "elastic-out"
	BounceOut  Easing = "bounce-out"
)

// DefaultEasing is used when no curve is configured.
const DefaultEasing = Linear

// Easings lists every supported curve.
var Easings = []Easing{
	Linear, EaseIn, EaseOut, EaseInOut,
	CubicIn, CubicOut, CubicInOut,
	BackOut, ElasticOut, BounceOut,
}

// ParseEasing returns the easing named s. The empty string is [Linear].
func ParseEasing(s string) (Easing, error) {
	if s == "" {
		return Linear, nil
	}
	for _, e := range Easings {
		if string(e) == s {
			return e, nil
		}
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unknown easing %q", s)
}

// Apply maps progress t to eased progress. t is clamped to [0, 1] and the
// endpoints are exact for every curve.
func (e Easing) Apply(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	switch e {
	case EaseIn:
		return t * t

	case EaseOut:
		return t * (2 - t)

	case EaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t

	case CubicIn:
		return t * t * t

	case CubicOut:
		t2 := 1 - t
		return 1 - t2*t2*t2

	case CubicInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		t2 := -2*t + 2
		return 1 - t2*t2*t2/2

	case BackOut:
		c1 := 1.70158
		c3 := c1 + 1
		t2 := t - 1
		return 1 + c3*t2*t2*t2 + c1*t2*t2

	case ElasticOut:
		c4 := (2 * math.Pi) / 3
		return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1

	case BounceOut:
		return bounceOut(t)

	default:
		return t
	}
}

func bounceOut(t float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}
