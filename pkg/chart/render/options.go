package render

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackbar/pkg/chart/animate"
)

// DefaultYAxisLabel is the value axis title.
const DefaultYAxisLabel = "Value"

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger partition sizes are reported to.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithClock sets the time source transitions are scheduled against.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.clock = now
		}
	}
}

// WithYAxisLabel sets the value axis title.
func WithYAxisLabel(label string) Option {
	return func(r *Renderer) { r.yLabel = label }
}

// WithTotalFormat sets how bar totals are printed above each bar.
func WithTotalFormat(f func(float64) string) Option {
	return func(r *Renderer) {
		if f != nil {
			r.format = f
		}
	}
}

// WithEasing sets the curve every transition follows.
func WithEasing(e animate.Easing) Option {
	return func(r *Renderer) { r.easing = e }
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
