// Package pipeline turns snapshot files into rendered animation frames.
//
// This package implements the decode → render → sample pipeline used by the
// CLI. The same chart instance renders every snapshot in order, so each
// snapshot's transitions start from the state the previous one left.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Decode: Load and validate each JSON or TOML snapshot
//  2. Render: Reconcile the snapshot against the chart and schedule transitions
//  3. Sample: Advance a virtual clock across the transitions and serialize
//     the scene at evenly spaced points (SVG, JSON)
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Paths:   []string{"q1.json", "q2.json"},
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	last := result.Frames[len(result.Frames)-1].Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackbar/pkg/cache"
	"github.com/matzehuels/stackbar/pkg/chart"
	"github.com/matzehuels/stackbar/pkg/chart/animate"
	"github.com/matzehuels/stackbar/pkg/chart/render"
	"github.com/matzehuels/stackbar/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Player
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 960.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 500.0

	// DefaultFrames is how many frames are sampled per snapshot transition.
	DefaultFrames = 4

	// MaxFrames bounds frames per snapshot.
	MaxFrames = 240
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the snapshot pipeline.
type Options struct {
	// Decode options
	Paths []string `json:"paths"`

	// Render options
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	StartIndex *int    `json:"start_index,omitempty"` // overrides every snapshot's config
	YLabel     string  `json:"y_label,omitempty"`
	Grouped    bool    `json:"grouped,omitempty"` // group thousands in total labels
	Easing     string  `json:"easing,omitempty"`

	// Sample options
	Frames  int      `json:"frames,omitempty"`
	Formats []string `json:"formats,omitempty"`
	Refresh bool     `json:"refresh,omitempty"` // ignore cached artifacts

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Frame is one sampled scene state.
type Frame struct {
	// Snapshot is the index of the snapshot whose transitions are sampled.
	Snapshot int

	// Index counts frames within the snapshot, starting at 1; the last
	// frame shows the settled state.
	Index int

	// Offset is the sample time relative to the snapshot's render.
	Offset time.Duration

	// Artifacts contains serialized scenes keyed by format.
	Artifacts map[string][]byte

	// Cached is true when every artifact came from the cache.
	Cached bool
}

// Name returns the conventional file name of the frame in format.
func (f Frame) Name(format string) string {
	return fmt.Sprintf("frame-%03d-%02d.%s", f.Snapshot, f.Index, format)
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Datasets are the decoded snapshots in input order.
	Datasets []chart.Dataset

	// Reports are the renderer's per-snapshot reconciliation reports.
	Reports []*render.Report

	// Frames are the sampled frames in time order.
	Frames []Frame

	// Stats contains timing and cache information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Snapshots  int
	Frames     int
	CacheHits  int
	DecodeTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Frames == 0 {
		o.Frames = DefaultFrames
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.YLabel == "" {
		o.YLabel = render.DefaultYAxisLabel
	}
	if o.Easing == "" {
		o.Easing = string(animate.DefaultEasing)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults and checks every field.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	if len(o.Paths) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "at least one snapshot path is required")
	}
	for _, p := range o.Paths {
		if err := errors.ValidateSnapshotPath(p); err != nil {
			return err
		}
	}
	if err := errors.ValidateDimension("width", o.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", o.Height); err != nil {
		return err
	}
	if o.Frames < 1 || o.Frames > MaxFrames {
		return errors.New(errors.ErrCodeInvalidInput, "frames must be between 1 and %d, got %d", MaxFrames, o.Frames)
	}
	if o.StartIndex != nil && *o.StartIndex < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "start index must be non-negative, got %d", *o.StartIndex)
	}
	if _, err := animate.ParseEasing(o.Easing); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// ArtifactKeyOpts returns cache key options for one frame.
func (o *Options) ArtifactKeyOpts(format string, frame int) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		Frame:      frame,
		Frames:     o.Frames,
		Width:      o.Width,
		Height:     o.Height,
		StartIndex: o.StartIndex,
		YLabel:     o.YLabel,
		Grouped:    o.Grouped,
		Easing:     o.Easing,
	}
}
