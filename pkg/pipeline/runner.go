package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"github.com/matzehuels/stackbar/pkg/cache"
	"github.com/matzehuels/stackbar/pkg/chart"
	"github.com/matzehuels/stackbar/pkg/chart/animate"
	"github.com/matzehuels/stackbar/pkg/chart/layout"
	"github.com/matzehuels/stackbar/pkg/chart/render"
	"github.com/matzehuels/stackbar/pkg/chart/scene"
	"github.com/matzehuels/stackbar/pkg/errors"
	"github.com/matzehuels/stackbar/pkg/observability"
)

// epoch anchors the pipeline's virtual clock.
var epoch = time.Unix(0, 0).UTC()

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; each Execute
// builds its own chart instance. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Load reads and validates one snapshot and returns it with its content
// hash. Decoded snapshots are cached by content, so a snapshot that was
// valid once is not decoded again.
func (r *Runner) Load(ctx context.Context, path string) (chart.Dataset, string, error) {
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnDecodeStart(ctx, path)

	ds, hash, err := r.load(ctx, path)
	hooks.OnDecodeComplete(ctx, path, len(ds.Bars), time.Since(start), err)
	return ds, hash, err
}

func (r *Runner) load(ctx context.Context, path string) (chart.Dataset, string, error) {
	if err := errors.ValidateSnapshotPath(path); err != nil {
		return chart.Dataset{}, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return chart.Dataset{}, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "snapshot %s", path)
		}
		return chart.Dataset{}, "", fmt.Errorf("read %s: %w", path, err)
	}
	format := chart.FormatOf(path)
	hash := cache.Hash(append([]byte(format+":"), data...))
	key := r.Keyer.DatasetKey(hash)

	if cached, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		if ds, err := chart.Decode(cached, chart.FormatJSON); err == nil {
			observability.Cache().OnCacheHit(ctx, "dataset")
			return ds, hash, nil
		}
		// Stale or corrupt entry: fall through to decode the file
	}
	observability.Cache().OnCacheMiss(ctx, "dataset")

	ds, err := chart.Decode(data, format)
	if err != nil {
		return chart.Dataset{}, "", fmt.Errorf("%s: %w", path, err)
	}
	if encoded, err := json.Marshal(ds); err == nil {
		if err := r.Cache.Set(ctx, key, encoded, cache.TTLDataset); err == nil {
			observability.Cache().OnCacheSet(ctx, "dataset", len(encoded))
		}
	}
	return ds, hash, nil
}

// Execute decodes every snapshot, renders them in order on one chart and
// samples opts.Frames frames across each snapshot's transitions.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	result := &Result{}

	// Stage 1: Decode
	decodeStart := time.Now()
	hashes := make([]string, 0, len(opts.Paths))
	for _, path := range opts.Paths {
		ds, hash, err := r.Load(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		if opts.StartIndex != nil {
			ds.Config.StartIndex = *opts.StartIndex
		}
		result.Datasets = append(result.Datasets, ds)
		hashes = append(hashes, hash)
	}
	result.Stats.DecodeTime = time.Since(decodeStart)
	result.Stats.Snapshots = len(result.Datasets)

	logger.Info("decoded snapshots",
		"snapshots", len(result.Datasets),
		"duration", result.Stats.DecodeTime)

	// Stages 2 and 3: Render and sample
	renderStart := time.Now()
	easing, _ := animate.ParseEasing(opts.Easing)
	now := epoch
	surface := scene.New(opts.Width, opts.Height)
	renderOpts := []render.Option{
		render.WithClock(func() time.Time { return now }),
		render.WithLogger(logger),
		render.WithYAxisLabel(opts.YLabel),
		render.WithEasing(easing),
	}
	if opts.Grouped {
		renderOpts = append(renderOpts, render.WithTotalFormat(render.GroupedNumber(language.English)))
	}
	chartInstance := render.New(surface, renderOpts...)
	vp := layout.Viewport{Width: opts.Width, Height: opts.Height}

	for i, ds := range result.Datasets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rep, err := chartInstance.Render(ctx, ds, vp)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", opts.Paths[i], err)
		}
		result.Reports = append(result.Reports, rep)

		frames, err := r.sample(ctx, chartInstance, surface, &now, i, cache.SequenceHash(hashes[:i+1]...), opts)
		if err != nil {
			return nil, fmt.Errorf("sample %s: %w", opts.Paths[i], err)
		}
		result.Frames = append(result.Frames, frames...)
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.Frames = len(result.Frames)
	for _, f := range result.Frames {
		if f.Cached {
			result.Stats.CacheHits++
		}
	}

	logger.Info("rendered frames",
		"frames", result.Stats.Frames,
		"cached", result.Stats.CacheHits,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// sample advances the chart across its pending transitions and captures
// opts.Frames evenly spaced frames, the last at the transitions' end. A
// snapshot that schedules nothing yields a single frame.
func (r *Runner) sample(ctx context.Context, c *render.Renderer, s *scene.Graph, now *time.Time, snapshot int, seq string, opts Options) ([]Frame, error) {
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnFramesStart(ctx, snapshot, opts.Formats)

	begin := *now
	end, pending := c.Deadline()
	count := opts.Frames
	if !pending {
		end, count = begin, 1
	}
	span := end.Sub(begin)

	frames := make([]Frame, 0, count)
	for k := 1; k <= count; k++ {
		at := begin.Add(span * time.Duration(k) / time.Duration(count))
		*now = at
		c.Advance(at)

		f := Frame{Snapshot: snapshot, Index: k, Offset: at.Sub(begin)}
		artifacts, cached, err := r.artifacts(ctx, s, seq, k, opts)
		if err != nil {
			hooks.OnFramesComplete(ctx, snapshot, len(frames), time.Since(start), err)
			return nil, err
		}
		f.Artifacts, f.Cached = artifacts, cached
		frames = append(frames, f)
	}
	hooks.OnFramesComplete(ctx, snapshot, len(frames), time.Since(start), nil)
	return frames, nil
}

// artifacts serializes the scene in every requested format, reusing cached
// bytes when all formats are present.
func (r *Runner) artifacts(ctx context.Context, s *scene.Graph, seq string, frame int, opts Options) (map[string][]byte, bool, error) {
	out := make(map[string][]byte, len(opts.Formats))
	if !opts.Refresh {
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(seq, opts.ArtifactKeyOpts(format, frame))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				break
			}
			out[format] = data
		}
		if len(out) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return out, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	for _, format := range opts.Formats {
		var buf bytes.Buffer
		var err error
		switch format {
		case FormatSVG:
			err = scene.WriteSVG(&buf, s)
		case FormatJSON:
			err = scene.WriteJSON(&buf, s)
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			return nil, false, err
		}
		out[format] = buf.Bytes()

		key := r.Keyer.ArtifactKey(seq, opts.ArtifactKeyOpts(format, frame))
		if err := r.Cache.Set(ctx, key, out[format], cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", buf.Len())
		}
	}
	return out, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
