// Package pkg holds the libraries behind stackbar, an animated stacked bar
// chart renderer.
//
// # Overview
//
// A chart is re-rendered with successive dataset snapshots. Between two
// renders every bar, segment, legend entry and label is matched by key and
// animated from its old state to its new one:
//
//	snapshot (JSON/TOML)
//	         ↓
//	    [chart] decode + validate
//	         ↓
//	    [chart/layout] scales and geometry
//	         ↓
//	    [chart/reconcile] keyed enter/update/exit
//	         ↓
//	    [chart/animate] timed transitions on a [chart/scene] graph
//	         ↓
//	    SVG/JSON frames or a terminal view
//
// [pipeline] drives this for the CLI and [cache] stores decoded snapshots
// and frames between runs.
//
// # Quick Start
//
//	surface := scene.New(960, 500)
//	chart := render.New(surface)
//	if _, err := chart.Render(ctx, ds, layout.Viewport{Width: 960, Height: 500}); err != nil {
//	    return err
//	}
//	chart.Advance(time.Now().Add(time.Second))
//	return scene.WriteSVG(w, surface)
package pkg
