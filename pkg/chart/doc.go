// Package chart defines the stacked-bar dataset model.
//
// # Overview
//
// A [Dataset] is a geometry-free description of one chart snapshot: an
// ordered list of bars, the legend labels naming each stacked segment, the
// colors painting those segments, and a small [Config]. Hosting applications
// build a fresh Dataset for every render call; the engine never mutates it.
//
// The engine is split into subpackages that run in sequence per render:
//
//  1. Scales ([scale]): band, value and color mapping functions.
//  2. Layout ([layout]): per-invocation margins plus box and legend geometry.
//  3. Reconcile ([reconcile]): keyed enter/update/exit partitioning.
//  4. Animate ([animate]): transition policies and the interpolation scheduler.
//  5. Render ([render]): bound-key state and requests to the drawing surface.
//
// [scene] provides an in-memory retained scene graph implementing the drawing
// surface, with SVG and JSON snapshot sinks.
//
// # Snapshot Files
//
// Datasets are read from JSON or TOML in the same shape:
//
//	{
//	  "data":   [{"unique_id": "bar1", "label": "Week 1", "boxes": [10, 20, 30], "image": "w1.png"}],
//	  "legend": ["a", "b", "c"],
//	  "colors": ["#1f77b4", "#ff7f0e", "#2ca02c"],
//	  "config": {"start_index": 0}
//	}
//
// [scale]: github.com/matzehuels/stackbar/pkg/chart/scale
// [layout]: github.com/matzehuels/stackbar/pkg/chart/layout
// [reconcile]: github.com/matzehuels/stackbar/pkg/chart/reconcile
// [animate]: github.com/matzehuels/stackbar/pkg/chart/animate
// [render]: github.com/matzehuels/stackbar/pkg/chart/render
// [scene]: github.com/matzehuels/stackbar/pkg/chart/scene
package chart
