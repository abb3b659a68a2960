// Package render turns datasets into animated scene updates.
//
// A [Renderer] is one chart instance. Each call to [Renderer.Render] lays
// the dataset out, reconciles every keyed collection against the keys bound
// by earlier calls, and schedules enter, update and exit transitions on the
// [Surface]. [Renderer.Advance] moves those transitions forward in time.
//
// # Collections
//
// Elements are grouped into collections, each with its own key:
//
//	main_chart    fixed key, the translated plot group
//	axis          fixed keys "x-axis" and "y-axis"
//	legend-rect   rotated legend index
//	legend-text   rotated legend index
//	bar-box       box id, unique_id + ":" + segment index
//	bar-label     bar position in the dataset
//	bar-pic       bar position in the dataset
//
// Totals and images are keyed by position, not bar identity: reordering
// bars updates those elements in place and only a shorter dataset makes
// them exit.
//
// # Lifecycle
//
// A key that disappears stays bound while its exit transition runs and is
// unbound when the transition completes. A key that returns during its exit
// is an update and cancels the removal.
//
// Render and Advance are serialized, so a timer goroutine may call Advance
// while the host calls Render.
package render
