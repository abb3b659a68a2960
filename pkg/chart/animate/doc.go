// Package animate schedules timed attribute transitions on keyed elements.
//
// A [Scheduler] owns at most one transition per element. Scheduling a new
// transition on an element that is still animating supersedes the old one:
// the old transition is sampled at the supersede time, its values are
// written, and the new transition starts from there. Nothing is queued.
//
// Numeric attributes interpolate with an [Easing]. Color attributes (see
// [ColorAttrs]) blend in RGB space when both ends parse as hex colors; every
// other string attribute is applied when the transition starts.
//
// The scheduler never reads a clock. Callers pass the current time to
// [Scheduler.Schedule] and [Scheduler.Tick], which keeps tests deterministic;
// [Loop] drives ticks from a wall-clock ticker in real programs.
package animate
