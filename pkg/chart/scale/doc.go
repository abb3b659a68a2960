// Package scale maps dataset values to drawing coordinates and colors.
//
// Three scales cover a stacked-bar chart:
//
//   - [Band]: discrete bar identities to padded, contiguous column positions.
//   - [Linear]: segment magnitudes to vertical pixel offsets (inverted, so
//     larger values sit higher on the canvas).
//   - [Color]: legend labels to the color at the same index.
//
// Band and Linear round their outputs to whole pixels the same way browser
// charting libraries do, so positions are stable across re-renders and
// transitions interpolate between integers.
//
// Lookups outside a scale's domain return LOOKUP_FAILURE errors rather than
// falling back to a default value.
package scale
