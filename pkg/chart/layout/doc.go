// Package layout computes stacked-bar geometry for one render invocation.
//
// # Two-Pass Layout
//
// The vertical extent of the plot depends on the horizontal one: each column
// reserves a square image slot below the x-axis whose side equals the band
// width. [New] therefore builds the band scale first, derives the bottom
// margin from it, and only then builds the value scale for the remaining
// plot height.
//
// All of this lives in a [Layout] value. Nothing is kept between calls, so
// two charts never share margins or scales.
//
// # Stacking
//
// [Stack] walks a bar's segments in rotated order: position i shows segment
// (i + start_index) mod n. The segment index, not the stack position, names
// the box, so changing start_index moves boxes up and down without changing
// their identity.
package layout
