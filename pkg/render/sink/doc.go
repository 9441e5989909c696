// Package sink renders reel layouts as standalone SVG documents.
//
// # Views
//
// [RenderSide] draws the reel seen along its axis: concentric circles for
// the flange, the flange thickness ring, the barrel, the drum wall band and
// the arbor hole, annotated with dimension lines. [RenderFront] draws the
// reel seen across its axis: the barrel rectangle between two flange
// rectangles, with thickness labels and an inner width dimension.
//
//	side := sink.RenderSide(dims)
//	front := sink.RenderFront(dims, sink.WithLabels(labels))
//
// Both functions are pure: the same record and options always produce the
// same bytes. Output declares its own namespace and viewBox and references
// no external stylesheet or font, so it can be embedded in HTML as is.
//
// # Options
//
//   - [WithDrumRing]: draw the drum band and its dimension (default on)
//   - [WithLabels]: replace the fixed-language label table
//   - [WithFormat]: replace the number formatting policy
//
// # Number formatting
//
// Numbers never go through the process locale. [Invariant] prints
// millimeter labels with at most one decimal and canvas units with at most
// three, trailing zeros trimmed.
package sink
