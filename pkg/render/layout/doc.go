// Package layout computes the drawing geometry of a reel.
//
// Layout is the pure, numeric half of rendering: it turns a
// [reel.Dimensions] record into canvas coordinates (radii, rectangles,
// dimension line anchors) without emitting any markup. The [sink] package
// turns a layout into SVG.
//
// # Side view
//
// [ComputeSide] scales the reel so the flange exactly fills the padded
// square canvas. Every other radius is derived from the same scale, so
// proportions stay faithful. The flange inner ring is floored at
// [FlangeInnerGap] units outside the barrel; the drum band is not clamped.
//
// # Front view
//
// [ComputeFront] fits both the flange diameter (vertically) and the inner
// width (horizontally) with one uniform scale, the smaller of the two
// candidate scales.
//
// [reel.Dimensions]: github.com/matzehuels/reeldesigner/pkg/reel.Dimensions
// [sink]: github.com/matzehuels/reeldesigner/pkg/render/sink
package layout
