// Package render groups the reel diagram renderers.
//
// Rendering is split in two stages:
//
//   - [layout] computes the geometry of the side and front views from a
//     validated [reel.Dimensions] record: circles, rectangles and the
//     positions of every dimension line.
//   - [sink] draws those layouts as self-contained SVG markup with captions
//     and dimension labels.
//
// Both stages are pure functions of their input, so the same record always
// yields byte-identical markup.
//
//	svg := sink.RenderSide(d, sink.WithDrumRing(true))
//
// [layout]: github.com/matzehuels/reeldesigner/pkg/render/layout
// [sink]: github.com/matzehuels/reeldesigner/pkg/render/sink
// [reel.Dimensions]: github.com/matzehuels/reeldesigner/pkg/reel#Dimensions
package render
