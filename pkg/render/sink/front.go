package sink

import (
	"github.com/matzehuels/reeldesigner/pkg/reel"
	"github.com/matzehuels/reeldesigner/pkg/render/layout"
)

const (
	widthTickHalf   = 5.0
	widthLabelBelow = 15.0 // distance from the width dimension line to its label
)

// RenderFront renders the view across the reel axis: the barrel rectangle
// between two flange rectangles, flange thickness labels and the inner
// width dimension. The right flange label carries no suffix.
func RenderFront(d reel.Dimensions, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	fr := layout.ComputeFront(d)
	l, f := r.labels, r.format

	w := &svgWriter{f: f}
	w.open(fr.CanvasWidth, fr.CanvasHeight, l.FrontTitle)

	b := fr.Barrel
	w.rect(b.X, b.Y, b.W, b.H, `fill="#fdf2b3" stroke="#555"`)

	lf := fr.LeftFlange
	w.rect(lf.X, lf.Y, lf.W, lf.H, `fill="#eee" stroke="#333"`)
	w.text(lf.CenterX(), fr.LabelY, `text-anchor="middle" font-size="12" fill="black"`,
		l.dimension(f, d.FlangeThickness, l.FlangeThickness))

	rf := fr.RightFlange
	w.text(rf.CenterX(), fr.LabelY, `text-anchor="middle" font-size="12" fill="black"`,
		l.dimension(f, d.FlangeThickness, ""))
	w.rect(rf.X, rf.Y, rf.W, rf.H, `fill="#eee" stroke="#333"`)

	w.hDim(fr.WidthDimY, fr.CX-fr.HalfWidth, fr.CX+fr.HalfWidth, widthTickHalf, "#222")
	w.text(fr.CX, fr.WidthDimY+widthLabelBelow, `text-anchor="middle" font-size="12"`,
		l.dimension(f, d.Width, l.Width))

	w.close()
	return w.bytes()
}
