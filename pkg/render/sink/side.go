package sink

import (
	"github.com/matzehuels/reeldesigner/pkg/reel"
	"github.com/matzehuels/reeldesigner/pkg/render/layout"
)

const (
	tickHalf     = 6.0 // half-length of dimension end ticks
	labelOffset  = 8.0 // gap between a dimension line and its label
	crosshairArm = 8.0
)

// RenderSide renders the view along the reel axis: concentric flange,
// flange inner ring, barrel, drum band and arbor hole circles with their
// dimensions. The output is a standalone SVG document.
func RenderSide(d reel.Dimensions, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	s := layout.ComputeSide(d)
	l, f := r.labels, r.format

	w := &svgWriter{f: f}
	w.open(s.Canvas, s.Canvas, l.SideTitle)
	w.rect(0, 0, s.Canvas, s.Canvas, `fill="white"`)

	// Outer to inner so larger shapes never cover smaller ones.
	w.circle(s.CX, s.CY, s.FlangeRadius, `fill="#f7f7f7" stroke="#333" stroke-width="1.5"`)
	w.circle(s.CX, s.CY, s.FlangeInnerRadius, `fill="white" stroke="#999" stroke-width="1"`)
	w.circle(s.CX, s.CY, s.BarrelRadius, `fill="#eaeaea" stroke="#555" stroke-width="1.2"`)
	if r.drumRing {
		w.strokeCircle(s.CX, s.CY, s.DrumBandRadius, s.DrumBandWidth, "#c9b08a")
	}
	w.circle(s.CX, s.CY, s.ArborRadius, `fill="white" stroke="#333" stroke-width="1.2"`)

	w.line(s.CX-crosshairArm, s.CY, s.CX+crosshairArm, s.CY, `stroke="#aaa"`)
	w.line(s.CX, s.CY-crosshairArm, s.CX, s.CY+crosshairArm, `stroke="#aaa"`)

	w.vDim(s.FlangeDimX, s.CY-s.FlangeRadius, s.CY+s.FlangeRadius, tickHalf, "#222")
	w.text(s.FlangeDimX+labelOffset, s.CY, `dominant-baseline="middle" font-size="12" fill="#000"`,
		l.dimension(f, d.FlangeDiameter, l.FlangeDiameter))

	w.vDim(s.BarrelDimX, s.CY-s.BarrelRadius, s.CY+s.BarrelRadius, tickHalf, "#444")
	w.text(s.BarrelDimX-labelOffset, s.CY, `dominant-baseline="middle" text-anchor="end" font-size="12" fill="#000"`,
		l.dimension(f, d.BarrelDiameter, l.BarrelDiameter))

	w.hDim(s.ArborDimY, s.CX-s.ArborRadius, s.CX+s.ArborRadius, tickHalf, "#444")
	w.text(s.CX, s.ArborDimY-labelOffset, `text-anchor="middle" font-size="12"`,
		l.dimension(f, d.ArborHoleDiameter, l.ArborHole))

	if r.drumRing {
		w.hDim(s.DrumDimY, s.CX+s.DrumInnerRadius(), s.CX+s.BarrelRadius, tickHalf, "#d22")
		w.text(s.CX+s.DrumBandRadius, s.DrumDimY-labelOffset, `text-anchor="middle" font-size="12" fill="#d22"`,
			l.dimension(f, d.DrumThickness, l.DrumThickness))
	}

	w.text(s.Canvas-s.Padding, s.Canvas-s.Padding, `text-anchor="end" font-size="10" fill="#666"`,
		l.scaleNote(f, s.Scale))

	w.close()
	return w.bytes()
}
