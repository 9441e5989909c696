package layout

import (
	"math"

	"github.com/matzehuels/reeldesigner/pkg/reel"
)

// Front view canvas constants, in canvas units.
const (
	FrontCanvasWidth  = 600.0
	FrontCanvasHeight = 400.0
	FrontPadding      = 30.0

	// labelLift is the gap between a flange top and its thickness label baseline.
	labelLift = 10.0
	// widthDimDrop is the gap between the flange bottom and the width dimension.
	widthDimDrop = 20.0
)

// Front is the geometry of the view across the reel axis: the barrel
// rectangle flanked by two flange rectangles, and the width dimension.
type Front struct {
	CanvasWidth  float64
	CanvasHeight float64
	Padding      float64

	ScaleX float64 // fits the inner width into the horizontal drawing area
	ScaleY float64 // fits the flange diameter into the vertical drawing area
	Scale  float64 // min(ScaleX, ScaleY), used for everything

	CX, CY       float64
	HalfWidth    float64
	FlangeRadius float64
	BarrelRadius float64

	Barrel      Rect
	LeftFlange  Rect
	RightFlange Rect

	LabelY    float64 // baseline of the flange thickness labels
	WidthDimY float64 // y of the width dimension line
}

// ComputeFront lays out the front view for d with one uniform scale.
func ComputeFront(d reel.Dimensions) Front {
	const w, h, p = FrontCanvasWidth, FrontCanvasHeight, FrontPadding

	scaleY := (h - 2*p) / d.FlangeDiameter
	scaleX := (w - 2*p) / d.Width
	scale := math.Min(scaleX, scaleY)

	cx, cy := w/2, h/2
	halfWidth := d.Width / 2 * scale
	rFlange := d.FlangeDiameter / 2 * scale
	rBarrel := d.BarrelDiameter / 2 * scale
	flangeW := d.FlangeThickness * scale

	return Front{
		CanvasWidth:  w,
		CanvasHeight: h,
		Padding:      p,

		ScaleX: scaleX,
		ScaleY: scaleY,
		Scale:  scale,

		CX:           cx,
		CY:           cy,
		HalfWidth:    halfWidth,
		FlangeRadius: rFlange,
		BarrelRadius: rBarrel,

		Barrel:      Rect{X: cx - halfWidth, Y: cy - rBarrel, W: d.Width * scale, H: rBarrel * 2},
		LeftFlange:  Rect{X: cx - halfWidth - flangeW, Y: cy - rFlange, W: flangeW, H: rFlange * 2},
		RightFlange: Rect{X: cx + halfWidth, Y: cy - rFlange, W: flangeW, H: rFlange * 2},

		LabelY:    cy - rFlange - labelLift,
		WidthDimY: cy + rFlange + widthDimDrop,
	}
}
