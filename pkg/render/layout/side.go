package layout

import (
	"math"

	"github.com/matzehuels/reeldesigner/pkg/reel"
)

// Side view canvas constants, in canvas units.
const (
	SideCanvas  = 400.0 // square canvas side
	SidePadding = 20.0  // padding on every side

	// FlangeInnerGap is the minimum distance between the flange inner ring
	// and the barrel circle.
	FlangeInnerGap = 2.0

	// dimInset places dimension lines inside the padding band.
	dimInset = 0.8
	// drumDimDrop is the distance of the drum thickness dimension below the barrel.
	drumDimDrop = 40.0
)

// Side is the geometry of the view along the reel axis: concentric circles
// around (CX, CY) plus the anchors of the dimension annotations.
type Side struct {
	Canvas  float64
	Padding float64
	Scale   float64 // canvas units per millimeter
	CX, CY  float64

	FlangeRadius      float64
	FlangeInnerRadius float64
	BarrelRadius      float64
	ArborRadius       float64

	// DrumBandRadius is the radius of the stroked drum band's center line
	// and DrumBandWidth its stroke width. The band's outer edge is the
	// barrel circle.
	DrumBandRadius float64
	DrumBandWidth  float64

	FlangeDimX float64 // vertical flange diameter dimension, left
	BarrelDimX float64 // vertical barrel diameter dimension, right
	ArborDimY  float64 // horizontal arbor hole dimension, top
	DrumDimY   float64 // horizontal drum thickness dimension, below the barrel
}

// ComputeSide lays out the side view for d. The scale depends only on the
// flange diameter, so the flange always fills the padded canvas.
func ComputeSide(d reel.Dimensions) Side {
	const c, p = SideCanvas, SidePadding

	scale := (c - 2*p) / d.FlangeDiameter
	cx, cy := c/2, c/2

	rFlange := d.FlangeDiameter / 2 * scale
	rBarrel := d.BarrelDiameter / 2 * scale
	rArbor := d.ArborHoleDiameter / 2 * scale
	drum := d.DrumThickness * scale

	return Side{
		Canvas:  c,
		Padding: p,
		Scale:   scale,
		CX:      cx,
		CY:      cy,

		FlangeRadius:      rFlange,
		FlangeInnerRadius: math.Max(rFlange-d.FlangeThickness*scale, rBarrel+FlangeInnerGap),
		BarrelRadius:      rBarrel,
		ArborRadius:       rArbor,

		DrumBandRadius: (rBarrel + (rBarrel - drum)) / 2,
		DrumBandWidth:  drum,

		FlangeDimX: p * dimInset,
		BarrelDimX: c - p*dimInset,
		ArborDimY:  p * dimInset,
		DrumDimY:   math.Min(cy+rBarrel+drumDimDrop, c-2*p),
	}
}

// DrumInnerRadius returns the radius of the drum band's inner edge.
// It is negative when the scaled drum thickness exceeds the barrel radius.
func (s Side) DrumInnerRadius() float64 {
	return s.BarrelRadius - s.DrumBandWidth
}
