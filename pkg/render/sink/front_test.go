package sink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/reeldesigner/pkg/reel"
)

func smallReel() reel.Dimensions {
	return reel.Dimensions{FlangeDiameter: 800, BarrelDiameter: 300, Width: 600, ArborHoleDiameter: 50, FlangeThickness: 30, DrumThickness: 50}
}

func TestRenderFrontSmallReel(t *testing.T) {
	svg := string(RenderFront(smallReel()))

	// scale = min(540/600, 340/800) = 0.425
	wants := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="600" height="400" viewBox="0 0 600 400" aria-label="Wooden reel front view">`,
		`<rect x="172.5" y="136.25" width="255" height="127.5" fill="#fdf2b3" stroke="#555" />`,
		`<rect x="159.75" y="30" width="12.75" height="340" fill="#eee" stroke="#333" />`,
		`<rect x="427.5" y="30" width="12.75" height="340" fill="#eee" stroke="#333" />`,
		`<text x="166.125" y="20" text-anchor="middle" font-size="12" fill="black">30 mm (გვერდის სისქე)</text>`,
		`<text x="433.875" y="20" text-anchor="middle" font-size="12" fill="black">30 mm</text>`,
		`<line x1="172.5" y1="390" x2="427.5" y2="390" stroke="#222" />`,
		`<line x1="172.5" y1="385" x2="172.5" y2="395" stroke="#222" />`,
		`<line x1="427.5" y1="385" x2="427.5" y2="395" stroke="#222" />`,
		`<text x="300" y="405" text-anchor="middle" font-size="12">600 mm (შიდა სიგანე)</text>`,
	}
	for _, want := range wants {
		if !strings.Contains(svg, want) {
			t.Errorf("front view missing %q\n%s", want, svg)
		}
	}
	assertWellFormed(t, []byte(svg))
}

func TestRenderFrontRightLabelHasNoSuffix(t *testing.T) {
	svg := string(RenderFront(catalogueReel()))

	if got := strings.Count(svg, "გვერდის სისქე"); got != 1 {
		t.Errorf("flange thickness suffix appears %d times, want 1", got)
	}
	if !strings.Contains(svg, ">60 mm</text>") {
		t.Errorf("right flange label missing bare value\n%s", svg)
	}
}

func TestRenderFrontDeterministic(t *testing.T) {
	for _, d := range []reel.Dimensions{catalogueReel(), smallReel()} {
		if !bytes.Equal(RenderFront(d), RenderFront(d)) {
			t.Errorf("RenderFront(%+v) not deterministic", d)
		}
	}
}

func TestRenderFrontIgnoresDrumRingOption(t *testing.T) {
	d := catalogueReel()
	if !bytes.Equal(RenderFront(d), RenderFront(d, WithDrumRing(false))) {
		t.Error("WithDrumRing changed the front view")
	}
}

func TestRenderFrontFractionalLabels(t *testing.T) {
	d := smallReel()
	d.Width = 612.25
	d.FlangeThickness = 27.5

	svg := string(RenderFront(d))
	for _, want := range []string{">612.3 mm (შიდა სიგანე)</text>", ">27.5 mm</text>"} {
		if !strings.Contains(svg, want) {
			t.Errorf("missing %q\n%s", want, svg)
		}
	}
}
