package sink

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/reeldesigner/pkg/reel"
)

func catalogueReel() reel.Dimensions {
	return reel.Dimensions{
		FlangeDiameter:    1400,
		BarrelDiameter:    700,
		Width:             880,
		ArborHoleDiameter: 100,
		FlangeThickness:   60,
		DrumThickness:     30,
	}
}

// assertWellFormed fails the test if svg is not a single well-formed XML document.
func assertWellFormed(t *testing.T, svg []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(svg))
	depth, roots := 0, 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("invalid XML: %v\n%s", err, svg)
		}
		switch tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	if roots != 1 || depth != 0 {
		t.Fatalf("want one balanced root element, got roots=%d depth=%d", roots, depth)
	}
}

func TestRenderSideCatalogueReel(t *testing.T) {
	svg := string(RenderSide(catalogueReel()))

	wants := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="400" height="400" viewBox="0 0 400 400" aria-label="Wooden reel side view">`,
		`<rect x="0" y="0" width="400" height="400" fill="white" />`,
		`<circle cx="200" cy="200" r="180" fill="#f7f7f7" stroke="#333" stroke-width="1.5" />`,
		`<circle cx="200" cy="200" r="164.571" fill="white" stroke="#999" stroke-width="1" />`,
		`<circle cx="200" cy="200" r="90" fill="#eaeaea" stroke="#555" stroke-width="1.2" />`,
		`<circle cx="200" cy="200" r="86.143" fill="none" stroke="#c9b08a" stroke-width="7.714" />`,
		`<circle cx="200" cy="200" r="12.857" fill="white" stroke="#333" stroke-width="1.2" />`,
		`<line x1="16" y1="20" x2="16" y2="380" stroke="#222" stroke-width="1" />`,
		`<text x="24" y="200" dominant-baseline="middle" font-size="12" fill="#000">1400 mm (ბარაბნის Ø)</text>`,
		`<line x1="384" y1="110" x2="384" y2="290" stroke="#444" stroke-width="1" />`,
		`>700 mm (გულის Ø)</text>`,
		`<text x="200" y="8" text-anchor="middle" font-size="12">100 mm (ნახვრეტის დიამეტრი)</text>`,
		`<line x1="282.286" y1="330" x2="290" y2="330" stroke="#d22" />`,
		`>30 mm (გულის სისქე)</text>`,
		`<text x="380" y="380" text-anchor="end" font-size="10" fill="#666">Scale: 0.257 px/mm</text>`,
	}
	for _, want := range wants {
		if !strings.Contains(svg, want) {
			t.Errorf("side view missing %q\n%s", want, svg)
		}
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("side view does not end with </svg>")
	}
	assertWellFormed(t, []byte(svg))
}

func TestRenderSideCircleOrder(t *testing.T) {
	svg := string(RenderSide(catalogueReel()))

	order := []string{`r="180"`, `r="164.571"`, `r="90"`, `r="86.143"`, `r="12.857"`}
	last := -1
	for _, attr := range order {
		i := strings.Index(svg, attr)
		if i < 0 {
			t.Fatalf("missing circle %s", attr)
		}
		if i < last {
			t.Errorf("circle %s drawn before a larger circle", attr)
		}
		last = i
	}
}

func TestRenderSideDeterministic(t *testing.T) {
	for _, d := range []reel.Dimensions{catalogueReel(), reel.Default(), {
		FlangeDiameter: 800, BarrelDiameter: 300, Width: 600, ArborHoleDiameter: 50, FlangeThickness: 30, DrumThickness: 50,
	}} {
		a, b := RenderSide(d), RenderSide(d)
		if !bytes.Equal(a, b) {
			t.Errorf("RenderSide(%+v) not deterministic", d)
		}
	}
}

func TestRenderSideWithoutDrumRing(t *testing.T) {
	svg := string(RenderSide(catalogueReel(), WithDrumRing(false)))

	if strings.Contains(svg, `fill="none"`) {
		t.Error("drum band drawn with WithDrumRing(false)")
	}
	if strings.Contains(svg, "#d22") {
		t.Error("drum dimension drawn with WithDrumRing(false)")
	}
	if got := strings.Count(svg, "<circle"); got != 4 {
		t.Errorf("circle count = %d, want 4", got)
	}
	assertWellFormed(t, []byte(svg))
}

func TestRenderSideFlangeInnerClamp(t *testing.T) {
	d := reel.Dimensions{FlangeDiameter: 800, BarrelDiameter: 790, Width: 600, ArborHoleDiameter: 50, FlangeThickness: 100, DrumThickness: 20}
	svg := string(RenderSide(d))

	// rBarrel = 177.75, clamp floor = 179.75
	if !strings.Contains(svg, `r="179.75" fill="white" stroke="#999"`) {
		t.Errorf("flange inner ring not clamped to barrel + 2\n%s", svg)
	}
}

func TestRenderSideDegenerateDrumStaysWellFormed(t *testing.T) {
	d := reel.Dimensions{FlangeDiameter: 400, BarrelDiameter: 60, Width: 600, ArborHoleDiameter: 10, FlangeThickness: 10, DrumThickness: 200}
	svg := RenderSide(d)

	// Band center radius (27 + (27 - 180)) / 2 = -63: reproduced, not corrected.
	if !bytes.Contains(svg, []byte(`r="-63" fill="none"`)) {
		t.Errorf("degenerate drum band altered\n%s", svg)
	}
	assertWellFormed(t, svg)
}

func TestRenderSideCustomLabels(t *testing.T) {
	labels := DefaultLabels()
	labels.FlangeDiameter = "flange <Ø> & rim"
	labels.SideTitle = "Reel \"A\""
	labels.Scale = "Maßstab"

	svg := string(RenderSide(catalogueReel(), WithLabels(labels)))

	for _, want := range []string{
		"1400 mm (flange &lt;Ø&gt; &amp; rim)",
		`aria-label="Reel &#34;A&#34;"`,
		"Maßstab: 0.257 px/mm",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("missing %q\n%s", want, svg)
		}
	}
	assertWellFormed(t, []byte(svg))
}

func TestRenderSideNoExternalReferences(t *testing.T) {
	svg := string(RenderSide(catalogueReel()))
	for _, ref := range []string{"href", "@import", "url(", "<link", "<style"} {
		if strings.Contains(svg, ref) {
			t.Errorf("side view contains external reference %q", ref)
		}
	}
}
