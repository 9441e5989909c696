package sink

import (
	"bytes"
	"fmt"
	"html"
)

const svgNS = "http://www.w3.org/2000/svg"

// SVGOption configures side and front view rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	labels   Labels
	format   Format
	drumRing bool
}

// WithLabels replaces the label table.
func WithLabels(l Labels) SVGOption { return func(r *svgRenderer) { r.labels = l } }

// WithFormat replaces the number formatting policy.
func WithFormat(f Format) SVGOption { return func(r *svgRenderer) { r.format = f } }

// WithDrumRing toggles the drum thickness band and its dimension in the
// side view. It is on by default.
func WithDrumRing(on bool) SVGOption { return func(r *svgRenderer) { r.drumRing = on } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		labels:   DefaultLabels(),
		format:   Invariant,
		drumRing: true,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// svgWriter appends one element per line to buf, formatting every number
// through the renderer's policy.
type svgWriter struct {
	buf bytes.Buffer
	f   Format
}

func (w *svgWriter) open(width, height float64, title string) {
	fmt.Fprintf(&w.buf, `<svg xmlns="%s" width="%s" height="%s" viewBox="0 0 %s %s" aria-label="%s">`+"\n",
		svgNS, w.f.Unit(width), w.f.Unit(height), w.f.Unit(width), w.f.Unit(height), html.EscapeString(title))
}

func (w *svgWriter) close() {
	w.buf.WriteString("</svg>\n")
}

func (w *svgWriter) rect(x, y, width, height float64, attrs string) {
	fmt.Fprintf(&w.buf, `  <rect x="%s" y="%s" width="%s" height="%s" %s />`+"\n",
		w.f.Unit(x), w.f.Unit(y), w.f.Unit(width), w.f.Unit(height), attrs)
}

func (w *svgWriter) circle(cx, cy, r float64, attrs string) {
	fmt.Fprintf(&w.buf, `  <circle cx="%s" cy="%s" r="%s" %s />`+"\n",
		w.f.Unit(cx), w.f.Unit(cy), w.f.Unit(r), attrs)
}

// strokeCircle draws an unfilled circle whose stroke width is a computed length.
func (w *svgWriter) strokeCircle(cx, cy, r, strokeWidth float64, stroke string) {
	fmt.Fprintf(&w.buf, `  <circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s" />`+"\n",
		w.f.Unit(cx), w.f.Unit(cy), w.f.Unit(r), stroke, w.f.Unit(strokeWidth))
}

func (w *svgWriter) line(x1, y1, x2, y2 float64, attrs string) {
	fmt.Fprintf(&w.buf, `  <line x1="%s" y1="%s" x2="%s" y2="%s" %s />`+"\n",
		w.f.Unit(x1), w.f.Unit(y1), w.f.Unit(x2), w.f.Unit(y2), attrs)
}

func (w *svgWriter) text(x, y float64, attrs, content string) {
	fmt.Fprintf(&w.buf, `  <text x="%s" y="%s" %s>%s</text>`+"\n",
		w.f.Unit(x), w.f.Unit(y), attrs, html.EscapeString(content))
}

// vDim draws a vertical dimension line at x from y1 to y2 with horizontal
// end ticks of half-length tick.
func (w *svgWriter) vDim(x, y1, y2, tick float64, stroke string) {
	w.line(x, y1, x, y2, `stroke="`+stroke+`" stroke-width="1"`)
	w.line(x-tick, y1, x+tick, y1, `stroke="`+stroke+`"`)
	w.line(x-tick, y2, x+tick, y2, `stroke="`+stroke+`"`)
}

// hDim draws a horizontal dimension line at y from x1 to x2 with vertical
// end ticks of half-length tick.
func (w *svgWriter) hDim(y, x1, x2, tick float64, stroke string) {
	w.line(x1, y, x2, y, `stroke="`+stroke+`"`)
	w.line(x1, y-tick, x1, y+tick, `stroke="`+stroke+`"`)
	w.line(x2, y-tick, x2, y+tick, `stroke="`+stroke+`"`)
}

func (w *svgWriter) bytes() []byte { return w.buf.Bytes() }
