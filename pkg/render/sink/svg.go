package sink

import (
	"bytes"
	"fmt"
	"html"
	"strconv"

	"github.com/matzehuels/roughsketch/pkg/render"
	"github.com/matzehuels/roughsketch/pkg/rough"
)

// Defaults used when neither the item nor an option sets a paint value.
const (
	DefaultStroke      = "#000"
	DefaultFill        = "#000"
	DefaultStrokeWidth = 1.0
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	stroke      string
	fill        string
	strokeWidth float64
	background  string
	class       string
	join        bool
}

func WithStroke(color string) SVGOption   { return func(r *svgRenderer) { r.stroke = color } }
func WithFill(color string) SVGOption     { return func(r *svgRenderer) { r.fill = color } }
func WithStrokeWidth(w float64) SVGOption { return func(r *svgRenderer) { r.strokeWidth = w } }
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}
func WithClass(class string) SVGOption { return func(r *svgRenderer) { r.class = class } }

// WithJoinedPaths serializes each outline as one continuous subpath.
func WithJoinedPaths() SVGOption { return func(r *svgRenderer) { r.join = true } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{stroke: DefaultStroke, fill: DefaultFill, strokeWidth: DefaultStrokeWidth}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG writes d as a standalone SVG document.
func RenderSVG(d render.Drawing, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	w, h := num(d.Width), num(d.Height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s"`, w, h, w, h)
	if r.class != "" {
		fmt.Fprintf(&buf, ` class="%s"`, attr(r.class))
	}
	buf.WriteString(">\n")

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", attr(r.background))
	}
	for _, it := range d.Items {
		r.renderItem(&buf, it)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderItem(buf *bytes.Buffer, it render.Item) {
	buf.WriteString("  <g")
	if it.ID != "" {
		fmt.Fprintf(buf, ` id="%s"`, attr(it.ID))
	}
	if it.Class != "" {
		fmt.Fprintf(buf, ` class="%s"`, attr(it.Class))
	}
	if it.Opacity > 0 && it.Opacity < 1 {
		fmt.Fprintf(buf, ` opacity="%s"`, num(it.Opacity))
	}
	buf.WriteString(">\n")

	if len(it.Fill) > 0 {
		weight := it.FillWeight
		if weight <= 0 {
			weight = r.strokeWidth
		}
		writePath(buf, rough.Serialize(it.Fill, false), or(it.FillColor, r.fill), weight)
	}
	if len(it.Stroke) > 0 {
		width := it.StrokeWidth
		if width <= 0 {
			width = r.strokeWidth
		}
		join := r.join && it.Closed
		writePath(buf, rough.Serialize(it.Stroke, join), or(it.StrokeColor, r.stroke), width)
	}
	buf.WriteString("  </g>\n")
}

func writePath(buf *bytes.Buffer, d, stroke string, width float64) {
	fmt.Fprintf(buf, `    <path d="%s" stroke="%s" stroke-width="%s" fill="none"/>`+"\n", d, attr(stroke), num(width))
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func attr(s string) string { return html.EscapeString(s) }

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
