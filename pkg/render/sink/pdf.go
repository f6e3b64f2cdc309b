package sink

import "github.com/matzehuels/roughsketch/pkg/render"

// RenderPDF renders the drawing as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(d render.Drawing, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(RenderSVG(d, opts...))
}
