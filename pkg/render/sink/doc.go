// Package sink writes a [render.Drawing] in an output format.
//
//   - SVG: one <path> per stroke and fill, grouped per item
//   - JSON: the drawing's operations for external renderers
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster output (requires rsvg-convert)
//
// Basic usage:
//
//	svg := sink.RenderSVG(d,
//	    sink.WithStrokeWidth(1.5),
//	    sink.WithBackground("#fffdf7"),
//	)
//
// Fill strokes are painted with the item's fill colour at a width of its
// fill weight, so hachure lines look like pen strokes rather than areas.
//
// [render.Drawing]: github.com/matzehuels/roughsketch/pkg/render.Drawing
package sink
