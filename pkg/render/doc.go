// Package render holds the drawing model shared by scenes and widgets and
// the format conversion used by every output sink.
//
// # Drawings
//
// A [Drawing] is a canvas size plus an ordered list of [Item] values. Each
// item carries the stroke and fill [rough.OpSet] of one primitive together
// with its paint. Items are painted in order, fill before stroke.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert an SVG document using the external
// rsvg-convert tool from librsvg:
//
//	svg := sink.RenderSVG(d)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// Output sinks live in the [sink] subpackage.
//
// [sink]: github.com/matzehuels/roughsketch/pkg/render/sink
package render
