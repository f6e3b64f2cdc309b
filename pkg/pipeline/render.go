package pipeline

import (
	"fmt"

	"github.com/matzehuels/roughsketch/pkg/render"
	"github.com/matzehuels/roughsketch/pkg/render/sink"
)

// Encode renders a drawing to every requested format. background is used
// when opts.Background is empty.
func Encode(d render.Drawing, background string, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	svgOpts := buildSVGOptions(background, opts)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := encodeFormat(d, format, svgOpts, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func encodeFormat(d render.Drawing, format string, svgOpts []sink.SVGOption, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(d, svgOpts...), nil
	case FormatJSON:
		jsonOpts := []sink.JSONOption{sink.WithJSONIndent()}
		if opts.Join {
			jsonOpts = append(jsonOpts, sink.WithJSONPaths())
		}
		return sink.RenderJSON(d, jsonOpts...)
	case FormatPDF:
		return sink.RenderPDF(d, svgOpts...)
	case FormatPNG:
		return sink.RenderPNG(d, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
	default:
		return nil, ValidateFormat(format)
	}
}

func buildSVGOptions(background string, opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Stroke != "" {
		svgOpts = append(svgOpts, sink.WithStroke(opts.Stroke))
	}
	if opts.StrokeWidth > 0 {
		svgOpts = append(svgOpts, sink.WithStrokeWidth(opts.StrokeWidth))
	}
	if opts.Background != "" {
		background = opts.Background
	}
	if background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(background))
	}
	if opts.Class != "" {
		svgOpts = append(svgOpts, sink.WithClass(opts.Class))
	}
	if opts.Join {
		svgOpts = append(svgOpts, sink.WithJoinedPaths())
	}
	return svgOpts
}
