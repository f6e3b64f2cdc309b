package sink

import (
	"encoding/json"

	"github.com/matzehuels/roughsketch/pkg/render"
	"github.com/matzehuels/roughsketch/pkg/rough"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	paths  bool
	indent bool
}

// WithJSONPaths adds the serialized SVG path data next to each OpSet.
func WithJSONPaths() JSONOption { return func(r *jsonRenderer) { r.paths = true } }

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonOutput struct {
	ID     string     `json:"id,omitempty"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Items  []jsonItem `json:"items"`
}

type jsonItem struct {
	render.Item
	StrokePath string `json:"stroke_path,omitempty"`
	FillPath   string `json:"fill_path,omitempty"`
}

// RenderJSON exports the drawing's operations.
func RenderJSON(d render.Drawing, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{ID: d.ID, Width: d.Width, Height: d.Height, Items: make([]jsonItem, len(d.Items))}
	for i, it := range d.Items {
		out.Items[i] = jsonItem{Item: it}
		if r.paths {
			out.Items[i].StrokePath = rough.Serialize(it.Stroke, false)
			out.Items[i].FillPath = rough.Serialize(it.Fill, false)
		}
	}

	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}
