package render

import "github.com/matzehuels/roughsketch/pkg/rough"

// Drawing is a finished set of rough primitives on a canvas.
type Drawing struct {
	ID     string  `json:"id,omitempty"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Items  []Item  `json:"items"`
}

// Item is one painted primitive. Zero paint values fall back to the sink's
// defaults.
type Item struct {
	ID          string      `json:"id,omitempty"`
	Kind        rough.Kind  `json:"kind"`
	Class       string      `json:"class,omitempty"`
	Stroke      rough.OpSet `json:"stroke"`
	Fill        rough.OpSet `json:"fill,omitempty"`
	StrokeColor string      `json:"stroke_color,omitempty"`
	FillColor   string      `json:"fill_color,omitempty"`
	StrokeWidth float64     `json:"stroke_width,omitempty"`
	FillWeight  float64     `json:"fill_weight,omitempty"`
	Opacity     float64     `json:"opacity,omitempty"`
	Closed      bool        `json:"closed,omitempty"`
}

// OpCount returns the total number of operations across all items.
func (d Drawing) OpCount() int {
	n := 0
	for _, it := range d.Items {
		n += len(it.Stroke) + len(it.Fill)
	}
	return n
}
