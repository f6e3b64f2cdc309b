package widget

import (
	"math"

	"github.com/matzehuels/roughsketch/pkg/render"
	"github.com/matzehuels/roughsketch/pkg/rough"
)

// Size is a canvas width and height.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Widget is a control that draws itself from rough primitives.
type Widget interface {
	// Name identifies the widget kind, e.g. "card".
	Name() string
	// CanvasSize is the area the widget draws into.
	CanvasSize() Size
	// Draw adds the widget's primitives to c.
	Draw(c *Canvas) error
}

// Paint controls how a canvas primitive is painted. A non-empty Fill adds
// a hachure fill in that colour; NoStroke drops the outline.
type Paint struct {
	Class    string
	Opacity  float64
	Fill     string
	NoStroke bool
}

// Canvas collects the primitives of one widget.
type Canvas struct {
	size  Size
	gen   *rough.Generator
	items []render.Item
}

// NewCanvas returns an empty canvas drawing with o.
func NewCanvas(size Size, o rough.Options) *Canvas {
	return &Canvas{size: size, gen: rough.New(o)}
}

// Size returns the canvas size.
func (c *Canvas) Size() Size { return c.size }

// Rectangle draws the rectangle (x, y, w, h) inset by 2 on every side.
func (c *Canvas) Rectangle(x, y, w, h float64, p Paint) error {
	return c.add(rough.KindRectangle, rough.Geometry{X: x + 2, Y: y + 2, Width: w - 4, Height: h - 4}, p)
}

// Line draws a line from (x1, y1) to (x2, y2).
func (c *Canvas) Line(x1, y1, x2, y2 float64, p Paint) error {
	return c.add(rough.KindLine, rough.Geometry{X: x1, Y: y1, X2: x2, Y2: y2}, p)
}

// Polygon draws a closed polygon through pts.
func (c *Canvas) Polygon(pts []rough.Point, p Paint) error {
	return c.add(rough.KindPolygon, rough.Geometry{Points: pts}, p)
}

// Ellipse draws an ellipse centred on (cx, cy), shrunk to stay inside its
// box.
func (c *Canvas) Ellipse(cx, cy, w, h float64, p Paint) error {
	return c.add(rough.KindEllipse, rough.Geometry{X: cx, Y: cy, Width: shrink(w), Height: shrink(h)}, p)
}

// Arc draws an open arc centred on (cx, cy), shrunk like Ellipse.
func (c *Canvas) Arc(cx, cy, w, h, start, stop float64, p Paint) error {
	return c.add(rough.KindArc, rough.Geometry{X: cx, Y: cy, Width: shrink(w), Height: shrink(h), Start: start, Stop: stop}, p)
}

func shrink(v float64) float64 {
	if v > 10 {
		return math.Max(v-4, 1)
	}
	return math.Max(v-1, 1)
}

func (c *Canvas) add(kind rough.Kind, geo rough.Geometry, p Paint) error {
	item := render.Item{Kind: kind, Class: p.Class, Opacity: p.Opacity, FillColor: p.Fill, Closed: rough.IsClosed(kind, geo)}
	if !p.NoStroke {
		ops, err := c.gen.Generate(kind, geo)
		if err != nil {
			return err
		}
		item.Stroke = ops
	}
	if p.Fill != "" {
		ops, err := c.gen.FillShape(kind, geo)
		if err != nil {
			return err
		}
		item.Fill = ops
		item.FillWeight = c.gen.Options().FillWeight
	}
	c.items = append(c.items, item)
	return nil
}

// Drawing returns what has been drawn so far.
func (c *Canvas) Drawing() render.Drawing {
	return render.Drawing{Width: c.size.Width, Height: c.size.Height, Items: c.items}
}

// Render draws w onto a fresh canvas.
func Render(w Widget, o rough.Options) (render.Drawing, error) {
	c := NewCanvas(w.CanvasSize(), o)
	if err := w.Draw(c); err != nil {
		return render.Drawing{}, err
	}
	d := c.Drawing()
	d.ID = w.Name()
	return d, nil
}
