package widget

import (
	"fmt"
	"math"

	"github.com/matzehuels/roughsketch/pkg/rough"
)

// Elevation bounds for cards, buttons and dividers.
const (
	MinElevation = 1
	MaxElevation = 5
)

func clampElevation(e int) int {
	return min(max(e, MinElevation), MaxElevation)
}

// shadow extends elevated controls by 2 per level beyond the first.
func shadow(elev int) float64 {
	return float64(elev-1) * 2
}

// shadowLines draws the bottom and right edge offsets of an elevated box
// whose outline ends at (right, bottom). base is the opacity percentage of
// the first level.
func shadowLines(c *Canvas, elev int, right, bottom, base float64) error {
	for i := 1; i < elev; i++ {
		d := float64(i) * 2
		p := Paint{Class: "shadow", Opacity: (base - float64(i)*10) / 100}
		if err := c.Line(d, bottom+d, right+d, bottom+d, p); err != nil {
			return err
		}
		if err := c.Line(right+d, bottom+d, right+d, d, p); err != nil {
			return err
		}
	}
	return nil
}

// Card is a raised panel. Width and Height are the content size; the
// canvas grows by the elevation shadow.
type Card struct {
	Width, Height float64
	Elevation     int
	Fill          string
}

func (w Card) Name() string { return "card" }

func (w Card) CanvasSize() Size {
	s := shadow(clampElevation(w.Elevation))
	return Size{w.Width + s, w.Height + s}
}

func (w Card) Draw(c *Canvas) error {
	elev := clampElevation(w.Elevation)
	width, height := c.Size().Width-shadow(elev), c.Size().Height-shadow(elev)

	if w.Fill != "" {
		if err := c.Rectangle(2, 2, width-4, height-4, Paint{Class: "card-fill", Fill: w.Fill, NoStroke: true}); err != nil {
			return err
		}
	}
	if err := c.Rectangle(2, 2, width-4, height-4, Paint{Class: "card"}); err != nil {
		return err
	}
	return shadowLines(c, elev, width-4, height-4, 85)
}

// Button is a raised rectangle sized to its label box.
type Button struct {
	Width, Height float64
	Elevation     int
}

func (w Button) Name() string { return "button" }

func (w Button) CanvasSize() Size {
	s := shadow(clampElevation(w.Elevation))
	return Size{w.Width + s, w.Height + s}
}

func (w Button) Draw(c *Canvas) error {
	elev := clampElevation(w.Elevation)
	width, height := c.Size().Width-shadow(elev), c.Size().Height-shadow(elev)
	if err := c.Rectangle(0, 0, width, height, Paint{Class: "button"}); err != nil {
		return err
	}
	return shadowLines(c, elev, width, height, 75)
}

// Checkbox is a 24x24 box with a tick when checked.
type Checkbox struct {
	Checked bool
}

func (w Checkbox) Name() string { return "checkbox" }

func (w Checkbox) CanvasSize() Size { return Size{24, 24} }

func (w Checkbox) Draw(c *Canvas) error {
	s := c.Size()
	if err := c.Rectangle(0, 0, s.Width, s.Height, Paint{Class: "checkbox"}); err != nil {
		return err
	}
	if !w.Checked {
		return nil
	}
	if err := c.Line(s.Width*0.3, s.Height*0.4, s.Width*0.5, s.Height*0.7, Paint{Class: "check"}); err != nil {
		return err
	}
	return c.Line(s.Width*0.5, s.Height*0.7, s.Width+5, -5, Paint{Class: "check"})
}

// Divider is a horizontal rule with one line per elevation level.
type Divider struct {
	Width     float64
	Elevation int
}

func (w Divider) Name() string { return "divider" }

func (w Divider) CanvasSize() Size {
	return Size{w.Width, float64(clampElevation(w.Elevation) * 6)}
}

func (w Divider) Draw(c *Canvas) error {
	for i := 0; i < clampElevation(w.Elevation); i++ {
		y := float64(i*6) + 3
		if err := c.Line(0, y, c.Size().Width, y, Paint{Class: "divider"}); err != nil {
			return err
		}
	}
	return nil
}

// Progress is a bar filled in proportion to Value within [Min, Max].
type Progress struct {
	Width, Height   float64
	Value, Min, Max float64
}

func (w Progress) Name() string { return "progress" }

func (w Progress) CanvasSize() Size { return Size{w.Width, w.Height} }

// Fraction returns the filled share of the bar in [0, 1]. An empty range
// has no fill.
func (w Progress) Fraction() float64 {
	if w.Max <= w.Min {
		return 0
	}
	return min(max((w.Value-w.Min)/(w.Max-w.Min), 0), 1)
}

func (w Progress) Draw(c *Canvas) error {
	s := c.Size()
	if err := c.Rectangle(2, 2, s.Width-2, s.Height-2, Paint{Class: "progress"}); err != nil {
		return err
	}
	filled := s.Width * w.Fraction()
	if filled <= 0 {
		return nil
	}
	return c.Rectangle(0, 0, filled, s.Height, Paint{Class: "progbox", Fill: "#000", NoStroke: true})
}

// Toggle is an 80x34 switch: a bar with a round knob at the left (off) or
// right (on).
type Toggle struct {
	Checked bool
}

func (w Toggle) Name() string { return "toggle" }

func (w Toggle) CanvasSize() Size { return Size{80, 34} }

// knobTravel is how far the knob moves when the toggle is on.
const knobTravel = 48

func (w Toggle) Draw(c *Canvas) error {
	s := c.Size()
	if err := c.Rectangle(16, 8, s.Width-32, 18, Paint{Class: "toggle-bar"}); err != nil {
		return err
	}
	cx, state := 16.0, "unchecked"
	if w.Checked {
		cx, state = 16+knobTravel, "checked"
	}
	if err := c.Ellipse(cx, 16, 32, 32, Paint{Class: "knob-fill " + state, Fill: "#000", NoStroke: true}); err != nil {
		return err
	}
	return c.Ellipse(cx, 16, 32, 32, Paint{Class: "knob " + state})
}

// Input is a text field outline.
type Input struct {
	Width, Height float64
}

func (w Input) Name() string { return "input" }

func (w Input) CanvasSize() Size { return Size{w.Width, w.Height} }

func (w Input) Draw(c *Canvas) error {
	s := c.Size()
	return c.Rectangle(2, 2, s.Width-2, s.Height-2, Paint{Class: "input"})
}

// Tab is the outline of one tab panel.
type Tab struct {
	Width, Height float64
}

func (w Tab) Name() string { return "tab" }

func (w Tab) CanvasSize() Size { return Size{w.Width, w.Height} }

func (w Tab) Draw(c *Canvas) error {
	s := c.Size()
	return c.Rectangle(2, 2, s.Width-4, s.Height-4, Paint{Class: "tab"})
}

// comboDrop is the width of the combo's drop-down box; it overlaps the
// text box by 4.
const comboDrop = 34

// Combo is a drop-down: a text box of Width x Height, the drop box to its
// right and a filled arrow inside it.
type Combo struct {
	Width, Height float64
}

func (w Combo) Name() string { return "combo" }

func (w Combo) CanvasSize() Size { return Size{w.Width - 4 + comboDrop, w.Height} }

func (w Combo) Draw(c *Canvas) error {
	if err := c.Rectangle(0, 0, w.Width, w.Height, Paint{Class: "combo-text"}); err != nil {
		return err
	}
	dropX := w.Width - 4
	if err := c.Rectangle(dropX, 0, comboDrop, w.Height, Paint{Class: "combo-drop"}); err != nil {
		return err
	}
	off := math.Abs((w.Height - 24) / 2)
	arrow := []rough.Point{
		{X: dropX + 8, Y: 5 + off},
		{X: dropX + 26, Y: 5 + off},
		{X: dropX + 17, Y: off + math.Min(w.Height, 18)},
	}
	return c.Polygon(arrow, Paint{Class: "combo-arrow", Fill: "#000"})
}

// Image is a framed picture: an outline with elevation shadows like a
// card's.
type Image struct {
	Width, Height float64
	Elevation     int
}

func (w Image) Name() string { return "image" }

func (w Image) CanvasSize() Size {
	s := shadow(clampElevation(w.Elevation))
	return Size{w.Width + s, w.Height + s}
}

func (w Image) Draw(c *Canvas) error {
	elev := clampElevation(w.Elevation)
	width, height := c.Size().Width-shadow(elev), c.Size().Height-shadow(elev)
	if err := c.Rectangle(2, 2, width-4, height-4, Paint{Class: "image-frame"}); err != nil {
		return err
	}
	return shadowLines(c, elev, width-4, height-4, 85)
}

// String describes a widget for logs.
func String(w Widget) string {
	s := w.CanvasSize()
	return fmt.Sprintf("%s %vx%v", w.Name(), s.Width, s.Height)
}
