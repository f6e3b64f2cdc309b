package widget

import (
	"github.com/matzehuels/roughsketch/pkg/errors"
)

// Params is the flat parameter set accepted by [New]. Each widget reads
// only the fields it needs.
type Params struct {
	Width     float64 `json:"width,omitempty" toml:"width"`
	Height    float64 `json:"height,omitempty" toml:"height"`
	Elevation int     `json:"elevation,omitempty" toml:"elevation"`
	Checked   bool    `json:"checked,omitempty" toml:"checked"`
	Value     float64 `json:"value,omitempty" toml:"value"`
	Min       float64 `json:"min,omitempty" toml:"min"`
	Max       float64 `json:"max,omitempty" toml:"max"`
	Fill      string  `json:"fill,omitempty" toml:"fill"`
}

// Default sizes for widgets that take one.
const (
	DefaultCardWidth      = 200.0
	DefaultCardHeight     = 120.0
	DefaultButtonWidth    = 96.0
	DefaultButtonHeight   = 36.0
	DefaultDividerWidth   = 300.0
	DefaultProgressWidth  = 400.0
	DefaultProgressHeight = 42.0
	DefaultProgressMax    = 100.0
	DefaultInputWidth     = 200.0
	DefaultInputHeight    = 36.0
	DefaultTabWidth       = 300.0
	DefaultTabHeight      = 200.0
	DefaultComboWidth     = 160.0
	DefaultComboHeight    = 36.0
	DefaultImageWidth     = 200.0
	DefaultImageHeight    = 150.0
)

// Names lists the available widgets.
var Names = []string{"button", "card", "checkbox", "combo", "divider", "image", "input", "progress", "tab", "toggle"}

// New builds the named widget from p, applying default sizes.
func New(name string, p Params) (Widget, error) {
	if err := errors.ValidateFinite(name, p.Width, p.Height, p.Value, p.Min, p.Max); err != nil {
		return nil, err
	}
	if p.Width < 0 || p.Height < 0 {
		return nil, errors.New(errors.ErrCodeInvalidWidget, "%s size must not be negative", name)
	}
	if err := errors.ValidateColor(p.Fill); err != nil {
		return nil, err
	}
	elev := p.Elevation
	if elev == 0 {
		elev = MinElevation
	}

	switch name {
	case "card":
		return Card{Width: or(p.Width, DefaultCardWidth), Height: or(p.Height, DefaultCardHeight), Elevation: elev, Fill: p.Fill}, nil
	case "button":
		return Button{Width: or(p.Width, DefaultButtonWidth), Height: or(p.Height, DefaultButtonHeight), Elevation: elev}, nil
	case "checkbox":
		return Checkbox{Checked: p.Checked}, nil
	case "divider":
		return Divider{Width: or(p.Width, DefaultDividerWidth), Elevation: elev}, nil
	case "progress":
		return Progress{
			Width:  or(p.Width, DefaultProgressWidth),
			Height: or(p.Height, DefaultProgressHeight),
			Value:  p.Value,
			Min:    p.Min,
			Max:    or(p.Max, DefaultProgressMax),
		}, nil
	case "toggle":
		return Toggle{Checked: p.Checked}, nil
	case "input":
		return Input{Width: or(p.Width, DefaultInputWidth), Height: or(p.Height, DefaultInputHeight)}, nil
	case "tab":
		return Tab{Width: or(p.Width, DefaultTabWidth), Height: or(p.Height, DefaultTabHeight)}, nil
	case "combo":
		return Combo{Width: or(p.Width, DefaultComboWidth), Height: or(p.Height, DefaultComboHeight)}, nil
	case "image":
		return Image{Width: or(p.Width, DefaultImageWidth), Height: or(p.Height, DefaultImageHeight), Elevation: elev}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidWidget, "unknown widget %q", name)
	}
}

func or(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}
