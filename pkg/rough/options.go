package rough

import (
	"math"

	"github.com/matzehuels/roughsketch/pkg/errors"
)

// FillStyle selects the fill pattern drawn inside closed shapes.
type FillStyle string

const (
	FillHachure FillStyle = "hachure" // parallel strokes
	FillZigzag  FillStyle = "zigzag"  // hachure joined into one continuous stroke
)

// Valid reports whether s is a known fill style.
func (s FillStyle) Valid() bool {
	return s == FillHachure || s == FillZigzag
}

// Default option values used by the widget library.
const (
	DefaultRoughness              = 1.0
	DefaultBowing                 = 0.85
	DefaultMaxRandomnessOffset    = 2.0
	DefaultCurveTightness         = 0.0
	DefaultCurveFitting           = 0.95
	DefaultCurveStepCount         = 9
	DefaultFillStyle              = FillHachure
	DefaultFillWeight             = 3.5
	DefaultHachureAngle           = -41.0
	DefaultHachureGap             = 5.0
	DefaultFillShapeRoughnessGain = 0.8
)

// Options is the fully resolved configuration for one generation call.
//
// Roughness scales all jitter, Bowing curves straight lines, and
// MaxRandomnessOffset bounds the jitter applied to a single point.
// CurveFitting, CurveTightness and CurveStepCount control the bezier fit of
// ellipses and arcs. HachureAngle is in degrees.
//
// It is a plain value: copying it is cheap and no method mutates the
// receiver, so a resolved Options can be shared freely between goroutines.
type Options struct {
	Roughness              float64   `json:"roughness" toml:"roughness"`
	Bowing                 float64   `json:"bowing" toml:"bowing"`
	MaxRandomnessOffset    float64   `json:"max_randomness_offset" toml:"max_randomness_offset"`
	CurveTightness         float64   `json:"curve_tightness" toml:"curve_tightness"`
	CurveFitting           float64   `json:"curve_fitting" toml:"curve_fitting"`
	CurveStepCount         int       `json:"curve_step_count" toml:"curve_step_count"`
	FillStyle              FillStyle `json:"fill_style" toml:"fill_style"`
	FillWeight             float64   `json:"fill_weight" toml:"fill_weight"`
	HachureAngle           float64   `json:"hachure_angle" toml:"hachure_angle"`
	HachureGap             float64   `json:"hachure_gap" toml:"hachure_gap"`
	DisableMultiStroke     bool      `json:"disable_multi_stroke" toml:"disable_multi_stroke"`
	DisableMultiStrokeFill bool      `json:"disable_multi_stroke_fill" toml:"disable_multi_stroke_fill"`
	FillShapeRoughnessGain float64   `json:"fill_shape_roughness_gain" toml:"fill_shape_roughness_gain"`
	Seed                   Seed      `json:"seed" toml:"seed"`
}

// Defaults returns the default options keyed by seed.
func Defaults(seed Seed) Options {
	return Options{
		Roughness:              DefaultRoughness,
		Bowing:                 DefaultBowing,
		MaxRandomnessOffset:    DefaultMaxRandomnessOffset,
		CurveTightness:         DefaultCurveTightness,
		CurveFitting:           DefaultCurveFitting,
		CurveStepCount:         DefaultCurveStepCount,
		FillStyle:              DefaultFillStyle,
		FillWeight:             DefaultFillWeight,
		HachureAngle:           DefaultHachureAngle,
		HachureGap:             DefaultHachureGap,
		FillShapeRoughnessGain: DefaultFillShapeRoughnessGain,
		Seed:                   seed,
	}
}

// Option adjusts a single field while resolving options.
type Option func(*Options)

// WithRoughness sets how far strokes stray from the true geometry.
func WithRoughness(v float64) Option {
	return func(o *Options) { o.Roughness = v }
}

// WithBowing sets how much straight strokes bend.
func WithBowing(v float64) Option {
	return func(o *Options) { o.Bowing = v }
}

// WithMaxRandomnessOffset sets the largest jitter of a control point.
func WithMaxRandomnessOffset(v float64) Option {
	return func(o *Options) { o.MaxRandomnessOffset = v }
}

// WithCurveTightness sets the tension of fitted curves.
func WithCurveTightness(v float64) Option {
	return func(o *Options) { o.CurveTightness = v }
}

// WithCurveFitting sets how closely ellipse samples follow the true radii.
func WithCurveFitting(v float64) Option {
	return func(o *Options) { o.CurveFitting = v }
}

// WithCurveStepCount sets the sample count of ellipses and arcs.
func WithCurveStepCount(n int) Option {
	return func(o *Options) { o.CurveStepCount = n }
}

// WithFillStyle selects hachure or zigzag fills.
func WithFillStyle(s FillStyle) Option {
	return func(o *Options) { o.FillStyle = s }
}

// WithFillWeight sets the fill stroke width.
func WithFillWeight(v float64) Option {
	return func(o *Options) { o.FillWeight = v }
}

// WithHachureAngle sets the fill line angle in degrees.
func WithHachureAngle(deg float64) Option {
	return func(o *Options) { o.HachureAngle = deg }
}

// WithHachureGap sets the distance between fill lines.
func WithHachureGap(v float64) Option {
	return func(o *Options) { o.HachureGap = v }
}

// WithDisableMultiStroke draws outlines with a single pass.
func WithDisableMultiStroke(b bool) Option {
	return func(o *Options) { o.DisableMultiStroke = b }
}

// WithDisableMultiStrokeFill draws fill lines with a single pass.
func WithDisableMultiStrokeFill(b bool) Option {
	return func(o *Options) { o.DisableMultiStrokeFill = b }
}

// WithFillShapeRoughnessGain scales roughness for fill strokes.
func WithFillShapeRoughnessGain(v float64) Option {
	return func(o *Options) { o.FillShapeRoughnessGain = v }
}

// WithOverrides merges every field set in ov.
func WithOverrides(ov Overrides) Option {
	return func(o *Options) { *o = o.Merge(ov) }
}

// Resolve merges opts over Defaults(seed) and validates the result.
func Resolve(seed Seed, opts ...Option) (Options, error) {
	o := Defaults(seed)
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// With returns a copy of o with opts applied. The copy is not validated.
func (o Options) With(opts ...Option) Options {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Validate checks every field for a usable value.
func (o Options) Validate() error {
	floats := []struct {
		name string
		v    float64
	}{
		{"roughness", o.Roughness},
		{"bowing", o.Bowing},
		{"max_randomness_offset", o.MaxRandomnessOffset},
		{"curve_tightness", o.CurveTightness},
		{"curve_fitting", o.CurveFitting},
		{"fill_weight", o.FillWeight},
		{"hachure_angle", o.HachureAngle},
		{"hachure_gap", o.HachureGap},
		{"fill_shape_roughness_gain", o.FillShapeRoughnessGain},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.New(errors.ErrCodeInvalidOptions, "%s is not finite", f.name)
		}
	}

	switch {
	case o.Roughness < 0:
		return errors.New(errors.ErrCodeInvalidOptions, "roughness must be >= 0, got %v", o.Roughness)
	case o.MaxRandomnessOffset < 0:
		return errors.New(errors.ErrCodeInvalidOptions, "max_randomness_offset must be >= 0, got %v", o.MaxRandomnessOffset)
	case o.CurveFitting < 0 || o.CurveFitting > 1:
		return errors.New(errors.ErrCodeInvalidOptions, "curve_fitting must be in [0, 1], got %v", o.CurveFitting)
	case o.CurveStepCount < 1:
		return errors.New(errors.ErrCodeInvalidOptions, "curve_step_count must be >= 1, got %d", o.CurveStepCount)
	case o.FillWeight < 0:
		return errors.New(errors.ErrCodeInvalidOptions, "fill_weight must be >= 0, got %v", o.FillWeight)
	case o.FillShapeRoughnessGain < 0:
		return errors.New(errors.ErrCodeInvalidOptions, "fill_shape_roughness_gain must be >= 0, got %v", o.FillShapeRoughnessGain)
	case !o.FillStyle.Valid():
		return errors.New(errors.ErrCodeInvalidOptions, "unknown fill style %q (must be 'hachure' or 'zigzag')", o.FillStyle)
	case !o.Seed.Valid():
		return errors.New(errors.ErrCodeInvalidOptions, "seed must be in [0, 2^31), got %d", o.Seed)
	}
	return nil
}

// Overrides is a partially specified Options record. Nil fields leave the
// underlying value untouched. It is the shape of option tables in config
// and scene files.
type Overrides struct {
	Roughness              *float64   `json:"roughness,omitempty" toml:"roughness"`
	Bowing                 *float64   `json:"bowing,omitempty" toml:"bowing"`
	MaxRandomnessOffset    *float64   `json:"max_randomness_offset,omitempty" toml:"max_randomness_offset"`
	CurveTightness         *float64   `json:"curve_tightness,omitempty" toml:"curve_tightness"`
	CurveFitting           *float64   `json:"curve_fitting,omitempty" toml:"curve_fitting"`
	CurveStepCount         *int       `json:"curve_step_count,omitempty" toml:"curve_step_count"`
	FillStyle              *FillStyle `json:"fill_style,omitempty" toml:"fill_style"`
	FillWeight             *float64   `json:"fill_weight,omitempty" toml:"fill_weight"`
	HachureAngle           *float64   `json:"hachure_angle,omitempty" toml:"hachure_angle"`
	HachureGap             *float64   `json:"hachure_gap,omitempty" toml:"hachure_gap"`
	DisableMultiStroke     *bool      `json:"disable_multi_stroke,omitempty" toml:"disable_multi_stroke"`
	DisableMultiStrokeFill *bool      `json:"disable_multi_stroke_fill,omitempty" toml:"disable_multi_stroke_fill"`
	FillShapeRoughnessGain *float64   `json:"fill_shape_roughness_gain,omitempty" toml:"fill_shape_roughness_gain"`
	Seed                   *Seed      `json:"seed,omitempty" toml:"seed"`
}

// Merge returns a copy of o with every non-nil field of ov applied.
func (o Options) Merge(ov Overrides) Options {
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setB := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&o.Roughness, ov.Roughness)
	setF(&o.Bowing, ov.Bowing)
	setF(&o.MaxRandomnessOffset, ov.MaxRandomnessOffset)
	setF(&o.CurveTightness, ov.CurveTightness)
	setF(&o.CurveFitting, ov.CurveFitting)
	setF(&o.FillWeight, ov.FillWeight)
	setF(&o.HachureAngle, ov.HachureAngle)
	setF(&o.HachureGap, ov.HachureGap)
	setF(&o.FillShapeRoughnessGain, ov.FillShapeRoughnessGain)
	setB(&o.DisableMultiStroke, ov.DisableMultiStroke)
	setB(&o.DisableMultiStrokeFill, ov.DisableMultiStrokeFill)
	if ov.CurveStepCount != nil {
		o.CurveStepCount = *ov.CurveStepCount
	}
	if ov.FillStyle != nil {
		o.FillStyle = *ov.FillStyle
	}
	if ov.Seed != nil {
		o.Seed = *ov.Seed
	}
	return o
}

// Layer returns base with every non-nil field of top applied on top of it.
func (base Overrides) Layer(top Overrides) Overrides {
	out := base
	if top.Roughness != nil {
		out.Roughness = top.Roughness
	}
	if top.Bowing != nil {
		out.Bowing = top.Bowing
	}
	if top.MaxRandomnessOffset != nil {
		out.MaxRandomnessOffset = top.MaxRandomnessOffset
	}
	if top.CurveTightness != nil {
		out.CurveTightness = top.CurveTightness
	}
	if top.CurveFitting != nil {
		out.CurveFitting = top.CurveFitting
	}
	if top.CurveStepCount != nil {
		out.CurveStepCount = top.CurveStepCount
	}
	if top.FillStyle != nil {
		out.FillStyle = top.FillStyle
	}
	if top.FillWeight != nil {
		out.FillWeight = top.FillWeight
	}
	if top.HachureAngle != nil {
		out.HachureAngle = top.HachureAngle
	}
	if top.HachureGap != nil {
		out.HachureGap = top.HachureGap
	}
	if top.DisableMultiStroke != nil {
		out.DisableMultiStroke = top.DisableMultiStroke
	}
	if top.DisableMultiStrokeFill != nil {
		out.DisableMultiStrokeFill = top.DisableMultiStrokeFill
	}
	if top.FillShapeRoughnessGain != nil {
		out.FillShapeRoughnessGain = top.FillShapeRoughnessGain
	}
	if top.Seed != nil {
		out.Seed = top.Seed
	}
	return out
}
