// Package pipeline runs the load → render → encode pipeline for scenes and
// widgets.
//
// The CLI and the HTTP API both go through a [Runner] so that caching,
// option layering and output encoding behave the same everywhere.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ScenePath: "scene.toml",
//	    Formats:   []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Single primitives and fills bypass scenes:
//
//	o, _ := rough.Resolve(7, rough.WithRoughness(2))
//	ops, hit, err := runner.Primitive(ctx, pipeline.PathRequest{
//	    Kind:     rough.KindEllipse,
//	    Geometry: rough.Geometry{X: 50, Y: 50, Width: 80, Height: 40},
//	    Options:  o,
//	})
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/roughsketch/pkg/cache"
	"github.com/matzehuels/roughsketch/pkg/errors"
	"github.com/matzehuels/roughsketch/pkg/render"
	"github.com/matzehuels/roughsketch/pkg/rough"
	"github.com/matzehuels/roughsketch/pkg/scene"
	"github.com/matzehuels/roughsketch/pkg/widget"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// DefaultPNGScale is the PNG scale factor used when none is set.
const DefaultPNGScale = 2.0

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures one pipeline run. Exactly one of ScenePath, Scene or
// Widget selects what is drawn.
type Options struct {
	// Input
	ScenePath    string        `json:"scene_path,omitempty"`
	Scene        *scene.Scene  `json:"scene,omitempty"`
	Widget       string        `json:"widget,omitempty"`
	WidgetParams widget.Params `json:"widget_params,omitempty"`

	// Generation. Seed overrides the scene or widget seed when set;
	// Defaults sits below the scene's own defaults.
	Seed     *rough.Seed     `json:"seed,omitempty"`
	Defaults rough.Overrides `json:"defaults,omitempty"`

	// Output
	Formats     []string `json:"formats,omitempty"`
	Stroke      string   `json:"stroke,omitempty"`
	StrokeWidth float64  `json:"stroke_width,omitempty"`
	Background  string   `json:"background,omitempty"`
	Class       string   `json:"class,omitempty"`
	Join        bool     `json:"join,omitempty"`
	Scale       float64  `json:"scale,omitempty"`
	Refresh     bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Drawing is the rendered drawing. It is empty when every artifact
	// came from the cache.
	Drawing render.Drawing

	// InputHash identifies the drawn input (scene hash or widget key).
	InputHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Shapes     int
	Ops        int
	LoadTime   time.Duration
	RenderTime time.Duration
	EncodeTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the input selection and output settings and
// applies defaults. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	inputs := 0
	for _, set := range []bool{o.ScenePath != "", o.Scene != nil, o.Widget != ""} {
		if set {
			inputs++
		}
	}
	if inputs != 1 {
		return errors.New(errors.ErrCodeInvalidInput, "exactly one of scene path, scene or widget is required")
	}
	if o.Seed != nil && !o.Seed.Valid() {
		return errors.New(errors.ErrCodeInvalidOptions, "seed must be in [0, 2^31), got %d", *o.Seed)
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	for _, c := range []string{o.Stroke, o.Background} {
		if err := errors.ValidateColor(c); err != nil {
			return err
		}
	}
	if err := errors.ValidateClass(o.Class); err != nil {
		return err
	}
	if err := errors.ValidateFinite("output", o.StrokeWidth, o.Scale); err != nil {
		return err
	}
	if o.Scale <= 0 {
		o.Scale = DefaultPNGScale
	}
	o.validated = true
	return nil
}

// BaseOptions resolves the rough options below any scene-level settings.
func (o *Options) BaseOptions(seed rough.Seed) (rough.Options, error) {
	if o.Seed != nil {
		seed = *o.Seed
	}
	return rough.Resolve(seed, rough.WithOverrides(o.Defaults))
}

// renderKey holds the options besides the output styling that change an
// artifact's bytes.
type renderKey struct {
	Seed     *rough.Seed     `json:"seed,omitempty"`
	Defaults rough.Overrides `json:"defaults"`
	Join     bool            `json:"join,omitempty"`
	Scale    float64         `json:"scale,omitempty"`
}

// KeyOpts returns cache key options for artifact rendering.
func (o *Options) KeyOpts(format string) cache.SceneKeyOpts {
	return cache.SceneKeyOpts{
		Format:      format,
		StrokeWidth: o.StrokeWidth,
		Stroke:      o.Stroke,
		Background:  o.Background,
		Class:       o.Class,
		Defaults: renderKey{
			Seed:     o.Seed,
			Defaults: o.Defaults,
			Join:     o.Join,
			Scale:    o.Scale,
		},
	}
}
