package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/roughsketch/pkg/cache"
	"github.com/matzehuels/roughsketch/pkg/errors"
	"github.com/matzehuels/roughsketch/pkg/rough"
)

// Format is a scene file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Default canvas size for scenes that do not set one.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// Scene is a canvas and the shapes drawn on it, in paint order.
type Scene struct {
	ID         string          `json:"id,omitempty" toml:"id"`
	Seed       rough.Seed      `json:"seed" toml:"seed"`
	Width      float64         `json:"width,omitempty" toml:"width"`
	Height     float64         `json:"height,omitempty" toml:"height"`
	Background string          `json:"background,omitempty" toml:"background"`
	Defaults   rough.Overrides `json:"defaults,omitempty" toml:"defaults"`
	Shapes     []Shape         `json:"shapes" toml:"shape"`
}

// Shape is one primitive of a scene. The geometry fields are inlined so
// a shape reads as a flat table.
type Shape struct {
	ID   string     `json:"id,omitempty" toml:"id"`
	Kind rough.Kind `json:"kind" toml:"kind"`
	rough.Geometry

	Fill        bool            `json:"fill,omitempty" toml:"fill"`
	StrokeColor string          `json:"stroke,omitempty" toml:"stroke"`
	FillColor   string          `json:"fill_color,omitempty" toml:"fill_color"`
	StrokeWidth float64         `json:"stroke_width,omitempty" toml:"stroke_width"`
	Class       string          `json:"class,omitempty" toml:"class"`
	Options     rough.Overrides `json:"options,omitempty" toml:"options"`
}

// Fillable reports whether the shape encloses an area.
func (s Shape) Fillable() bool {
	return s.Kind.Closed() || (s.Kind == rough.KindArc && s.Closed)
}

// Load reads a scene file, choosing the decoder by extension (.toml or
// .json).
func Load(path string) (*Scene, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Parse(data, format)
}

// FormatFor returns the scene format implied by a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported scene file %q (want .toml or .json)", filepath.Base(path))
	}
}

// Parse decodes and validates a scene.
func Parse(data []byte, format Format) (*Scene, error) {
	var sc Scene
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &sc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidScene, "unknown scene key %q", undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(strings.NewReader(string(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&sc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown scene format %q", format)
	}

	if err := sc.Normalize(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Normalize fills in default sizes and shape IDs, then validates the scene.
func (sc *Scene) Normalize() error {
	if sc.Width == 0 {
		sc.Width = DefaultWidth
	}
	if sc.Height == 0 {
		sc.Height = DefaultHeight
	}
	for i := range sc.Shapes {
		if sc.Shapes[i].ID == "" {
			sc.Shapes[i].ID = fmt.Sprintf("shape-%d", i)
		}
	}
	return sc.Validate()
}

// Validate checks the scene without generating anything.
func (sc *Scene) Validate() error {
	if err := errors.ValidateFinite("scene size", sc.Width, sc.Height); err != nil {
		return err
	}
	if sc.Width <= 0 || sc.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidScene, "scene size must be positive, got %vx%v", sc.Width, sc.Height)
	}
	if !sc.Seed.Valid() {
		return errors.New(errors.ErrCodeInvalidScene, "seed must be in [0, 2^31), got %d", sc.Seed)
	}
	if err := errors.ValidateColor(sc.Background); err != nil {
		return err
	}
	if err := rough.Defaults(sc.Seed).Merge(sc.Defaults).Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScene, err, "scene defaults")
	}

	seen := make(map[string]bool, len(sc.Shapes))
	for i, s := range sc.Shapes {
		if !s.Kind.Valid() {
			return errors.New(errors.ErrCodeInvalidScene, "shape %d: unknown kind %q", i, s.Kind)
		}
		if seen[s.ID] {
			return errors.New(errors.ErrCodeInvalidScene, "shape %d: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true
		if s.Fill && !s.Fillable() {
			return errors.New(errors.ErrCodeInvalidScene, "shape %s: %s cannot be filled", s.ID, s.Kind)
		}
		for _, c := range []string{s.StrokeColor, s.FillColor} {
			if err := errors.ValidateColor(c); err != nil {
				return err
			}
		}
		if err := errors.ValidateClass(s.Class); err != nil {
			return err
		}
		if err := errors.ValidateFinite("stroke width", s.StrokeWidth); err != nil {
			return err
		}
	}
	return nil
}

// Hash returns a digest of everything that affects the rendered output.
// The scene ID is excluded.
func (sc *Scene) Hash() string {
	c := *sc
	c.ID = ""
	data, _ := json.Marshal(c)
	return cache.Hash(data)
}
