package rough

import (
	"github.com/matzehuels/roughsketch/pkg/errors"
)

// Kind names a primitive.
type Kind string

const (
	KindLine       Kind = "line"
	KindRectangle  Kind = "rectangle"
	KindEllipse    Kind = "ellipse"
	KindCircle     Kind = "circle"
	KindArc        Kind = "arc"
	KindPolygon    Kind = "polygon"
	KindLinearPath Kind = "linearpath"
)

// Kinds lists every primitive kind in a stable order.
var Kinds = []Kind{KindLine, KindRectangle, KindEllipse, KindCircle, KindArc, KindPolygon, KindLinearPath}

// Valid reports whether k is a known primitive kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Closed reports whether primitives of kind k enclose an area that can be
// filled. Arcs are only closed when Geometry.Closed is set.
func (k Kind) Closed() bool {
	switch k {
	case KindRectangle, KindEllipse, KindCircle, KindPolygon:
		return true
	}
	return false
}

// IsClosed reports whether the outline of kind drawn with geo ends where it
// starts, which is when its subpaths may be joined with a Z.
func IsClosed(kind Kind, geo Geometry) bool {
	return kind.Closed() || (kind == KindArc && geo.Closed)
}

// Geometry holds the parameters of any primitive. Which fields are read
// depends on the Kind:
//
//   - line: (X, Y) to (X2, Y2)
//   - rectangle: top-left (X, Y), Width, Height
//   - ellipse: centre (X, Y), Width, Height
//   - circle: centre (X, Y), Width as diameter
//   - arc: centre (X, Y), Width, Height, Start, Stop (radians), Closed
//   - polygon, linearpath: Points
type Geometry struct {
	X      float64 `json:"x,omitempty" toml:"x"`
	Y      float64 `json:"y,omitempty" toml:"y"`
	X2     float64 `json:"x2,omitempty" toml:"x2"`
	Y2     float64 `json:"y2,omitempty" toml:"y2"`
	Width  float64 `json:"width,omitempty" toml:"width"`
	Height float64 `json:"height,omitempty" toml:"height"`
	Start  float64 `json:"start,omitempty" toml:"start"`
	Stop   float64 `json:"stop,omitempty" toml:"stop"`
	Closed bool    `json:"closed,omitempty" toml:"closed"`
	Points []Point `json:"points,omitempty" toml:"points"`
}

// Generator produces hand-drawn operation sequences for one resolved
// Options value. Every method starts a fresh random stream from the
// options' seed, so calls are independent and repeatable.
type Generator struct {
	opts Options
}

// New returns a generator bound to o.
func New(o Options) *Generator {
	return &Generator{opts: o}
}

// Options returns the options the generator was created with.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate dispatches to the primitive named by kind.
func (g *Generator) Generate(kind Kind, geo Geometry) (OpSet, error) {
	switch kind {
	case KindLine:
		return g.Line(Point{geo.X, geo.Y}, Point{geo.X2, geo.Y2})
	case KindRectangle:
		return g.Rectangle(geo.X, geo.Y, geo.Width, geo.Height)
	case KindEllipse:
		return g.Ellipse(geo.X, geo.Y, geo.Width, geo.Height)
	case KindCircle:
		return g.Circle(geo.X, geo.Y, geo.Width)
	case KindArc:
		return g.Arc(geo.X, geo.Y, geo.Width, geo.Height, geo.Start, geo.Stop, geo.Closed)
	case KindPolygon:
		return g.Polygon(geo.Points)
	case KindLinearPath:
		return g.LinearPath(geo.Points)
	default:
		return nil, errors.New(errors.ErrCodeInvalidGeometry, "unknown primitive kind %q", kind)
	}
}

// FillShape generates the fill pattern for a closed primitive.
func (g *Generator) FillShape(kind Kind, geo Geometry) (OpSet, error) {
	switch kind {
	case KindRectangle:
		if err := errors.ValidateFinite("rectangle", geo.X, geo.Y, geo.Width, geo.Height); err != nil {
			return nil, err
		}
		return g.Fill(rectanglePoints(geo.X, geo.Y, clampSize(geo.Width), clampSize(geo.Height)))
	case KindEllipse:
		return g.EllipseFill(geo.X, geo.Y, geo.Width, geo.Height)
	case KindCircle:
		return g.EllipseFill(geo.X, geo.Y, geo.Width, geo.Width)
	case KindArc:
		if !geo.Closed {
			return nil, errors.New(errors.ErrCodeInvalidGeometry, "only closed arcs can be filled")
		}
		return g.ArcFill(geo.X, geo.Y, geo.Width, geo.Height, geo.Start, geo.Stop)
	case KindPolygon:
		return g.Fill(geo.Points)
	default:
		return nil, errors.New(errors.ErrCodeInvalidGeometry, "%s primitives cannot be filled", kind)
	}
}

// GeneratePrimitive is shorthand for New(o).Generate(kind, geo).
func GeneratePrimitive(kind Kind, geo Geometry, o Options) (OpSet, error) {
	return New(o).Generate(kind, geo)
}

// GenerateFill is shorthand for New(o).Fill(polygon).
func GenerateFill(polygon []Point, o Options) (OpSet, error) {
	return New(o).Fill(polygon)
}
