package rough

import (
	"github.com/matzehuels/roughsketch/pkg/errors"
)

// minSize is the smallest width or height a shape is drawn with.
const minSize = 1.0

// clampSize normalizes a width or height: anything <= 0 becomes minSize.
func clampSize(v float64) float64 {
	if v <= 0 {
		return minSize
	}
	return v
}

// Line strokes p1 to p2. Both endpoints are kept exactly.
func (g *Generator) Line(p1, p2 Point) (OpSet, error) {
	if err := errors.ValidateFinite("line", p1.X, p1.Y, p2.X, p2.Y); err != nil {
		return nil, err
	}
	return newSketcher(g.opts).doubleLine(p1, p2, false), nil
}

// Rectangle outlines the rectangle with top-left corner (x, y). Each of
// the four edges is jittered independently.
func (g *Generator) Rectangle(x, y, w, h float64) (OpSet, error) {
	if err := errors.ValidateFinite("rectangle", x, y, w, h); err != nil {
		return nil, err
	}
	pts := rectanglePoints(x, y, clampSize(w), clampSize(h))
	return newSketcher(g.opts).outline(pts, true, g.opts.DisableMultiStroke), nil
}

func rectanglePoints(x, y, w, h float64) []Point {
	return []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

// Polygon outlines points and closes back to the first vertex.
func (g *Generator) Polygon(points []Point) (OpSet, error) {
	if err := validatePolygon(points); err != nil {
		return nil, err
	}
	return newSketcher(g.opts).outline(points, true, g.opts.DisableMultiStroke), nil
}

// LinearPath strokes the open polyline through points.
func (g *Generator) LinearPath(points []Point) (OpSet, error) {
	if len(points) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidGeometry, "linear path needs at least 2 points, got %d", len(points))
	}
	if err := validatePoints("linear path", points); err != nil {
		return nil, err
	}
	return newSketcher(g.opts).outline(points, false, g.opts.DisableMultiStroke), nil
}

func validatePolygon(points []Point) error {
	if len(points) < 3 {
		return errors.New(errors.ErrCodeInvalidPolygon, "polygon needs at least 3 vertices, got %d", len(points))
	}
	return validatePoints("polygon", points)
}

func validatePoints(what string, points []Point) error {
	for _, p := range points {
		if err := errors.ValidateFinite(what, p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}
