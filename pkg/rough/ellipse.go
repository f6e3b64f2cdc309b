package rough

import (
	"math"

	"github.com/matzehuels/roughsketch/pkg/errors"
)

const twoPi = 2 * math.Pi

// minEllipseSteps keeps very small ellipses from degenerating into a
// point or a line.
const minEllipseSteps = 4

// ellipseParams are the jittered radii and sampling of one ellipse.
type ellipseParams struct {
	rx, ry    float64
	steps     int
	increment float64
}

// ellipseParams derives the sample step from the perimeter and curve step
// count, then loosens the radii by (1 - CurveFitting). It must be the first
// thing drawn from s so that outline and fill agree on the radii.
func (s *sketcher) ellipseParams(w, h float64) ellipseParams {
	rx, ry := math.Abs(w/2), math.Abs(h/2)
	psq := math.Sqrt(twoPi * math.Sqrt((rx*rx+ry*ry)/2))
	steps := float64(s.o.CurveStepCount)
	stepCount := max(minEllipseSteps, int(math.Ceil(math.Max(steps, steps/math.Sqrt(200)*psq))))

	looseness := 1 - s.o.CurveFitting
	rx += s.offsetOpt(rx*looseness, 1)
	ry += s.offsetOpt(ry*looseness, 1)
	return ellipseParams{rx: rx, ry: ry, steps: stepCount, increment: twoPi / float64(stepCount)}
}

// ellipsePoints samples the ellipse once around, starting at a jittered
// angle near the top, with every sample displaced by up to jitter.
func (s *sketcher) ellipsePoints(cx, cy float64, p ellipseParams, jitter float64) []Point {
	start := s.offsetOpt(0.5, 1) - math.Pi/2
	pts := make([]Point, p.steps)
	for i := range pts {
		angle := start + float64(i)*p.increment
		pts[i] = Point{
			X: cx + p.rx*math.Cos(angle) + s.offsetOpt(jitter, 1),
			Y: cy + p.ry*math.Sin(angle) + s.offsetOpt(jitter, 1),
		}
	}
	return pts
}

// closedCurve fits a closed cubic spline through pts. The first op moves to
// pts[0] and the last curve ends on exactly the same point.
func (s *sketcher) closedCurve(pts []Point) OpSet {
	n := len(pts)
	at := func(i int) Point { return pts[((i%n)+n)%n] }
	ops := make(OpSet, 0, n+1)
	ops = append(ops, move(pts[0]))
	for i := 0; i < n; i++ {
		ops = append(ops, s.segment(at(i-1), at(i), at(i+1), at(i+2)))
	}
	return ops
}

// openCurve fits an open cubic spline through pts; the end tangents are
// taken from the first and last segment.
func (s *sketcher) openCurve(pts []Point) OpSet {
	n := len(pts)
	at := func(i int) Point { return pts[max(0, min(n-1, i))] }
	ops := make(OpSet, 0, n)
	ops = append(ops, move(pts[0]))
	for i := 0; i+1 < n; i++ {
		ops = append(ops, s.segment(at(i-1), at(i), at(i+1), at(i+2)))
	}
	return ops
}

// segment is the Catmull-Rom style cubic from p1 to p2, with tension set
// by CurveTightness (0 is a plain Catmull-Rom, 1 a polyline).
func (s *sketcher) segment(p0, p1, p2, p3 Point) Op {
	t := 1 - s.o.CurveTightness
	c1 := Point{p1.X + t*(p2.X-p0.X)/6, p1.Y + t*(p2.Y-p0.Y)/6}
	c2 := Point{p2.X - t*(p3.X-p1.X)/6, p2.Y - t*(p3.Y-p1.Y)/6}
	return curveTo(c1, c2, p2)
}

// multiPass reports whether curved outlines get a second pass. Lines and
// rectangles follow the same rule, so every outline is doubled unless
// DisableMultiStroke is set.
func (s *sketcher) multiPass() bool {
	return !s.o.DisableMultiStroke
}

// Ellipse outlines the ellipse centred on (cx, cy). The outline is closed:
// its first and last points are identical.
func (g *Generator) Ellipse(cx, cy, w, h float64) (OpSet, error) {
	if err := errors.ValidateFinite("ellipse", cx, cy, w, h); err != nil {
		return nil, err
	}
	s := newSketcher(g.opts)
	p := s.ellipseParams(clampSize(w), clampSize(h))

	first := s.ellipsePoints(cx, cy, p, 1)
	ops := s.closedCurve(first)
	if s.multiPass() {
		second := s.ellipsePoints(cx, cy, p, 1.5)
		second[0] = first[0]
		ops = append(ops, s.closedCurve(second)...)
	}
	return ops, nil
}

// Circle outlines the circle centred on (cx, cy) with diameter d.
func (g *Generator) Circle(cx, cy, d float64) (OpSet, error) {
	return g.Ellipse(cx, cy, d, d)
}

// normalizeArc shifts start into [0, 2π) and moves stop forward so that
// start < stop <= start + 2π.
func normalizeArc(start, stop float64) (float64, float64, error) {
	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(stop) || math.IsInf(stop, 0) {
		return 0, 0, errors.New(errors.ErrCodeInvalidAngleRange, "arc angles must be finite, got start=%v stop=%v", start, stop)
	}
	if start == stop {
		return 0, 0, errors.New(errors.ErrCodeInvalidAngleRange, "arc start and stop are equal (%v)", start)
	}

	shift := math.Floor(start/twoPi) * twoPi
	start -= shift
	stop -= shift
	if stop < start {
		stop += math.Ceil((start-stop)/twoPi) * twoPi
	}
	if stop <= start {
		stop += twoPi
	}
	if stop-start > twoPi {
		stop = start + twoPi
	}
	if !(stop > start) {
		return 0, 0, errors.New(errors.ErrCodeInvalidAngleRange, "arc stop %v cannot be placed after start %v", stop, start)
	}
	return start, stop, nil
}

// arcPoints samples the arc from start to stop. The first and last samples
// lie exactly on the (jittered radius) ellipse at start and stop; interior
// samples are displaced by up to jitter.
func (s *sketcher) arcPoints(cx, cy, rx, ry, start, stop, increment, jitter float64) []Point {
	on := func(angle float64) Point {
		return Point{cx + rx*math.Cos(angle), cy + ry*math.Sin(angle)}
	}
	steps := int(math.Ceil((stop - start) / increment))
	pts := make([]Point, 0, steps+1)
	pts = append(pts, on(start))
	for i := 1; i < steps; i++ {
		p := on(start + float64(i)*increment)
		p.X += s.offsetOpt(jitter, 1)
		p.Y += s.offsetOpt(jitter, 1)
		pts = append(pts, p)
	}
	return append(pts, on(stop))
}

// arcGeometry validates and normalizes an arc request.
type arcGeometry struct {
	cx, cy, rx, ry float64
	start, stop    float64
	increment      float64
}

func (s *sketcher) arcGeometry(cx, cy, w, h, start, stop float64) (arcGeometry, error) {
	if err := errors.ValidateFinite("arc", cx, cy, w, h); err != nil {
		return arcGeometry{}, err
	}
	start, stop, err := normalizeArc(start, stop)
	if err != nil {
		return arcGeometry{}, err
	}
	rx, ry := clampSize(w)/2, clampSize(h)/2
	rx += s.offsetOpt(rx*0.01, 1)
	ry += s.offsetOpt(ry*0.01, 1)

	ellipseInc := twoPi / float64(s.o.CurveStepCount)
	return arcGeometry{
		cx: cx, cy: cy, rx: rx, ry: ry,
		start: start, stop: stop,
		increment: math.Min(ellipseInc/2, (stop-start)/2),
	}, nil
}

// Arc outlines the elliptical arc centred on (cx, cy) from start to stop
// radians. stop is wrapped forward past start when needed. The arc stays
// open unless closed is set, in which case both radii are drawn and each
// pass ends where it began.
func (g *Generator) Arc(cx, cy, w, h, start, stop float64, closed bool) (OpSet, error) {
	s := newSketcher(g.opts)
	a, err := s.arcGeometry(cx, cy, w, h, start, stop)
	if err != nil {
		return nil, err
	}
	centre := Point{a.cx, a.cy}

	pass := func(jitter float64, overlay bool) OpSet {
		pts := s.arcPoints(a.cx, a.cy, a.rx, a.ry, a.start, a.stop, a.increment, jitter)
		ops := s.openCurve(pts)
		if closed {
			ops = append(ops,
				s.stroke(pts[len(pts)-1], centre, overlay),
				s.stroke(centre, pts[0], overlay),
			)
		}
		return ops
	}

	ops := pass(1, false)
	if s.multiPass() {
		ops = append(ops, pass(1.5, true)...)
	}
	return ops, nil
}
