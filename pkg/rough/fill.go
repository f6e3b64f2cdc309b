package rough

import (
	"math"
	"slices"

	"github.com/matzehuels/roughsketch/pkg/errors"
)

// minHachureGap is the spacing used when neither HachureGap nor FillWeight
// gives a positive one.
const minHachureGap = 0.1

// maxScanlines bounds the scanlines of one fill; the gap widens past it.
const maxScanlines = 1 << 16

// spanEpsilon is the span width, relative to the polygon's extent, below
// which a span is treated as empty. Collinear vertices only produce spans
// of rounding-error width.
const spanEpsilon = 1e-9

// Segment is one interior span of a fill, A before B along the scanline.
type Segment struct {
	A, B Point
}

// HachureLines computes the interior spans of polygon for the hachure
// angle and gap in o, without any jitter.
//
// The polygon is rotated by -HachureAngle about its vertex centroid so fill
// lines become horizontal. Scanlines start half a gap into the rotated
// bounding box and are spaced HachureGap apart (4 * FillWeight when the gap
// is not positive). Each scanline's edge crossings are sorted and paired by
// the even-odd rule, and the pairs are rotated back. Spans are returned
// scanline by scanline, in increasing x within a scanline. A polygon that
// encloses no area yields no spans.
func HachureLines(polygon []Point, o Options) ([]Segment, error) {
	rows, err := hachureRows(polygon, o)
	if err != nil {
		return nil, err
	}
	var segs []Segment
	for _, row := range rows {
		segs = append(segs, row...)
	}
	return segs, nil
}

// hachureRows returns the spans of HachureLines grouped by scanline. Rows
// without spans are omitted.
func hachureRows(polygon []Point, o Options) ([][]Segment, error) {
	if err := validatePolygon(polygon); err != nil {
		return nil, err
	}

	angle := o.HachureAngle * math.Pi / 180
	c := centroid(polygon)
	rotated := make([]Point, len(polygon))
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range polygon {
		rotated[i] = rotate(p, c, -angle)
		minX, maxX = math.Min(minX, rotated[i].X), math.Max(maxX, rotated[i].X)
		minY, maxY = math.Min(minY, rotated[i].Y), math.Max(maxY, rotated[i].Y)
	}

	gap := o.HachureGap
	if gap <= 0 {
		gap = 4 * o.FillWeight
	}
	if gap <= 0 {
		gap = minHachureGap
	}
	if h := maxY - minY; h/gap > maxScanlines {
		gap = h / maxScanlines
	}
	minWidth := spanEpsilon * math.Max(maxX-minX, maxY-minY)

	layout := NewStableRandom()
	first := minY + layout.Offset(0, gap)

	var rows [][]Segment
	var xs []float64
	for k := 0; ; k++ {
		y := first + float64(k)*gap
		if y >= maxY {
			break
		}
		xs = scanline(rotated, y, xs[:0])
		var row []Segment
		for i := 0; i+1 < len(xs); i += 2 {
			if xs[i+1]-xs[i] <= minWidth {
				continue
			}
			row = append(row, Segment{
				A: rotate(Point{xs[i], y}, c, angle),
				B: rotate(Point{xs[i+1], y}, c, angle),
			})
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// scanline appends the sorted x coordinates where the horizontal line at y
// crosses the edges of poly. Edges are half-open in y so a vertex on the
// line is counted once per pair of edges meeting there.
func scanline(poly []Point, y float64, xs []float64) []float64 {
	n := len(poly)
	for i := range poly {
		a, b := poly[i], poly[(i+1)%n]
		if (a.Y <= y && b.Y > y) || (b.Y <= y && a.Y > y) {
			xs = append(xs, a.X+(y-a.Y)*(b.X-a.X)/(b.Y-a.Y))
		}
	}
	slices.Sort(xs)
	return xs
}

func centroid(poly []Point) Point {
	var c Point
	for _, p := range poly {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(poly))
	return Point{c.X / n, c.Y / n}
}

func rotate(p, c Point, angle float64) Point {
	if angle == 0 {
		return p
	}
	sin, cos := math.Sincos(angle)
	dx, dy := p.X-c.X, p.Y-c.Y
	return Point{
		X: c.X + dx*cos - dy*sin,
		Y: c.Y + dx*sin + dy*cos,
	}
}

// Fill generates the fill pattern for polygon: one jittered stroke per
// hachure span, or for zigzag a continuous stroke through the spans.
// A polygon enclosing no area yields an empty OpSet.
func (g *Generator) Fill(polygon []Point) (OpSet, error) {
	rows, err := hachureRows(polygon, g.opts)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return OpSet{}, nil
	}

	s := newFillSketcher(g.opts)
	if g.opts.FillStyle == FillZigzag {
		return s.zigzag(polygon, rows), nil
	}
	ops := make(OpSet, 0, 4*len(rows))
	for _, row := range rows {
		for _, seg := range row {
			ops = append(ops, s.doubleLine(seg.A, seg.B, true)...)
		}
	}
	return ops, nil
}

// zigzag walks the scanlines alternately forwards and backwards, reversing
// each span of a backward row, and joins a span's end to the next span's
// start with a straight connector. A connector that would leave polygon,
// such as one jumping across a notch, becomes a move instead.
func (s *sketcher) zigzag(polygon []Point, rows [][]Segment) OpSet {
	var spans []Segment
	for r, row := range rows {
		if r%2 == 0 {
			spans = append(spans, row...)
			continue
		}
		for i := len(row) - 1; i >= 0; i-- {
			spans = append(spans, Segment{A: row[i].B, B: row[i].A})
		}
	}

	eps := spanEpsilon * extent(polygon)
	joined := make([]bool, len(spans))
	for i := 1; i < len(spans); i++ {
		joined[i] = segmentInside(polygon, spans[i-1].B, spans[i].A, eps)
	}

	passes := 2
	if s.o.DisableMultiStrokeFill {
		passes = 1
	}
	ops := make(OpSet, 0, passes*(2*len(spans)+1))
	for pass := 0; pass < passes; pass++ {
		for i, seg := range spans {
			switch {
			case i > 0 && joined[i]:
				ops = append(ops, lineTo(seg.A))
			default:
				ops = append(ops, move(seg.A))
			}
			ops = append(ops, s.stroke(seg.A, seg.B, pass == 1))
		}
	}
	return ops
}

// extent returns the larger side of the bounding box of poly, at least 1.
func extent(poly []Point) float64 {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range poly {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return math.Max(math.Max(maxX-minX, maxY-minY), 1)
}

// segmentInside reports whether the segment ab stays within poly under the
// even-odd rule, counting points within eps of the boundary as inside. a
// and b themselves are expected to lie on or inside poly.
func segmentInside(poly []Point, a, b Point, eps float64) bool {
	n := len(poly)
	for i := range poly {
		if properCross(a, b, poly[i], poly[(i+1)%n], eps) {
			return false
		}
	}
	for _, t := range []float64{0.25, 0.5, 0.75} {
		p := Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
		if !pointInside(poly, p, eps) {
			return false
		}
	}
	return true
}

// properCross reports whether ab and cd cross at a point interior to both.
func properCross(a, b, c, d Point, eps float64) bool {
	side := func(p, q, r Point) int {
		v := (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
		l := math.Hypot(q.X-p.X, q.Y-p.Y)
		switch {
		case v > eps*l:
			return 1
		case v < -eps*l:
			return -1
		}
		return 0
	}
	d1, d2 := side(a, b, c), side(a, b, d)
	d3, d4 := side(c, d, a), side(c, d, b)
	return d1*d2 < 0 && d3*d4 < 0
}

// pointInside reports whether p lies inside poly under the even-odd rule or
// within eps of its boundary.
func pointInside(poly []Point, p Point, eps float64) bool {
	n := len(poly)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if distToSegment(p, a, b) <= eps {
			return true
		}
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// distToSegment returns the distance from p to the segment ab.
func distToSegment(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// EllipseFill fills the ellipse centred on (cx, cy). The boundary is
// sampled into a many-vertex polygon using the same radii the outline for
// these options gets, and filled like any other polygon.
func (g *Generator) EllipseFill(cx, cy, w, h float64) (OpSet, error) {
	if err := errors.ValidateFinite("ellipse", cx, cy, w, h); err != nil {
		return nil, err
	}
	p := newSketcher(g.opts).ellipseParams(clampSize(w), clampSize(h))

	n := max(4*p.steps, 36)
	poly := make([]Point, n)
	for i := range poly {
		angle := twoPi * float64(i) / float64(n)
		poly[i] = Point{cx + p.rx*math.Cos(angle), cy + p.ry*math.Sin(angle)}
	}
	return g.Fill(poly)
}

// ArcFill fills the pie slice of an arc: the sampled arc plus its centre.
func (g *Generator) ArcFill(cx, cy, w, h, start, stop float64) (OpSet, error) {
	a, err := newSketcher(g.opts).arcGeometry(cx, cy, w, h, start, stop)
	if err != nil {
		return nil, err
	}

	n := max(int(math.Ceil((a.stop-a.start)/(a.increment/4))), 8)
	poly := make([]Point, 0, n+2)
	poly = append(poly, Point{a.cx, a.cy})
	for i := 0; i <= n; i++ {
		angle := a.start + (a.stop-a.start)*float64(i)/float64(n)
		poly = append(poly, Point{a.cx + a.rx*math.Cos(angle), a.cy + a.ry*math.Sin(angle)})
	}
	return g.Fill(poly)
}
