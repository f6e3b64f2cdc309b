package rough

import "math"

// sketcher carries the per-call state of one generation: the resolved
// options, the pseudo-random stream seeded from them, and the roughness in
// effect (fills scale it down).
type sketcher struct {
	o         Options
	r         *Random
	roughness float64
}

func newSketcher(o Options) *sketcher {
	return &sketcher{o: o, r: NewRandom(o.Seed), roughness: o.Roughness}
}

// newFillSketcher scales roughness by FillShapeRoughnessGain.
func newFillSketcher(o Options) *sketcher {
	s := newSketcher(o)
	s.roughness = o.Roughness * o.FillShapeRoughnessGain
	return s
}

// offset returns a jitter value in roughness*gain*[min, max].
func (s *sketcher) offset(min, max, gain float64) float64 {
	return s.roughness * gain * s.r.Offset(min, max)
}

// offsetOpt returns a jitter value symmetric around zero.
func (s *sketcher) offsetOpt(x, gain float64) float64 {
	return s.offset(-x, x, gain)
}

// roughnessGain damps jitter on long lines so they do not wobble wildly.
func roughnessGain(length float64) float64 {
	switch {
	case length < 200:
		return 1
	case length > 500:
		return 0.4
	default:
		return -0.0016668*length + 1.233334
	}
}

// stroke returns one jittered cubic from a to b. a and b are kept exactly;
// the two control points sit near 1x and 2x the divergence point along the
// chord, shifted perpendicular to it by the bowing term and jittered by at
// most MaxRandomnessOffset (half of it on the overlay pass).
func (s *sketcher) stroke(a, b Point, overlay bool) Op {
	dx, dy := b.X-a.X, b.Y-a.Y
	lengthSq := dx*dx + dy*dy
	length := math.Sqrt(lengthSq)
	gain := roughnessGain(length)

	jitter := s.o.MaxRandomnessOffset
	if jitter*jitter*100 > lengthSq {
		jitter = length / 10
	}
	if overlay {
		jitter /= 2
	}

	diverge := 0.2 + s.r.Next()*0.2

	// (dy, -dx) is perpendicular to the chord with the chord's length, so
	// the displacement magnitude is bowing * length * offset.
	bow := s.offsetOpt(s.o.Bowing*s.o.MaxRandomnessOffset/200, gain)
	midX, midY := bow*dy, -bow*dx

	c1 := Point{
		X: a.X + dx*diverge + midX + s.offsetOpt(jitter, gain),
		Y: a.Y + dy*diverge + midY + s.offsetOpt(jitter, gain),
	}
	c2 := Point{
		X: a.X + 2*dx*diverge + midX + s.offsetOpt(jitter, gain),
		Y: a.Y + 2*dy*diverge + midY + s.offsetOpt(jitter, gain),
	}
	return curveTo(c1, c2, b)
}

// doubleLine strokes a to b once, or twice unless multi-stroke is disabled
// for outlines (filling == false) or fills (filling == true).
func (s *sketcher) doubleLine(a, b Point, filling bool) OpSet {
	single := s.o.DisableMultiStroke
	if filling {
		single = s.o.DisableMultiStrokeFill
	}
	ops := OpSet{move(a), s.stroke(a, b, false)}
	if single {
		return ops
	}
	return append(ops, move(a), s.stroke(a, b, true))
}

// outline strokes the polyline through pts, closing back to pts[0] when
// closed is set. Each pass visits every edge and starts with a single move,
// so a closed outline's passes begin and end on pts[0].
func (s *sketcher) outline(pts []Point, closed, single bool) OpSet {
	n := len(pts)
	edges := n - 1
	if closed {
		edges = n
	}
	passes := 2
	if single {
		passes = 1
	}

	ops := make(OpSet, 0, passes*(edges+1))
	for pass := 0; pass < passes; pass++ {
		ops = append(ops, move(pts[0]))
		for i := 0; i < edges; i++ {
			ops = append(ops, s.stroke(pts[i], pts[(i+1)%n], pass == 1))
		}
	}
	return ops
}
