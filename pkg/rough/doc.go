// Package rough renders precise geometric primitives as hand-drawn looking
// vector strokes.
//
// # Overview
//
// The package turns simple geometric requests (line, rectangle, ellipse,
// arc, polygon) into an [OpSet]: an ordered list of move, line and cubic
// bezier operations whose control points have been perturbed to look like
// pen strokes. Closed shapes can additionally be filled with a sketchy
// hachure or zigzag pattern, and any OpSet can be serialized to SVG path
// data with [Serialize].
//
// # Reproducible Randomness
//
// Every call is a pure function of its geometry and an [Options] value. The
// options always carry an explicit [Seed], and each call starts a fresh
// pseudo-random stream from it:
//
//	opts, _ := rough.Resolve(42)
//	a, _ := rough.New(opts).Rectangle(0, 0, 100, 50)
//	b, _ := rough.New(opts).Rectangle(0, 0, 100, 50)
//	// a and b are identical, operation for operation.
//
// Nothing is bound to a shared renderer, so independent calls with distinct
// seeds may run on separate goroutines without coordination.
//
// # Usage
//
//	opts, err := rough.Resolve(rough.NewSeed(),
//	    rough.WithRoughness(1.5),
//	    rough.WithFillStyle(rough.FillZigzag),
//	)
//	g := rough.New(opts)
//	outline, err := g.Polygon([]rough.Point{{0, 0}, {100, 0}, {50, 80}})
//	fill, err := g.Fill([]rough.Point{{0, 0}, {100, 0}, {50, 80}})
//	d := rough.Serialize(outline, true)
//
// # Multi-stroke Outlines
//
// Unless DisableMultiStroke is set, outlines are emitted as two passes over
// the same geometry, each pass starting with a move. Vertices given by the
// caller are kept exactly; only control points are jittered.
package rough
