package rough

import (
	"encoding/json"
	"fmt"
)

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// OpKind tags an Op.
type OpKind int

const (
	OpMove  OpKind = iota // start a new subpath at To
	OpLine                // straight segment to To
	OpCurve               // cubic bezier to To via C1 and C2
)

// String returns the operation name used in JSON output.
func (k OpKind) String() string {
	switch k {
	case OpMove:
		return "move"
	case OpLine:
		return "lineTo"
	case OpCurve:
		return "bcurveTo"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is a single drawing operation. C1 and C2 are only meaningful for
// OpCurve.
type Op struct {
	Kind   OpKind
	C1, C2 Point
	To     Point
}

func move(p Point) Op             { return Op{Kind: OpMove, To: p} }
func lineTo(p Point) Op           { return Op{Kind: OpLine, To: p} }
func curveTo(c1, c2, to Point) Op { return Op{Kind: OpCurve, C1: c1, C2: c2, To: to} }

// MarshalJSON encodes an op as {"op": name, "data": [x, y, ...]}.
func (o Op) MarshalJSON() ([]byte, error) {
	var data []float64
	if o.Kind == OpCurve {
		data = []float64{o.C1.X, o.C1.Y, o.C2.X, o.C2.Y, o.To.X, o.To.Y}
	} else {
		data = []float64{o.To.X, o.To.Y}
	}
	return json.Marshal(struct {
		Op   string    `json:"op"`
		Data []float64 `json:"data"`
	}{o.Kind.String(), data})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (o *Op) UnmarshalJSON(data []byte) error {
	var raw struct {
		Op   string    `json:"op"`
		Data []float64 `json:"data"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	want := 2
	switch raw.Op {
	case "move":
		o.Kind = OpMove
	case "lineTo":
		o.Kind = OpLine
	case "bcurveTo":
		o.Kind = OpCurve
		want = 6
	default:
		return fmt.Errorf("unknown op %q", raw.Op)
	}
	if len(raw.Data) != want {
		return fmt.Errorf("op %s needs %d values, got %d", raw.Op, want, len(raw.Data))
	}
	if o.Kind == OpCurve {
		o.C1 = Point{raw.Data[0], raw.Data[1]}
		o.C2 = Point{raw.Data[2], raw.Data[3]}
		o.To = Point{raw.Data[4], raw.Data[5]}
	} else {
		o.C1, o.C2 = Point{}, Point{}
		o.To = Point{raw.Data[0], raw.Data[1]}
	}
	return nil
}

// OpSet is an ordered sequence of operations. Order is draw order; each
// stroke pass starts with an OpMove.
type OpSet []Op

// Points returns the end point of every operation, in order.
func (s OpSet) Points() []Point {
	pts := make([]Point, len(s))
	for i, op := range s {
		pts[i] = op.To
	}
	return pts
}

// Subpaths splits s at every OpMove. Each returned run starts with its move.
func (s OpSet) Subpaths() []OpSet {
	var runs []OpSet
	for i, op := range s {
		if op.Kind == OpMove || len(runs) == 0 {
			runs = append(runs, s[i:i+1:i+1])
			continue
		}
		runs[len(runs)-1] = append(runs[len(runs)-1], op)
	}
	return runs
}

// First returns the point of the first operation.
func (s OpSet) First() (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	return s[0].To, true
}

// Last returns the end point of the last operation.
func (s OpSet) Last() (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	return s[len(s)-1].To, true
}

// Count returns the number of operations of the given kind.
func (s OpSet) Count(kind OpKind) int {
	n := 0
	for _, op := range s {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
