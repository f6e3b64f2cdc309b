package rough

import (
	"strconv"
	"strings"
)

// Serialize converts ops into SVG path data.
//
// Coordinates are written with the shortest decimal representation that
// round-trips, so equal OpSets always serialize to equal strings. When join
// is set only the first OpMove starts a subpath; later moves are dropped so
// a multi-pass closed outline reads as one continuous path.
func Serialize(ops OpSet, join bool) string {
	var b strings.Builder
	b.Grow(len(ops) * 32)
	started := false
	for _, op := range ops {
		switch op.Kind {
		case OpMove:
			if join && started {
				continue
			}
			started = true
			writeCmd(&b, 'M')
			writePoint(&b, op.To)
		case OpLine:
			writeCmd(&b, 'L')
			writePoint(&b, op.To)
		case OpCurve:
			writeCmd(&b, 'C')
			writePoint(&b, op.C1)
			b.WriteString(", ")
			writePoint(&b, op.C2)
			b.WriteString(", ")
			writePoint(&b, op.To)
		}
	}
	return b.String()
}

func writeCmd(b *strings.Builder, cmd byte) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteByte(cmd)
	b.WriteByte(' ')
}

func writePoint(b *strings.Builder, p Point) {
	b.WriteString(formatFloat(p.X))
	b.WriteByte(' ')
	b.WriteString(formatFloat(p.Y))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
