package rough

import (
	"reflect"
	"testing"
)

func mustOptions(t *testing.T, seed Seed, opts ...Option) Options {
	t.Helper()
	o, err := Resolve(seed, opts...)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	return o
}

func assertSameOps(t *testing.T, a, b OpSet) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("OpSets differ:\n%v\n%v", a, b)
	}
}

// insideOrOn reports whether p lies inside poly (even-odd) or within eps of
// its boundary.
func insideOrOn(poly []Point, p Point, eps float64) bool {
	n := len(poly)
	for i := range poly {
		if distToSegment(p, poly[i], poly[(i+1)%n]) <= eps {
			return true
		}
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
