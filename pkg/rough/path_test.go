package rough

import (
	"encoding/json"
	"testing"
)

func TestSerialize(t *testing.T) {
	a, b := 0.1, 0.2
	ops := OpSet{
		move(Point{1, 2}),
		curveTo(Point{3, 4}, Point{5.5, -6}, Point{7, 8}),
		lineTo(Point{9, 10}),
		move(Point{1, 2}),
		lineTo(Point{a + b, 0}),
	}

	tests := []struct {
		name string
		join bool
		want string
	}{
		{"separate", false, "M 1 2 C 3 4, 5.5 -6, 7 8 L 9 10 M 1 2 L 0.30000000000000004 0"},
		{"joined", true, "M 1 2 C 3 4, 5.5 -6, 7 8 L 9 10 L 0.30000000000000004 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Serialize(ops, tt.join); got != tt.want {
				t.Errorf("Serialize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSerializeEmpty(t *testing.T) {
	if got := Serialize(nil, false); got != "" {
		t.Errorf("Serialize(nil) = %q, want empty", got)
	}
}

func TestSerializeDeterministic(t *testing.T) {
	o := Defaults(42)
	a, _ := New(o).Rectangle(0, 0, 100, 50)
	b, _ := New(o).Rectangle(0, 0, 100, 50)
	if Serialize(a, true) != Serialize(b, true) {
		t.Error("equal OpSets should serialize identically")
	}
}

func TestOpMarshalJSON(t *testing.T) {
	data, err := json.Marshal(OpSet{move(Point{1, 2}), curveTo(Point{3, 4}, Point{5, 6}, Point{7, 8})})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `[{"op":"move","data":[1,2]},{"op":"bcurveTo","data":[3,4,5,6,7,8]}]`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestOpUnmarshalJSON(t *testing.T) {
	want, _ := New(Defaults(5)).Ellipse(10, 10, 30, 20)
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var got OpSet
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	assertSameOps(t, got, want)

	for _, bad := range []string{`[{"op":"arcTo","data":[1,2]}]`, `[{"op":"bcurveTo","data":[1,2]}]`} {
		if err := json.Unmarshal([]byte(bad), &got); err == nil {
			t.Errorf("Unmarshal(%s) should fail", bad)
		}
	}
}

func TestSubpaths(t *testing.T) {
	ops := OpSet{move(Point{}), lineTo(Point{1, 0}), move(Point{2, 0}), lineTo(Point{3, 0}), lineTo(Point{4, 0})}
	runs := ops.Subpaths()
	if len(runs) != 2 || len(runs[0]) != 2 || len(runs[1]) != 3 {
		t.Errorf("Subpaths() = %v", runs)
	}
}
