package sink

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/roughsketch/pkg/render"
	"github.com/matzehuels/roughsketch/pkg/rough"
)

func testDrawing(t *testing.T) render.Drawing {
	t.Helper()
	g := rough.New(rough.Defaults(42))
	stroke, err := g.Rectangle(10, 10, 80, 40)
	if err != nil {
		t.Fatalf("Rectangle() error: %v", err)
	}
	fill, err := g.FillShape(rough.KindRectangle, rough.Geometry{X: 10, Y: 10, Width: 80, Height: 40})
	if err != nil {
		t.Fatalf("FillShape() error: %v", err)
	}
	return render.Drawing{
		ID:     "test",
		Width:  100,
		Height: 60,
		Items: []render.Item{{
			ID:         "box",
			Kind:       rough.KindRectangle,
			Class:      "card",
			Stroke:     stroke,
			Fill:       fill,
			FillColor:  "#c00",
			FillWeight: 3.5,
			Opacity:    0.5,
			Closed:     true,
		}},
	}
}

func TestRenderSVG(t *testing.T) {
	d := testDrawing(t)
	svg := string(RenderSVG(d, WithStrokeWidth(2), WithBackground("#fff"), WithClass("sketch")))

	for _, want := range []string{
		`viewBox="0 0 100 60" width="100" height="60" class="sketch"`,
		`<rect width="100%" height="100%" fill="#fff"/>`,
		`<g id="box" class="card" opacity="0.5">`,
		`stroke="#c00" stroke-width="3.5" fill="none"`,
		`stroke="#000" stroke-width="2" fill="none"`,
		`d="` + rough.Serialize(d.Items[0].Stroke, false) + `"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("RenderSVG() missing %q", want)
		}
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("RenderSVG() should close the document")
	}
	// fill paints before stroke
	if strings.Index(svg, `stroke="#c00"`) > strings.Index(svg, `stroke="#000"`) {
		t.Error("fill should be painted before the outline")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	a := RenderSVG(testDrawing(t))
	b := RenderSVG(testDrawing(t))
	if string(a) != string(b) {
		t.Error("RenderSVG() should be deterministic")
	}
}

func TestRenderSVGJoined(t *testing.T) {
	d := testDrawing(t)
	svg := string(RenderSVG(d, WithJoinedPaths()))
	if !strings.Contains(svg, `d="`+rough.Serialize(d.Items[0].Stroke, true)+`"`) {
		t.Error("WithJoinedPaths() should join closed outlines")
	}
}

func TestRenderSVGJoinedArcs(t *testing.T) {
	tests := []struct {
		name   string
		closed bool
	}{
		{"closed arc", true},
		{"open arc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := rough.Geometry{X: 50, Y: 50, Width: 80, Height: 80, Stop: 3, Closed: tt.closed}
			stroke, err := rough.GeneratePrimitive(rough.KindArc, geo, rough.Defaults(7))
			if err != nil {
				t.Fatalf("GeneratePrimitive() error: %v", err)
			}
			d := render.Drawing{Width: 100, Height: 100, Items: []render.Item{{
				Kind:   rough.KindArc,
				Stroke: stroke,
				Closed: rough.IsClosed(rough.KindArc, geo),
			}}}
			svg := string(RenderSVG(d, WithJoinedPaths()))
			if got := strings.Contains(svg, `d="`+rough.Serialize(stroke, true)+`"`); got != tt.closed {
				t.Errorf("joined path present = %v, want %v", got, tt.closed)
			}
		})
	}
}

func TestRenderSVGEscapes(t *testing.T) {
	d := render.Drawing{Width: 10, Height: 10, Items: []render.Item{{ID: `a"b`}}}
	svg := string(RenderSVG(d))
	if !strings.Contains(svg, `id="a&#34;b"`) {
		t.Errorf("RenderSVG() should escape attributes: %s", svg)
	}
}

func TestRenderJSON(t *testing.T) {
	d := testDrawing(t)
	data, err := RenderJSON(d, WithJSONPaths())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out struct {
		ID     string  `json:"id"`
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
		Items  []struct {
			Kind       string            `json:"kind"`
			Stroke     []json.RawMessage `json:"stroke"`
			StrokePath string            `json:"stroke_path"`
		} `json:"items"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Width != 100 || out.Height != 60 {
		t.Errorf("size = %vx%v, want 100x60", out.Width, out.Height)
	}
	if len(out.Items) != 1 {
		t.Fatalf("Items count = %d, want 1", len(out.Items))
	}
	if out.Items[0].Kind != "rectangle" {
		t.Errorf("Kind = %q, want rectangle", out.Items[0].Kind)
	}
	if len(out.Items[0].Stroke) != len(d.Items[0].Stroke) {
		t.Errorf("Stroke ops = %d, want %d", len(out.Items[0].Stroke), len(d.Items[0].Stroke))
	}
	if out.Items[0].StrokePath != rough.Serialize(d.Items[0].Stroke, false) {
		t.Error("StrokePath should match Serialize()")
	}
}

func TestRenderJSONNoPaths(t *testing.T) {
	data, err := RenderJSON(testDrawing(t))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	if strings.Contains(string(data), "stroke_path") {
		t.Error("paths should be omitted without WithJSONPaths()")
	}
}
