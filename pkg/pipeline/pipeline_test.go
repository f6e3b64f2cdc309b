package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/roughsketch/pkg/cache"
	"github.com/matzehuels/roughsketch/pkg/errors"
	"github.com/matzehuels/roughsketch/pkg/rough"
	"github.com/matzehuels/roughsketch/pkg/scene"
	"github.com/matzehuels/roughsketch/pkg/widget"
)

// memCache is an in-memory cache.Cache that counts hits.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	hits int
	sets int
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	if ok {
		c.hits++
	}
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

func testScene() *scene.Scene {
	return &scene.Scene{
		Seed:   7,
		Width:  200,
		Height: 120,
		Shapes: []scene.Shape{
			{Kind: rough.KindRectangle, Geometry: rough.Geometry{X: 10, Y: 10, Width: 80, Height: 60}, Fill: true},
			{Kind: rough.KindLine, Geometry: rough.Geometry{X: 100, Y: 10, X2: 190, Y2: 110}},
		},
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Invalid format error = %v, want INVALID_FORMAT", err)
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Widget: "button"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Scale != DefaultPNGScale {
		t.Errorf("Scale = %v, want %v", opts.Scale, DefaultPNGScale)
	}
}

func TestOptionsValidate(t *testing.T) {
	bad := rough.Seed(-1)
	tests := []struct {
		name string
		opts Options
	}{
		{"no input", Options{}},
		{"two inputs", Options{Widget: "card", ScenePath: "a.toml"}},
		{"bad format", Options{Widget: "card", Formats: []string{"gif"}}},
		{"bad stroke", Options{Widget: "card", Stroke: "red;x"}},
		{"bad class", Options{Widget: "card", Class: `a"b`}},
		{"bad seed", Options{Widget: "card", Seed: &bad}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); err == nil {
				t.Error("ValidateAndSetDefaults() succeeded, want error")
			} else if !errors.IsInvalid(err) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want an invalid-input code", err)
			}
		})
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Widget: "card", Formats: []string{"json"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	first := opts
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if len(opts.Formats) != len(first.Formats) || opts.Scale != first.Scale {
		t.Errorf("second call changed options: %+v vs %+v", opts, first)
	}
}

func TestKeyOpts(t *testing.T) {
	seed := rough.Seed(3)
	roughness := 1.0
	base := Options{Widget: "card", Join: true, Scale: 2, Seed: &seed}
	keyer := cache.NewDefaultKeyer()
	key := func(o Options) string { return keyer.SceneKey("h", o.KeyOpts(FormatSVG)) }

	other := rough.Seed(4)
	tests := []struct {
		name string
		opts Options
		same bool
	}{
		{"identical", Options{Widget: "card", Join: true, Scale: 2, Seed: &seed}, true},
		{"seed", Options{Widget: "card", Join: true, Scale: 2, Seed: &other}, false},
		{"join", Options{Widget: "card", Scale: 2, Seed: &seed}, false},
		{"scale", Options{Widget: "card", Join: true, Scale: 3, Seed: &seed}, false},
		{"defaults", Options{Widget: "card", Join: true, Scale: 2, Seed: &seed, Defaults: rough.Overrides{Roughness: &roughness}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := key(tt.opts) == key(base); got != tt.same {
				t.Errorf("SceneKey equal = %v, want %v", got, tt.same)
			}
		})
	}

	if got := base.KeyOpts(FormatPNG).Format; got != FormatPNG {
		t.Errorf("KeyOpts().Format = %q, want %q", got, FormatPNG)
	}
}

func TestExecuteScene(t *testing.T) {
	c := newMemCache()
	r := NewRunner(c, nil, nil)
	ctx := context.Background()

	res, err := r.Execute(ctx, Options{Scene: testScene(), Formats: []string{"svg", "json"}})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}
	if res.Stats.Shapes != 2 {
		t.Errorf("Stats.Shapes = %d, want 2", res.Stats.Shapes)
	}
	if len(res.Drawing.Items) != 2 || res.Stats.Ops == 0 {
		t.Errorf("Drawing has %d items and %d ops", len(res.Drawing.Items), res.Stats.Ops)
	}
	if !bytes.HasPrefix(res.Artifacts["svg"], []byte("<svg")) {
		t.Errorf("svg artifact = %.40q", res.Artifacts["svg"])
	}
	if !json.Valid(res.Artifacts["json"]) {
		t.Error("json artifact is not valid JSON")
	}
	if c.sets != 2 {
		t.Errorf("cache sets = %d, want 2", c.sets)
	}

	again, err := r.Execute(ctx, Options{Scene: testScene(), Formats: []string{"svg", "json"}})
	if err != nil {
		t.Fatalf("Execute() second run error = %v", err)
	}
	if !again.CacheInfo.RenderHit {
		t.Error("second run should hit the cache")
	}
	if !bytes.Equal(again.Artifacts["svg"], res.Artifacts["svg"]) {
		t.Error("cached svg differs from rendered svg")
	}

	refreshed, err := r.Execute(ctx, Options{Scene: testScene(), Formats: []string{"svg"}, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.CacheInfo.RenderHit {
		t.Error("refresh should bypass the cache")
	}
	if !bytes.Equal(refreshed.Artifacts["svg"], res.Artifacts["svg"]) {
		t.Error("re-rendered svg is not deterministic")
	}
}

func TestExecuteDoesNotMutateScene(t *testing.T) {
	sc := testScene()
	seed := rough.Seed(99)
	if _, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{Scene: sc, Seed: &seed}); err != nil {
		t.Fatal(err)
	}
	if sc.Seed != 7 || sc.Shapes[0].ID != "" {
		t.Errorf("caller scene was modified: seed=%d id=%q", sc.Seed, sc.Shapes[0].ID)
	}
}

func TestExecuteSeedOverride(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	ctx := context.Background()

	a, err := r.Execute(ctx, Options{Scene: testScene()})
	if err != nil {
		t.Fatal(err)
	}
	seed := rough.Seed(1234)
	b, err := r.Execute(ctx, Options{Scene: testScene(), Seed: &seed})
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a.Artifacts["svg"], b.Artifacts["svg"]) {
		t.Error("seed override should change the drawing")
	}
}

func TestExecuteScenePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	data, _ := json.Marshal(testScene())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{ScenePath: path})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.InputHash == "" {
		t.Error("InputHash is empty")
	}

	_, err = NewRunner(nil, nil, nil).Execute(context.Background(), Options{ScenePath: filepath.Join(t.TempDir(), "missing.toml")})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing scene error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestExecuteWidget(t *testing.T) {
	c := newMemCache()
	r := NewRunner(c, nil, nil)
	ctx := context.Background()

	on := Options{Widget: "toggle", WidgetParams: widget.Params{Checked: true}}
	off := Options{Widget: "toggle"}

	a, err := r.Execute(ctx, on)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	b, err := r.Execute(ctx, off)
	if err != nil {
		t.Fatal(err)
	}
	if b.CacheInfo.RenderHit {
		t.Error("different widget params must not share a cache entry")
	}
	if bytes.Equal(a.Artifacts["svg"], b.Artifacts["svg"]) {
		t.Error("checked and unchecked toggles render identically")
	}

	_, err = r.Execute(ctx, Options{Widget: "slider"})
	if !errors.Is(err, errors.ErrCodeInvalidWidget) {
		t.Errorf("unknown widget error = %v, want INVALID_WIDGET", err)
	}
}

func TestExecuteInvalidScene(t *testing.T) {
	sc := testScene()
	sc.Shapes[0].Kind = "hexagon"
	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{Scene: sc})
	if !errors.Is(err, errors.ErrCodeInvalidScene) {
		t.Errorf("Execute() error = %v, want INVALID_SCENE", err)
	}
}

func TestPrimitiveCached(t *testing.T) {
	c := newMemCache()
	r := NewRunner(c, nil, nil)
	ctx := context.Background()
	req := PathRequest{
		Kind:     rough.KindEllipse,
		Geometry: rough.Geometry{X: 50, Y: 50, Width: 80, Height: 40},
		Options:  rough.Defaults(42),
	}

	ops, hit, err := r.Primitive(ctx, req)
	if err != nil {
		t.Fatalf("Primitive() error = %v", err)
	}
	if hit {
		t.Error("first call should miss")
	}
	want, _ := rough.GeneratePrimitive(req.Kind, req.Geometry, req.Options)
	if rough.Serialize(ops, false) != rough.Serialize(want, false) {
		t.Error("Primitive() differs from direct generation")
	}

	cached, hit, err := r.Primitive(ctx, req)
	if err != nil || !hit {
		t.Fatalf("second call hit = %v, err = %v", hit, err)
	}
	if rough.Serialize(cached, false) != rough.Serialize(ops, false) {
		t.Error("cached ops differ from generated ops")
	}
}

func TestFill(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	req := PathRequest{
		Kind:     rough.KindRectangle,
		Geometry: rough.Geometry{Width: 100, Height: 100},
		Options:  rough.Defaults(1),
	}
	ops, _, err := r.Fill(context.Background(), req)
	if err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if ops.Count(rough.OpMove) == 0 {
		t.Error("Fill() produced no strokes")
	}

	req.Kind = rough.KindLine
	if _, _, err := r.Fill(context.Background(), req); err == nil {
		t.Error("Fill() of a line should fail")
	}
}

func TestPrimitiveInvalidOptions(t *testing.T) {
	o := rough.Defaults(1)
	o.Roughness = -1
	_, _, err := NewRunner(nil, nil, nil).Primitive(context.Background(), PathRequest{Kind: rough.KindLine, Options: o})
	if !errors.Is(err, errors.ErrCodeInvalidOptions) {
		t.Errorf("Primitive() error = %v, want INVALID_OPTIONS", err)
	}
}

func TestEncodeOptions(t *testing.T) {
	res, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{Scene: testScene()})
	if err != nil {
		t.Fatal(err)
	}
	out, err := Encode(res.Drawing, "#fff", Options{Scene: testScene(), Stroke: "#123456", Class: "sketch"})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	svg := out["svg"]
	for _, want := range []string{`#123456`, `sketch`, `#fff`} {
		if !bytes.Contains(svg, []byte(want)) {
			t.Errorf("svg missing %q", want)
		}
	}
}
