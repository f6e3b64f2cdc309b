package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/roughsketch/pkg/cache"
	"github.com/matzehuels/roughsketch/pkg/observability"
	"github.com/matzehuels/roughsketch/pkg/render"
	"github.com/matzehuels/roughsketch/pkg/rough"
	"github.com/matzehuels/roughsketch/pkg/scene"
	"github.com/matzehuels/roughsketch/pkg/widget"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the default expiry of every cache entry when non-zero.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// source is a loaded scene or widget ready to be drawn.
type source struct {
	hash       string
	background string
	shapes     int
	keyFor     func(format string) string
	draw       func(ctx context.Context) (render.Drawing, error)
}

// Execute runs the complete load → render → encode pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Load
	loadStart := time.Now()
	src, err := r.load(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.InputHash = src.hash
	result.Stats.Shapes = src.shapes
	result.Stats.LoadTime = time.Since(loadStart)

	logger.Debug("loaded input", "shapes", src.shapes, "hash", src.hash, "duration", result.Stats.LoadTime)

	// Try to get all formats from cache
	if !opts.Refresh {
		if cached, ok := r.cachedArtifacts(ctx, src, opts.Formats); ok {
			result.Artifacts = cached
			result.CacheInfo.RenderHit = true
			logger.Info("served from cache", "formats", opts.Formats)
			return result, nil
		}
	}

	// Stage 2: Render
	renderStart := time.Now()
	d, err := src.draw(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Drawing = d
	result.Stats.Ops = d.OpCount()
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered drawing",
		"items", len(d.Items),
		"ops", result.Stats.Ops,
		"duration", result.Stats.RenderTime)

	// Stage 3: Encode
	encodeStart := time.Now()
	artifacts, err := Encode(d, src.background, opts)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.EncodeTime = time.Since(encodeStart)

	for format, data := range artifacts {
		r.set(ctx, "artifact", src.keyFor(format), data, cache.TTLArtifact)
	}

	logger.Info("encoded outputs", "formats", opts.Formats, "duration", result.Stats.EncodeTime)
	return result, nil
}

func (r *Runner) load(opts Options) (*source, error) {
	if opts.Widget != "" {
		return r.loadWidget(opts)
	}

	var sc *scene.Scene
	if opts.Scene != nil {
		c := *opts.Scene
		c.Shapes = append([]scene.Shape(nil), opts.Scene.Shapes...)
		sc = &c
	} else {
		loaded, err := scene.Load(opts.ScenePath)
		if err != nil {
			return nil, err
		}
		sc = loaded
	}
	if opts.Seed != nil {
		sc.Seed = *opts.Seed
	}
	if err := sc.Normalize(); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	base, err := opts.BaseOptions(sc.Seed)
	if err != nil {
		return nil, err
	}
	hash := sc.Hash()
	return &source{
		hash:       hash,
		background: sc.Background,
		shapes:     len(sc.Shapes),
		keyFor:     func(f string) string { return r.Keyer.SceneKey(hash, opts.KeyOpts(f)) },
		draw: func(ctx context.Context) (render.Drawing, error) {
			return scene.Render(ctx, sc, base)
		},
	}, nil
}

func (r *Runner) loadWidget(opts Options) (*source, error) {
	w, err := widget.New(opts.Widget, opts.WidgetParams)
	if err != nil {
		return nil, err
	}
	var seed rough.Seed
	base, err := opts.BaseOptions(seed)
	if err != nil {
		return nil, err
	}
	return &source{
		hash:   r.Keyer.WidgetKey(opts.Widget, opts.WidgetParams, cache.SceneKeyOpts{}),
		shapes: 1,
		keyFor: func(f string) string {
			return r.Keyer.WidgetKey(opts.Widget, opts.WidgetParams, opts.KeyOpts(f))
		},
		draw: func(ctx context.Context) (render.Drawing, error) {
			if err := ctx.Err(); err != nil {
				return render.Drawing{}, err
			}
			return widget.Render(w, base)
		},
	}, nil
}

func (r *Runner) cachedArtifacts(ctx context.Context, src *source, formats []string) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		data, ok := r.get(ctx, "artifact", src.keyFor(format))
		if !ok {
			return nil, false
		}
		artifacts[format] = data
	}
	return artifacts, true
}

// =============================================================================
// Single Primitives
// =============================================================================

// PathRequest is the cacheable input of a single primitive or fill.
type PathRequest struct {
	Kind     rough.Kind     `json:"kind"`
	Geometry rough.Geometry `json:"geometry"`
	Options  rough.Options  `json:"options"`
}

// Primitive generates the outline of one primitive, consulting the cache
// first. It reports whether the result was a cache hit.
func (r *Runner) Primitive(ctx context.Context, req PathRequest) (rough.OpSet, bool, error) {
	return r.path(ctx, "primitive", req, func(g *rough.Generator) (rough.OpSet, error) {
		return g.Generate(req.Kind, req.Geometry)
	})
}

// Fill generates the fill of one closed primitive, consulting the cache
// first. It reports whether the result was a cache hit.
func (r *Runner) Fill(ctx context.Context, req PathRequest) (rough.OpSet, bool, error) {
	return r.path(ctx, "fill", req, func(g *rough.Generator) (rough.OpSet, error) {
		return g.FillShape(req.Kind, req.Geometry)
	})
}

func (r *Runner) path(ctx context.Context, op string, req PathRequest, gen func(*rough.Generator) (rough.OpSet, error)) (rough.OpSet, bool, error) {
	if err := req.Options.Validate(); err != nil {
		return nil, false, err
	}
	key := r.Keyer.PathKey(op, req)
	if data, ok := r.get(ctx, "path", key); ok {
		var ops rough.OpSet
		if err := json.Unmarshal(data, &ops); err == nil {
			return ops, true, nil
		}
		// If deserialization fails, fall through to regenerate
	}

	start := time.Now()
	ops, err := gen(rough.New(req.Options))
	observability.Render().OnGenerate(ctx, string(req.Kind), len(ops), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	if data, err := json.Marshal(ops); err == nil {
		r.set(ctx, "path", key, data, cache.TTLPath)
	}
	return ops, false, nil
}

// =============================================================================
// Cache Access
// =============================================================================

func (r *Runner) get(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key_type", keyType, "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) set(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if r.TTL > 0 {
		ttl = r.TTL
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "key_type", keyType, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
