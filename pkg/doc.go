// Package pkg provides the core libraries for roughsketch hand-drawn rendering.
//
// # Overview
//
// Roughsketch turns geometric primitives into sequences of sketchy drawing
// operations: doubled, slightly bowed strokes and hachure fills that look
// drawn by hand yet are fully reproducible from a seed. The pkg directory
// is organized into three areas:
//
//  1. [rough] - The generator core (seeded randomness, options, primitives, fills, path data)
//  2. [scene], [widget] - Composition of primitives into drawings
//  3. [pipeline], [cache], [render] - Orchestration, caching and output formats
//
// # Architecture
//
// The typical data flow:
//
//	Scene file / widget parameters
//	         ↓
//	    [scene] or [widget] package (shapes + resolved options per shape)
//	         ↓
//	    [rough] package (OpSets per stroke and fill)
//	         ↓
//	    [render] package (Drawing) → [render/sink] (SVG/JSON/PDF/PNG)
//
// # Quick Start
//
// Generate a single primitive:
//
//	o, _ := rough.Resolve(42, rough.WithRoughness(1.5))
//	ops, _ := rough.New(o).Rectangle(10, 10, 200, 100)
//	fmt.Println(rough.Serialize(ops, false))
//
// Render a scene file:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, _ := runner.Execute(ctx, pipeline.Options{ScenePath: "scene.toml"})
//	os.WriteFile("scene.svg", res.Artifacts["svg"], 0o644)
//
// # Main Packages
//
// [rough] - Park-Miller seeded random stream, the options record and its
// resolver, primitive generators (line, rectangle, ellipse, circle, arc,
// polygon, linear path), the hachure and zigzag fill engine, and the SVG
// path serializer. All functions are pure: equal inputs give equal output.
//
// [scene] - TOML/JSON scene documents. Shapes are generated concurrently,
// each keyed to its own seed so ordering never changes the result.
//
// [widget] - Sketchy UI widgets (card, button, checkbox, divider, progress,
// toggle) drawn on a recording canvas.
//
// [render] - The Drawing model and SVG to PDF/PNG conversion via rsvg-convert;
// [render/sink] encodes drawings.
//
// [pipeline] - The load → render → encode pipeline with caching, shared by the
// CLI and the HTTP API.
//
// [cache] - File, Redis and null caches plus cache key derivation.
//
// [errors] - Structured error codes shared by every package.
//
// [observability] - Hooks for generation, cache and HTTP events.
//
// [buildinfo] - Version information stamped in at build time.
//
// [rough]: github.com/matzehuels/roughsketch/pkg/rough
// [scene]: github.com/matzehuels/roughsketch/pkg/scene
// [widget]: github.com/matzehuels/roughsketch/pkg/widget
// [pipeline]: github.com/matzehuels/roughsketch/pkg/pipeline
// [cache]: github.com/matzehuels/roughsketch/pkg/cache
// [render]: github.com/matzehuels/roughsketch/pkg/render
// [render/sink]: github.com/matzehuels/roughsketch/pkg/render/sink
// [errors]: github.com/matzehuels/roughsketch/pkg/errors
// [observability]: github.com/matzehuels/roughsketch/pkg/observability
// [buildinfo]: github.com/matzehuels/roughsketch/pkg/buildinfo
package pkg
