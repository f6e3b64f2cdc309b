// Package scene describes drawings as data and renders them.
//
// A scene file lists shapes with their geometry and paint. It can be
// written in TOML:
//
//	seed = 42
//	width = 320
//	height = 200
//
//	[defaults]
//	roughness = 1.5
//
//	[[shape]]
//	kind = "rectangle"
//	x = 20
//	y = 20
//	width = 120
//	height = 80
//	fill = true
//	fill_color = "#e66"
//
//	[[shape]]
//	kind = "ellipse"
//	x = 230
//	y = 100
//	width = 120
//	height = 80
//	[shape.options]
//	hachure_angle = 60
//
// or as the equivalent JSON object with a "shapes" array.
//
// [Render] draws every shape concurrently. Shape i is seeded with
// Seed + i unless its options name a seed, so adding a shape at the end
// never changes the shapes before it.
package scene
