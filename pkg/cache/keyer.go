package cache

import "time"

// Default expiry of cached entries. Generation is a pure function of the
// key, so entries only expire to bound cache size.
const (
	TTLPath     = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Keyer derives cache keys for generated artifacts. Keys embed a hash of
// everything that influences the output, so an entry can never be served
// for a different request.
type Keyer interface {
	// PathKey keys the ops of a single primitive or fill request.
	PathKey(op string, request any) string

	// SceneKey keys the rendered output of a whole scene.
	SceneKey(sceneHash string, opts SceneKeyOpts) string

	// WidgetKey keys the rendered output of one widget.
	WidgetKey(widget string, params any, opts SceneKeyOpts) string
}

// SceneKeyOpts are the output settings that change a rendered drawing
// without changing its geometry.
type SceneKeyOpts struct {
	Format      string  `json:"format"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	Background  string  `json:"background,omitempty"`
	Class       string  `json:"class,omitempty"`
	Defaults    any     `json:"defaults,omitempty"`
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) PathKey(op string, request any) string {
	return hashKey("path:"+op, request)
}

func (DefaultKeyer) SceneKey(sceneHash string, opts SceneKeyOpts) string {
	return hashKey("scene", sceneHash, opts)
}

func (DefaultKeyer) WidgetKey(widget string, params any, opts SceneKeyOpts) string {
	return hashKey("widget:"+widget, params, opts)
}
