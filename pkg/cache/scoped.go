package cache

// ScopedKeyer wraps a Keyer with a prefix so several consumers can share
// one backend without colliding, for example the CLI and a server pointed
// at the same Redis:
//
//	serverKeyer := NewScopedKeyer(NewDefaultKeyer(), "server:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

func (k *ScopedKeyer) PathKey(op string, request any) string {
	return k.prefix + k.inner.PathKey(op, request)
}

func (k *ScopedKeyer) SceneKey(sceneHash string, opts SceneKeyOpts) string {
	return k.prefix + k.inner.SceneKey(sceneHash, opts)
}

func (k *ScopedKeyer) WidgetKey(widget string, params any, opts SceneKeyOpts) string {
	return k.prefix + k.inner.WidgetKey(widget, params, opts)
}
