package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports observability events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnGenerate(_ context.Context, kind string, ops int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("generate failed", "kind", kind, "error", err)
		return
	}
	h.logger.Debug("generated", "kind", kind, "ops", ops, "duration", d)
}

func (h *logHooks) OnScene(_ context.Context, sceneID string, shapes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("scene failed", "scene", sceneID, "error", err)
		return
	}
	h.logger.Debug("scene rendered", "scene", sceneID, "shapes", shapes, "duration", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *logHooks) OnRequest(_ context.Context, requestID, method, path string) {
	h.logger.Debug("request started", "id", requestID, "method", method, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, requestID, method, path string, status int, d time.Duration) {
	h.logger.Info("request", "id", requestID, "method", method, "path", path, "status", status, "duration", d)
}
