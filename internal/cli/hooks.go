package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cargolicense/pkg/observability"
)

// debugHooks logs resolve, cache and HTTP events at debug level.
type debugHooks struct {
	logger *log.Logger
}

var (
	_ observability.ResolveHooks = debugHooks{}
	_ observability.CacheHooks   = debugHooks{}
	_ observability.HTTPHooks    = debugHooks{}
)

// installDebugHooks routes observability events to logger.
func installDebugHooks(logger *log.Logger) {
	h := debugHooks{logger: logger}
	observability.SetResolveHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h debugHooks) OnResolveStart(_ context.Context, lockfile string) {
	h.logger.Debug("Reading lockfile", "path", lockfile)
}

func (h debugHooks) OnResolveComplete(_ context.Context, lockfile string, packages int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Resolve failed", "path", lockfile, "err", err)
		return
	}
	h.logger.Debug("Resolve complete", "path", lockfile, "packages", packages, "took", d.Round(time.Millisecond))
}

func (h debugHooks) OnEnrich(_ context.Context, provider, crate string, d time.Duration, err error) {
	if err != nil {
		return // enrich failures are already logged by the caller
	}
	h.logger.Debug("Enriched", "provider", provider, "crate", crate, "took", d.Round(time.Millisecond))
}

func (h debugHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("Cache hit", "key", key)
}

func (h debugHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("Cache miss", "key", key)
}

func (h debugHooks) OnCacheSet(_ context.Context, key string, err error) {
	if err != nil {
		h.logger.Debug("Cache write failed", "key", key, "err", err)
	}
}

func (h debugHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("HTTP request", "method", method, "url", host+path)
}

func (h debugHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("HTTP response", "method", method, "url", host+path, "status", status, "took", d.Round(time.Millisecond))
}

func (h debugHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("HTTP error", "method", method, "url", host+path, "err", err)
}
