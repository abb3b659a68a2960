// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about chart renders, reconciliation, transitions, the
// snapshot pipeline, and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, len(ds.Bars))
//	// ... reconcile and schedule ...
//	observability.Render().OnRenderComplete(ctx, len(ds.Bars), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from chart renderers.
type RenderHooks interface {
	// Invocation events
	OnRenderStart(ctx context.Context, bars int)
	OnRenderComplete(ctx context.Context, bars int, duration time.Duration, err error)

	// OnReconcile reports one collection's partition sizes.
	OnReconcile(ctx context.Context, collection string, enter, update, exit int)

	// OnTransitionDone reports a finished transition; removed is true for exits.
	OnTransitionDone(ctx context.Context, element string, removed bool)
}

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the snapshot pipeline.
type PipelineHooks interface {
	// Decode events
	OnDecodeStart(ctx context.Context, path string)
	OnDecodeComplete(ctx context.Context, path string, bars int, duration time.Duration, err error)

	// Frame events
	OnFramesStart(ctx context.Context, snapshot int, formats []string)
	OnFramesComplete(ctx context.Context, snapshot int, frames int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, int)                          {}
func (NoopRenderHooks) OnRenderComplete(context.Context, int, time.Duration, error) {}
func (NoopRenderHooks) OnReconcile(context.Context, string, int, int, int)          {}
func (NoopRenderHooks) OnTransitionDone(context.Context, string, bool)              {}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnDecodeStart(context.Context, string) {}
func (NoopPipelineHooks) OnDecodeComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnFramesStart(context.Context, int, []string)                     {}
func (NoopPipelineHooks) OnFramesComplete(context.Context, int, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks   RenderHooks   = NoopRenderHooks{}
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any chart renders.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
}
