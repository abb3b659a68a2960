package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Render hooks
	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, 2)
	r.OnRenderComplete(ctx, 2, time.Second, nil)
	r.OnReconcile(ctx, "boxes", 6, 0, 0)
	r.OnTransitionDone(ctx, "bar1:0", false)

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnDecodeStart(ctx, "a.json")
	p.OnDecodeComplete(ctx, "a.json", 2, time.Second, nil)
	p.OnFramesStart(ctx, 0, []string{"svg"})
	p.OnFramesComplete(ctx, 0, 4, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "frame")
	c.OnCacheMiss(ctx, "frame")
	c.OnCacheSet(ctx, "frame", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testRenderHooks{}
	SetRenderHooks(custom)

	// Setting nil should be ignored
	SetRenderHooks(nil)

	if Render() != custom {
		t.Error("SetRenderHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testRenderHooks struct{ NoopRenderHooks }
type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
