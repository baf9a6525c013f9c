package observability

import (
	"context"
	"testing"
	"time"
)

type recordingRenderHooks struct {
	NoopRenderHooks
	layouts int
	renders int
}

func (h *recordingRenderHooks) OnLayoutStart(ctx context.Context, n int) { h.layouts++ }
func (h *recordingRenderHooks) OnRenderComplete(ctx context.Context, chart string, size int, d time.Duration, err error) {
	h.renders++
}

func TestSetAndGetRenderHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingRenderHooks{}
	SetRenderHooks(rec)

	Render().OnLayoutStart(context.Background(), 3)
	Render().OnRenderComplete(context.Background(), "demo", 1024, time.Millisecond, nil)

	if rec.layouts != 1 {
		t.Errorf("layouts = %d, want 1", rec.layouts)
	}
	if rec.renders != 1 {
		t.Errorf("renders = %d, want 1", rec.renders)
	}
}

func TestNilHooksAreIgnored(t *testing.T) {
	t.Cleanup(Reset)

	SetRenderHooks(nil)
	if Render() == nil {
		t.Fatal("Render() returned nil after SetRenderHooks(nil)")
	}
}

func TestResetRestoresNoops(t *testing.T) {
	SetRenderHooks(&recordingRenderHooks{})
	SetCacheHooks(NoopCacheHooks{})
	SetServerHooks(NoopServerHooks{})
	Reset()

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset did not restore no-op render hooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset did not restore no-op cache hooks")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Reset did not restore no-op server hooks")
	}
}

func TestNoopsAreSafe(t *testing.T) {
	Reset()
	ctx := context.Background()
	Render().OnLayoutComplete(ctx, 0, 0)
	Render().OnRenderStart(ctx, "x")
	Cache().OnCacheHit(ctx, "svg")
	Cache().OnCacheMiss(ctx, "svg")
	Cache().OnCacheSet(ctx, "svg", 10)
	Server().OnRequest(ctx, "GET", "/")
	Server().OnResponse(ctx, "GET", "/", 200, time.Millisecond)
}
