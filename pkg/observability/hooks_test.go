package observability

import (
	"context"
	"testing"
	"time"
)

type recordingHooks struct {
	NoopPipelineHooks
	layoutStarts int
	layoutForms  []string
}

func (h *recordingHooks) OnLayoutStart(_ context.Context, form string, _ int) {
	h.layoutStarts++
	h.layoutForms = append(h.layoutForms, form)
}

func TestSetAndGetPipelineHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingHooks{}
	SetPipelineHooks(h)

	Pipeline().OnLayoutStart(context.Background(), "circos", 4)
	Pipeline().OnLayoutComplete(context.Background(), "circos", time.Millisecond, nil)

	if h.layoutStarts != 1 {
		t.Errorf("layoutStarts = %d, want 1", h.layoutStarts)
	}
	if h.layoutForms[0] != "circos" {
		t.Errorf("form = %q, want circos", h.layoutForms[0])
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingHooks{}
	SetPipelineHooks(h)
	SetPipelineHooks(nil)

	Pipeline().OnLayoutStart(context.Background(), "arc", 1)
	if h.layoutStarts != 1 {
		t.Error("nil registration replaced the active hooks")
	}
}

func TestResetRestoresNoop(t *testing.T) {
	h := &recordingHooks{}
	SetPipelineHooks(h)
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T after Reset, want NoopPipelineHooks", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T after Reset, want NoopCacheHooks", Cache())
	}
}
