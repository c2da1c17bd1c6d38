package rope

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/fvbommel/rope/rope/seqrun"
)

// countingTracer forwards every call to the wrapped Tracer and counts it.
type countingTracer struct {
	Tracer
	calls int
}

func (c *countingTracer) Debugf(format string, args ...any) {
	c.calls++
	c.Tracer.Debugf(format, args...)
}

// TestTracerHookFiresOnRebalance proves WithTracer's Tracer is duck-type
// compatible with schuko's tracing.Trace, the same wiring
// npillmayer-cords's own tests use, and that a rebalance actually logs
// through it rather than silently no-oping.
func TestTracerHookFiresOnRebalance(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)

	r := New[seqrun.ByteRun](seqrun.ByteRun(""), 0, GC[seqrun.ByteRun]{})
	ct := &countingTracer{Tracer: tracing.Select("rope")}
	r.WithTracer(ct)

	for i := 0; i < 50; i++ {
		r.Append(seqrun.ByteRun{'x'}, 1)
	}

	r.rebalance()
	if ct.calls == 0 {
		t.Fatal("rebalance did not log through the tracer")
	}
}
