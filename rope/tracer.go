package rope

// Tracer is an optional structured-logging hook. It is satisfied
// structurally (no import needed here) by
// github.com/npillmayer/schuko/tracing.Trace, which is what this
// package's own tests wire in, the same way npillmayer-cords's own
// tests wire a Trace into the cords package via
// tracing/gotestingadapter.QuickConfig. A nil Tracer (the default on a
// freshly constructed Rope) means no logging at all — a data structure
// shouldn't force a logging dependency on its callers, so the hook is
// opt-in via WithTracer.
type Tracer interface {
	Debugf(format string, args ...any)
}
