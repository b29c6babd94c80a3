package streaming

import "context"

type emitterCtxKey struct{}

// WithEmitter binds the run's emitter into ctx. The driver sets it once at
// the start of a run; graph implementations and their sub-agent goroutines
// inherit it through normal context propagation, so nested instrumentation
// can find "the current emitter" without process-wide state.
func WithEmitter(ctx context.Context, e *Emitter) context.Context {
	return context.WithValue(ctx, emitterCtxKey{}, e)
}

// EmitterFromContext returns the emitter bound into ctx, or nil.
func EmitterFromContext(ctx context.Context) *Emitter {
	e, _ := ctx.Value(emitterCtxKey{}).(*Emitter)
	return e
}
