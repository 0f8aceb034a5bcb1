// Copyright © 2025 The whyerr authors

package infer

// Tracer observes handler invocations. Start is called with the fault kind
// before a handler runs and returns a function called when it completes.
// Implementations backed by tracing systems live in the tracing package.
type Tracer interface {
	Start(kind string) func()
}

type nopTracer struct{}

func (nopTracer) Start(string) func() { return func() {} }
