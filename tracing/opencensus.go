// Copyright © 2025 The whyerr authors

package tracing

import (
	"context"

	"go.opencensus.io/trace"

	"github.com/whyerr/whyerr/infer"
)

type ocAnnotator struct {
	currentContext context.Context
	currentSpan    *trace.Span
}

var _ infer.Tracer = &ocAnnotator{}

// NewOpenCensusAnnotator is the OpenCensus counterpart of
// NewOpenTelemetryAnnotator, for embedders still exporting through an
// OpenCensus pipeline.
func NewOpenCensusAnnotator(parentContext context.Context) infer.Tracer {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return &ocAnnotator{currentContext: parentContext}
}

func (p *ocAnnotator) Start(kind string) func() {
	oldContext := p.currentContext
	p.currentContext, p.currentSpan = trace.StartSpan(p.currentContext, "infer "+kind)
	p.currentSpan.AddAttributes(trace.StringAttribute("fault.kind", kind))
	return func() {
		p.currentSpan.End()
		p.currentContext = oldContext
		p.currentSpan = trace.FromContext(p.currentContext)
	}
}
