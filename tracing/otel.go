// Copyright © 2025 The whyerr authors

// Package tracing provides infer.Tracer implementations that annotate
// cause inference with spans, so embedders running an explanation service
// can see which handlers run and how long they take.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/whyerr/whyerr/infer"
)

const (
	// ContextOpenTelemetryTracerKey looks up a parent tracer name from a
	// context key.
	ContextOpenTelemetryTracerKey = "otelParentTracer"

	kindAttribute = attribute.Key("fault.kind")
)

var _ infer.Tracer = &otelAnnotator{}

type otelAnnotator struct {
	currentContext context.Context
	currentSpan    trace.Span
}

// NewOpenTelemetryAnnotator returns a tracer that opens one span per
// handler invocation under parentContext. The annotator is driven by a
// single engine call at a time and is not safe for concurrent engines.
func NewOpenTelemetryAnnotator(parentContext context.Context) infer.Tracer {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return &otelAnnotator{currentContext: parentContext}
}

func contextTracer(ctx context.Context) trace.Tracer {
	tracerName, ok := ctx.Value(ContextOpenTelemetryTracerKey).(string)
	if !ok {
		tracerName = "whyerr"
	}
	return otel.GetTracerProvider().Tracer(tracerName)
}

func (p *otelAnnotator) Start(kind string) func() {
	oldContext := p.currentContext
	p.currentContext, p.currentSpan = contextTracer(p.currentContext).Start(p.currentContext, "infer "+kind)
	p.currentSpan.SetAttributes(kindAttribute.String(kind))
	return func() {
		p.currentSpan.End()
		// And pop the current context back
		p.currentContext = oldContext
		p.currentSpan = trace.SpanFromContext(p.currentContext)
	}
}
