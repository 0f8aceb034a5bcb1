// Copyright © 2025 The whyerr authors

package infer

import (
	"fmt"

	"github.com/whyerr/whyerr/fault"
	"github.com/whyerr/whyerr/lang"
	"github.com/whyerr/whyerr/syntaxmsg"
)

// Engine is the single entry point for cause inference. It owns a frozen
// registry, the syntax message chain, and the template catalogue, all
// injected at construction; the engine itself is stateless per call and
// safe for concurrent use.
type Engine struct {
	registry *Registry
	chain    *syntaxmsg.Chain
	catalog  *lang.Catalog
	tracer   Tracer
}

// Option configures an Engine.
type Option func(*Engine)

// WithTracer sets a tracer that observes each handler invocation.
func WithTracer(t Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

// WithCatalog sets the template catalogue used for the cause header and by
// the syntax chain constructed through NewDefaultEngine.
func WithCatalog(c *lang.Catalog) Option {
	return func(e *Engine) { e.catalog = c }
}

// NewEngine builds an engine over an already-populated registry and chain.
// The registry is frozen here if the caller has not done so already, making
// construction the end of the mutation window.
func NewEngine(registry *Registry, chain *syntaxmsg.Chain, opts ...Option) (*Engine, error) {
	if registry == nil {
		return nil, fmt.Errorf("infer: registry must not be nil")
	}
	e := &Engine{
		registry: registry,
		chain:    chain,
		catalog:  lang.Default(),
		tracer:   nopTracer{},
	}
	for _, opt := range opts {
		opt(e)
	}
	registry.Freeze()
	return e, nil
}

// InferCause returns the likely cause of the fault described by rec, or nil
// when no registered handler recognises it. It never returns an error for
// an unknown kind, and a panicking handler is downgraded to "no cause" so
// the surrounding explanation pipeline keeps going.
func (e *Engine) InferCause(rec *fault.Record) *fault.Cause {
	if rec == nil {
		return nil
	}
	if rec.Kind == fault.KindSyntax && e.chain != nil {
		return e.analyzeSyntax(rec)
	}
	handler, ok := e.registry.Lookup(rec.Kind)
	if !ok {
		return nil
	}
	cause := e.invoke(rec.Kind, handler, rec)
	if cause == nil {
		return nil
	}
	if cause.Header == "" {
		cause.Header = e.catalog.Render("cause.header", nil)
	}
	return cause
}

// analyzeSyntax routes a syntax fault through the message analyzer chain.
// The chain is open to external analyzers, so it gets the same recovery
// boundary as registry handlers: a panicking analyzer yields "no cause".
func (e *Engine) analyzeSyntax(rec *fault.Record) (cause *fault.Cause) {
	done := e.tracer.Start(rec.Kind)
	defer done()
	defer func() {
		if r := recover(); r != nil {
			cause = nil
		}
	}()
	explanation := e.chain.Analyze(syntaxmsg.Input{
		Message:     rec.Message,
		Line:        rec.SourceLine,
		LineNumber:  rec.Line,
		SourceLines: rec.SourceLines,
		Offset:      rec.Offset,
	})
	if explanation == "" {
		return nil
	}
	return &fault.Cause{
		Header: e.catalog.Render("cause.header", nil),
		Cause:  explanation,
	}
}

// invoke runs one handler with a recovery boundary. A fault inside a
// handler must not abort the explanation of the user's fault; it is
// swallowed and reported as "no cause available" for that kind.
func (e *Engine) invoke(kind string, handler Handler, rec *fault.Record) (cause *fault.Cause) {
	done := e.tracer.Start(kind)
	defer done()
	defer func() {
		if r := recover(); r != nil {
			cause = nil
		}
	}()
	return handler(rec)
}
