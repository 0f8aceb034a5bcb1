// Copyright © 2025 The whyerr authors

package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whyerr/whyerr/fault"
	"github.com/whyerr/whyerr/lang"
	"github.com/whyerr/whyerr/syntaxmsg"
)

func newTestEngine(t *testing.T, reg *Registry, opts ...Option) *Engine {
	t.Helper()
	chain := syntaxmsg.Default(lang.Default())
	engine, err := NewEngine(reg, chain, opts...)
	require.NoError(t, err)
	return engine
}

func TestNewEngineFreezesRegistry(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("key-not-found", causeHandler("k")))
	newTestEngine(t, reg)
	assert.True(t, reg.Frozen())
}

func TestNewEngineNilRegistry(t *testing.T) {
	_, err := NewEngine(nil, nil)
	assert.Error(t, err)
}

func TestInferCauseUnknownKind(t *testing.T) {
	engine := newTestEngine(t, NewRegistry())
	assert.Nil(t, engine.InferCause(&fault.Record{Kind: "no-such-kind", Message: "boom"}))
	assert.Nil(t, engine.InferCause(nil))
}

func TestInferCauseAppliesHeader(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("key-not-found", causeHandler("the key is gone")))
	engine := newTestEngine(t, reg)

	cause := engine.InferCause(&fault.Record{Kind: "key-not-found", Message: "'widget'"})
	require.NotNil(t, cause)
	assert.Equal(t, "the key is gone", cause.Cause)
	assert.Contains(t, cause.Header, "Likely cause")
}

func TestInferCauseKeepsHandlerHeader(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("key-not-found", func(*fault.Record) *fault.Cause {
		return &fault.Cause{Header: "custom header", Cause: "c"}
	}))
	engine := newTestEngine(t, reg)

	cause := engine.InferCause(&fault.Record{Kind: "key-not-found"})
	require.NotNil(t, cause)
	assert.Equal(t, "custom header", cause.Header)
}

func TestInferCauseRecoversHandlerPanic(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("key-not-found", func(*fault.Record) *fault.Cause {
		panic("handler bug")
	}))
	engine := newTestEngine(t, reg)

	assert.NotPanics(t, func() {
		assert.Nil(t, engine.InferCause(&fault.Record{Kind: "key-not-found"}))
	})
}

func TestInferCauseRoutesSyntaxToChain(t *testing.T) {
	engine := newTestEngine(t, NewRegistry())

	cause := engine.InferCause(&fault.Record{
		Kind:    fault.KindSyntax,
		Message: "'break' outside loop",
	})
	require.NotNil(t, cause)
	assert.Contains(t, cause.Header, "Likely cause")
	assert.Contains(t, cause.Cause, "'break' can only be used")

	// An unrecognised syntax message yields no cause.
	assert.Nil(t, engine.InferCause(&fault.Record{
		Kind:    fault.KindSyntax,
		Message: "totally novel wording",
	}))
}

func TestInferCauseRecoversAnalyzerPanic(t *testing.T) {
	chain := syntaxmsg.NewChain(lang.Default(), &syntaxmsg.Analyzer{
		Name: "buggy",
		Run: func(*lang.Catalog, syntaxmsg.Input) string {
			panic("analyzer bug")
		},
	})
	engine, err := NewEngine(NewRegistry(), chain)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		assert.Nil(t, engine.InferCause(&fault.Record{Kind: fault.KindSyntax, Message: "invalid syntax"}))
	})
}

func TestInferCauseSyntaxWithoutChain(t *testing.T) {
	reg := NewRegistry()
	engine, err := NewEngine(reg, nil)
	require.NoError(t, err)
	assert.Nil(t, engine.InferCause(&fault.Record{Kind: fault.KindSyntax, Message: "invalid syntax"}))
}

type recordingTracer struct {
	started  []string
	finished int
}

func (r *recordingTracer) Start(kind string) func() {
	r.started = append(r.started, kind)
	return func() { r.finished++ }
}

func TestEngineTracerObservesInvocations(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("key-not-found", causeHandler("k")))
	tracer := &recordingTracer{}
	engine := newTestEngine(t, reg, WithTracer(tracer))

	engine.InferCause(&fault.Record{Kind: "key-not-found"})
	engine.InferCause(&fault.Record{Kind: fault.KindSyntax, Message: "'break' outside loop"})
	engine.InferCause(&fault.Record{Kind: "no-such-kind"})

	assert.Equal(t, []string{"key-not-found", fault.KindSyntax}, tracer.started)
	assert.Equal(t, 2, tracer.finished)
}

func TestEngineWithCatalog(t *testing.T) {
	catalog := lang.NewCatalog(map[string]string{"cause.header": "HEADER"})
	reg := NewRegistry()
	require.NoError(t, reg.Register("key-not-found", causeHandler("k")))
	engine := newTestEngine(t, reg, WithCatalog(catalog))

	cause := engine.InferCause(&fault.Record{Kind: "key-not-found"})
	require.NotNil(t, cause)
	assert.Equal(t, "HEADER", cause.Header)
}
