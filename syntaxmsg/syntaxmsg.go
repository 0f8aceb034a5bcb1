// Copyright © 2025 The whyerr authors

// Package syntaxmsg classifies raw syntax-fault messages into known shapes
// and produces beginner-friendly explanations.
//
// The package is modeled as an ordered chain of independent analyzers, one
// per known message shape. Order is significant: several shapes overlap on
// substrings, and exactly the first analyzer whose precondition matches
// wins. DefaultAnalyzers returns the catalogue in its fixed priority order;
// a Chain never reorders what it was given.
//
// Message preconditions are exact-text or regular-expression checks against
// the diagnostic wording of a specific runtime version. When upstream
// wording changes across versions, a new analyzer variant is added rather
// than mutating an existing one, so historical shapes keep matching.
package syntaxmsg

import (
	"github.com/whyerr/whyerr/lang"
)

// Input carries everything an analyzer may consult. Only Message is
// required; analyzers degrade gracefully when the rest is absent.
type Input struct {
	// Message is the raw syntax-fault message text.
	Message string

	// Line is the offending source line, if known.
	Line string

	// LineNumber is the 1-based line of the fault within SourceLines.
	LineNumber int

	// SourceLines is the window of source surrounding the fault.
	SourceLines []string

	// Offset is the 1-based column of the fault, 0 when unknown.
	Offset int
}

// Analyzer recognises one syntax-fault message shape.
type Analyzer struct {
	// Name is a short identifier for the shape (e.g. "break-outside-loop").
	Name string

	// Doc is a one-line description of the shape.
	Doc string

	// Run returns the rendered explanation, or "" when the message does
	// not fit this shape. Run must have no side effects.
	Run func(c *lang.Catalog, in Input) string
}

// Chain runs analyzers in a fixed order against a message.
type Chain struct {
	analyzers []*Analyzer
	catalog   *lang.Catalog
}

// NewChain builds a chain over the given analyzers in the given order. The
// slice is copied; the chain is immutable afterward and safe for concurrent
// use. A nil catalogue selects the built-in English one.
func NewChain(catalog *lang.Catalog, analyzers ...*Analyzer) *Chain {
	if catalog == nil {
		catalog = lang.Default()
	}
	copied := make([]*Analyzer, len(analyzers))
	copy(copied, analyzers)
	return &Chain{analyzers: copied, catalog: catalog}
}

// Default returns a chain over DefaultAnalyzers.
func Default(catalog *lang.Catalog) *Chain {
	return NewChain(catalog, DefaultAnalyzers()...)
}

// Analyze iterates the chain in order and returns the first non-empty
// explanation, or "" when no analyzer recognises the message. Callers must
// treat "" as "display the generic explanation only".
func (c *Chain) Analyze(in Input) string {
	for _, a := range c.analyzers {
		if cause := a.Run(c.catalog, in); cause != "" {
			return cause
		}
	}
	return ""
}

// Analyzers returns the chain's analyzers in priority order.
func (c *Chain) Analyzers() []*Analyzer {
	out := make([]*Analyzer, len(c.analyzers))
	copy(out, c.analyzers)
	return out
}

// AnalyzerNames returns the names of the default catalogue in priority order.
func AnalyzerNames() []string {
	analyzers := DefaultAnalyzers()
	names := make([]string, len(analyzers))
	for i, a := range analyzers {
		names[i] = a.Name
	}
	return names
}
