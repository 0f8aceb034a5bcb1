// Copyright © 2025 The whyerr authors

// Package fault defines the record describing a single caught fault and the
// result of cause inference over it.
//
// A Record is constructed once per explained fault, handed read-only to the
// inference engine, and discarded after the report is produced. Nothing in
// this package mutates a Record after construction.
package fault

// Well-known fault kind tags. The set is open: embedders may register
// handlers for their own tags.
const (
	KindName         = "name-not-found"
	KindFile         = "file-not-found"
	KindImport       = "import-not-found"
	KindKey          = "key-not-found"
	KindModule       = "module-not-found"
	KindType         = "type-mismatch"
	KindAttribute    = "attribute-not-found"
	KindUnboundLocal = "local-before-assignment"
	KindOverflow     = "overflow"
	KindZeroDivision = "zero-division"
	KindSyntax       = "syntax"
)

// Record holds everything known about a caught fault. All fields are
// optional except Kind and Message; handlers must degrade gracefully when a
// field they would like to use is absent.
type Record struct {
	// Kind is the fault category tag (e.g. KindImport, KindSyntax).
	Kind string

	// Message is the raw diagnostic text associated with the fault.
	Message string

	// File names the source file the fault was raised in, for display.
	// Pseudo-names like "<stdin>" are common.
	File string

	// SourceLine is the single line of source implicated, if known.
	SourceLine string

	// Line and Offset locate the fault within the source. Both are
	// 1-based; zero means unknown.
	Line   int
	Offset int

	// SimulatedTrace is a rendered, multi-frame textual reconstruction of
	// the call chain leading to the fault. Handlers that perform
	// cross-frame inference (circular imports) parse it.
	SimulatedTrace string

	// SourceLines are the lines surrounding the fault, used for
	// structural analysis of brackets and quotes. SourceLines[0] is line 1
	// of the analyzed window.
	SourceLines []string

	// Frame exposes read-only name lookup in the live scopes at fault
	// time. Nil when no live context is available.
	Frame Frame

	// Modules exposes member listings of loaded modules. Nil when no live
	// context is available.
	Modules ModuleInspector
}

// Cause is the result of cause inference. A nil *Cause means no specific
// cause is known; the engine never fabricates one.
type Cause struct {
	// Header is the fixed lead-in phrase shown before the cause.
	Header string

	// Cause is the likely-cause narrative paragraph.
	Cause string

	// Suggest is an optional short actionable hint ("Did you mean ...?").
	Suggest string
}

// ModuleInspector lists the exported members of a loaded module. Used by
// import handlers to propose near-miss corrections.
type ModuleInspector interface {
	// Members returns the member names of the named module and whether
	// the module is loaded at all.
	Members(module string) ([]string, bool)
}
