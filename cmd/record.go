// Copyright © 2025 The whyerr authors

package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/whyerr/whyerr/fault"
)

// jsonRecord is the wire form of a fault record. Teaching backends capture
// one at the point a fault is raised and hand it to whyerr explain.
type jsonRecord struct {
	Kind           string                       `json:"kind"`
	Message        string                       `json:"message"`
	File           string                       `json:"file,omitempty"`
	Line           int                          `json:"line,omitempty"`
	Offset         int                          `json:"offset,omitempty"`
	SourceLine     string                       `json:"source_line,omitempty"`
	SourceLines    []string                     `json:"source_lines,omitempty"`
	SimulatedTrace string                       `json:"simulated_trace,omitempty"`
	Locals         map[string]jsonBinding       `json:"locals,omitempty"`
	Globals        map[string]jsonBinding       `json:"globals,omitempty"`
	Nonlocals      map[string]jsonBinding       `json:"nonlocals,omitempty"`
	Hints          map[string]map[string]string `json:"hints,omitempty"`
	Modules        map[string][]string          `json:"modules,omitempty"`
}

type jsonBinding struct {
	Repr string `json:"repr"`
	// Len is the element count for collections; absent means scalar.
	Len *int `json:"len,omitempty"`
}

// decodeRecord parses the wire form and builds the in-memory record the
// inference engine consumes.
func decodeRecord(data []byte) (*fault.Record, error) {
	var jr jsonRecord
	if err := json.Unmarshal(data, &jr); err != nil {
		return nil, fmt.Errorf("parsing fault record: %w", err)
	}
	if jr.Kind == "" {
		return nil, fmt.Errorf("fault record has no kind")
	}
	rec := &fault.Record{
		Kind:           jr.Kind,
		Message:        jr.Message,
		File:           jr.File,
		Line:           jr.Line,
		Offset:         jr.Offset,
		SourceLine:     jr.SourceLine,
		SourceLines:    jr.SourceLines,
		SimulatedTrace: jr.SimulatedTrace,
	}
	if jr.SourceLine == "" && jr.Line >= 1 && jr.Line <= len(jr.SourceLines) {
		rec.SourceLine = jr.SourceLines[jr.Line-1]
	}
	if jr.Locals != nil || jr.Globals != nil || jr.Nonlocals != nil || jr.Hints != nil {
		rec.Frame = &wireFrame{record: &jr}
	}
	if jr.Modules != nil {
		rec.Modules = wireModules(jr.Modules)
	}
	return rec, nil
}

// wireFrame adapts the decoded binding maps to fault.Frame.
type wireFrame struct {
	record *jsonRecord
}

var _ fault.Frame = (*wireFrame)(nil)

func (f *wireFrame) tier(scope fault.Scope) map[string]jsonBinding {
	switch scope {
	case fault.ScopeLocal:
		return f.record.Locals
	case fault.ScopeGlobal:
		return f.record.Globals
	case fault.ScopeNonlocal:
		return f.record.Nonlocals
	default:
		return nil
	}
}

func (f *wireFrame) Lookup(name string, scope fault.Scope) (fault.Binding, bool) {
	jb, ok := f.tier(scope)[name]
	if !ok {
		return fault.Binding{}, false
	}
	b := fault.Binding{Repr: jb.Repr, Len: -1}
	if jb.Len != nil {
		b.Len = *jb.Len
	}
	return b, true
}

func (f *wireFrame) Names(scope fault.Scope) []string {
	m := f.tier(scope)
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (f *wireFrame) Annotation(name string, scope fault.Scope) (string, bool) {
	h, ok := f.record.Hints[scope.String()][name]
	return h, ok
}

// wireModules adapts the decoded module member lists to
// fault.ModuleInspector.
type wireModules map[string][]string

var _ fault.ModuleInspector = wireModules(nil)

func (m wireModules) Members(module string) ([]string, bool) {
	members, ok := m[module]
	return members, ok
}
