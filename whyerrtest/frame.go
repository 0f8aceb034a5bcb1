// Copyright © 2025 The whyerr authors

// Package whyerrtest provides test doubles for the narrow interfaces the
// inference engine consumes: a map-backed frame and a map-backed module
// inspector. Tests across the repository (and embedders' tests) construct
// these instead of wiring a live execution engine.
package whyerrtest

import (
	"sort"

	"github.com/whyerr/whyerr/fault"
)

// Frame is a fault.Frame backed by plain maps. The zero value is usable
// and defines no names.
type Frame struct {
	Locals    map[string]fault.Binding
	Globals   map[string]fault.Binding
	Nonlocals map[string]fault.Binding

	// Hints maps scope tier to name to declared type hint.
	Hints map[fault.Scope]map[string]string
}

var _ fault.Frame = (*Frame)(nil)

// Bind is a convenience constructor for a Binding with no length.
func Bind(repr string) fault.Binding {
	return fault.Binding{Repr: repr, Len: -1}
}

// BindSeq is a convenience constructor for a collection Binding.
func BindSeq(repr string, n int) fault.Binding {
	return fault.Binding{Repr: repr, Len: n}
}

func (f *Frame) tier(scope fault.Scope) map[string]fault.Binding {
	switch scope {
	case fault.ScopeLocal:
		return f.Locals
	case fault.ScopeGlobal:
		return f.Globals
	case fault.ScopeNonlocal:
		return f.Nonlocals
	default:
		return nil
	}
}

// Lookup implements fault.Frame.
func (f *Frame) Lookup(name string, scope fault.Scope) (fault.Binding, bool) {
	b, ok := f.tier(scope)[name]
	return b, ok
}

// Names implements fault.Frame. Names are sorted so tests are
// deterministic.
func (f *Frame) Names(scope fault.Scope) []string {
	m := f.tier(scope)
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Annotation implements fault.Frame.
func (f *Frame) Annotation(name string, scope fault.Scope) (string, bool) {
	h, ok := f.Hints[scope][name]
	return h, ok
}

// Modules is a fault.ModuleInspector backed by a map from module name to
// member names.
type Modules map[string][]string

var _ fault.ModuleInspector = Modules(nil)

// Members implements fault.ModuleInspector.
func (m Modules) Members(module string) ([]string, bool) {
	members, ok := m[module]
	return members, ok
}
