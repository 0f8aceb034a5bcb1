// Copyright © 2025 The whyerr authors

// Package scopes answers questions about the names visible from a live
// frame at fault time: which scope tiers define a given name, which known
// names look like a typo of it, and how to present bound values to a
// beginner without overwhelming them.
package scopes

import (
	"github.com/whyerr/whyerr/fault"
	"github.com/whyerr/whyerr/similar"
)

// allTiers is the fixed scope resolution order used throughout the package.
var allTiers = []fault.Scope{fault.ScopeLocal, fault.ScopeGlobal, fault.ScopeNonlocal}

// DefinitionScopes returns the scope tiers in which name is defined,
// ordered local, global, nonlocal. A nil frame defines nothing.
func DefinitionScopes(name string, frame fault.Frame) []fault.Scope {
	if frame == nil {
		return nil
	}
	var defined []fault.Scope
	for _, tier := range allTiers {
		if _, ok := frame.Lookup(name, tier); ok {
			defined = append(defined, tier)
		}
	}
	return defined
}

// Similar buckets near-miss candidates for a name by where they live.
type Similar struct {
	Locals   []string
	Globals  []string
	Builtins []string

	// Best is the single closest candidate across all buckets, "" when
	// no candidate qualifies.
	Best string
}

// All returns every candidate, locals first, then globals, then builtins.
func (s Similar) All() []string {
	all := make([]string, 0, len(s.Locals)+len(s.Globals)+len(s.Builtins))
	all = append(all, s.Locals...)
	all = append(all, s.Globals...)
	all = append(all, s.Builtins...)
	return all
}

// SimilarNames looks for names similar to name in the frame's local and
// global tiers and in the builtin table. Globals already found among the
// locals are dropped from the global bucket. When nothing qualifies, a
// couple of hard-coded cases are tried: "length" and "lenght" both suggest
// the builtin len.
func SimilarNames(name string, frame fault.Frame) Similar {
	var s Similar
	if frame != nil {
		s.Locals = similar.FindSimilar(name, frame.Names(fault.ScopeLocal))
		inLocals := make(map[string]bool, len(s.Locals))
		for _, n := range s.Locals {
			inLocals[n] = true
		}
		for _, n := range similar.FindSimilar(name, frame.Names(fault.ScopeGlobal)) {
			if !inLocals[n] {
				s.Globals = append(s.Globals, n)
			}
		}
	}
	s.Builtins = similar.FindSimilar(name, BuiltinNames())

	if all := s.All(); len(all) > 0 {
		ranked := similar.FindSimilar(name, all)
		if len(ranked) > 0 {
			s.Best = ranked[0]
			return s
		}
	}
	// FindSimilar only accepts relatively minor letter mismatches; a few
	// common vocabulary slips are special-cased.
	if name == "length" || name == "lenght" {
		s.Builtins = []string{"len"}
		s.Best = "len"
	}
	return s
}

// TypeHint reports a declared annotation for name in any tier, with the
// tier it was found in. Useful when a colon was typed instead of an equal
// sign, so the name was annotated rather than assigned.
func TypeHint(name string, frame fault.Frame) (hint string, scope fault.Scope, ok bool) {
	if frame == nil {
		return "", 0, false
	}
	for _, tier := range allTiers {
		if h, found := frame.Annotation(name, tier); found {
			return h, tier, true
		}
	}
	return "", 0, false
}
