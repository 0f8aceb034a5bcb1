// Copyright © 2025 The whyerr authors

// Package runtimefault holds the built-in cause handlers, one per runtime
// fault kind. Each handler pattern-matches the fault's raw message against
// the known wording of a specific runtime version, extracts the concrete
// names involved, and phrases a likely-cause narrative through the template
// catalogue.
//
// Handlers are bound to their kinds by RegisterAll during an explicit
// initialization phase; there are no load-order side effects.
package runtimefault

import (
	"strings"

	"github.com/whyerr/whyerr/fault"
	"github.com/whyerr/whyerr/infer"
	"github.com/whyerr/whyerr/lang"
)

// RegisterAll binds every built-in handler to its fault kind. The order of
// registration is fixed and documented by the slice below; the registry
// rejects duplicates, so calling RegisterAll twice on one registry fails.
// A nil catalogue selects the built-in English one.
func RegisterAll(reg *infer.Registry, catalog *lang.Catalog) error {
	if catalog == nil {
		catalog = lang.Default()
	}
	bindings := []struct {
		kind    string
		handler infer.Handler
	}{
		{fault.KindAttribute, attributeNotFound(catalog)},
		{fault.KindFile, fileNotFound(catalog)},
		{fault.KindImport, importNotFound(catalog)},
		{fault.KindKey, keyNotFound(catalog)},
		{fault.KindModule, moduleNotFound(catalog)},
		{fault.KindName, nameNotFound(catalog)},
		{fault.KindOverflow, noInformation()},
		{fault.KindType, typeMismatch(catalog)},
		{fault.KindUnboundLocal, unboundLocal(catalog)},
		{fault.KindZeroDivision, noInformation()},
	}
	for _, b := range bindings {
		if err := reg.Register(b.kind, b.handler); err != nil {
			return err
		}
	}
	return nil
}

// noInformation returns a handler for kinds where the raw message carries
// nothing beyond what the generic explanation already says. Always absent;
// deliberate, not a gap.
func noInformation() infer.Handler {
	return func(*fault.Record) *fault.Cause {
		return nil
	}
}

// quoted returns the n-th single-quoted token of s (0-based), or "".
func quoted(s string, n int) string {
	parts := strings.Split(s, "'")
	idx := 2*n + 1
	if idx >= len(parts) {
		return ""
	}
	return parts[idx]
}
