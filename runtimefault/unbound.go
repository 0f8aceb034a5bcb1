// Copyright © 2025 The whyerr authors

package runtimefault

import (
	"regexp"

	"github.com/whyerr/whyerr/fault"
	"github.com/whyerr/whyerr/infer"
	"github.com/whyerr/whyerr/lang"
	"github.com/whyerr/whyerr/scopes"
)

var unboundLocalPattern = regexp.MustCompile(`local variable '(.*)' referenced before assignment`)

// unboundLocal explains a local name read before its first assignment. The
// usual cause is a missing global or nonlocal declaration, so the enclosing
// tiers are checked first; failing that, near-miss local names and type
// annotations are tried.
func unboundLocal(catalog *lang.Catalog) infer.Handler {
	return func(rec *fault.Record) *fault.Cause {
		m := unboundLocalPattern.FindStringSubmatch(rec.Message)
		if m == nil {
			return &fault.Cause{Cause: catalog.Render("cause.no-info", nil)}
		}
		name := m[1]
		args := map[string]string{"name": name}

		defined := scopes.DefinitionScopes(name, rec.Frame)
		inGlobal, inNonlocal := false, false
		for _, scope := range defined {
			switch scope {
			case fault.ScopeGlobal:
				inGlobal = true
			case fault.ScopeNonlocal:
				inNonlocal = true
			}
		}
		switch {
		case inGlobal && inNonlocal:
			return &fault.Cause{
				Cause:   catalog.Render("unbound.both-scopes", args),
				Suggest: catalog.Render("unbound.both-scopes-suggest", args),
			}
		case inGlobal, inNonlocal:
			scope := "global"
			if inNonlocal {
				scope = "nonlocal"
			}
			scoped := map[string]string{"name": name, "scope": scope}
			return &fault.Cause{
				Cause:   catalog.Render("unbound.one-scope", scoped),
				Suggest: catalog.Render("unbound.one-scope-suggest", scoped),
			}
		}

		if sim := scopes.SimilarNames(name, rec.Frame); sim.Best != "" && len(sim.Locals) > 0 {
			return &fault.Cause{
				Cause:   similarNamesCause(catalog, name, sim),
				Suggest: catalog.Render("name.similar-suggest", map[string]string{"name": sim.Best}),
			}
		}

		if hint, scope, ok := scopes.TypeHint(name, rec.Frame); ok {
			return &fault.Cause{
				Cause: catalog.Render("unbound.type-hint", map[string]string{
					"name":  name,
					"scope": scope.String(),
					"hint":  hint,
				}),
				Suggest: catalog.Render("unbound.type-hint-suggest", nil),
			}
		}

		return &fault.Cause{Cause: catalog.Render("cause.no-info", nil)}
	}
}
