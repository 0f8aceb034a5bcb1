// Copyright © 2025 The whyerr authors

package runtimefault

import (
	"regexp"
	"strings"

	"github.com/whyerr/whyerr/fault"
	"github.com/whyerr/whyerr/infer"
	"github.com/whyerr/whyerr/lang"
	"github.com/whyerr/whyerr/scopes"
)

var nameNotDefinedPattern = regexp.MustCompile(`name '(.*)' is not defined`)

// nameNotFound explains a lookup of an undefined name, suggesting similarly
// spelled names from the frame's scope tiers and the builtin table, and
// falling back to an annotation-without-assignment hint.
func nameNotFound(catalog *lang.Catalog) infer.Handler {
	return func(rec *fault.Record) *fault.Cause {
		m := nameNotDefinedPattern.FindStringSubmatch(rec.Message)
		if m == nil {
			return &fault.Cause{Cause: catalog.Render("cause.no-info", nil)}
		}
		name := m[1]

		sim := scopes.SimilarNames(name, rec.Frame)
		if sim.Best != "" {
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

		return &fault.Cause{
			Cause: catalog.Render("name.not-defined", map[string]string{"name": name}),
		}
	}
}

// similarNamesCause words the candidate list: a single candidate names its
// scope inline, several candidates get a per-scope bullet list.
func similarNamesCause(catalog *lang.Catalog, name string, sim scopes.Similar) string {
	all := sim.All()
	if len(all) == 1 {
		scope := "local"
		switch {
		case len(sim.Globals) == 1:
			scope = "global"
		case len(sim.Builtins) == 1:
			scope = "builtin"
		}
		return catalog.Render("name.similar-single", map[string]string{
			"name":  all[0],
			"scope": scope,
		})
	}

	var b strings.Builder
	b.WriteString(catalog.Render("name.similar-many", map[string]string{"name": name}))
	writeScopeList := func(scope string, names []string) {
		if len(names) == 0 {
			return
		}
		b.WriteString(catalog.Render("name.scope-list", map[string]string{
			"scope": scope,
			"names": strings.Join(names, ", "),
		}))
	}
	writeScopeList("local", sim.Locals)
	writeScopeList("global", sim.Globals)
	writeScopeList("builtin", sim.Builtins)
	return b.String()
}
