// Copyright © 2025 The whyerr authors

// Package lang holds the template catalogue used to phrase explanations.
//
// Templates are opaque format strings with named substitution slots such as
// {name}, {module}, or {linenumber}. The core supplies exactly the named
// values a template requires and assumes nothing about the human language
// the template is written in; a translated catalogue is injected by
// replacing template IDs wholesale.
package lang

import "regexp"

// Catalog maps stable template IDs to format strings. The zero value is not
// usable; construct catalogues with NewCatalog or Default.
type Catalog struct {
	templates map[string]string
}

// Default returns the built-in English catalogue.
func Default() *Catalog {
	return &Catalog{templates: defaultTemplates}
}

// NewCatalog returns a catalogue where overrides take precedence over the
// built-in English templates. Unknown IDs in overrides are kept, allowing
// embedders to add templates for their own fault kinds.
func NewCatalog(overrides map[string]string) *Catalog {
	merged := make(map[string]string, len(defaultTemplates)+len(overrides))
	for id, tpl := range defaultTemplates {
		merged[id] = tpl
	}
	for id, tpl := range overrides {
		merged[id] = tpl
	}
	return &Catalog{templates: merged}
}

var slotPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Render substitutes the named slots of the identified template. Slots with
// no corresponding arg are left verbatim so that a missing value degrades
// visibly instead of failing the whole explanation. An unknown template ID
// renders as the empty string.
func (c *Catalog) Render(id string, args map[string]string) string {
	tpl, ok := c.templates[id]
	if !ok {
		return ""
	}
	if len(args) == 0 {
		return tpl
	}
	return slotPattern.ReplaceAllStringFunc(tpl, func(slot string) string {
		name := slot[1 : len(slot)-1]
		if v, ok := args[name]; ok {
			return v
		}
		return slot
	})
}

// Has reports whether the catalogue defines the template ID.
func (c *Catalog) Has(id string) bool {
	_, ok := c.templates[id]
	return ok
}
