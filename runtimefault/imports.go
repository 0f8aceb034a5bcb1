// Copyright © 2025 The whyerr authors

package runtimefault

import (
	"regexp"
	"strings"

	"github.com/whyerr/whyerr/fault"
	"github.com/whyerr/whyerr/infer"
	"github.com/whyerr/whyerr/lang"
	"github.com/whyerr/whyerr/similar"
)

// The import-fault message has changed wording across runtime versions.
// Patterns are tried newest first; each is a versioned contract and new
// wordings get new patterns rather than edits to these.
var (
	// 3.8+: includes the partial-initialization marker.
	importPartialPattern = regexp.MustCompile(
		`cannot import name '(.*)' from partially initialized module '(.*)'`)
	// 3.7: names the module.
	importFromPattern = regexp.MustCompile(`cannot import name '(.*)' from '(.*)'`)
	// 3.6: names only the object.
	importNamePattern = regexp.MustCompile(`cannot import name '(.*)'`)

	// fromImportPattern recovers the module from a "from X import Y"
	// source line when the message itself does not name it.
	fromImportPattern = regexp.MustCompile(`from (.*) import`)
)

// importNotFound explains a failed import of a name from a module,
// including the circular-import case, where the import chain is
// reconstructed from the simulated traceback.
func importNotFound(catalog *lang.Catalog) infer.Handler {
	return func(rec *fault.Record) *fault.Cause {
		message := rec.Message

		if m := importPartialPattern.FindStringSubmatch(message); m != nil {
			// A partially initialized module is the circular-import
			// symptom. Newer runtimes add their own circular-import
			// hint to the message, so ours is suppressed then.
			hintAlreadyGiven := strings.Contains(message, "circular import")
			return cannotImportNameFrom(catalog, m[1], m[2], rec, !hintAlreadyGiven)
		}
		if m := importFromPattern.FindStringSubmatch(message); m != nil {
			return cannotImportNameFrom(catalog, m[1], m[2], rec, true)
		}
		if m := importNamePattern.FindStringSubmatch(message); m != nil {
			return cannotImportName(catalog, m[1], rec)
		}
		return &fault.Cause{Cause: catalog.Render("cause.no-info", nil)}
	}
}

// cannotImportNameFrom handles the richer message shapes where both the
// object and its module are known.
func cannotImportNameFrom(catalog *lang.Catalog, name, module string, rec *fault.Record, addCircularHint bool) *fault.Cause {
	circularInfo := findCircularImport(catalog, rec)

	result := &fault.Cause{
		Cause: catalog.Render("import.object-and-module", map[string]string{
			"name":   name,
			"module": module,
		}),
	}
	if circularInfo != "" && addCircularHint {
		result.Suggest = catalog.Render("import.circular-suggest", nil)
	}
	if circularInfo != "" {
		result.Cause += "\n" + circularInfo
		return result
	}
	if !addCircularHint {
		// The runtime already said "circular import" but the chain
		// could not be reconstructed; explain what that means.
		result.Cause += "\n" + catalog.Render("import.circular-noted", nil)
		return result
	}

	if rec.Modules == nil {
		return result
	}
	members, ok := rec.Modules.Members(module)
	if !ok {
		return result
	}
	candidates := similar.FindSimilar(name, members)
	switch len(candidates) {
	case 0:
		return result
	case 1:
		result.Suggest = catalog.Render("import.one-candidate-suggest", map[string]string{
			"name": candidates[0],
		})
		result.Cause = catalog.Render("import.one-candidate", map[string]string{
			"correct": candidates[0],
			"typo":    name,
			"module":  module,
		})
	default:
		joined := strings.Join(candidates, ", ")
		result.Suggest = catalog.Render("import.many-candidates-suggest", map[string]string{
			"names": joined,
		})
		result.Cause = catalog.Render("import.many-candidates", map[string]string{
			"typo":       name,
			"module":     module,
			"candidates": joined,
		})
	}
	return result
}

// cannotImportName handles the oldest message shape, which names only the
// imported object. The module is recovered from the source line if it has
// the "from X import" form.
func cannotImportName(catalog *lang.Catalog, name string, rec *fault.Record) *fault.Cause {
	if m := fromImportPattern.FindStringSubmatch(rec.SourceLine); m != nil {
		return cannotImportNameFrom(catalog, name, m[1], rec, true)
	}
	return &fault.Cause{
		Cause: catalog.Render("import.object-only", map[string]string{
			"name": name,
		}),
	}
}

var (
	traceFilePattern   = regexp.MustCompile(`^File "(.*)", line`)
	traceFromPattern   = regexp.MustCompile(`^from (.*) import`)
	traceImportPattern = regexp.MustCompile(`^import (.*)`)
)

// findCircularImport reconstructs the import chain from the simulated
// traceback: file markers name the importing file, and the import
// statements under each marker name what it imports. If the final import's
// module already appears earlier in the chain, the two files are implicated
// as the circular pair. Returns "" when no cycle can be established.
func findCircularImport(catalog *lang.Catalog, rec *fault.Record) string {
	type importedModule struct {
		file   string
		module string
	}
	var imports []importedModule
	currentFile := ""
	for _, line := range strings.Split(rec.SimulatedTrace, "\n") {
		line = strings.TrimSpace(line)
		if m := traceFilePattern.FindStringSubmatch(line); m != nil {
			currentFile = m[1]
			continue
		}
		if m := traceFromPattern.FindStringSubmatch(line); m != nil {
			imports = append(imports, importedModule{file: currentFile, module: m[1]})
			currentFile = ""
			continue
		}
		if m := traceImportPattern.FindStringSubmatch(line); m != nil {
			// Several modules may be imported on one line.
			for _, module := range strings.Split(m[1], ",") {
				module = strings.TrimSpace(strings.ReplaceAll(module, "(", ""))
				if module != "" {
					imports = append(imports, importedModule{file: currentFile, module: module})
				}
			}
			currentFile = ""
		}
	}
	if len(imports) < 2 {
		return ""
	}

	last := imports[len(imports)-1]
	for _, imp := range imports[:len(imports)-1] {
		if imp.module == last.module {
			return catalog.Render("import.circular-narrative", map[string]string{
				"file":        imp.file,
				"last_file":   last.file,
				"last_module": last.module,
			})
		}
	}
	return ""
}
