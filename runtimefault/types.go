// Copyright © 2025 The whyerr authors

package runtimefault

import (
	"regexp"

	"github.com/whyerr/whyerr/fault"
	"github.com/whyerr/whyerr/infer"
	"github.com/whyerr/whyerr/lang"
)

var (
	unsupportedOperandPattern = regexp.MustCompile(
		`unsupported operand type\(s\) for (.+): '(.*)' and '(.*)'`)
	noAttributePattern = regexp.MustCompile(`'(.*)' object has no attribute '(.*)'`)
)

// typeMismatch explains the binary-operator shape of a type fault. Other
// shapes of the same fault kind carry no extractable structure and yield
// no cause at all, letting the caller fall back to its generic wording.
func typeMismatch(catalog *lang.Catalog) infer.Handler {
	return func(rec *fault.Record) *fault.Cause {
		m := unsupportedOperandPattern.FindStringSubmatch(rec.Message)
		if m == nil {
			return nil
		}
		return &fault.Cause{
			Cause: catalog.Render("type.unsupported-operand", map[string]string{
				"operator": m[1],
				"left":     m[2],
				"right":    m[3],
			}),
		}
	}
}

// attributeNotFound names the missing attribute and the type it was looked
// up on.
func attributeNotFound(catalog *lang.Catalog) infer.Handler {
	return func(rec *fault.Record) *fault.Cause {
		m := noAttributePattern.FindStringSubmatch(rec.Message)
		if m == nil {
			return nil
		}
		return &fault.Cause{
			Cause: catalog.Render("attribute.not-found", map[string]string{
				"type":      m[1],
				"attribute": m[2],
			}),
		}
	}
}
