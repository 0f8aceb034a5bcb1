// Copyright © 2025 The whyerr authors

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/whyerr/whyerr/diagnostic"
	"github.com/whyerr/whyerr/fault"
	"github.com/whyerr/whyerr/infer"
	"github.com/whyerr/whyerr/lang"
	"github.com/whyerr/whyerr/scopes"
)

const (
	wrapWidth       = 72
	narrativeIndent = 4
	contextLines    = 3
)

// Composer turns a fault record into the final multi-part report. All
// collaborators are injected; zero-value fields select a default.
type Composer struct {
	// Engine infers the likely cause. Required.
	Engine *infer.Engine

	// Catalog supplies the generic per-kind descriptions. Nil selects the
	// built-in English catalogue.
	Catalog *lang.Catalog

	// Renderer draws the annotated source snippet. Nil selects a plain
	// renderer with automatic color detection.
	Renderer *diagnostic.Renderer

	// Source resolves file text when the record carries none. Optional.
	Source SourceProvider
}

// Explain writes the layered report for rec to w. A failure inside report
// assembly is downgraded to a minimal diagnostic of the raw fault; only
// writer errors propagate.
func (c *Composer) Explain(w io.Writer, rec *fault.Record) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = c.minimal(w, rec)
		}
	}()
	if rec == nil {
		return fmt.Errorf("report: nil fault record")
	}

	ew := &errWriter{w: w}
	c.writeSnippet(ew, rec)
	c.writeGeneric(ew, rec)

	cause := c.Engine.InferCause(rec)
	if cause != nil {
		c.writeCause(ew, cause)
	}
	c.writeVariables(ew, rec)
	return ew.err
}

// minimal emits the bare fault identification. Used when full assembly
// fails; the user still learns what was raised.
func (c *Composer) minimal(w io.Writer, rec *fault.Record) error {
	d := diagnostic.Diagnostic{Severity: diagnostic.SeverityError}
	if rec != nil {
		d.Message = rec.Message
	}
	return c.renderer().Render(w, d)
}

func (c *Composer) catalog() *lang.Catalog {
	if c.Catalog != nil {
		return c.Catalog
	}
	return lang.Default()
}

func (c *Composer) renderer() *diagnostic.Renderer {
	if c.Renderer != nil {
		return c.Renderer
	}
	return &diagnostic.Renderer{}
}

// writeSnippet renders the fault site as an annotated source snippet.
func (c *Composer) writeSnippet(ew *errWriter, rec *fault.Record) {
	span := diagnostic.Span{
		File:   rec.File,
		Line:   rec.Line,
		Col:    rec.Offset,
		Source: rec.SourceLines,
	}
	if span.File == "" {
		span.File = "<unknown>"
	}
	if len(span.Source) == 0 && rec.SourceLine != "" && rec.Line > 0 {
		// Place the single known line at its own line number.
		source := make([]string, rec.Line)
		source[rec.Line-1] = rec.SourceLine
		span.Source = source
	}
	if len(span.Source) == 0 && c.Source != nil && readable(rec.File) && rec.Line > 0 {
		if window, first, err := c.Source.Window(rec.File, rec.Line, contextLines); err == nil {
			source := make([]string, first-1, first-1+len(window))
			span.Source = append(source, window...)
		}
	}
	d := diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Message:  rec.Message,
		Spans:    []diagnostic.Span{span},
	}
	if ew.err == nil {
		ew.err = c.renderer().Render(ew.w, d)
	}
	ew.print("\n")
}

// writeGeneric emits the fixed description of the fault category.
func (c *Composer) writeGeneric(ew *errWriter, rec *fault.Record) {
	catalog := c.catalog()
	id := "generic." + rec.Kind
	if !catalog.Has(id) {
		id = "generic.unknown"
	}
	ew.print(narrative(catalog.Render(id, nil)))
	ew.print("\n")
}

// writeCause emits the suggestion and the likely-cause narrative.
func (c *Composer) writeCause(ew *errWriter, cause *fault.Cause) {
	if cause.Suggest != "" {
		ew.print(narrative(cause.Suggest))
		ew.print("\n")
	}
	if cause.Cause == "" {
		return
	}
	if cause.Header != "" {
		ew.print(cause.Header + "\n\n")
	}
	ew.print(narrative(cause.Cause))
	ew.print("\n")
}

// writeVariables emits the numbered source window followed by the values
// of the names appearing in it.
func (c *Composer) writeVariables(ew *errWriter, rec *fault.Record) {
	if rec.Frame == nil || len(rec.SourceLines) == 0 {
		return
	}
	displayed := numberedWindow(rec.SourceLines, rec.Line)
	info := scopes.VarInfo(displayed, rec.Frame)
	if info == "" {
		return
	}
	ew.print(displayed)
	ew.print("\n")
	ew.print(info)
}

// numberedWindow renders the last few source lines up to the faulting one
// in the gutter format VarInfo parses, marking the faulting line.
func numberedWindow(lines []string, faultLine int) string {
	last := faultLine
	if last < 1 || last > len(lines) {
		last = len(lines)
	}
	first := last - contextLines
	if first < 1 {
		first = 1
	}
	var b strings.Builder
	for n := first; n <= last; n++ {
		marker := "   "
		if n == faultLine {
			marker = "-->"
		}
		fmt.Fprintf(&b, "%s%2d: %s\n", marker, n, lines[n-1])
	}
	return b.String()
}

// narrative wraps and indents one paragraph of explanation text.
func narrative(text string) string {
	wrapped := wordwrap.String(strings.TrimRight(text, "\n"), wrapWidth)
	return indent.String(wrapped, narrativeIndent) + "\n"
}

// errWriter captures the first write error so the section writers do not
// have to check every call.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) print(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}
