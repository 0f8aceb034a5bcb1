// Copyright © 2025 The whyerr authors

package diagnostic

import (
	"bytes"
	"strings"
	"testing"
)

// testRenderer returns a Renderer with colors disabled and a fake source reader.
func testRenderer(sources map[string]string) *Renderer {
	return &Renderer{
		Color: ColorNever,
		SourceReader: func(name string) ([]byte, error) {
			s, ok := sources[name]
			if !ok {
				return nil, &fakeErr{name}
			}
			return []byte(s), nil
		},
	}
}

type fakeErr struct{ name string }

func (e *fakeErr) Error() string { return "not found: " + e.name }

func TestRenderError(t *testing.T) {
	r := testRenderer(map[string]string{
		"example.py": "if True = 1:",
	})

	d := Diagnostic{
		Severity: SeverityError,
		Message:  "invalid syntax",
		Spans: []Span{
			{File: "example.py", Line: 1, Col: 4, EndCol: 7, Label: "assignment to a constant"},
		},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	got := buf.String()

	// Verify key structural elements
	assertContains(t, got, "error: invalid syntax")
	assertContains(t, got, "--> example.py:1:4")
	assertContains(t, got, "if True = 1:")
	assertContains(t, got, "^^^^")
	assertContains(t, got, "assignment to a constant")
}

func TestRenderWarning(t *testing.T) {
	r := testRenderer(map[string]string{
		"example.py": "x = 1\nx = open(x)",
	})

	d := Diagnostic{
		Severity: SeverityWarning,
		Message:  "name reused for a different type",
		Spans: []Span{
			{File: "example.py", Line: 2, Col: 1, EndCol: 11},
		},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	assertContains(t, got, "warning: name reused for a different type")
	assertContains(t, got, "--> example.py:2:1")
	assertContains(t, got, "x = open(x)")
}

func TestRenderInlineSource(t *testing.T) {
	// No reader at all: the span carries its source.
	r := &Renderer{Color: ColorNever}

	d := Diagnostic{
		Severity: SeverityError,
		Message:  "name 'cost' is not defined",
		Spans: []Span{
			{
				File:   "<stdin>",
				Line:   2,
				Col:    7,
				EndCol: 10,
				Source: []string{"coast = 3", "total=cost", "print(total)"},
			},
		},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	assertContains(t, got, "--> <stdin>:2:7")
	assertContains(t, got, "total=cost")
	assertContains(t, got, "^^^^")
}

func TestRenderNoSource(t *testing.T) {
	r := testRenderer(nil)

	d := Diagnostic{
		Severity: SeverityError,
		Message:  "some error",
		Spans: []Span{
			{File: "<stdin>", Line: 5, Col: 3},
		},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	assertContains(t, got, "error: some error")
	assertContains(t, got, "--> <stdin>:5:3")
	// Should have a gutter but no source line
	assertContains(t, got, "|")
	assertNotContains(t, got, "^")
}

func TestRenderNotes(t *testing.T) {
	r := testRenderer(map[string]string{
		"example.py": "total = cost + 1",
	})

	d := Diagnostic{
		Severity: SeverityError,
		Message:  "name 'cost' is not defined",
		Spans: []Span{
			{File: "example.py", Line: 1, Col: 9, EndCol: 12},
		},
		Notes: []string{
			`File "example.py", line 1, in <module>`,
			"NameError: name 'cost' is not defined",
		},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	assertContains(t, got, `= note: File "example.py", line 1, in <module>`)
	assertContains(t, got, "= note: NameError: name 'cost' is not defined")
}

func TestRenderAutoDetectEndCol(t *testing.T) {
	r := testRenderer(map[string]string{
		"example.py": "print(totl)",
	})

	d := Diagnostic{
		Severity: SeverityError,
		Message:  "name 'totl' is not defined",
		Spans: []Span{
			{File: "example.py", Line: 1, Col: 7}, // EndCol=0 → auto-detect
		},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	// "totl" starts at col 7 and is 4 chars → should produce "^^^^"
	assertContains(t, got, "^^^^")
}

func TestRenderMultipleDiagnostics(t *testing.T) {
	r := testRenderer(map[string]string{
		"example.py": "x = 1\ny = x +\nz = (x",
	})

	diags := []Diagnostic{
		{
			Severity: SeverityError,
			Message:  "invalid syntax",
			Spans:    []Span{{File: "example.py", Line: 2, Col: 7, EndCol: 7}},
		},
		{
			Severity: SeverityError,
			Message:  "unexpected EOF while parsing",
			Spans:    []Span{{File: "example.py", Line: 3, Col: 5, EndCol: 6}},
		},
	}

	var buf bytes.Buffer
	if err := r.RenderAll(&buf, diags); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	// Should have both diagnostics separated by blank line
	parts := strings.Split(got, "\n\n")
	if len(parts) < 2 {
		t.Errorf("expected diagnostics separated by blank line, got:\n%s", got)
	}
	assertContains(t, got, "invalid syntax")
	assertContains(t, got, "unexpected EOF while parsing")
}

func TestRenderNoSpans(t *testing.T) {
	r := testRenderer(nil)

	d := Diagnostic{
		Severity: SeverityError,
		Message:  "library error: file not found",
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	assertContains(t, got, "error: library error: file not found")
	// Should be just the header, no arrows or source
	assertNotContains(t, got, "-->")
}

func assertContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("output does not contain %q:\n%s", want, got)
	}
}

func assertNotContains(t *testing.T, got, unwanted string) {
	t.Helper()
	if strings.Contains(got, unwanted) {
		t.Errorf("output unexpectedly contains %q:\n%s", unwanted, got)
	}
}
