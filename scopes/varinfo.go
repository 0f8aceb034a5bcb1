// Copyright © 2025 The whyerr authors

package scopes

import (
	"fmt"
	"strings"

	"github.com/whyerr/whyerr/fault"
	"github.com/whyerr/whyerr/linetok"
)

const (
	varIndent = "        "

	// maxReprLength bounds the printed representation of a value. Long
	// reprs are truncated; the element count is then shown separately,
	// which is often useful on index faults.
	maxReprLength = 65
)

// VarInfo lists the values of the names appearing in the displayed source
// snippet, one line per name, resolved against the frame's local and global
// tiers and the builtin table. The snippet is expected in the renderer's
// numbered form:
//
//	   1: def test():
//	   2:    a = b = 2
//	-->3:    c = a + b + d
//
// Names found only in nonlocal scope are ignored; they are rarely relevant
// to the faulting line. Returns "" when nothing could be resolved.
func VarInfo(displayedSource string, frame fault.Frame) string {
	if frame == nil {
		return ""
	}
	var names []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(displayedSource, "\n") {
		// Strip the line-number gutter.
		if _, code, ok := strings.Cut(line, ":"); ok {
			line = code
		}
		for _, name := range linetok.Identifiers(line) {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	var info []string
	for _, name := range names {
		if b, ok := frame.Lookup(name, fault.ScopeLocal); ok {
			info = append(info, formatVarInfo(name, b, ""))
		} else if b, ok := frame.Lookup(name, fault.ScopeGlobal); ok {
			info = append(info, formatVarInfo(name, b, "global "))
		} else if IsBuiltin(name) {
			b := fault.Binding{Repr: fmt.Sprintf("<builtin function %s>", name), Len: -1}
			info = append(info, formatVarInfo(name, b, ""))
		}
	}
	if len(info) == 0 {
		return ""
	}
	return strings.Join(info, "\n") + "\n"
}

// formatVarInfo renders one "name: repr" line, truncating long reprs and
// appending the element count when truncation hid it.
func formatVarInfo(name string, b fault.Binding, prefix string) string {
	value := simplifyRepr(b.Repr)
	truncated := false
	if len(value) > maxReprLength && !strings.HasPrefix(value, "<") {
		value = truncateRepr(value)
		truncated = true
	}
	result := fmt.Sprintf("    %s%s: %s", prefix, name, value)
	if truncated && b.Len >= 0 {
		result += fmt.Sprintf("\n%slen(%s): %d", varIndent, name, b.Len)
	}
	return result
}

// simplifyRepr removes memory-address noise from object representations;
// "<function f at 0x7f...>" becomes "<function f>". Addresses change
// between runs and mean nothing to a beginner.
func simplifyRepr(repr string) string {
	if strings.HasPrefix(repr, "<") && strings.Contains(repr, " at ") {
		return strings.SplitN(repr, " at ", 2)[0] + ">"
	}
	return repr
}

// truncateRepr shortens a long repr, preferring to cut at an element
// boundary and keeping the final character so a list still ends with ] and
// a tuple with ).
func truncateRepr(value string) string {
	last := value[len(value)-1:]
	if strings.Contains(value, ", ") {
		parts := strings.Split(value, ", ")
		length := 0
		var kept []string
		for _, part := range parts {
			if length+len(part) > maxReprLength {
				break
			}
			kept = append(kept, part+", ")
			length += len(part) + 2
		}
		if len(kept) > 0 {
			return strings.Join(kept, "") + "..." + last
		}
	}
	return value[:maxReprLength-5] + "..." + last
}
