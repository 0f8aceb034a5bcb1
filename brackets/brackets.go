// Copyright © 2025 The whyerr authors

// Package brackets localizes structural grouping-symbol problems in source
// text: a closing bracket that does not match its opener, or a bracket left
// open at end of input.
//
// Both entry points share one scanning principle: walk the source tracking a
// stack of open brackets while staying aware of single- and double-quoted
// strings, so that bracket characters inside string literals are never
// treated as structural. When the available source window is insufficient to
// disambiguate, the result is the empty string — "no additional
// information", never an error.
package brackets

import "fmt"

// Name returns a human-readable name for a bracket character, quoting the
// character itself, e.g. "square bracket ']'".
func Name(b byte) string {
	switch b {
	case '(', ')':
		return fmt.Sprintf("parenthesis '%c'", b)
	case '[', ']':
		return fmt.Sprintf("square bracket '%c'", b)
	case '{', '}':
		return fmt.Sprintf("curly bracket '%c'", b)
	default:
		return fmt.Sprintf("bracket '%c'", b)
	}
}

type open struct {
	bracket byte
	line    int // 1-based
	col     int // 1-based
}

// FindMismatched scans the source up to the reported fault position looking
// for a closing bracket whose most recent opener is of a different kind, or
// which has no opener at all. It returns a sentence naming the offending
// symbols and lines, or "" when the scan finds nothing more precise than
// what the fault message already states.
func FindMismatched(sourceLines []string, lineNumber, offset int) string {
	stack, bad := scan(sourceLines, lineNumber, offset)
	if bad != nil {
		return bad.message
	}
	_ = stack
	return ""
}

// FindMissingCloser scans all available source for a bracket left open with
// no corresponding close by end of input. The most recently opened,
// still-unclosed bracket is reported as the probable omission site. Returns
// "" when everything is balanced or the window is insufficient.
func FindMissingCloser(sourceLines []string, lineNumber, offset int) string {
	stack, bad := scan(sourceLines, 0, 0)
	if bad != nil {
		// A mismatch elsewhere makes any missing-closer guess unsafe.
		return bad.message
	}
	if len(stack) == 0 {
		return ""
	}
	top := stack[len(stack)-1]
	return fmt.Sprintf(
		"The opening %s on line %d is not closed.\n",
		Name(top.bracket), top.line)
}

type mismatch struct {
	message string
}

// scan walks sourceLines tracking open brackets. Scanning stops after the
// position (stopLine, stopOffset) when stopLine > 0; otherwise the whole
// source is scanned. It returns the stack of still-open brackets and the
// first structural mismatch found, if any.
func scan(sourceLines []string, stopLine, stopOffset int) ([]open, *mismatch) {
	var stack []open
	for i, line := range sourceLines {
		lineno := i + 1
		if stopLine > 0 && lineno > stopLine {
			break
		}
		var quote byte
		for col := 0; col < len(line); col++ {
			if stopLine > 0 && lineno == stopLine && stopOffset > 0 && col >= stopOffset {
				break
			}
			ch := line[col]
			if quote != 0 {
				// Inside a string: only an unescaped matching quote
				// ends it.
				if ch == '\\' {
					col++
				} else if ch == quote {
					quote = 0
				}
				continue
			}
			switch ch {
			case '\'', '"':
				quote = ch
			case '#':
				// Comment until end of line.
				col = len(line)
			case '(', '[', '{':
				stack = append(stack, open{bracket: ch, line: lineno, col: col + 1})
			case ')', ']', '}':
				if len(stack) == 0 {
					return nil, &mismatch{message: fmt.Sprintf(
						"The closing %s on line %d has no matching opening bracket.\n",
						Name(ch), lineno)}
				}
				top := stack[len(stack)-1]
				if top.bracket != opener(ch) {
					return nil, &mismatch{message: fmt.Sprintf(
						"The closing %s on line %d does not match the opening %s on line %d.\n",
						Name(ch), lineno, Name(top.bracket), top.line)}
				}
				stack = stack[:len(stack)-1]
			}
		}
		// An unterminated quote runs to end of line; the string-literal
		// analyzers deal with that case, so the quote state is dropped
		// here rather than poisoning the remaining lines.
	}
	return stack, nil
}

func opener(closing byte) byte {
	switch closing {
	case ')':
		return '('
	case ']':
		return '['
	case '}':
		return '{'
	}
	return 0
}
