// Copyright © 2025 The whyerr authors

package syntaxmsg

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/whyerr/whyerr/brackets"
	"github.com/whyerr/whyerr/lang"
	"github.com/whyerr/whyerr/linetok"
)

// DefaultAnalyzers returns the full analyzer catalogue in priority order.
// The order is a contract: some preconditions overlap on substrings and the
// chain keeps only the first match.
func DefaultAnalyzers() []*Analyzer {
	return []*Analyzer{
		analyzerAssignToKeyword,
		analyzerAssignToFunctionCall,
		analyzerAssignToLiteral,
		analyzerBreakOutsideLoop,
		analyzerContinueOutsideLoop,
		analyzerDeleteFunctionCall,
		analyzerEOLInString,
		analyzerAssignmentInExpression,
		analyzerKeywordAsExpression,
		analyzerInvalidIdentifierChar,
		analyzerMismatchedBracket,
		analyzerUnterminatedFString,
		analyzerParameterAndGlobal,
		analyzerAssignedBeforeGlobal,
		analyzerUsedBeforeGlobal,
		analyzerAssignedBeforeNonlocal,
		analyzerUsedBeforeNonlocal,
		analyzerContinuationCharacter,
		analyzerUnexpectedEOF,
		analyzerUnmatchedCloser,
		analyzerPositionalAfterKeyword,
		analyzerNonDefaultAfterDefault,
		analyzerLegacyPrint,
	}
}

// assignToKeywordMessages are the exact message texts produced across
// runtime versions when assigning to a reserved word.
var assignToKeywordMessages = map[string]bool{
	"can't assign to keyword":    true, // 3.6, 3.7
	"assignment to keyword":      true, // 3.6, 3.7
	"cannot assign to keyword":   true, // 3.8
	"cannot assign to None":      true, // 3.8
	"cannot assign to True":      true, // 3.8
	"cannot assign to False":     true, // 3.8
	"cannot assign to __debug__": true, // 3.8
}

var analyzerAssignToKeyword = &Analyzer{
	Name: "assign-to-keyword",
	Doc:  "Assignment to a reserved word; constants get dedicated wording.",
	Run: func(c *lang.Catalog, in Input) string {
		if !assignToKeywordMessages[in.Message] {
			return ""
		}
		word := ""
		for _, tok := range linetok.Tokenize(in.Line) {
			if tok.Kind == linetok.Name && isReserved(tok.Text) {
				word = tok.Text
				break
			}
		}
		if word == "" {
			// The line is unavailable or holds no reserved word; the
			// 3.8 message shape still names the constant itself.
			if rest := strings.TrimPrefix(in.Message, "cannot assign to "); constants[rest] {
				word = rest
			} else {
				return ""
			}
		}
		if constants[word] {
			return c.Render("syntax.assign-constant", map[string]string{"keyword": word})
		}
		return c.Render("syntax.assign-keyword", map[string]string{"keyword": word})
	},
}

var analyzerAssignToFunctionCall = &Analyzer{
	Name: "assign-to-function-call",
	Doc:  "Assignment with a function call on the left of the equal sign.",
	Run: func(c *lang.Catalog, in Input) string {
		if in.Message != "can't assign to function call" && // 3.6, 3.7
			in.Message != "cannot assign to function call" { // 3.8
			return ""
		}
		if strings.Count(in.Line, "=") > 1 {
			// Something like fn(a=1) = 2, or fn(a) = 1 = 2. There are
			// too many combinations, so generic names are used.
			return c.Render("syntax.assign-function-call-generic", map[string]string{
				"fn_call": c.Render("placeholder.function-call", nil),
				"value":   c.Render("placeholder.value", nil),
			})
		}
		fnCall, value, ok := strings.Cut(in.Line, "=")
		if !ok {
			return ""
		}
		return c.Render("syntax.assign-function-call", map[string]string{
			"fn_call": strings.TrimSpace(fnCall),
			"value":   strings.TrimSpace(value),
		})
	},
}

var analyzerAssignToLiteral = &Analyzer{
	Name: "assign-to-literal",
	Doc:  "Assignment with a literal value on the left of the equal sign.",
	Run: func(c *lang.Catalog, in Input) string {
		if in.Message != "can't assign to literal" && // 3.6, 3.7
			in.Message != "cannot assign to literal" { // 3.8
			return ""
		}
		left, right, ok := strings.Cut(in.Line, "=")
		if !ok {
			return ""
		}
		literal := strings.TrimSpace(left)
		name := strings.TrimSpace(right)
		suggest := "\n"
		if linetok.IsIdentifier(name) {
			suggest = c.Render("syntax.assign-literal-suggest", map[string]string{
				"literal": literal,
				"name":    name,
			})
		}
		return c.Render("syntax.assign-literal", map[string]string{
			"literal": literal,
			"name":    name,
		}) + suggest
	},
}

var analyzerBreakOutsideLoop = &Analyzer{
	Name: "break-outside-loop",
	Doc:  "The keyword 'break' used outside a loop body.",
	Run: func(c *lang.Catalog, in Input) string {
		if !strings.Contains(in.Message, "'break' outside loop") {
			return ""
		}
		return c.Render("syntax.break-outside-loop", nil)
	},
}

var analyzerContinueOutsideLoop = &Analyzer{
	Name: "continue-outside-loop",
	Doc:  "The keyword 'continue' used outside a loop body.",
	Run: func(c *lang.Catalog, in Input) string {
		if !strings.Contains(in.Message, "'continue' not properly in loop") {
			return ""
		}
		return c.Render("syntax.continue-outside-loop", nil)
	},
}

var analyzerDeleteFunctionCall = &Analyzer{
	Name: "delete-function-call",
	Doc:  "del applied to a function call instead of a name.",
	Run: func(c *lang.Catalog, in Input) string {
		if in.Message != "can't delete function call" && // 3.6, 3.7
			in.Message != "cannot delete function call" { // 3.8
			return ""
		}
		line := in.Line
		correct := "del function"
		toks := linetok.Tokenize(in.Line)
		if len(toks) >= 4 &&
			toks[0].Kind == linetok.Name && toks[0].Text == "del" &&
			toks[1].Kind == linetok.Name &&
			toks[2] == (linetok.Token{Kind: linetok.Op, Text: "("}) &&
			toks[len(toks)-1] == (linetok.Token{Kind: linetok.Op, Text: ")"}) {
			correct = "del " + toks[1].Text
		} else {
			line = "del function()"
		}
		return c.Render("syntax.delete-function-call", map[string]string{
			"line":    line,
			"correct": correct,
		})
	},
}

var analyzerEOLInString = &Analyzer{
	Name: "eol-in-string",
	Doc:  "String literal left open at end of line.",
	Run: func(c *lang.Catalog, in Input) string {
		if !strings.Contains(in.Message, "EOL while scanning string literal") {
			return ""
		}
		return c.Render("syntax.eol-in-string", nil)
	},
}

var analyzerAssignmentInExpression = &Analyzer{
	Name: "assignment-in-expression",
	Doc:  "= used where a comparison or a keyword argument was intended.",
	Run: func(c *lang.Catalog, in Input) string {
		if !strings.Contains(in.Message, "expression cannot contain assignment, perhaps you meant") {
			return ""
		}
		return c.Render("syntax.assignment-in-expression", nil)
	},
}

var analyzerKeywordAsExpression = &Analyzer{
	Name: "keyword-as-expression",
	Doc:  "Invalid name used as a keyword argument.",
	Run: func(c *lang.Catalog, in Input) string {
		if !strings.Contains(in.Message, "keyword can't be an expression") {
			return ""
		}
		return c.Render("syntax.keyword-as-expression", nil)
	},
}

var analyzerInvalidIdentifierChar = &Analyzer{
	Name: "invalid-identifier-char",
	Doc:  "Disallowed character inside an identifier.",
	Run: func(c *lang.Catalog, in Input) string {
		if !strings.Contains(in.Message, "invalid character in identifier") {
			return ""
		}
		return c.Render("syntax.invalid-identifier-char", nil)
	},
}

var (
	mismatchedWithLine = regexp.MustCompile(
		`closing parenthesis '(.)' does not match opening parenthesis '(.)' on line (\d+)`)
	mismatchedNoLine = regexp.MustCompile(
		`closing parenthesis '(.)' does not match opening parenthesis '(.)'`)
)

var analyzerMismatchedBracket = &Analyzer{
	Name: "mismatched-bracket",
	Doc:  "Closing bracket of a different kind than its opener.",
	Run: func(c *lang.Catalog, in Input) string {
		var closing, opening, lineno string
		if m := mismatchedWithLine.FindStringSubmatch(in.Message); m != nil {
			closing, opening, lineno = m[1], m[2], m[3]
		} else if m := mismatchedNoLine.FindStringSubmatch(in.Message); m != nil {
			closing, opening = m[1], m[2]
		} else {
			return ""
		}

		var response string
		if lineno != "" {
			response = c.Render("syntax.mismatched-bracket-line", map[string]string{
				"closing":    closing,
				"opening":    opening,
				"linenumber": lineno,
			})
		} else {
			response = c.Render("syntax.mismatched-bracket", map[string]string{
				"closing": closing,
				"opening": opening,
			})
		}

		// Second-opinion localization from the structural scan.
		if additional := brackets.FindMismatched(in.SourceLines, in.LineNumber, in.Offset); additional != "" {
			response += c.Render("more-info", nil) + additional
		}
		return response
	},
}

var analyzerUnterminatedFString = &Analyzer{
	Name: "unterminated-fstring",
	Doc:  "String inside an f-string left open.",
	Run: func(c *lang.Catalog, in Input) string {
		if !strings.Contains(in.Message, "f-string: unterminated string") {
			return ""
		}
		return c.Render("syntax.unterminated-fstring", nil)
	},
}

var analyzerParameterAndGlobal = &Analyzer{
	Name: "parameter-and-global",
	Doc:  "Name used as both a parameter and a global declaration.",
	Run: func(c *lang.Catalog, in Input) string {
		// Something like: name 'x' is parameter and global
		if !strings.Contains(in.Message, "is parameter and global") {
			return ""
		}
		name := quotedName(in.Message)
		if name == "" {
			return ""
		}
		newline := "global " + name
		if strings.Contains(in.Line, name) && strings.Contains(in.Line, "global") {
			newline = in.Line
		}
		return c.Render("syntax.parameter-and-global", map[string]string{
			"newline": newline,
			"name":    name,
		})
	},
}

var analyzerAssignedBeforeGlobal = declarationOrderAnalyzer(
	"assigned-before-global",
	"Name assigned before its global declaration.",
	"is assigned to before global declaration",
	"syntax.assigned-before-global",
)

var analyzerUsedBeforeGlobal = declarationOrderAnalyzer(
	"used-before-global",
	"Name used before its global declaration.",
	"is used prior to global declaration",
	"syntax.used-before-global",
)

var analyzerAssignedBeforeNonlocal = declarationOrderAnalyzer(
	"assigned-before-nonlocal",
	"Name assigned before its nonlocal declaration.",
	"is assigned to before nonlocal declaration",
	"syntax.assigned-before-nonlocal",
)

var analyzerUsedBeforeNonlocal = declarationOrderAnalyzer(
	"used-before-nonlocal",
	"Name used before its nonlocal declaration.",
	"is used prior to nonlocal declaration",
	"syntax.used-before-nonlocal",
)

// declarationOrderAnalyzer builds the four global/nonlocal declaration-order
// analyzers, which differ only in trigger substring and template.
func declarationOrderAnalyzer(name, doc, trigger, template string) *Analyzer {
	return &Analyzer{
		Name: name,
		Doc:  doc,
		Run: func(c *lang.Catalog, in Input) string {
			if !strings.Contains(in.Message, trigger) {
				return ""
			}
			varName := quotedName(in.Message)
			if varName == "" {
				return ""
			}
			return c.Render(template, map[string]string{"name": varName})
		},
	}
}

var analyzerContinuationCharacter = &Analyzer{
	Name: "continuation-character",
	Doc:  "Content following a line-continuation backslash.",
	Run: func(c *lang.Catalog, in Input) string {
		if !strings.Contains(in.Message, "unexpected character after line continuation character") {
			return ""
		}
		return c.Render("syntax.continuation-character", nil)
	},
}

var analyzerUnexpectedEOF = &Analyzer{
	Name: "unexpected-eof",
	Doc:  "End of input reached while more content was expected.",
	Run: func(c *lang.Catalog, in Input) string {
		if !strings.Contains(in.Message, "unexpected EOF while parsing") {
			return ""
		}
		response := c.Render("syntax.unexpected-eof", nil)
		return response + brackets.FindMissingCloser(in.SourceLines, in.LineNumber, in.Offset)
	},
}

var analyzerUnmatchedCloser = &Analyzer{
	Name: "unmatched-closer",
	Doc:  "Standalone closing bracket with no opener anywhere.",
	Run: func(c *lang.Catalog, in Input) string {
		var bracket string
		switch in.Message { // 3.8
		case "unmatched ')'":
			bracket = brackets.Name(')')
		case "unmatched ']'":
			bracket = brackets.Name(']')
		case "unmatched '}'":
			bracket = brackets.Name('}')
		default:
			return ""
		}
		return c.Render("syntax.unmatched-closer", map[string]string{
			"bracket":    bracket,
			"linenumber": itoa(in.LineNumber),
		})
	},
}

var analyzerPositionalAfterKeyword = &Analyzer{
	Name: "positional-after-keyword",
	Doc:  "Positional argument following a keyword argument in a call.",
	Run: func(c *lang.Catalog, in Input) string {
		if !strings.Contains(in.Message, "positional argument follows keyword argument") {
			return ""
		}
		return c.Render("syntax.positional-after-keyword", nil)
	},
}

var analyzerNonDefaultAfterDefault = &Analyzer{
	Name: "non-default-after-default",
	Doc:  "Non-default parameter following a default parameter.",
	Run: func(c *lang.Catalog, in Input) string {
		if !strings.Contains(in.Message, "non-default argument follows default argument") {
			return ""
		}
		return c.Render("syntax.non-default-after-default", nil)
	},
}

const legacyPrintPrefix = "Missing parentheses in call to 'print'. Did you mean print("

var analyzerLegacyPrint = &Analyzer{
	Name: "legacy-print",
	Doc:  "print used as a statement, as in Python 2.",
	Run: func(c *lang.Catalog, in Input) string {
		if !strings.HasPrefix(in.Message, legacyPrintPrefix) {
			return ""
		}
		arg := strings.TrimPrefix(in.Message, legacyPrintPrefix)
		arg = strings.TrimSuffix(arg, ")?")
		return c.Render("syntax.legacy-print", map[string]string{"message": arg})
	},
}

// quotedName extracts the first single-quoted token of a message, e.g.
// "name 'x' is parameter and global" yields "x".
func quotedName(message string) string {
	parts := strings.Split(message, "'")
	if len(parts) < 3 {
		return ""
	}
	return parts[1]
}

func itoa(n int) string {
	if n == 0 {
		return "?"
	}
	return strconv.Itoa(n)
}
