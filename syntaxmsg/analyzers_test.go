// Copyright © 2025 The whyerr authors

package syntaxmsg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whyerr/whyerr/lang"
)

func analyze(t *testing.T, in Input) string {
	t.Helper()
	return Default(nil).Analyze(in)
}

func TestAssignToKeywordConstant(t *testing.T) {
	got := analyze(t, Input{Message: "cannot assign to None", Line: "None = 1"})
	assert.Contains(t, got, "None is a constant")
	assert.Contains(t, got, "you cannot assign it a value")
}

func TestAssignToKeywordNonConstant(t *testing.T) {
	got := analyze(t, Input{Message: "can't assign to keyword", Line: "pass = 2"})
	assert.Contains(t, got, "keyword 'pass'")
	assert.Contains(t, got, "not allowed")
}

func TestAssignToKeywordNoLine(t *testing.T) {
	// The 3.8 message names the constant itself, so the rule still fires
	// without the source line.
	got := analyze(t, Input{Message: "cannot assign to __debug__"})
	assert.Contains(t, got, "__debug__ is a constant")
}

func TestAssignToFunctionCallSimple(t *testing.T) {
	got := analyze(t, Input{
		Message: "cannot assign to function call",
		Line:    "f(x) = 42",
	})
	assert.Contains(t, got, "f(x) = 42")
	assert.Contains(t, got, "function call")
}

func TestAssignToFunctionCallChained(t *testing.T) {
	got := analyze(t, Input{
		Message: "can't assign to function call",
		Line:    "fn(a=1) = 2",
	})
	// Too many combinations; generic names are used instead.
	assert.Contains(t, got, "my_function(...)")
	assert.Contains(t, got, "some value")
}

func TestAssignToLiteralWithIdentifier(t *testing.T) {
	got := analyze(t, Input{Message: "can't assign to literal", Line: "5 = x"})
	assert.Contains(t, got, "<5>")
	assert.Contains(t, got, "literal")
	// x is a valid identifier, so the swapped assignment is proposed.
	assert.Contains(t, got, "x = 5")
}

func TestAssignToLiteralWithoutIdentifier(t *testing.T) {
	got := analyze(t, Input{Message: "cannot assign to literal", Line: "5 = 6"})
	assert.Contains(t, got, "<5>")
	assert.NotContains(t, got, "Perhaps you meant to write")
}

func TestBreakOutsideLoopFixedText(t *testing.T) {
	want := lang.Default().Render("syntax.break-outside-loop", nil)
	// The explanation is the fixed template regardless of line and offset.
	for _, in := range []Input{
		{Message: "'break' outside loop"},
		{Message: "'break' outside loop", Line: "break", LineNumber: 7, Offset: 3},
	} {
		assert.Equal(t, want, analyze(t, in))
	}
}

func TestContinueOutsideLoop(t *testing.T) {
	got := analyze(t, Input{Message: "'continue' not properly in loop"})
	assert.Contains(t, got, "'continue'")
	assert.Contains(t, got, "while loop")
}

func TestDeleteFunctionCallNamed(t *testing.T) {
	got := analyze(t, Input{
		Message: "cannot delete function call",
		Line:    "del f(a)",
	})
	assert.Contains(t, got, "del f(a)")
	assert.Contains(t, got, "del f\n")
}

func TestDeleteFunctionCallGeneric(t *testing.T) {
	got := analyze(t, Input{
		Message: "can't delete function call",
		Line:    "del (f)(a)",
	})
	assert.Contains(t, got, "del function()")
	assert.Contains(t, got, "del function\n")
}

func TestEOLInString(t *testing.T) {
	got := analyze(t, Input{Message: "EOL while scanning string literal"})
	assert.Contains(t, got, "never ended the string")
}

func TestChainPriorityOverlappingTriggers(t *testing.T) {
	// A message matching both the assignment-in-expression and the
	// keyword-as-expression triggers must resolve to the earlier rule.
	message := "expression cannot contain assignment, perhaps you meant: " +
		"keyword can't be an expression"
	chain := Default(nil)
	got := chain.Analyze(Input{Message: message})
	want := lang.Default().Render("syntax.assignment-in-expression", nil)
	assert.Equal(t, want, got)
}

func TestKeywordAsExpression(t *testing.T) {
	got := analyze(t, Input{Message: "keyword can't be an expression"})
	assert.Contains(t, got, "named argument")
}

func TestInvalidIdentifierChar(t *testing.T) {
	got := analyze(t, Input{Message: "invalid character in identifier"})
	assert.Contains(t, got, "unicode character")
}

func TestMismatchedBracketWithLineNumber(t *testing.T) {
	got := analyze(t, Input{
		Message: "closing parenthesis ']' does not match opening parenthesis '(' on line 2",
	})
	assert.Contains(t, got, "closing ']'")
	assert.Contains(t, got, "opening '('")
	assert.Contains(t, got, "line 2")
}

func TestMismatchedBracketSecondOpinion(t *testing.T) {
	got := analyze(t, Input{
		Message: "closing parenthesis ']' does not match opening parenthesis '('",
		SourceLines: []string{
			"x = (1, 2,",
			"     3]",
		},
		LineNumber: 2,
		Offset:     7,
	})
	assert.Contains(t, got, "closing ']'")
	assert.Contains(t, got, "a bit more information")
	assert.Contains(t, got, "square bracket ']'")
}

func TestMismatchedBracketNoSecondOpinion(t *testing.T) {
	got := analyze(t, Input{
		Message: "closing parenthesis ']' does not match opening parenthesis '('",
	})
	assert.Contains(t, got, "closing ']'")
	assert.NotContains(t, got, "a bit more information")
}

func TestUnterminatedFString(t *testing.T) {
	got := analyze(t, Input{Message: "f-string: unterminated string"})
	assert.Contains(t, got, "f-string")
}

func TestParameterAndGlobal(t *testing.T) {
	got := analyze(t, Input{
		Message: "name 'x' is parameter and global",
		Line:    "    global x",
	})
	assert.Contains(t, got, "global x")
	assert.Contains(t, got, "'x'")
}

func TestParameterAndGlobalSynthesizedStatement(t *testing.T) {
	got := analyze(t, Input{Message: "name 'total' is parameter and global"})
	assert.Contains(t, got, "global total")
}

func TestDeclarationOrderVariants(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"name 'p' is assigned to before global declaration", "as a global variable"},
		{"name 'p' is used prior to global declaration", "as a global variable"},
		{"name 'q' is assigned to before nonlocal declaration", "as a nonlocal variable"},
		{"name 'q' is used prior to nonlocal declaration", "as a nonlocal variable"},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got := analyze(t, Input{Message: tt.message})
			assert.Contains(t, got, tt.want)
			name := strings.Split(tt.message, "'")[1]
			assert.Contains(t, got, "'"+name+"'")
		})
	}
}

func TestContinuationCharacter(t *testing.T) {
	got := analyze(t, Input{Message: "unexpected character after line continuation character"})
	assert.Contains(t, got, "continuation character")
}

func TestUnexpectedEOFDelegatesToBracketScan(t *testing.T) {
	got := analyze(t, Input{
		Message: "unexpected EOF while parsing",
		SourceLines: []string{
			"d = {",
			"    'a': 1,",
		},
		LineNumber: 2,
	})
	assert.Contains(t, got, "end of the file")
	assert.Contains(t, got, "curly bracket '{'")
	assert.Contains(t, got, "line 1")
}

func TestUnmatchedCloser(t *testing.T) {
	got := analyze(t, Input{Message: "unmatched ')'", LineNumber: 3})
	assert.Contains(t, got, "parenthesis ')'")
	assert.Contains(t, got, "line 3")
	assert.Contains(t, got, "does not match anything")
}

func TestPositionalAfterKeyword(t *testing.T) {
	got := analyze(t, Input{Message: "positional argument follows keyword argument"})
	assert.Contains(t, got, "test(1, 2, c=3)")
}

func TestNonDefaultAfterDefault(t *testing.T) {
	got := analyze(t, Input{Message: "non-default argument follows default argument"})
	assert.Contains(t, got, "def test(a, b, c=3): ...")
}

func TestLegacyPrint(t *testing.T) {
	got := analyze(t, Input{
		Message: `Missing parentheses in call to 'print'. Did you mean print("hello")?`,
	})
	assert.Contains(t, got, `print("hello")`)
	assert.Contains(t, got, "'print' is a function")
}

func TestNoAnalyzerMatches(t *testing.T) {
	assert.Empty(t, analyze(t, Input{Message: "some entirely novel wording"}))
}

func TestDefaultAnalyzersOrderIsStable(t *testing.T) {
	names := AnalyzerNames()
	require.Equal(t, 23, len(names))
	assert.Equal(t, "assign-to-keyword", names[0])
	assert.Equal(t, "assignment-in-expression", names[7])
	assert.Equal(t, "keyword-as-expression", names[8])
	assert.Equal(t, "legacy-print", names[22])
}

func TestAnalyzersHaveNamesAndDocs(t *testing.T) {
	for _, a := range DefaultAnalyzers() {
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Doc)
		assert.NotNil(t, a.Run)
	}
}
