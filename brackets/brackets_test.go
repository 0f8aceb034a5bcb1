// Copyright © 2025 The whyerr authors

package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindMismatchedReportsWrongCloser(t *testing.T) {
	source := []string{
		"x = (1, 2,",
		"     3]",
	}
	got := FindMismatched(source, 2, 7)
	assert.Contains(t, got, "square bracket ']'")
	assert.Contains(t, got, "line 2")
	assert.Contains(t, got, "parenthesis '('")
	assert.Contains(t, got, "line 1")
}

func TestFindMismatchedBalancedSource(t *testing.T) {
	source := []string{"x = (1 + 2) * [3]"}
	assert.Empty(t, FindMismatched(source, 1, len(source[0])))
}

func TestFindMismatchedIgnoresBracketsInStrings(t *testing.T) {
	// The ')' inside the quoted text must not be treated as structural.
	source := []string{"( [ 'a)b' ] "}
	assert.Empty(t, FindMismatched(source, 1, len(source[0])))
}

func TestFindMismatchedOrphanCloser(t *testing.T) {
	source := []string{"a = 1)"}
	got := FindMismatched(source, 1, 6)
	assert.Contains(t, got, "no matching opening bracket")
	assert.Contains(t, got, "line 1")
}

func TestFindMismatchedEscapedQuote(t *testing.T) {
	source := []string{`s = 'it\'s )' + (1`, ")"}
	// The escaped quote keeps the string open through the bracket; source
	// is balanced overall.
	assert.Empty(t, FindMismatched(source, 2, 1))
}

func TestFindMissingCloserReportsMostRecentOpen(t *testing.T) {
	source := []string{
		"d = {",
		"    'a': (1, 2),",
		"    'b': [3,",
	}
	got := FindMissingCloser(source, 3, 0)
	assert.Contains(t, got, "square bracket '['")
	assert.Contains(t, got, "line 3")
}

func TestFindMissingCloserBalanced(t *testing.T) {
	source := []string{"x = (1 + 2)"}
	assert.Empty(t, FindMissingCloser(source, 1, 0))
}

func TestFindMissingCloserSkipsComments(t *testing.T) {
	source := []string{
		"x = (1 +  # comment with ( and [",
		"     2",
	}
	got := FindMissingCloser(source, 2, 0)
	assert.Contains(t, got, "parenthesis '('")
	assert.Contains(t, got, "line 1")
}

func TestFindMissingCloserEmptySource(t *testing.T) {
	assert.Empty(t, FindMissingCloser(nil, 0, 0))
}

func TestName(t *testing.T) {
	assert.Equal(t, "parenthesis ')'", Name(')'))
	assert.Equal(t, "square bracket '['", Name('['))
	assert.Equal(t, "curly bracket '}'", Name('}'))
}
