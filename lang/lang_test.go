// Copyright © 2025 The whyerr authors

package lang

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSubstitutesNamedSlots(t *testing.T) {
	c := Default()
	got := c.Render("file.not-found", map[string]string{"filename": "data.txt"})
	assert.Contains(t, got, "`data.txt`")
	assert.NotContains(t, got, "{filename}")
}

func TestRenderLeavesMissingSlots(t *testing.T) {
	c := Default()
	got := c.Render("import.object-and-module", map[string]string{"name": "foo"})
	assert.Contains(t, got, "`foo`")
	// The unsupplied slot stays visible rather than failing silently.
	assert.Contains(t, got, "{module}")
}

func TestRenderUnknownID(t *testing.T) {
	assert.Empty(t, Default().Render("no-such-template", nil))
}

func TestRenderNoArgs(t *testing.T) {
	got := Default().Render("syntax.break-outside-loop", nil)
	assert.Contains(t, got, "'break'")
}

func TestNewCatalogOverrides(t *testing.T) {
	c := NewCatalog(map[string]string{
		"key.not-found": "clé introuvable : `{key}`\n",
		"custom.id":     "hello {who}",
	})
	assert.Equal(t, "clé introuvable : `k`\n", c.Render("key.not-found", map[string]string{"key": "k"}))
	assert.Equal(t, "hello world", c.Render("custom.id", map[string]string{"who": "world"}))
	// Untouched templates fall through to the defaults.
	assert.True(t, c.Has("file.not-found"))
}

func TestDefaultTemplatesHaveBalancedSlots(t *testing.T) {
	for id, tpl := range defaultTemplates {
		open := strings.Count(tpl, "{")
		closed := strings.Count(tpl, "}")
		assert.Equal(t, open, closed, "template %s has unbalanced braces", id)
	}
}
