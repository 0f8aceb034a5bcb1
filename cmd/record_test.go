// Copyright © 2025 The whyerr authors

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whyerr/whyerr/fault"
)

func TestDecodeRecord(t *testing.T) {
	rec, err := decodeRecord([]byte(`{
		"kind": "name-not-found",
		"message": "name 'cost' is not defined",
		"file": "example.py",
		"line": 2,
		"offset": 7,
		"source_lines": ["coast = 3", "total=cost"],
		"locals": {"coast": {"repr": "3"}, "nums": {"repr": "[1, 2, 3]", "len": 3}},
		"hints": {"global": {"xy": "int"}},
		"modules": {"math": ["pi", "sin"]}
	}`))
	require.NoError(t, err)

	assert.Equal(t, fault.KindName, rec.Kind)
	assert.Equal(t, "example.py", rec.File)
	// SourceLine is derived from the line number when absent.
	assert.Equal(t, "total=cost", rec.SourceLine)

	b, ok := rec.Frame.Lookup("coast", fault.ScopeLocal)
	require.True(t, ok)
	assert.Equal(t, "3", b.Repr)
	assert.Equal(t, -1, b.Len)

	b, ok = rec.Frame.Lookup("nums", fault.ScopeLocal)
	require.True(t, ok)
	assert.Equal(t, 3, b.Len)

	assert.Equal(t, []string{"coast", "nums"}, rec.Frame.Names(fault.ScopeLocal))

	hint, ok := rec.Frame.Annotation("xy", fault.ScopeGlobal)
	require.True(t, ok)
	assert.Equal(t, "int", hint)

	members, ok := rec.Modules.Members("math")
	require.True(t, ok)
	assert.Equal(t, []string{"pi", "sin"}, members)
}

func TestDecodeRecordMinimal(t *testing.T) {
	rec, err := decodeRecord([]byte(`{"kind": "zero-division", "message": "division by zero"}`))
	require.NoError(t, err)
	assert.Nil(t, rec.Frame)
	assert.Nil(t, rec.Modules)
}

func TestDecodeRecordRejectsBadInput(t *testing.T) {
	_, err := decodeRecord([]byte(`not json`))
	assert.Error(t, err)

	_, err = decodeRecord([]byte(`{"message": "no kind"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no kind")
}
