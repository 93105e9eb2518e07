package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	script := "Initialize(3)\nInsert(b, vb)\nInsert(a, va)\nInsert(d, vd)\nInsert(c, vc)\nInsert(e, ve)\nSearch(c)\nUse(other)\nInsert(x, 1)\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	var buf bytes.Buffer
	require.NoError(t, inspect(path, &buf))

	out := buf.String()
	require.Contains(t, out, "(9 commands, 0 errors)")
	require.Contains(t, out, "Index default id=")
	require.Contains(t, out, "[INTERNAL] keys=[c d]")
	require.Contains(t, out, "Index other id=")
	require.Contains(t, out, "[LEAF] x -> 1")
	require.NotContains(t, out, "CORRUPT")
}

func TestInspectMissingFile(t *testing.T) {
	err := inspect(filepath.Join(t.TempDir(), "missing.txt"), &bytes.Buffer{})
	require.Error(t, err)
}
