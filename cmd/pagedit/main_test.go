package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/pagedit/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestExportCommand(t *testing.T) {
	out := run(t, "export", "--var", "gap=4px")
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `data-id="title"`)
	assert.Contains(t, out, "--gap: 4px;")
}

func TestSyncCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.html")
	require.NoError(t, os.WriteFile(in, []byte(
		`<html><body><div id="webpage"><p data-id="p1">One</p><p>Two</p></div></body></html>`), 0o644))
	dom := filepath.Join(dir, "out.html")
	out := run(t, "sync", in, "--write-dom", dom)
	pg, err := page.Decode(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, pg.Contents, 2)
	assert.NotNil(t, pg.Find("p1"))
	written, err := os.ReadFile(dom)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(written), "data-id="))
	assert.Contains(t, string(written), `<div id="webpage">`)
	for _, attr := range []string{"data-inspect", "contenteditable", "data-grab", "data-selected"} {
		assert.NotContains(t, string(written), attr)
	}
}

func TestTreeAndPropsCommands(t *testing.T) {
	out := run(t, "tree")
	assert.Contains(t, out, "<h1> title")
	out = run(t, "props", "title")
	assert.Contains(t, out, "<h1> title")
	assert.Contains(t, out, "Font Size")
	out = run(t, "graph")
	assert.Contains(t, out, "digraph")
}
