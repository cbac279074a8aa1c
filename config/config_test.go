package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.config")
	defer teardown()
	//
	conf, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, JS, conf.ScriptMode)
	assert.Equal(t, "My Webpage", conf.Title)
	assert.Nil(t, conf.Theme)
	assert.NotEmpty(t, conf.Palette)
}

func TestParseYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.config")
	defer teardown()
	//
	conf, err := Parse(strings.NewReader(`
title: Landing Page
script-mode: jquery
theme:
  scheme: dark
  accent-color: "#ff8800"
palette:
  - label: Quote
    tag: blockquote
    class: blockquote
`))
	require.NoError(t, err)
	assert.Equal(t, "Landing Page", conf.Title)
	assert.Equal(t, JQuery, conf.ScriptMode)
	require.NotNil(t, conf.Theme)
	assert.Equal(t, Dark, conf.Theme.Scheme)
	assert.Equal(t, "#ff8800", conf.Theme.AccentColor)
	require.Len(t, conf.Palette, 1)
	assert.Equal(t, "blockquote", conf.Palette[0].Tag)
}

func TestParseNormalizesNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.config")
	defer teardown()
	//
	conf, err := Parse(strings.NewReader("script-mode: jQuery\ntheme:\n  scheme: Auto\n"))
	require.NoError(t, err)
	assert.Equal(t, JQuery, conf.ScriptMode)
	require.NotNil(t, conf.Theme)
	assert.Equal(t, Auto, conf.Theme.Scheme)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse(strings.NewReader("script-mode: typescript\n"))
	assert.ErrorIs(t, err, ErrUnknownScriptMode)
	_, err = Parse(strings.NewReader("theme:\n  scheme: sepia\n"))
	assert.ErrorIs(t, err, ErrUnknownScheme)
	_, err = Parse(strings.NewReader("theme:\n  scheme: auto\n  accent-color: nocolor\n"))
	assert.ErrorIs(t, err, ErrInvalidAccent)
	_, err = Parse(strings.NewReader("palette:\n  - label: Nothing\n"))
	assert.ErrorIs(t, err, ErrInvalidButton)
}

func TestEnvOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.config")
	defer teardown()
	//
	t.Setenv("PAGEDIT_TITLE", "From Env")
	t.Setenv("PAGEDIT_SCRIPT_MODE", "jquery")
	t.Setenv("PAGEDIT_THEME", "light")
	dir := t.TempDir()
	path := filepath.Join(dir, "pagedit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: From File\n"), 0o600))
	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "From Env", conf.Title)
	assert.Equal(t, JQuery, conf.ScriptMode)
	require.NotNil(t, conf.Theme)
	assert.Equal(t, Light, conf.Theme.Scheme)
	assert.Equal(t, DefaultAccentColor, conf.Theme.AccentColor)

	t.Setenv("PAGEDIT_THEME", "sepia")
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestSchemeFromControl(t *testing.T) {
	for id, expected := range map[string]Scheme{
		"theme-auto":  Auto,
		"theme-dark":  Dark,
		"theme-light": Light,
	} {
		s, ok := SchemeFromControl(id)
		assert.True(t, ok, id)
		assert.Equal(t, expected, s)
	}
	_, ok := SchemeFromControl("mode-edit")
	assert.False(t, ok)
}

func TestButtonAttributes(t *testing.T) {
	attrs, err := Button{Tag: "img", Attributes: `{"src":"a.png","width":200}`}.DecodeAttributes()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"src": "a.png", "width": "200"}, attrs)
	_, err = Button{Tag: "img", Attributes: `{src:`}.DecodeAttributes()
	assert.ErrorIs(t, err, ErrInvalidButton)
	attrs, err = Button{Tag: "p"}.DecodeAttributes()
	require.NoError(t, err)
	assert.Empty(t, attrs)
}
