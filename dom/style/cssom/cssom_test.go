package cssom_test

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/pagedit/dom/style"
	"github.com/npillmayer/pagedit/dom/style/cssom"
	"github.com/npillmayer/pagedit/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var testDoc = `<html><head>
<style>
  p { color: green; }
  #special { color: #ff0000; }
  .box { background: rgba(10, 20, 30, 0.5); border-radius: 8px 4px; }
  p.weak { color: blue !important; }
  @media print { p { color: black; } }
</style>
</head><body>
<div id="webpage" style="font-family: Roboto, sans-serif">
  <h1 class="text-center">Hello</h1>
  <p id="special" class="weak">Important wins</p>
  <p id="plain" style="color: orange">Inline wins</p>
  <div class="box" style="font-size: 1.5em"><span id="inner">x</span></div>
  <code id="code" style="font-size: 50%">x</code>
</div>
</body></html>`

func setup(t *testing.T) (*cssom.CSSOM, *html.Node) {
	doc, err := html.Parse(strings.NewReader(testDoc))
	require.NoError(t, err)
	om := cssom.NewCSSOM(nil)
	require.NoError(t, om.AddStyleSheet(douceuradapter.UserAgentStyleSheet(), cssom.UserAgent))
	for _, sheet := range douceuradapter.ExtractStyleElements(doc) {
		require.NoError(t, om.AddStyleSheet(sheet, cssom.Author))
	}
	return om, doc
}

func find(t *testing.T, doc *html.Node, sel string) *html.Node {
	n := cascadia.MustCompile(sel).MatchFirst(doc)
	require.NotNil(t, n, "no element for %s", sel)
	return n
}

func TestComputeDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.style")
	defer teardown()
	//
	om, doc := setup(t)
	body := find(t, doc, "body")
	pmap := om.ComputeStyles(body)
	for key, expected := range map[string]style.Property{
		"background-color": "rgba(0, 0, 0, 0)",
		"color":            "rgb(0, 0, 0)",
		"font-size":        "16px",
		"font-family":      `"Times New Roman"`,
		"display":          "block",
		"position":         "static",
	} {
		p, ok := pmap.Property(key)
		assert.True(t, ok, key)
		assert.Equal(t, expected, p, key)
	}
}

func TestComputeCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.style")
	defer teardown()
	//
	om, doc := setup(t)
	assert.Equal(t, style.Property("rgb(0, 0, 255)"),
		om.GetPropertyValue(find(t, doc, "#special"), "color"), "important author rule")
	assert.Equal(t, style.Property("rgb(255, 165, 0)"),
		om.GetPropertyValue(find(t, doc, "#plain"), "color"), "inline style")
	h1 := find(t, doc, "h1")
	assert.Equal(t, style.Property("32px"), om.GetPropertyValue(h1, "font-size"))
	assert.Equal(t, style.Property("center"), om.GetPropertyValue(h1, "text-align"))
	assert.Equal(t, style.Property("700"), om.GetPropertyValue(h1, "font-weight"))
}

func TestComputeInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.style")
	defer teardown()
	//
	om, doc := setup(t)
	inner := find(t, doc, "#inner")
	assert.Equal(t, style.Property("24px"), om.GetPropertyValue(inner, "font-size"))
	assert.Equal(t, style.Property("Roboto, sans-serif"), om.GetPropertyValue(inner, "font-family"))
	// background-color is not inherited
	assert.Equal(t, style.Property("rgba(0, 0, 0, 0)"), om.GetPropertyValue(inner, "background-color"))
	box := inner.Parent
	assert.Equal(t, style.Property("rgba(10, 20, 30, 0.498)"), om.GetPropertyValue(box, "background-color"))
	assert.Equal(t, style.Property("8px 4px"), om.GetPropertyValue(box, "border-radius"))
	assert.Equal(t, style.Property("4px"), om.GetPropertyValue(box, "border-top-right-radius"))
	code := find(t, doc, "#code")
	assert.Equal(t, style.Property("monospace"), om.GetPropertyValue(code, "font-family"))
	assert.Equal(t, style.Property("8px"), om.GetPropertyValue(code, "font-size"))
}

func TestComputeTextNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.style")
	defer teardown()
	//
	om, doc := setup(t)
	h1 := find(t, doc, "h1")
	assert.Equal(t, om.GetPropertyValue(h1, "font-size"), om.GetPropertyValue(h1.FirstChild, "font-size"))
	assert.Nil(t, om.ComputeStyles(nil))
}

func TestInlineSheetRejected(t *testing.T) {
	om := cssom.NewCSSOM(nil)
	err := om.AddStyleSheet(douceuradapter.UserAgentStyleSheet(), cssom.Inline)
	assert.ErrorIs(t, err, cssom.ErrInlineSheet)
	assert.Equal(t, 0, om.RuleCount())
}
