package dom

import (
	"strings"
	"testing"

	"github.com/npillmayer/pagedit/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const testDocument = `<html><head><style>.hero { background-color: #336699; }</style></head>
<body><nav data-id="n1">menu</nav>
<div id="webpage">
  <h1 data-id="a" class="hero">Hello <b data-id="b">World</b></h1>
  <p data-id="a" style="color: red; font-size: 20px">dup</p>
</div></body></html>`

func parse(t *testing.T) *Surface {
	doc, err := html.Parse(strings.NewReader(testDocument))
	require.NoError(t, err)
	s, err := SurfaceFromDocument(doc, SurfaceID)
	require.NoError(t, err)
	return s
}

func TestNewSurface(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.dom")
	defer teardown()
	//
	s := NewSurface()
	assert.Equal(t, "div", s.Root().TagName())
	assert.Equal(t, SurfaceID, s.Root().GetAttribute("id"))
	assert.Empty(t, s.Children())
	assert.True(t, s.CSSOM().RuleCount() > 0, "expected user-agent rules")
}

func TestSurfaceFromDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.dom")
	defer teardown()
	//
	s := parse(t)
	assert.Len(t, s.QueryDataID("a"), 2)
	assert.Len(t, s.QueryDataID("n1"), 1)
	assert.Nil(t, s.FindByDataID("n1"), "nav is outside of the surface")
	b := s.FindByDataID("b")
	require.NotNil(t, b)
	assert.True(t, s.Contains(b.HTMLNode()))
	text, err := b.ParentNode().TextContent()
	assert.NoError(t, err)
	assert.Equal(t, "Hello World", text)

	_, err = SurfaceFromDocument(s.Document(), "missing")
	assert.ErrorIs(t, err, ErrNoSurface)
	body, err := SurfaceFromDocument(s.Document(), "")
	require.NoError(t, err)
	assert.Equal(t, "body", body.Root().TagName())
}

func TestComputedStylesOnSurface(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.dom")
	defer teardown()
	//
	s := parse(t)
	h1, err := s.Select("h1")
	require.NoError(t, err)
	cs := h1.ComputedStyles()
	assert.Equal(t, style.Property("rgb(51, 102, 153)"), cs.GetPropertyValue("background-color"))
	assert.Equal(t, style.Property("32px"), cs.GetPropertyValue("font-size"))
	p, err := s.Select("p")
	require.NoError(t, err)
	assert.Equal(t, style.Property("rgb(255, 0, 0)"), p.ComputedStyles().GetPropertyValue("color"))
	assert.Equal(t, style.Property("20px"), p.ComputedStyles().GetPropertyValue("font-size"))
}

func TestInlineStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.dom")
	defer teardown()
	//
	s := parse(t)
	p, err := s.Select("p")
	require.NoError(t, err)
	st := p.Style()
	assert.Equal(t, 2, st.Length())
	assert.Equal(t, style.Property("red"), st.GetPropertyValue("color"))
	st.SetProperty("color", "blue")
	st.SetProperty("font-family", "monospace")
	assert.Equal(t, "color: blue; font-size: 20px; font-family: monospace;", p.GetAttribute("style"))
	st.RemoveProperty("font-size")
	assert.Equal(t, style.KeyValue{Key: "font-family", Value: "monospace"}, st.Item(1))
	st.SetProperty("color", "")
	st.RemoveProperty("font-family")
	assert.False(t, p.HasAttribute("style"), "expected empty style attribute to be removed")
}

func TestSurfaceAppendReplace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.dom")
	defer teardown()
	//
	s := NewSurface()
	img := NewElement("IMG")
	SetAttr(img, DataIDAttr, "i1")
	s.Append(img, NewText("tail"))
	assert.Equal(t, `<img data-id="i1"/>tail`, s.InnerHTML())
	s.Replace([]*html.Node{NewElement("hr")})
	assert.Equal(t, `<hr/>`, s.InnerHTML())
	assert.Empty(t, s.QueryDataID("i1"))
}

func TestAttributes(t *testing.T) {
	h := NewElement("a")
	SetAttr(h, "href", "#")
	SetAttr(h, "href", "/x")
	v, ok := GetAttr(h, "href")
	assert.True(t, ok)
	assert.Equal(t, "/x", v)
	assert.Len(t, h.Attr, 1)
	RemoveAttr(h, "href")
	_, ok = GetAttr(h, "href")
	assert.False(t, ok)
}
