package panel

import (
	"strings"
	"testing"

	"github.com/npillmayer/pagedit/dom"
	"github.com/npillmayer/pagedit/props"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func testSurface(t *testing.T) *dom.Surface {
	s := dom.NewSurface()
	h1 := dom.NewElement("h1")
	dom.SetAttr(h1, dom.DataIDAttr, "title")
	h1.AppendChild(dom.NewText("Hello"))
	img := dom.NewElement("img")
	dom.SetAttr(img, dom.DataIDAttr, "pic")
	dom.SetAttr(img, "src", "cat.png")
	a := dom.NewElement("a")
	dom.SetAttr(a, dom.DataIDAttr, "link")
	dom.SetAttr(a, "target", "_blank")
	s.Append(h1, img, a)
	return s
}

func TestRenderControls(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.panel")
	defer teardown()
	//
	s := testSurface(t)
	p := New(nil, nil)
	require.True(t, p.IsEmpty())
	p.Render(s.FindByDataID("title"))
	assert.Equal(t, "<h1> title", p.Info())
	keys := []string{}
	for _, c := range p.Controls() {
		keys = append(keys, c.Descriptor().Key)
	}
	assert.Equal(t, []string{"background-color", "color", "font-size", "font-family"}, keys)
	assert.Equal(t, "32", p.Control("font-size").Value().String())
	assert.Equal(t, "#000000", p.Control("color").Value().String())
	assert.Equal(t, "font-sizetitle", p.Control("font-size").ID())
	//
	out := p.HTML()
	t.Logf("panel = %s", out)
	assert.Contains(t, out, `<div class="property mb-3">`)
	assert.Contains(t, out, `<label for="colortitle">Text Color</label>`)
	assert.Contains(t, out, `<hex-alpha-color-picker id="colortitle" color="#000000">`)
	assert.Contains(t, out, `class="btn btn-danger ms-2"`)
}

func TestRenderOverlays(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.panel")
	defer teardown()
	//
	s := testSurface(t)
	p := New(props.NewRegistry(), nil)
	p.Render(s.FindByDataID("pic"))
	assert.Equal(t, "<img> pic", p.Info())
	require.NotNil(t, p.Control("src"))
	assert.Equal(t, "cat.png", p.Control("src").Value().String())
	assert.Equal(t, "0", p.Control("border-radius").Value().String())
	assert.Nil(t, p.Control("target"))
	//
	p.Render(s.FindByDataID("link"))
	c := p.Control("target")
	require.NotNil(t, c)
	assert.Equal(t, "_blank", c.Value().String())
	selected := ""
	for opt := c.Input().FirstChild; opt != nil; opt = opt.NextSibling {
		if _, ok := dom.GetAttr(opt, "selected"); ok {
			selected, _ = dom.GetAttr(opt, "value")
		}
	}
	assert.Equal(t, "_blank", selected)
}

func TestFontOptionsStyled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.panel")
	defer teardown()
	//
	s := testSurface(t)
	p := New(nil, nil)
	p.Render(s.FindByDataID("title"))
	c := p.Control("font-family")
	require.NotNil(t, c)
	assert.Equal(t, "select", c.Input().Data)
	n := 0
	for opt := c.Input().FirstChild; opt != nil; opt = opt.NextSibling {
		st, _ := dom.GetAttr(opt, "style")
		assert.True(t, strings.HasPrefix(st, "font-family: "), st)
		n++
	}
	assert.Equal(t, len(props.Fonts), n)
}

func TestChangeAndReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.panel")
	defer teardown()
	//
	s := testSurface(t)
	changes := 0
	p := New(nil, func() { changes++ })
	title := s.FindByDataID("title")
	p.Render(title)
	//
	c := p.Control("font-size")
	require.NoError(t, c.Change("40"))
	assert.Equal(t, "font-size: 40px;", title.GetAttribute("style"))
	v, _ := dom.GetAttr(c.Input(), "value")
	assert.Equal(t, "40", v)
	assert.Equal(t, 1, changes)
	//
	assert.Error(t, c.Change("forty"))
	assert.Equal(t, "font-size: 40px;", title.GetAttribute("style"))
	assert.Equal(t, 1, changes)
	//
	require.NoError(t, c.Reset())
	assert.False(t, title.HasAttribute("style"))
	assert.Equal(t, "32", c.Value().String())
	assert.Equal(t, 2, changes)
	//
	require.NoError(t, p.Control("font-family").Change("Inter"))
	assert.Contains(t, title.GetAttribute("style"), "font-family:")
	assert.Equal(t, "Inter", p.Control("font-family").Value().String())
	assert.Equal(t, 3, changes)
}

func TestStaleControl(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.panel")
	defer teardown()
	//
	s := testSurface(t)
	p := New(nil, nil)
	p.Render(s.FindByDataID("title"))
	c := p.Control("color")
	p.Clear()
	assert.True(t, p.IsEmpty())
	assert.Equal(t, "", p.Info())
	assert.ErrorIs(t, c.Change("#ff0000"), ErrStaleControl)
	assert.ErrorIs(t, c.Reset(), ErrStaleControl)
	assert.Nil(t, p.Element())
}

func TestRenderTextNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.panel")
	defer teardown()
	//
	s := testSurface(t)
	p := New(nil, nil)
	text := s.FindByDataID("title").HTMLNode().FirstChild
	require.Equal(t, html.TextNode, text.Type)
	p.Render(s.Node(text))
	assert.True(t, p.IsEmpty())
}
