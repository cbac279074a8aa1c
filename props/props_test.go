package props

import (
	"testing"

	"github.com/npillmayer/pagedit/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func element(t *testing.T, tag string, attrs ...string) *dom.W3CNode {
	s := dom.NewSurface()
	h := dom.NewElement(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		dom.SetAttr(h, attrs[i], attrs[i+1])
	}
	s.Append(h)
	return s.Node(h)
}

func TestRegistryMerge(t *testing.T) {
	r := NewRegistry()
	keys := func(ds []Descriptor) []string {
		var k []string
		for _, d := range ds {
			k = append(k, d.Key)
		}
		return k
	}
	assert.Equal(t, []string{"background-color", "color", "font-size", "font-family"}, keys(r.For("p")))
	assert.Equal(t, []string{"background-color", "color", "font-size", "font-family",
		"border-radius", "src", "alt"}, keys(r.For("IMG")))
	r.Register("img", Attribute("color", "Overridden"))
	d, ok := r.Lookup("img", "color")
	require.True(t, ok)
	assert.Equal(t, "Overridden", d.Label)
	assert.Equal(t, "color", keys(r.For("img"))[1], "override keeps position")
	assert.Equal(t, []string{"a", "img"}, r.Tags())
}

func TestColorProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.props")
	defer teardown()
	//
	el := element(t, "p", "style", "background-color: rgba(255, 0, 0, 0.5); color: rgb(255, 0, 0)")
	r := NewRegistry()
	bg, _ := r.Lookup("p", "background-color")
	fg, _ := r.Lookup("p", "color")
	var hex string
	switch m := bg.Read(el).Match(); m {
	case m.Color(&hex):
		assert.Equal(t, "#ff00007f", hex)
	default:
		t.Errorf("expected color value")
	}
	assert.Equal(t, "#ff0000", fg.Read(el).String())
	require.NoError(t, fg.Write(el, Color("#00ff00")))
	assert.Equal(t, "#00ff00", fg.Read(el).String())
	assert.ErrorIs(t, fg.Write(el, Color("chartreuse-ish")), ErrInvalidColor)
	assert.ErrorIs(t, fg.Write(el, Number(3)), ErrKindMismatch)
	fg.Reset(el)
	assert.Equal(t, "#000000", fg.Read(el).String())
	assert.Equal(t, "#00000000", bg.Read(element(t, "div")).String())
}

func TestNumberProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.props")
	defer teardown()
	//
	r := NewRegistry()
	fs, _ := r.Lookup("p", "font-size")
	for style, px := range map[string]float64{
		"font-size: 1.5em": 24,
		"font-size: 2rem":  32,
		"font-size: 20px":  20,
		"font-size: 2pt":   16,
		"":                 16,
	} {
		el := element(t, "p", "style", style)
		var x float64
		switch m := fs.Read(el).Match(); m {
		case m.Number(&x):
			assert.Equal(t, px, x, style)
		default:
			t.Errorf("expected number value for %q", style)
		}
	}
	el := element(t, "p")
	require.NoError(t, fs.Write(el, Number(18)))
	assert.Equal(t, "font-size: 18px;", el.GetAttribute("style"))
	fs.Reset(el)
	assert.False(t, el.HasAttribute("style"))

	br, _ := r.Lookup("img", "border-radius")
	img := element(t, "img", "style", "border-radius: 1em")
	assert.Equal(t, Number(16), br.Read(img))
	assert.Equal(t, Number(0), br.Read(element(t, "img", "style", "border-radius: 10%")))
}

func TestFontProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.props")
	defer teardown()
	//
	r := NewRegistry()
	ff, _ := r.Lookup("p", "font-family")
	el := element(t, "p")
	assert.Equal(t, "inherit", ff.Read(el).String())
	require.NoError(t, ff.Write(el, Option(FontKind, "Roboto")))
	assert.Equal(t, `font-family: "Roboto", sans-serif;`, el.GetAttribute("style"))
	assert.Equal(t, "Roboto", ff.Read(el).String())
	require.NoError(t, ff.Write(el, Option(FontKind, "sans-serif")))
	assert.Equal(t, "sans-serif", ff.Read(el).String())
	assert.ErrorIs(t, ff.Write(el, Option(FontKind, "Comic Sans")), ErrUnknownOption)
	ff.Reset(el)
	assert.Equal(t, "font-family: inherit;", el.GetAttribute("style"))
	assert.Equal(t, "inherit", ff.Read(el).String())
	assert.Equal(t, "monospace", ff.Read(element(t, "code")).String())
}

func TestFontResetUnderStyledParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.props")
	defer teardown()
	//
	s := dom.NewSurface()
	div := dom.NewElement("div")
	dom.SetAttr(div, "style", "font-family: serif;")
	p := dom.NewElement("p")
	div.AppendChild(p)
	s.Append(div)
	el := s.Node(p)
	ff, _ := NewRegistry().Lookup("p", "font-family")
	assert.Equal(t, "serif", ff.Read(el).String())
	ff.Reset(el)
	assert.Equal(t, "font-family: inherit;", el.GetAttribute("style"))
	assert.Equal(t, "inherit", ff.Read(el).String())
}

func TestAttributeProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.props")
	defer teardown()
	//
	r := NewRegistry()
	src, _ := r.Lookup("img", "src")
	img := element(t, "img", "src", "a.png")
	assert.Equal(t, Text("a.png"), src.Read(img))
	require.NoError(t, src.Write(img, Text("b.png")))
	assert.Equal(t, "b.png", img.GetAttribute("src"))
	src.Reset(img)
	assert.False(t, img.HasAttribute("src"))
	assert.Equal(t, Text(""), src.Read(img))
	src.Reset(img) // no-op

	target, ok := r.Lookup("a", "target")
	require.True(t, ok)
	a := element(t, "a")
	assert.Equal(t, "_self", target.Read(a).String())
	require.NoError(t, target.Write(a, Option(SelectKind, "_blank")))
	assert.Equal(t, "_blank", target.Read(a).String())
	assert.ErrorIs(t, target.Write(a, Option(SelectKind, "elsewhere")), ErrUnknownOption)
}

func TestConstantReader(t *testing.T) {
	d := Descriptor{Key: "x", Kind: TextKind, Default: Text("fixed")}
	assert.Equal(t, "fixed", d.Read(element(t, "p")).String())
	assert.NoError(t, d.Write(element(t, "p"), Text("ignored")))
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue(NumberKind, " 12.5 ")
	require.NoError(t, err)
	assert.Equal(t, Number(12.5), v)
	_, err = ParseValue(NumberKind, "twelve")
	assert.ErrorIs(t, err, ErrNotANumber)
	v, _ = ParseValue(FontKind, "Inter")
	assert.Equal(t, FontKind, v.Kind())
	var s string
	switch m := v.Match(); m {
	case m.Option(&s):
		assert.Equal(t, "Inter", s)
	default:
		t.Errorf("expected option value")
	}
}

func TestMatchFont(t *testing.T) {
	for computed, name := range map[string]string{
		`"Times New Roman"`:        "inherit",
		`Roboto, sans-serif`:       "Roboto",
		`"Inter", sans-serif`:      "Inter",
		`Georgia, serif`:           "serif",
		`Helvetica, sans-serif`:    "sans-serif",
		`ui-monospace, monospace`:  "monospace",
		`system-ui, -apple-system`: "system-ui",
		`inherit`:                  "inherit",
	} {
		assert.Equal(t, name, MatchFont(computed), computed)
	}
}
