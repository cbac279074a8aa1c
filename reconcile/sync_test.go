package reconcile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/pagedit/dom"
	"github.com/npillmayer/pagedit/page"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func surfaceFor(t *testing.T, content string) *dom.Surface {
	doc, err := html.Parse(strings.NewReader(
		`<html><head></head><body><div id="webpage">` + content + `</div></body></html>`))
	require.NoError(t, err)
	s, err := dom.SurfaceFromDocument(doc, dom.SurfaceID)
	require.NoError(t, err)
	return s
}

func TestMaterializeSeedPage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.sync")
	defer teardown()
	//
	s := dom.NewSurface()
	s.Append(Materialize(page.New())...)
	assert.Equal(t, `<h1 class="text-center" data-id="title">Hello World!</h1>`, s.InnerHTML())
}

func TestMaterializeStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.sync")
	defer teardown()
	//
	pg := page.Empty()
	p := page.NewElement("p")
	p.ID = "p1"
	p.Style = map[string]string{"font-size": "20px", "color": "red"}
	p.Attributes = map[string]string{"title": "x", "class": "lead"}
	p.Children = []page.Record{page.NewText("a "), &page.Element{Tag: "b", ID: "b1",
		Children: []page.Record{page.NewText("bold")}}}
	pg.Contents = []page.Record{p}
	nodes := Materialize(pg)
	require.Len(t, nodes, 1)
	s := dom.NewSurface()
	s.Append(nodes...)
	assert.Equal(t, `<p class="lead" title="x" style="color: red; font-size: 20px;" data-id="p1">`+
		`a <b data-id="b1">bold</b></p>`, s.InnerHTML())
}

func TestSyncRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.sync")
	defer teardown()
	//
	s := dom.NewSurface()
	s.Append(Materialize(page.New())...)
	sync := New(s, nil)
	report := sync.SyncFromDOM()
	assert.Equal(t, Report{Elements: 1, Texts: 1}, report)
	t.Logf("page:\n%s", sync.Page().Dump())
	diff := cmp.Diff(page.New().Contents, sync.Page().Contents,
		cmpopts.EquateEmpty(),
		cmpopts.IgnoreFields(page.Element{}, "Content"))
	assert.Empty(t, diff)
	assert.Equal(t, "Hello World!", sync.Page().Find("title").Content)
}

func TestSyncKeepsIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.sync")
	defer teardown()
	//
	pg := page.New()
	title := pg.Contents[0].(*page.Element)
	text := title.Children[0].(*page.Text)
	s := dom.NewSurface()
	sync := New(s, pg)
	sync.Render()
	//
	h := s.FindByDataID("title")
	require.NotNil(t, h)
	h.Style().SetProperty("color", "red")
	h.SetAttribute(SelectedAttr, "true")
	report := sync.SyncFromDOM()
	assert.Equal(t, 0, report.Renumbered)
	require.Len(t, pg.Contents, 1)
	assert.Same(t, title, pg.Contents[0])
	assert.Same(t, text, title.Children[0])
	assert.Equal(t, map[string]string{"color": "red"}, title.Style)
	assert.Equal(t, map[string]string{"class": "text-center"}, title.Attributes)
}

func TestSyncAssignsIdentifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.sync")
	defer teardown()
	//
	s := surfaceFor(t, `stray text<p>One <i>two</i></p>`)
	sync := New(s, page.Empty())
	report := sync.SyncFromDOM()
	assert.Equal(t, 2, report.Elements)
	assert.Equal(t, 2, report.Texts)
	pg := sync.Page()
	require.Len(t, pg.Contents, 1)
	p := pg.Contents[0].(*page.Element)
	assert.Equal(t, "p", p.Tag)
	assert.Equal(t, "One two", p.Content)
	assert.NotEmpty(t, p.ID)
	live := s.FindByDataID(p.ID)
	require.NotNil(t, live)
	assert.Equal(t, "p", live.TagName())
	require.Len(t, p.Elements(), 1)
	assert.NotNil(t, s.FindByDataID(p.Elements()[0].ID))
}

func TestSyncRenumbersDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.sync")
	defer teardown()
	//
	s := surfaceFor(t, `<p data-id="a">1</p><p data-id="a">2</p><div data-id="b"><span data-id="a">3</span></div>`)
	sync := New(s, page.Empty())
	report := sync.SyncFromDOM()
	assert.Equal(t, 2, report.Renumbered)
	assert.Empty(t, sync.Page().Duplicates())
	ids := map[string]bool{}
	sync.Page().Walk(func(r page.Record, _ *page.Element) bool {
		if el, ok := r.(*page.Element); ok {
			assert.False(t, ids[el.ID], "id %s occurs twice", el.ID)
			ids[el.ID] = true
			assert.NotNil(t, s.FindByDataID(el.ID))
		}
		return true
	})
	assert.Len(t, ids, 4)
	// a second pass is stable
	report = sync.SyncFromDOM()
	assert.Equal(t, 0, report.Renumbered)
}

func TestSyncPrunesAndReorders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.sync")
	defer teardown()
	//
	s := surfaceFor(t, `<p data-id="x">x</p><p data-id="y">y</p><p data-id="z">z</p>`)
	sync := New(s, nil)
	sync.SyncFromDOM()
	y := sync.Page().Find("y")
	require.NotNil(t, y)
	//
	root := s.Root().HTMLNode()
	x := s.FindByDataID("x").HTMLNode()
	root.RemoveChild(x)
	root.AppendChild(x) // y z x
	z := s.FindByDataID("z").HTMLNode()
	root.RemoveChild(z)
	report := sync.SyncFromDOM()
	assert.Equal(t, 1, report.Pruned)
	assert.Equal(t, 2, report.Elements)
	var order []string
	for _, r := range sync.Page().Contents {
		order = append(order, r.(*page.Element).ID)
	}
	assert.Equal(t, []string{"y", "x"}, order)
	assert.Same(t, y, sync.Page().Find("y"))
	assert.Nil(t, sync.Page().Find("z"))
}

func TestSyncTextReuse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.sync")
	defer teardown()
	//
	s := surfaceFor(t, `<p data-id="p">a<br data-id="br">b</p>`)
	sync := New(s, nil)
	sync.SyncFromDOM()
	p := sync.Page().Find("p")
	texts := p.Texts()
	require.Len(t, texts, 2)
	//
	live := s.FindByDataID("p").HTMLNode()
	live.LastChild.Data = "c"
	sync.SyncFromDOM()
	after := p.Texts()
	require.Len(t, after, 2)
	assert.Same(t, texts[0], after[0])
	assert.NotSame(t, texts[1], after[1])
	assert.Equal(t, "c", after[1].Content)
	assert.Equal(t, "ac", p.Content)
}

func TestSyncUnterminatedInlineStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.sync")
	defer teardown()
	//
	s := surfaceFor(t, `<p data-id="p" style="color: red">x</p>`)
	sync := New(s, nil)
	sync.SyncFromDOM()
	assert.Equal(t, map[string]string{"color": "red"}, sync.Page().Find("p").Style)
	//
	s.FindByDataID("p").Style().SetProperty("font-size", "20px")
	st, _ := dom.GetAttr(s.FindByDataID("p").HTMLNode(), "style")
	assert.Equal(t, "color: red; font-size: 20px;", st)
	sync.SyncFromDOM()
	assert.Equal(t, map[string]string{"color": "red", "font-size": "20px"}, sync.Page().Find("p").Style)
}

func TestSyncRenumbersTreeDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.sync")
	defer teardown()
	//
	pg := page.Empty()
	first := &page.Element{Tag: "p", ID: "a"}
	second := &page.Element{Tag: "div", ID: "a",
		Children: []page.Record{&page.Element{Tag: "span", ID: "a"}}}
	pg.Contents = []page.Record{first, second}
	require.Len(t, pg.FindAll("a"), 3)
	//
	s := surfaceFor(t, `<p data-id="a">one</p>`)
	sync := New(s, pg)
	report := sync.SyncFromDOM()
	assert.Equal(t, 1, report.Renumbered)
	assert.Equal(t, 3, report.Pruned)
	assert.LessOrEqual(t, len(sync.Page().FindAll("a")), 1)
	assert.Empty(t, sync.Page().Duplicates())
	live := s.Root().HTMLNode().FirstChild
	assert.NotEqual(t, "a", dom.DataID(live))
	require.Len(t, sync.Page().Contents, 1)
	assert.Equal(t, dom.DataID(live), sync.Page().Contents[0].(*page.Element).ID)
}
