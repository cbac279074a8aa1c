package reconcile

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pagedit/dom"
	"github.com/npillmayer/pagedit/page"
	"golang.org/x/net/html"
)

// SelectedAttr marks the selected element. It is editor state and never
// captured into records.
const SelectedAttr = "data-selected"

// Synchronizer reconciles a page record tree with a live surface.
type Synchronizer struct {
	surface *dom.Surface
	page    *page.Page
}

// Report summarizes a synchronization pass.
type Report struct {
	Elements   int // element records in the tree after the pass
	Texts      int // text records in the tree after the pass
	Renumbered int // elements given a fresh identifier
	Pruned     int // element records dropped for missing elements
}

func (r Report) String() string {
	return fmt.Sprintf("%d elements, %d texts, %d renumbered, %d pruned",
		r.Elements, r.Texts, r.Renumbered, r.Pruned)
}

// New creates a synchronizer for a surface and a page. A nil page is
// replaced by an empty one.
func New(surface *dom.Surface, pg *page.Page) *Synchronizer {
	if pg == nil {
		pg = page.Empty()
	}
	return &Synchronizer{surface: surface, page: pg}
}

// Page returns the page record tree.
func (s *Synchronizer) Page() *page.Page {
	return s.page
}

// SetPage replaces the page record tree.
func (s *Synchronizer) SetPage(pg *page.Page) {
	if pg == nil {
		pg = page.Empty()
	}
	s.page = pg
}

// SyncFromDOM reconciles the record tree with the live surface. After the
// pass every child list of the tree mirrors the live order, and no
// identifier occurs twice.
func (s *Synchronizer) SyncFromDOM() Report {
	pass := newPass(s.surface, s.page)
	var contents []page.Record
	for ch := s.surface.Root().HTMLNode().FirstChild; ch != nil; ch = ch.NextSibling {
		// top-level text has no identified parent
		if ch.Type == html.ElementNode {
			contents = append(contents, pass.element(ch))
		}
	}
	s.page.Contents = contents
	pass.report.Elements, pass.report.Texts = s.page.Count()
	for el := range pass.before {
		if !pass.kept[el] {
			pass.report.Pruned++
		}
	}
	if dups := s.page.Duplicates(); len(dups) > 0 {
		tracer().Errorf("duplicate identifiers after synchronization: %s", strings.Join(dups, ", "))
	}
	tracer().Debugf("synchronized: %s", pass.report)
	return pass.report
}

// pass holds the state of a single synchronization pass.
type pass struct {
	surface *dom.Surface
	index   map[string][]*page.Element // records by id, as before the pass
	before  map[*page.Element]bool
	kept    map[*page.Element]bool
	claimed map[string]bool
	report  Report
}

func newPass(surface *dom.Surface, pg *page.Page) *pass {
	p := &pass{
		surface: surface,
		index:   make(map[string][]*page.Element),
		before:  make(map[*page.Element]bool),
		kept:    make(map[*page.Element]bool),
		claimed: make(map[string]bool),
	}
	pg.Walk(func(r page.Record, _ *page.Element) bool {
		if el, ok := r.(*page.Element); ok {
			p.index[el.ID] = append(p.index[el.ID], el)
			p.before[el] = true
		}
		return true
	})
	return p
}

// identify resolves the identifier of a live element. Missing or duplicate
// identifiers are replaced by a fresh one, written back to the element.
func (p *pass) identify(h *html.Node) (id string, fresh bool) {
	id = dom.DataID(h)
	switch {
	case id == "":
		fresh = true
	case p.claimed[id], len(p.index[id]) > 1, len(p.surface.QueryDataID(id)) > 1:
		tracer().Errorf("duplicate identifier %q on <%s>, renumbering", id, h.Data)
		p.report.Renumbered++
		fresh = true
	}
	if fresh {
		id = page.NewID()
		dom.SetAttr(h, dom.DataIDAttr, id)
	}
	p.claimed[id] = true
	return id, fresh
}

// element reconciles a live element and its subtree with its record.
func (p *pass) element(h *html.Node) *page.Element {
	id, fresh := p.identify(h)
	var rec *page.Element
	if recs := p.index[id]; !fresh && len(recs) > 0 {
		rec = recs[0]
	} else {
		rec = &page.Element{ID: id}
	}
	p.kept[rec] = true
	rec.Tag = strings.ToLower(h.Data)
	rec.Content = dom.TextContent(h)
	rec.Attributes = captureAttributes(h)
	rec.Style = captureStyle(h)
	//
	previous := rec.Texts()
	consumed := make([]bool, len(previous))
	var children []page.Record
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.ElementNode:
			children = append(children, p.element(ch))
		case html.TextNode:
			children = append(children, reuseText(previous, consumed, ch.Data))
		}
	}
	rec.Children = children
	return rec
}

// reuseText returns the first unconsumed text record with the given
// content, or a new one.
func reuseText(previous []*page.Text, consumed []bool, content string) *page.Text {
	for i, t := range previous {
		if !consumed[i] && t.Content == content {
			consumed[i] = true
			return t
		}
	}
	return page.NewText(content)
}

func captureAttributes(h *html.Node) map[string]string {
	var attrs map[string]string
	for _, a := range h.Attr {
		if a.Namespace != "" {
			continue
		}
		switch a.Key {
		case dom.DataIDAttr, "style", SelectedAttr:
			continue
		}
		if attrs == nil {
			attrs = make(map[string]string)
		}
		attrs[a.Key] = a.Val
	}
	return attrs
}

func captureStyle(h *html.Node) map[string]string {
	decls := dom.InlineStyleOf(h).Declarations()
	if len(decls) == 0 {
		return nil
	}
	st := make(map[string]string, len(decls))
	for _, kv := range decls {
		st[kv.Key] = kv.Value.String()
	}
	return st
}
