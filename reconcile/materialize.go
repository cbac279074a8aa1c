package reconcile

import (
	"github.com/npillmayer/pagedit/dom"
	"github.com/npillmayer/pagedit/dom/style"
	"github.com/npillmayer/pagedit/page"
	"golang.org/x/net/html"
)

// Materialize creates detached HTML nodes for the top-level records of a
// page. Elements get their attributes and inline styles in sorted key
// order, their children, and finally their `data-id`.
func Materialize(pg *page.Page) []*html.Node {
	if pg == nil {
		return nil
	}
	nodes := make([]*html.Node, 0, len(pg.Contents))
	for _, r := range pg.Contents {
		if n := materialize(r); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func materialize(r page.Record) *html.Node {
	switch rec := r.(type) {
	case *page.Text:
		return dom.NewText(rec.Content)
	case *page.Element:
		h := dom.NewElement(rec.Tag)
		for _, k := range rec.AttributeKeys() {
			dom.SetAttr(h, k, rec.Attributes[k])
		}
		if len(rec.Style) > 0 {
			decls := make([]style.KeyValue, 0, len(rec.Style))
			for _, k := range rec.StyleKeys() {
				decls = append(decls, style.KeyValue{Key: k, Value: style.Property(rec.Style[k])})
			}
			dom.SetAttr(h, "style", style.FormatDeclarations(decls))
		}
		for _, ch := range rec.Children {
			if n := materialize(ch); n != nil {
				h.AppendChild(n)
			}
		}
		dom.SetAttr(h, dom.DataIDAttr, rec.ID)
		return h
	}
	tracer().Errorf("cannot materialize record %T", r)
	return nil
}

// Render discards the content of the surface and fills it with the
// materialized page.
func (s *Synchronizer) Render() {
	s.surface.Replace(Materialize(s.page))
}
