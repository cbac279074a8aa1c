package dom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/pagedit/dom/style"
	"github.com/npillmayer/pagedit/dom/style/cssom"
	"github.com/npillmayer/pagedit/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
)

// SurfaceID is the id of the surface element in the editor's document.
const SurfaceID = "webpage"

// ErrNoSurface is flagged if a document has no element to serve as surface.
var ErrNoSurface = errors.New("document has no surface element")

const editorDocument = `<!DOCTYPE html><html><head></head><body><div id="webpage"></div></body></html>`

// Surface is the editable region of a document. It owns the document's
// CSSOM, used to compute styles of the surface's elements.
type Surface struct {
	doc   *html.Node // owning document
	root  *html.Node // surface element
	cssom *cssom.CSSOM
}

// NewSurface creates an empty surface `<div id="webpage">` inside a new
// owning document.
func NewSurface() *Surface {
	doc, err := html.Parse(strings.NewReader(editorDocument))
	if err != nil {
		panic(err) // constant input
	}
	s, err := SurfaceFromDocument(doc, SurfaceID)
	if err != nil {
		panic(err)
	}
	return s
}

// SurfaceFromDocument uses the element with the given id as surface.
// If id is empty, <body> is used. The <style> elements of the document
// take part in computing styles.
func SurfaceFromDocument(doc *html.Node, id string) (*Surface, error) {
	if doc == nil {
		return nil, ErrNoSurface
	}
	var root *html.Node
	if id == "" {
		root = cascadia.Query(doc, cascadia.MustCompile("body"))
	} else {
		root = findByID(doc, id)
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no element with id %q", ErrNoSurface, id)
	}
	s := &Surface{
		doc:   doc,
		root:  root,
		cssom: cssom.NewCSSOM(nil),
	}
	if err := s.cssom.AddStyleSheet(douceuradapter.UserAgentStyleSheet(), cssom.UserAgent); err != nil {
		return nil, err
	}
	for _, sheet := range douceuradapter.ExtractStyleElements(doc) {
		if err := s.cssom.AddStyleSheet(sheet, cssom.Author); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("surface <%s> with %d style rules", root.Data, s.cssom.RuleCount())
	return s, nil
}

func findByID(doc *html.Node, id string) *html.Node {
	var found *html.Node
	Walk(doc, func(n *html.Node) bool {
		if found != nil {
			return false
		}
		if v, ok := GetAttr(n, "id"); ok && v == id && n.Type == html.ElementNode {
			found = n
			return false
		}
		return true
	})
	return found
}

// AddStyleSheet adds author styles, given as CSS source text.
func (s *Surface) AddStyleSheet(source string) error {
	sheet, err := douceuradapter.ParseStyleSheet(source)
	if err != nil {
		return err
	}
	return s.cssom.AddStyleSheet(sheet, cssom.Author)
}

// CSSOM returns the CSSOM used to compute styles.
func (s *Surface) CSSOM() *cssom.CSSOM {
	return s.cssom
}

// Document returns the owning document.
func (s *Surface) Document() *html.Node {
	return s.doc
}

// Root returns the surface element.
func (s *Surface) Root() *W3CNode {
	return s.wrap(s.root)
}

// Node wraps an HTML node as a W3CNode of this surface.
func (s *Surface) Node(h *html.Node) *W3CNode {
	return s.wrap(h)
}

// Contains is true if h is the surface element or one of its descendents.
func (s *Surface) Contains(h *html.Node) bool {
	return h != nil && (h == s.root || IsAncestorOf(s.root, h))
}

// Children returns the child nodes of the surface element.
func (s *Surface) Children() []*html.Node {
	var children []*html.Node
	for ch := s.root.FirstChild; ch != nil; ch = ch.NextSibling {
		children = append(children, ch)
	}
	return children
}

// Append appends detached nodes to the surface element.
func (s *Surface) Append(nodes ...*html.Node) {
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		s.root.AppendChild(n)
	}
}

// Replace discards the content of the surface and appends nodes.
func (s *Surface) Replace(nodes []*html.Node) {
	RemoveChildren(s.root)
	s.Append(nodes...)
}

// QueryDataID returns all elements of the owning document with a `data-id`
// attribute of value id, in document order.
func (s *Surface) QueryDataID(id string) []*html.Node {
	return goquery.NewDocumentFromNode(s.doc).Find("[data-id]").
		FilterFunction(func(_ int, sel *goquery.Selection) bool {
			v, _ := sel.Attr(DataIDAttr)
			return v == id
		}).Nodes
}

// FindByDataID returns the first element on the surface with the given
// `data-id`, or nil.
func (s *Surface) FindByDataID(id string) *W3CNode {
	for _, h := range s.QueryDataID(id) {
		if s.Contains(h) {
			return s.wrap(h)
		}
	}
	return nil
}

// Select returns the first element on the surface matching a CSS selector.
func (s *Surface) Select(selector string) (*W3CNode, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	return s.wrap(cascadia.Query(s.root, sel)), nil
}

// ComputedStyles returns the computed styles of a node.
func (s *Surface) ComputedStyles(h *html.Node) *style.PropertyMap {
	return s.cssom.ComputeStyles(h)
}

// Render writes the HTML of the surface content (not including the surface
// element itself).
func (s *Surface) Render(w io.Writer) error {
	for ch := s.root.FirstChild; ch != nil; ch = ch.NextSibling {
		if err := html.Render(w, ch); err != nil {
			return err
		}
	}
	return nil
}

// InnerHTML returns the HTML of the surface content.
func (s *Surface) InnerHTML() string {
	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		tracer().Errorf("cannot render surface: %v", err)
	}
	return buf.String()
}

// RenderDocument writes the HTML of the owning document.
func (s *Surface) RenderDocument(w io.Writer) error {
	return html.Render(w, s.doc)
}
