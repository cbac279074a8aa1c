package dom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/pagedit/dom/style"
	"github.com/npillmayer/pagedit/dom/w3cdom"
	"golang.org/x/net/html"
)

// ErrNotAnElement is flagged for element operations on other node types.
var ErrNotAnElement = errors.New("node is not an element")

// W3CNode is the type for W3C DOM nodes. It wraps an HTML node and links
// it to the surface the node lives on.
type W3CNode struct {
	h       *html.Node
	surface *Surface
}

// wrap creates a W3CNode for an HTML node; nil for nil.
func (s *Surface) wrap(h *html.Node) *W3CNode {
	if h == nil {
		return nil
	}
	return &W3CNode{h: h, surface: s}
}

// HTMLNode returns the underlying HTML node.
func (w *W3CNode) HTMLNode() *html.Node {
	if w == nil {
		return nil
	}
	return w.h
}

// Surface returns the surface the node lives on.
func (w *W3CNode) Surface() *Surface {
	return w.surface
}

var _ w3cdom.Element = &W3CNode{}

// NodeType returns the type of the underlying HTML node.
func (w *W3CNode) NodeType() html.NodeType {
	if w == nil {
		return html.ErrorNode
	}
	return w.h.Type
}

// NodeName is the tag name for elements, `#text`, `#document` or
// `#comment` otherwise.
func (w *W3CNode) NodeName() string {
	if w == nil {
		return ""
	}
	switch w.h.Type {
	case html.DocumentNode:
		return "#document"
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	}
	return w.h.Data
}

// NodeValue is the text of text and comment nodes, "" otherwise.
func (w *W3CNode) NodeValue() string {
	if w == nil {
		return ""
	}
	if w.h.Type == html.TextNode || w.h.Type == html.CommentNode {
		return w.h.Data
	}
	return ""
}

func (w *W3CNode) HasAttributes() bool {
	return w != nil && len(w.h.Attr) > 0
}

func (w *W3CNode) ParentNode() w3cdom.Node {
	if w == nil || w.h.Parent == nil {
		return nil
	}
	return w.surface.wrap(w.h.Parent)
}

func (w *W3CNode) HasChildNodes() bool {
	return w != nil && w.h.FirstChild != nil
}

// ChildNodes returns all children.
func (w *W3CNode) ChildNodes() w3cdom.NodeList {
	var children []*W3CNode
	if w != nil {
		for ch := w.h.FirstChild; ch != nil; ch = ch.NextSibling {
			children = append(children, w.surface.wrap(ch))
		}
	}
	return &domNodeList{nodes: children}
}

// Children returns the element children only.
func (w *W3CNode) Children() w3cdom.NodeList {
	var children []*W3CNode
	if w != nil {
		for ch := w.h.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.ElementNode {
				children = append(children, w.surface.wrap(ch))
			}
		}
	}
	return &domNodeList{nodes: children}
}

// FirstChild returns the first child or nil.
func (w *W3CNode) FirstChild() w3cdom.Node {
	if w == nil || w.h.FirstChild == nil {
		return nil
	}
	return w.surface.wrap(w.h.FirstChild)
}

// NextSibling returns the next sibling or nil.
func (w *W3CNode) NextSibling() w3cdom.Node {
	if w == nil || w.h.NextSibling == nil {
		return nil
	}
	return w.surface.wrap(w.h.NextSibling)
}

func (w *W3CNode) Attributes() w3cdom.NamedNodeMap {
	if w == nil {
		return &domAttributes{}
	}
	return &domAttributes{attrs: w.h.Attr}
}

// TextContent returns the text of the node and all its descendents.
func (w *W3CNode) TextContent() (string, error) {
	if w == nil {
		return "", ErrNotAnElement
	}
	return TextContent(w.h), nil
}

// ComputedStyles returns the computed styles of the node, as calculated by
// the surface's CSSOM. Text nodes report the styles of their parent.
func (w *W3CNode) ComputedStyles() w3cdom.ComputedStyles {
	if w == nil || w.surface == nil {
		return computedStyles{}
	}
	return computedStyles{pmap: w.surface.cssom.ComputeStyles(w.h)}
}

// TagName returns the lower-case tag name of an element.
func (w *W3CNode) TagName() string {
	if w == nil || w.h.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(w.h.Data)
}

func (w *W3CNode) GetAttribute(key string) string {
	v, _ := GetAttr(w.HTMLNode(), key)
	return v
}

func (w *W3CNode) HasAttribute(key string) bool {
	_, ok := GetAttr(w.HTMLNode(), key)
	return ok
}

func (w *W3CNode) SetAttribute(key, value string) {
	if w == nil || w.h.Type != html.ElementNode {
		tracer().Errorf("cannot set attribute %s on non-element", key)
		return
	}
	SetAttr(w.h, key, value)
}

func (w *W3CNode) RemoveAttribute(key string) {
	if w == nil {
		return
	}
	RemoveAttr(w.h, key)
}

// Style returns the inline style declarations of an element.
func (w *W3CNode) Style() w3cdom.CSSStyleDeclaration {
	return InlineStyle{h: w.HTMLNode()}
}

// DataID returns the `data-id` of the node or "".
func (w *W3CNode) DataID() string {
	return DataID(w.HTMLNode())
}

func (w *W3CNode) String() string {
	if w == nil {
		return "<nil>"
	}
	if id := w.DataID(); id != "" {
		return fmt.Sprintf("<%s data-id=%q>", w.NodeName(), id)
	}
	return fmt.Sprintf("<%s>", w.NodeName())
}

// --- Node lists and attributes ---------------------------------------------

type domNodeList struct {
	nodes []*W3CNode
}

func (l *domNodeList) Length() int {
	return len(l.nodes)
}

func (l *domNodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(l.nodes) {
		return nil
	}
	return l.nodes[i]
}

func (l *domNodeList) String() string {
	names := make([]string, len(l.nodes))
	for i, n := range l.nodes {
		names[i] = n.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

type domAttributes struct {
	attrs []html.Attribute
}

func (a *domAttributes) Length() int {
	return len(a.attrs)
}

func (a *domAttributes) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(a.attrs) {
		return nil
	}
	return domAttr{a.attrs[i]}
}

func (a *domAttributes) GetNamedItem(key string) w3cdom.Attr {
	for _, attr := range a.attrs {
		if attr.Key == key {
			return domAttr{attr}
		}
	}
	return nil
}

type domAttr struct {
	attr html.Attribute
}

func (a domAttr) Namespace() string { return a.attr.Namespace }
func (a domAttr) Key() string       { return a.attr.Key }
func (a domAttr) Value() string     { return a.attr.Val }

// --- Computed styles -------------------------------------------------------

type computedStyles struct {
	pmap *style.PropertyMap
}

func (cs computedStyles) GetPropertyValue(key string) style.Property {
	p, _ := cs.pmap.Property(key)
	return p
}

func (cs computedStyles) Styles() *style.PropertyMap {
	return cs.pmap
}
