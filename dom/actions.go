package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DataIDAttr is the attribute identifying elements on the surface.
const DataIDAttr = "data-id"

// NodeIsText is a predicate to match text-nodes of a DOM.
func NodeIsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// NodeIsElement is a predicate to match element-nodes of a DOM.
func NodeIsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// Walk visits h and its descendents depth-first, in document order.
// If visit returns false, the children of the current node are skipped.
func Walk(h *html.Node, visit func(*html.Node) bool) {
	if h == nil {
		return
	}
	if !visit(h) {
		return
	}
	for ch := h.FirstChild; ch != nil; {
		next := ch.NextSibling // visit may detach ch
		Walk(ch, visit)
		ch = next
	}
}

// TextContent returns the concatenated text of h and all its descendents.
func TextContent(h *html.Node) string {
	var b strings.Builder
	Walk(h, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		return true
	})
	return b.String()
}

// GetAttr returns the value of attribute key of h, and wether it is present.
func GetAttr(h *html.Node, key string) (string, bool) {
	if h == nil {
		return "", false
	}
	for _, a := range h.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets attribute key of h, replacing an existing value.
func SetAttr(h *html.Node, key, value string) {
	for i, a := range h.Attr {
		if a.Namespace == "" && a.Key == key {
			h.Attr[i].Val = value
			return
		}
	}
	h.Attr = append(h.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttr removes attribute key from h, if present.
func RemoveAttr(h *html.Node, key string) {
	attrs := h.Attr[:0]
	for _, a := range h.Attr {
		if a.Namespace != "" || a.Key != key {
			attrs = append(attrs, a)
		}
	}
	h.Attr = attrs
}

// DataID returns the `data-id` of h or "".
func DataID(h *html.Node) string {
	id, _ := GetAttr(h, DataIDAttr)
	return id
}

// NewElement creates a detached element node for a tag name.
func NewElement(tag string) *html.Node {
	tag = strings.ToLower(tag)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// NewText creates a detached text node.
func NewText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// RemoveChildren detaches all children of h.
func RemoveChildren(h *html.Node) {
	for h.FirstChild != nil {
		h.RemoveChild(h.FirstChild)
	}
}

// IsAncestorOf is true if a is a proper ancestor of h.
func IsAncestorOf(a, h *html.Node) bool {
	if a == nil || h == nil {
		return false
	}
	for p := h.Parent; p != nil; p = p.Parent {
		if p == a {
			return true
		}
	}
	return false
}
