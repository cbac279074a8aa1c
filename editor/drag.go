package editor

import (
	"github.com/npillmayer/pagedit/dom"
	"github.com/npillmayer/pagedit/dom/style"
	"github.com/npillmayer/pagedit/dom/style/css"
	"golang.org/x/net/html"
)

// drag is an element being moved, anchored at the offset between pointer
// and element position at the start of the drag. Fixed elements stay
// fixed, all others are moved to absolute positions.
type drag struct {
	h      *html.Node
	dx, dy float64
	fixed  bool
}

// Dragging returns the element being dragged, or nil.
func (s *Session) Dragging() *dom.W3CNode {
	if s.drag == nil {
		return nil
	}
	return s.surface.Node(s.drag.h)
}

// PointerDown starts dragging an element in move mode. It reports whether
// a drag has started. The surface itself, `html` and `body` cannot be
// dragged.
func (s *Session) PointerDown(target *html.Node, x, y float64) bool {
	if s.mode != Move {
		return false
	}
	if target != nil && target.Type == html.TextNode {
		target = target.Parent
	}
	if !dom.NodeIsElement(target) || target == s.surface.Root().HTMLNode() ||
		target.Data == "html" || target.Data == "body" || !s.surface.Contains(target) {
		return false
	}
	inline := dom.InlineStyleOf(target)
	pos := css.PositionFromStyles(func(key string) (style.Property, bool) {
		p := inline.GetPropertyValue(key)
		return p, !p.IsEmpty()
	})
	d := &drag{h: target}
	left, top := anchor(pos, &d.fixed)
	d.dx, d.dy = x-left, y-top
	s.drag = d
	tracer().Debugf("start dragging <%s> at (%g, %g)", target.Data, left, top)
	return true
}

// anchor returns the left and top offsets an element is dragged from.
// Static and unpositioned elements start at the origin of their
// containing block. Offsets of relative elements are taken as a first
// approximation of their absolute position.
func anchor(pos css.PositionT, fixed *bool) (left, top float64) {
	var o []css.PositionOffset
	switch m := pos.Match(); m {
	case m.Fixed(&o):
		*fixed = true
	case m.Absolute(&o), m.Relative(&o):
	default:
		return 0, 0
	}
	return o[css.Left].Dim.InPixels(0), o[css.Top].Dim.InPixels(0)
}

// PointerMove moves the dragged element, if any, to a position following
// the pointer.
func (s *Session) PointerMove(x, y float64) {
	if s.drag == nil {
		return
	}
	top, left := y-s.drag.dy, x-s.drag.dx
	pos := css.AbsoluteAt(top, left)
	if s.drag.fixed {
		pos = css.Fixed([]css.PositionOffset{
			{Dim: css.Pixels(top), Dir: css.Top},
			{Dim: css.Pixels(left), Dir: css.Left},
		})
	}
	inline := dom.InlineStyleOf(s.drag.h)
	for _, kv := range pos.Styles() {
		inline.SetProperty(kv.Key, kv.Value)
	}
}

// PointerUp ends a drag and raises a document-changed notification.
func (s *Session) PointerUp() {
	if s.drag == nil {
		return
	}
	s.drag = nil
	s.DocumentChanged()
}
