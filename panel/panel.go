/*
Package panel renders the property panel for a selected element.

For every property descriptor applicable to the element (see package props)
the panel holds a labeled control, seeded from the descriptor's reader, and
a reset button. Changing a control writes the new value to the live
element and raises a document-changed notification; resetting invokes the
descriptor's reset operation and re-seeds the control.

Every render discards and rebuilds the panel's DOM completely.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package panel

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/npillmayer/pagedit/dom"
	"github.com/npillmayer/pagedit/props"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'pagedit.panel'.
func tracer() tracing.Trace {
	return tracing.Select("pagedit.panel")
}

// ErrStaleControl is flagged for operations on controls of a previous render.
var ErrStaleControl = errors.New("control is no longer part of the panel")

// Element ids of the panel's DOM.
const (
	PanelID   = "properties"
	InfoID    = "properties-info"
	ContentID = "properties-content"
)

// Panel is the property panel.
type Panel struct {
	registry   *props.Registry
	root       *html.Node // div#properties
	info       *html.Node // h6#properties-info
	content    *html.Node // div#properties-content
	element    *dom.W3CNode
	controls   []*Control
	generation int
	changed    func()
}

// New creates an empty panel. changed is called after every change or
// reset of a control; it may be nil.
func New(registry *props.Registry, changed func()) *Panel {
	if registry == nil {
		registry = props.NewRegistry()
	}
	p := &Panel{
		registry: registry,
		root:     dom.NewElement("div"),
		info:     dom.NewElement("h6"),
		content:  dom.NewElement("div"),
		changed:  changed,
	}
	dom.SetAttr(p.root, "id", PanelID)
	dom.SetAttr(p.info, "id", InfoID)
	dom.SetAttr(p.content, "id", ContentID)
	p.root.AppendChild(p.info)
	p.root.AppendChild(p.content)
	return p
}

// OnChange sets the function called after control changes.
func (p *Panel) OnChange(changed func()) {
	p.changed = changed
}

// Registry returns the descriptor registry of the panel.
func (p *Panel) Registry() *props.Registry {
	return p.registry
}

// Render discards the panel content and builds controls for an element.
func (p *Panel) Render(el *dom.W3CNode) {
	p.Clear()
	if el == nil || el.NodeType() != html.ElementNode {
		tracer().Debugf("cannot render properties for %v", el)
		return
	}
	p.element = el
	p.info.AppendChild(dom.NewText(fmt.Sprintf("<%s> %s", el.TagName(), el.DataID())))
	for _, d := range p.registry.For(el.TagName()) {
		c := newControl(p, d, el)
		p.controls = append(p.controls, c)
		p.content.AppendChild(c.property)
	}
	tracer().Debugf("rendered %d properties for %v", len(p.controls), el)
}

// Clear empties the panel.
func (p *Panel) Clear() {
	p.generation++
	p.element = nil
	p.controls = nil
	dom.RemoveChildren(p.content)
	dom.RemoveChildren(p.info)
}

// IsEmpty is true if the panel shows no controls.
func (p *Panel) IsEmpty() bool {
	return len(p.controls) == 0 && p.content.FirstChild == nil
}

// Element returns the element the panel shows properties for, or nil.
func (p *Panel) Element() *dom.W3CNode {
	return p.element
}

// Controls returns the controls of the current render, in order.
func (p *Panel) Controls() []*Control {
	return p.controls
}

// Control returns the control for a property key, or nil.
func (p *Panel) Control(key string) *Control {
	for _, c := range p.controls {
		if c.desc.Key == key {
			return c
		}
	}
	return nil
}

// Info returns the text of the panel's info line, e.g. `<h1> title`.
func (p *Panel) Info() string {
	return dom.TextContent(p.info)
}

// Root returns the panel's DOM.
func (p *Panel) Root() *html.Node {
	return p.root
}

// HTML renders the panel's DOM.
func (p *Panel) HTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, p.root); err != nil {
		tracer().Errorf("cannot render panel: %v", err)
	}
	return buf.String()
}

func (p *Panel) notify() {
	if p.changed != nil {
		p.changed()
	}
}
