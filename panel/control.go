package panel

import (
	"strings"

	"github.com/npillmayer/pagedit/dom"
	"github.com/npillmayer/pagedit/props"
	"golang.org/x/net/html"
)

// ColorPickerTag is the custom element used for color controls.
const ColorPickerTag = "hex-alpha-color-picker"

// Control is the editing control for one property of an element.
type Control struct {
	panel      *Panel
	generation int
	desc       props.Descriptor
	element    *dom.W3CNode
	property   *html.Node // div.property wrapping label, input and reset button
	input      *html.Node
	value      props.Value
}

func newControl(p *Panel, d props.Descriptor, el *dom.W3CNode) *Control {
	c := &Control{
		panel:      p,
		generation: p.generation,
		desc:       d,
		element:    el,
	}
	c.property = element("div", "class", "property mb-3")
	label := element("label", "for", c.ID())
	label.AppendChild(dom.NewText(d.Label))
	c.property.AppendChild(label)
	row := element("div", "class", "d-flex align-items-stretch flex-row justify-content-between")
	c.input = c.makeInput()
	dom.SetAttr(c.input, "id", c.ID())
	row.AppendChild(c.input)
	reset := element("button", "class", "btn btn-danger ms-2", "type", "button", "title", "Reset")
	reset.AppendChild(dom.NewText("↺"))
	row.AppendChild(reset)
	c.property.AppendChild(row)
	c.seed()
	return c
}

// makeInput creates the input element for the descriptor's kind.
func (c *Control) makeInput() *html.Node {
	switch c.desc.Kind {
	case props.ColorKind:
		return element(ColorPickerTag)
	case props.NumberKind:
		return element("input", "class", "form-control", "type", "number")
	case props.TextKind:
		return element("input", "class", "form-control", "type", "text")
	case props.FontKind:
		sel := element("select", "class", "form-select")
		for _, name := range c.desc.Options {
			opt := element("option", "value", name)
			if f, ok := props.FontByName(name); ok {
				dom.SetAttr(opt, "style", "font-family: "+f.CSS()+";")
			}
			opt.AppendChild(dom.NewText(name))
			sel.AppendChild(opt)
		}
		return sel
	case props.SelectKind:
		sel := element("select", "class", "form-select")
		for _, o := range c.desc.Options {
			opt := element("option", "value", o)
			opt.AppendChild(dom.NewText(o))
			sel.AppendChild(opt)
		}
		return sel
	}
	tracer().Errorf("no control for property kind %s", c.desc.Kind)
	return element("input", "type", "hidden")
}

// seed reads the property and shows the value in the input.
func (c *Control) seed() {
	c.value = c.desc.Read(c.element)
	c.show(c.value)
}

func (c *Control) show(v props.Value) {
	var s string
	switch m := v.Match(); m {
	case m.Color(&s):
		dom.SetAttr(c.input, "color", s)
	case m.Number(nil), m.Text(nil):
		dom.SetAttr(c.input, "value", v.String())
	case m.Option(&s):
		for opt := c.input.FirstChild; opt != nil; opt = opt.NextSibling {
			if v, _ := dom.GetAttr(opt, "value"); v == s {
				dom.SetAttr(opt, "selected", "")
			} else {
				dom.RemoveAttr(opt, "selected")
			}
		}
	}
}

// ID is the id of the control's input: property key + data-id of the
// element.
func (c *Control) ID() string {
	return c.desc.Key + c.element.DataID()
}

// Descriptor returns the property descriptor of the control.
func (c *Control) Descriptor() props.Descriptor {
	return c.desc
}

// Value returns the value the control shows.
func (c *Control) Value() props.Value {
	return c.value
}

// Input returns the input element of the control.
func (c *Control) Input() *html.Node {
	return c.input
}

// Change handles new input for the control: raw is parsed according to
// the property kind and written to the element, then a document-changed
// notification is raised. Invalid input leaves the element untouched.
func (c *Control) Change(raw string) error {
	if err := c.checkLive(); err != nil {
		return err
	}
	v, err := props.ParseValue(c.desc.Kind, raw)
	if err != nil {
		return err
	}
	if err := c.desc.Write(c.element, v); err != nil {
		return err
	}
	c.value = v
	c.show(v)
	tracer().Debugf("%s of %v changed to %s", c.desc.Key, c.element, v)
	c.panel.notify()
	return nil
}

// Reset resets the property of the element to its default, re-seeds the
// control from the element and raises a document-changed notification.
func (c *Control) Reset() error {
	if err := c.checkLive(); err != nil {
		return err
	}
	c.desc.Reset(c.element)
	c.seed()
	c.panel.notify()
	return nil
}

func (c *Control) checkLive() error {
	if c.generation != c.panel.generation {
		return ErrStaleControl
	}
	return nil
}

func element(tag string, attrs ...string) *html.Node {
	h := dom.NewElement(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		dom.SetAttr(h, attrs[i], attrs[i+1])
	}
	return h
}

// String is for debugging.
func (c *Control) String() string {
	var b strings.Builder
	b.WriteString(c.desc.Kind.String())
	b.WriteString(" control ")
	b.WriteString(c.ID())
	b.WriteString(" = ")
	b.WriteString(c.value.String())
	return b.String()
}
