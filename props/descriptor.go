package props

import (
	"errors"
	"fmt"

	"github.com/npillmayer/pagedit/dom/style"
	"github.com/npillmayer/pagedit/dom/style/css"
	"github.com/npillmayer/pagedit/dom/w3cdom"
)

// Errors flagged when writing property values.
var (
	ErrKindMismatch  = errors.New("value kind does not match property kind")
	ErrUnknownOption = errors.New("value is not an option of the property")
	ErrInvalidColor  = errors.New("value is not a color")
)

// ColorFallback is the value of color properties which cannot be read.
const ColorFallback = "#000"

// Reader reads the current value of a property from an element.
type Reader func(el w3cdom.Element) Value

// Writer writes a value of a property to an element.
type Writer func(el w3cdom.Element, v Value)

// Resetter resets a property of an element to its default.
type Resetter func(el w3cdom.Element)

// Descriptor describes an editable property of elements.
type Descriptor struct {
	Key     string   // property name or attribute key
	Label   string   // human readable name
	Kind    Kind     // semantic kind
	Unit    string   // unit suffix for numbers, e.g. "px"
	Options []string // options for font and select properties
	Default Value    // value of the property if it cannot be read
	read    Reader
	write   Writer
	reset   Resetter
}

// Read returns the current value of the property for an element. For
// descriptors without a reader, the constant default is returned.
func (d Descriptor) Read(el w3cdom.Element) Value {
	if d.read == nil || el == nil {
		return d.Default
	}
	return d.read(el)
}

// Write sets a new value of the property for an element.
func (d Descriptor) Write(el w3cdom.Element, v Value) error {
	if v.Kind() != d.Kind {
		return fmt.Errorf("%w: %s is %s, not %s", ErrKindMismatch, d.Key, d.Kind, v.Kind())
	}
	switch d.Kind {
	case FontKind, SelectKind:
		if !d.hasOption(v.String()) {
			return fmt.Errorf("%w: %s=%q", ErrUnknownOption, d.Key, v.String())
		}
	case ColorKind:
		if style.Property(v.String()).Color() == nil {
			return fmt.Errorf("%w: %q", ErrInvalidColor, v.String())
		}
	}
	if d.write != nil {
		d.write(el, v)
	}
	return nil
}

// Reset resets the property of an element to its default.
func (d Descriptor) Reset(el w3cdom.Element) {
	if d.reset != nil {
		d.reset(el)
	}
}

func (d Descriptor) hasOption(opt string) bool {
	for _, o := range d.Options {
		if o == opt {
			return true
		}
	}
	return false
}

// --- Descriptor constructors -----------------------------------------------

// ColorStyle creates a descriptor for a color style property. The value is
// read from the computed styles and converted to hex notation.
func ColorStyle(key, label string) Descriptor {
	d := Descriptor{
		Key:     key,
		Label:   label,
		Kind:    ColorKind,
		Default: Color(ColorFallback),
		read: func(el w3cdom.Element) Value {
			p := el.ComputedStyles().GetPropertyValue(key)
			hex, ok := style.RGBToHex(p)
			if !ok {
				tracer().Debugf("cannot read %s=%q, falling back to %s", key, p, ColorFallback)
				return Color(ColorFallback)
			}
			return Color(hex)
		},
	}
	d.write, d.reset = changesStyle(key, "")
	return d
}

// NumberStyle creates a descriptor for a numeric style property. The value
// is read from the computed styles; `em` and `rem` are converted to pixels
// with a base of 16. Values in other units read as the default.
func NumberStyle(key, label, unit string, dflt float64) Descriptor {
	d := Descriptor{
		Key:     key,
		Label:   label,
		Kind:    NumberKind,
		Unit:    unit,
		Default: Number(dflt),
		read: func(el w3cdom.Element) Value {
			p := el.ComputedStyles().GetPropertyValue(key)
			return Number(css.ParseDimen(p).InPixels(dflt))
		},
	}
	d.write, d.reset = changesStyle(key, unit)
	return d
}

// FontStyle creates the descriptor for `font-family`, offering the font
// palette. Reset sets the font family to `inherit`.
func FontStyle(label string) Descriptor {
	const key = "font-family"
	return Descriptor{
		Key:     key,
		Label:   label,
		Kind:    FontKind,
		Options: FontNames(),
		Default: Option(FontKind, "inherit"),
		read: func(el w3cdom.Element) Value {
			if el.Style().GetPropertyValue(key) == "inherit" {
				return Option(FontKind, "inherit")
			}
			p := el.ComputedStyles().GetPropertyValue(key)
			return Option(FontKind, MatchFont(p.String()))
		},
		write: func(el w3cdom.Element, v Value) {
			if f, ok := FontByName(v.String()); ok {
				el.Style().SetProperty(key, style.Property(f.CSS()))
			}
		},
		reset: func(el w3cdom.Element) {
			el.Style().SetProperty(key, "inherit")
		},
	}
}

// Attribute creates a descriptor for a text attribute. Reset removes the
// attribute.
func Attribute(key, label string) Descriptor {
	d := Descriptor{
		Key:     key,
		Label:   label,
		Kind:    TextKind,
		Default: Text(""),
		read: func(el w3cdom.Element) Value {
			return Text(el.GetAttribute(key))
		},
	}
	d.write, d.reset = changesAttr(key)
	return d
}

// SelectAttribute creates a descriptor for an attribute with a fixed set of
// options. It reads as the first option if the attribute is not set.
func SelectAttribute(key, label string, options ...string) Descriptor {
	d := Descriptor{
		Key:     key,
		Label:   label,
		Kind:    SelectKind,
		Options: options,
	}
	if len(options) > 0 {
		d.Default = Option(SelectKind, options[0])
	}
	d.read = func(el w3cdom.Element) Value {
		v := el.GetAttribute(key)
		if !d.hasOption(v) {
			return d.Default
		}
		return Option(SelectKind, v)
	}
	d.write, d.reset = changesAttr(key)
	return d
}

// changesStyle returns a writer setting inline style property key with a
// unit suffix, and a resetter removing it.
func changesStyle(key, unit string) (Writer, Resetter) {
	write := func(el w3cdom.Element, v Value) {
		el.Style().SetProperty(key, style.Property(v.String()+unit))
	}
	reset := func(el w3cdom.Element) {
		el.Style().RemoveProperty(key)
	}
	return write, reset
}

// changesAttr returns a writer setting attribute key, and a resetter
// removing it if present.
func changesAttr(key string) (Writer, Resetter) {
	write := func(el w3cdom.Element, v Value) {
		el.SetAttribute(key, v.String())
	}
	reset := func(el w3cdom.Element) {
		if el.HasAttribute(key) {
			el.RemoveAttribute(key)
		}
	}
	return write, reset
}
