package dom

import (
	"strings"

	"github.com/npillmayer/pagedit/dom/style"
	"github.com/npillmayer/pagedit/dom/w3cdom"
	"golang.org/x/net/html"
)

// InlineStyle gives access to the `style` attribute of an element as an
// ordered list of declarations. Every change is written back to the
// attribute immediately; an element without declarations loses its
// `style` attribute.
type InlineStyle struct {
	h *html.Node
}

var _ w3cdom.CSSStyleDeclaration = InlineStyle{}

// InlineStyleOf returns the inline style of an HTML element.
func InlineStyleOf(h *html.Node) InlineStyle {
	return InlineStyle{h: h}
}

// Declarations returns the inline declarations in order.
func (s InlineStyle) Declarations() []style.KeyValue {
	v, _ := GetAttr(s.h, "style")
	return style.ParseDeclarations(v)
}

func (s InlineStyle) GetPropertyValue(key string) style.Property {
	key = strings.ToLower(key)
	for _, kv := range s.Declarations() {
		if kv.Key == key {
			return kv.Value
		}
	}
	return style.NullStyle
}

// SetProperty sets an inline declaration. An existing declaration keeps its
// position, new ones are appended. Setting an empty value removes the
// declaration.
func (s InlineStyle) SetProperty(key string, value style.Property) {
	if s.h == nil {
		return
	}
	key = strings.ToLower(strings.TrimSpace(key))
	value = style.Property(strings.TrimSpace(value.String()))
	if value.IsEmpty() {
		s.RemoveProperty(key)
		return
	}
	decls := s.Declarations()
	found := false
	for i := range decls {
		if decls[i].Key == key {
			decls[i].Value = value
			found = true
		}
	}
	if !found {
		decls = append(decls, style.KeyValue{Key: key, Value: value})
	}
	s.write(decls)
}

// RemoveProperty removes an inline declaration, if present.
func (s InlineStyle) RemoveProperty(key string) {
	if s.h == nil {
		return
	}
	key = strings.ToLower(key)
	decls := s.Declarations()
	kept := decls[:0]
	for _, kv := range decls {
		if kv.Key != key {
			kept = append(kept, kv)
		}
	}
	if len(kept) != len(decls) {
		s.write(kept)
	}
}

func (s InlineStyle) Length() int {
	return len(s.Declarations())
}

func (s InlineStyle) Item(i int) style.KeyValue {
	decls := s.Declarations()
	if i < 0 || i >= len(decls) {
		return style.KeyValue{}
	}
	return decls[i]
}

func (s InlineStyle) write(decls []style.KeyValue) {
	if len(decls) == 0 {
		RemoveAttr(s.h, "style")
		return
	}
	SetAttr(s.h, "style", style.FormatDeclarations(decls))
}
