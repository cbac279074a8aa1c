package page

import (
	"sort"

	"github.com/google/uuid"
)

// RecordType is the discriminator of records.
type RecordType string

// Record types
const (
	ElementRecord RecordType = "element"
	TextRecord    RecordType = "text"
)

// Record is a node of the page record tree. It is either an *Element or a
// *Text; no other implementations exist.
type Record interface {
	Type() RecordType
	isRecord()
}

// Element is a record for an HTML element.
type Element struct {
	Tag        string            // lower-case tag name
	ID         string            // mirrors the `data-id` of the live element
	Attributes map[string]string // attributes except `data-id` and `style`
	Style      map[string]string // inline style declarations
	Children   []Record          // element and text records, in document order
	Content    string            // text content at the last synchronization
	Props      map[string]any    // free-form properties, carried along
}

// Text is a record for a text node.
type Text struct {
	Content string
}

func (*Element) Type() RecordType { return ElementRecord }
func (*Text) Type() RecordType    { return TextRecord }
func (*Element) isRecord()        {}
func (*Text) isRecord()           {}

// NewElement creates an element record with a fresh identifier.
func NewElement(tag string) *Element {
	return &Element{Tag: tag, ID: NewID()}
}

// NewText creates a text record.
func NewText(content string) *Text {
	return &Text{Content: content}
}

// NewID creates a random, collision-resistant identifier (a UUID).
func NewID() string {
	return uuid.NewString()
}

// AttributeKeys returns the attribute keys of an element, sorted.
func (e *Element) AttributeKeys() []string {
	return sortedKeys(e.Attributes)
}

// StyleKeys returns the style property keys of an element, sorted.
func (e *Element) StyleKeys() []string {
	return sortedKeys(e.Style)
}

// Elements returns the element children of e.
func (e *Element) Elements() []*Element {
	var elems []*Element
	for _, ch := range e.Children {
		if el, ok := ch.(*Element); ok {
			elems = append(elems, el)
		}
	}
	return elems
}

// Texts returns the text children of e.
func (e *Element) Texts() []*Text {
	var texts []*Text
	for _, ch := range e.Children {
		if t, ok := ch.(*Text); ok {
			texts = append(texts, t)
		}
	}
	return texts
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
