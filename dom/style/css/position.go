package css

import (
	"strings"

	"github.com/npillmayer/pagedit/dom/style"
)

// position is an enum type for the CSS position property.
type position uint16

// Enum values for type Position
const (
	positionUnset    position = iota
	positionStatic            // CSS static (default)
	positionRelative          // CSS relative
	positionAbsolute          // CSS absolute
	positionFixed             // CSS fixed
	//PositionFloatLeft           // CSS float property
	//PositionFloatRight          // CSS float property
	//PositionSticky              // CSS sticky, currently mapped to relative
)

// PositionT is an option type for CSS positions.
type PositionT struct {
	offsets []PositionOffset
	kind    position
}

type PositionOffset struct {
	Dim DimenT
	Dir PosDir
}

// PosDir is either Top, Right, Bottom or Left.
type PosDir uint8

const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

// NormalizeOffsets normalizes offset properties (Top, Right, Bottom, Left) into
// a 4-way slice, ordered by PDir. Invalid PDir-s are silently dropped.
func NormalizeOffsets(offsets []PositionOffset) []PositionOffset {
	norm := make([]PositionOffset, 4)
	for i := Top; i <= Left; i++ {
		norm[i].Dir = i
	}
	for _, o := range offsets {
		if o.Dir >= Top && o.Dir <= Left {
			norm[int(o.Dir)] = o
		}
	}
	return norm
}

/*
type PositionT
	= Undefined
	| Static
	| Relative top right bottom left
	| Absolute top right bottom left
	| Fixed top right bottom left
*/

// Static creates a CSS position of value `static`.
func Static() PositionT {
	return PositionT{kind: positionStatic}
}

// Relative creates a CSS position of value `relative`, given optional offsets.
// offsets may be provied partially or none at all.
func Relative(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionRelative, offsets: NormalizeOffsets(offsets)}
}

// Absolute creates a CSS position of value `absolute`, given optional offsets.
// offsets may be provied partially or none at all.
func Absolute(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionAbsolute, offsets: NormalizeOffsets(offsets)}
}

// Fixed creates a CSS position of value `fixed`, given optional offsets.
// offsets may be provied partially or none at all.
func Fixed(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionFixed, offsets: NormalizeOffsets(offsets)}
}

var positionMap map[position]string = map[position]string{
	positionStatic:   "static",
	positionRelative: "relative",
	positionAbsolute: "absolute",
	positionFixed:    "fixed",
	//PositionFloatLeft:  "float",
	//PositionFloatRight: "float",
	//PositionSticky:     "sticky",
}

// Position returns an optional position type from a property string.
// It will never return an error, even with illegal input, but instead will then
// return an unset position.
func Position(p style.Property) PositionT {
	p = style.Property(strings.ToLower(strings.TrimSpace(string(p))))
	switch p {
	case style.NullStyle:
		return PositionT{}
	case "static":
		return Static()
	case "relative":
		return Relative(nil)
	case "absolute":
		return Absolute(nil)
	case "fixed":
		return Fixed(nil)
	}
	return PositionT{}
}

// PositionFromStyles reads the position of an element from its style
// properties `position`, `top`, `right`, `bottom` and `left`. Properties
// missing from the lookup are treated as unset.
func PositionFromStyles(lookup func(key string) (style.Property, bool)) PositionT {
	kind, ok := lookup("position")
	if !ok {
		return PositionT{}
	}
	pos := Position(kind)
	if pos.kind == positionUnset || pos.kind == positionStatic {
		return pos
	}
	var offsets []PositionOffset
	for dir, key := range [4]string{"top", "right", "bottom", "left"} {
		if v, ok := lookup(key); ok {
			offsets = append(offsets, PositionOffset{Dim: ParseDimen(v), Dir: PosDir(dir)})
		}
	}
	pos.offsets = NormalizeOffsets(offsets)
	return pos
}

// Offset returns the offset for direction dir. For positions without
// offsets an unset dimension is returned.
func (p PositionT) Offset(dir PosDir) DimenT {
	if int(dir) >= len(p.offsets) {
		return Unset()
	}
	return p.offsets[dir].Dim
}

// AbsoluteAt creates an absolute position with offsets top and left, given
// in CSS pixels.
func AbsoluteAt(top, left float64) PositionT {
	return Absolute([]PositionOffset{
		{Dim: Pixels(top), Dir: Top},
		{Dim: Pixels(left), Dir: Left},
	})
}

// Styles returns the style properties representing p, i.e. `position` and
// every offset which is set. Unset positions result in no properties.
func (p PositionT) Styles() []style.KeyValue {
	if p.kind == positionUnset {
		return nil
	}
	kvs := []style.KeyValue{{Key: "position", Value: style.Property(positionMap[p.kind])}}
	for _, o := range p.offsets {
		if o.Dim.IsUnset() {
			continue
		}
		kvs = append(kvs, style.KeyValue{
			Key:   [4]string{"top", "right", "bottom", "left"}[o.Dir],
			Value: o.Dim.CSSString(),
		})
	}
	return kvs
}

// ---------------------------------------------------------------------------

// Match starts a match on the kind of p. Matching a kind extracts the
// normalized offsets of p:
//
//	var o []css.PositionOffset
//	switch m := p.Match(); m {
//	case m.Absolute(&o):
//		...
//	}
//
// Unset and static positions match none of the kinds.
func (p PositionT) Match() *PMatcher {
	return &PMatcher{pos: p}
}

// PMatcher matches a PositionT by kind.
type PMatcher struct {
	pos PositionT
}

func (m *PMatcher) Absolute(o *[]PositionOffset) *PMatcher {
	return m.kind(positionAbsolute, o)
}

func (m *PMatcher) Relative(o *[]PositionOffset) *PMatcher {
	return m.kind(positionRelative, o)
}

func (m *PMatcher) Fixed(o *[]PositionOffset) *PMatcher {
	return m.kind(positionFixed, o)
}

func (m *PMatcher) kind(k position, o *[]PositionOffset) *PMatcher {
	if m.pos.kind != k {
		return nil
	}
	if o != nil {
		*o = m.pos.offsets
	}
	return m
}
