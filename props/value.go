package props

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotANumber is flagged for input of number controls which does not parse.
var ErrNotANumber = errors.New("not a number")

// Kind is the semantic kind of a property.
type Kind uint8

// Property kinds
const (
	ColorKind  Kind = iota // hex color, optionally with alpha
	NumberKind             // number, in the descriptor's unit
	TextKind               // free text
	FontKind               // name of a font from the font palette
	SelectKind             // one of a list of options
)

func (k Kind) String() string {
	switch k {
	case ColorKind:
		return "color"
	case NumberKind:
		return "number"
	case TextKind:
		return "text"
	case FontKind:
		return "font"
	case SelectKind:
		return "select"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is the value of a property.
type Value struct {
	kind   Kind
	text   string
	number float64
}

/*
type Value
	= Color hex
	| Number float
	| Text string
	| Option string   (font and select kinds)
*/

// Color creates a color value from a hex color string.
func Color(hex string) Value {
	return Value{kind: ColorKind, text: hex}
}

// Number creates a numeric value.
func Number(x float64) Value {
	return Value{kind: NumberKind, number: x}
}

// Text creates a text value.
func Text(s string) Value {
	return Value{kind: TextKind, text: s}
}

// Option creates a value for font or select properties.
func Option(kind Kind, s string) Value {
	if kind != FontKind {
		kind = SelectKind
	}
	return Value{kind: kind, text: s}
}

// Kind returns the kind of a value.
func (v Value) Kind() Kind {
	return v.kind
}

// String returns the value as shown in a control.
func (v Value) String() string {
	if v.kind == NumberKind {
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	}
	return v.text
}

// ParseValue interprets raw control input for a property kind.
func ParseValue(kind Kind, raw string) (Value, error) {
	raw = strings.TrimSpace(raw)
	switch kind {
	case NumberKind:
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrNotANumber, raw)
		}
		return Number(x), nil
	case ColorKind:
		return Color(raw), nil
	case TextKind:
		return Text(raw), nil
	}
	return Option(kind, raw), nil
}

// ---------------------------------------------------------------------------

func (v Value) Match() *Matcher {
	return &Matcher{value: v}
}

type Matcher struct {
	value Value
}

func (m *Matcher) IsKind(k Kind) *Matcher {
	if m.value.kind == k {
		return m
	}
	return nil
}

func (m *Matcher) Color(hex *string) *Matcher {
	if m.value.kind == ColorKind {
		if hex != nil {
			*hex = m.value.text
		}
		return m
	}
	return nil
}

func (m *Matcher) Number(x *float64) *Matcher {
	if m.value.kind == NumberKind {
		if x != nil {
			*x = m.value.number
		}
		return m
	}
	return nil
}

func (m *Matcher) Text(s *string) *Matcher {
	if m.value.kind == TextKind {
		if s != nil {
			*s = m.value.text
		}
		return m
	}
	return nil
}

// Option matches values of font and select properties.
func (m *Matcher) Option(s *string) *Matcher {
	if m.value.kind == FontKind || m.value.kind == SelectKind {
		if s != nil {
			*s = m.value.text
		}
		return m
	}
	return nil
}
