package css

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/pagedit/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
	. "github.com/npillmayer/tyse/core/percent"
)

// PX is one CSS reference pixel, i.e. 1/96 inch or 3/4 of a point.
const PX = dimen.PT * 3 / 4

// BaseFontSize is the size in pixels font-relative units are resolved against.
const BaseFontSize = 16.0

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent Percent
	factor  float64 // for relative units

	flags   uint32
}

/*
type DimenT
	= Unset
	| Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
	| FontRel factor
	| ViewRel factor
*/

// Unset creates an unset dimension. Unset dimensions result from parsing
// input which is not understood.
func Unset() DimenT {
	return DimenT{flags: dimenNone}
}

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Pixels creates a CSS dimension with a fixed value of x pixels.
func Pixels(x float64) DimenT {
	return JustDimen(dimen.DU(math.Round(x * float64(PX))))
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

func percentage(x float64) DimenT {
	return DimenT{percent: FromInt(int(math.Round(x))), factor: x, flags: dimenPercent}
}

// FontRelative creates a dimension relative to the font size, i.e. `em`,
// or relative to the root font size (`rem`) if root is set.
func FontRelative(factor float64, root bool) DimenT {
	if root {
		return DimenT{factor: factor, flags: dimenREM}
	}
	return DimenT{factor: factor, flags: dimenEM}
}

// ViewRelative creates a dimension relative to the viewport width (`vw`) or
// height (`vh`).
func ViewRelative(factor float64, height bool) DimenT {
	if height {
		return DimenT{factor: factor, flags: dimenVH}
	}
	return DimenT{factor: factor, flags: dimenVW}
}

// IsUnset returns true if d is unset.
func (d DimenT) IsUnset() bool {
	return d.flags == dimenNone
}

// ParseDimen parses a CSS length property. Recognized are pixel values
// (`24px`, unitless `0`), font-relative values (`1.5em`, `2rem`),
// viewport-relative values, percentages and the keywords auto, inherit and
// initial. Anything else results in an unset dimension; parsing never fails.
//
// Compound values (e.g., a border-radius of `4px 8px`) are parsed from their
// first component.
func ParseDimen(p style.Property) DimenT {
	fields := strings.Fields(strings.ToLower(p.String()))
	if len(fields) == 0 {
		return Unset()
	}
	s := fields[0]
	switch s {
	case "auto":
		return Auto()
	case "inherit":
		return Inherit()
	case "initial":
		return Initial()
	case "0":
		return JustDimen(0)
	}
	num, unit := splitUnit(s)
	x, err := strconv.ParseFloat(num, 64)
	if err != nil {
		tracer().Debugf("cannot parse dimension %q", s)
		return Unset()
	}
	switch unit {
	case "px":
		return Pixels(x)
	case "em":
		return FontRelative(x, false)
	case "rem":
		return FontRelative(x, true)
	case "vw":
		return ViewRelative(x, false)
	case "vh":
		return ViewRelative(x, true)
	case "%":
		return percentage(x)
	}
	tracer().Debugf("unit %q of dimension %q not supported", unit, s)
	return Unset()
}

func splitUnit(s string) (string, string) {
	i := len(s)
	for i > 0 && !isNumeric(s[i-1]) {
		i--
	}
	return s[:i], s[i:]
}

func isNumeric(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.'
}

// InPixels converts d to CSS pixels. Font-relative dimensions are resolved
// against BaseFontSize. Dimensions of any other kind (percentages, viewport
// units, keywords, unset) cannot be resolved without layout information
// and yield fallback.
func (d DimenT) InPixels(fallback float64) float64 {
	var du dimen.DU
	var f float64
	switch m := d.Match(); m {
	case m.Just(&du):
		return round3(float64(du) / float64(PX))
	case m.FontRelative(&f):
		return round3(f * BaseFontSize)
	}
	return fallback
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// ResolveFontSize resolves d as the value of a `font-size` property to a
// pixel dimension: `em` and percentages are taken relative to the parent's
// font size, `rem` relative to BaseFontSize. Other dimensions are returned
// unchanged.
func (d DimenT) ResolveFontSize(parent float64) DimenT {
	switch d.flags & relativeMask {
	case dimenEM:
		return Pixels(d.factor * parent)
	case dimenREM:
		return Pixels(d.factor * BaseFontSize)
	case dimenPercent:
		return Pixels(d.factor * parent / 100)
	}
	return d
}

// CSSString serializes d as a CSS value, e.g. `24px` or `1.5em`.
// Unset dimensions result in NullStyle.
func (d DimenT) CSSString() style.Property {
	num := func(x float64, unit string) style.Property {
		return style.Property(strconv.FormatFloat(round3(x), 'f', -1, 64) + unit)
	}
	switch d.flags & kindMask {
	case dimenAbsolute:
		return num(float64(d.d)/float64(PX), "px")
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	}
	switch d.flags & relativeMask {
	case dimenEM:
		return num(d.factor, "em")
	case dimenREM:
		return num(d.factor, "rem")
	case dimenVW:
		return num(d.factor, "vw")
	case dimenVH:
		return num(d.factor, "vh")
	case dimenPercent:
		return num(d.factor, "%")
	}
	return style.NullStyle
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case m.dimen.flags == dimenNone && d.flags == dimenNone:
		return m
	case m.dimen.flags&kindMask != 0 && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&relativeMask == dimenPercent) != (d.flags&relativeMask == dimenPercent) {
			return nil
		}
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *Percent) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// FontRelative matches `em` and `rem` dimensions.
func (m *Matcher) FontRelative(factor *float64) *Matcher {
	rel := m.dimen.flags & relativeMask
	if rel == dimenEM || rel == dimenREM {
		if factor != nil {
			*factor = m.dimen.factor
		}
		return m
	}
	return nil
}
