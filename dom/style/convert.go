package style

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
	"golang.org/x/image/colornames"
)

// Color returns the color value of a property, or nil if p does not denote
// a color. Recognized are hex notations (#rgb, #rgba, #rrggbb, #rrggbbaa),
// functional notations rgb(…) and rgba(…), `transparent` and the SVG/CSS
// named colors.
func (p Property) Color() color.Color {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	switch {
	case s == "" || s == "default" || s == "inherit" || s == "initial":
		return nil
	case s == "transparent":
		return color.NRGBA{}
	case strings.HasPrefix(s, "#"):
		c, ok := parseHexColor(s[1:])
		if !ok {
			return nil
		}
		return c
	case strings.HasPrefix(s, "rgb"):
		c, _, ok := parseRGBFunction(s)
		if !ok {
			return nil
		}
		return c
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBAModel.Convert(c)
	}
	return nil
}

// ColorString serializes a color the way browsers report computed colors:
// `rgb(r, g, b)` for opaque colors, `rgba(r, g, b, a)` otherwise.
// The alpha value is given with at most 3 decimals.
func ColorString(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("rgb(%d, %d, %d)", n.R, n.G, n.B)
	}
	a := strconv.FormatFloat(float64(n.A)/255, 'f', 3, 64)
	a = strings.TrimRight(strings.TrimRight(a, "0"), ".")
	if a == "" {
		a = "0"
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", n.R, n.G, n.B, a)
}

// NormalizeColor converts a color property to functional rgb notation.
// Properties not recognized as a color are returned unchanged.
func NormalizeColor(p Property) Property {
	c := p.Color()
	if c == nil {
		return p
	}
	return Property(ColorString(c))
}

// RGBToHex converts a color in functional notation, `rgb(255, 0, 0)` or
// `rgba(255, 0, 0, 0.5)`, to hex notation, `#ff0000` or `#ff00007f`.
// The alpha channel is mapped to a byte rounding half-down, so 0.5 becomes 0x7f.
//
// Any other input is considered malformed, and RGBToHex will return false.
// Clients are expected to substitute a default.
func RGBToHex(p Property) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	if !strings.HasPrefix(s, "rgb") {
		return "", false
	}
	c, hasAlpha, ok := parseRGBFunction(s)
	if !ok {
		tracer().Debugf("cannot convert malformed color %q", s)
		return "", false
	}
	if hasAlpha {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), true
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), true
}

// parseRGBFunction scans `rgb(…)` or `rgba(…)`, either comma separated or in
// the space separated form with `/` before the alpha value.
func parseRGBFunction(s string) (color.NRGBA, bool, bool) {
	scan := scanner.New(s)
	tok := scan.Next()
	if tok.Type != scanner.TokenFunction {
		return color.NRGBA{}, false, false
	}
	fname := strings.ToLower(tok.Value)
	if fname != "rgb(" && fname != "rgba(" {
		return color.NRGBA{}, false, false
	}
	var comps []*scanner.Token
	closed := false
	for !closed {
		tok = scan.Next()
		switch tok.Type {
		case scanner.TokenEOF, scanner.TokenError:
			return color.NRGBA{}, false, false
		case scanner.TokenS, scanner.TokenComment:
			// skip
		case scanner.TokenNumber, scanner.TokenPercentage:
			comps = append(comps, tok)
		case scanner.TokenChar:
			switch tok.Value {
			case ",", "/":
			case ")":
				closed = true
			default:
				return color.NRGBA{}, false, false
			}
		default:
			return color.NRGBA{}, false, false
		}
	}
	if len(comps) != 3 && len(comps) != 4 {
		return color.NRGBA{}, false, false
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, ok := channel(comps[i])
		if !ok {
			return color.NRGBA{}, false, false
		}
		rgb[i] = v
	}
	c := color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
	if len(comps) == 3 {
		return c, false, true
	}
	a, ok := alpha(comps[3])
	if !ok {
		return color.NRGBA{}, false, false
	}
	c.A = a
	return c, true, true
}

func channel(tok *scanner.Token) (uint8, bool) {
	if tok.Type == scanner.TokenPercentage {
		x, err := strconv.ParseFloat(strings.TrimSuffix(tok.Value, "%"), 64)
		if err != nil {
			return 0, false
		}
		return clampByte(x * 255 / 100), true
	}
	x, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		return 0, false
	}
	return clampByte(x), true
}

func alpha(tok *scanner.Token) (uint8, bool) {
	v := tok.Value
	scale := 1.0
	if tok.Type == scanner.TokenPercentage {
		v = strings.TrimSuffix(v, "%")
		scale = 100
	}
	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	x = math.Max(0, math.Min(1, x/scale))
	return uint8(math.Ceil(x*255 - 0.5)), true
}

func clampByte(x float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(x))))
}

func parseHexColor(h string) (color.NRGBA, bool) {
	expand := func(s string) string {
		var b strings.Builder
		for _, r := range s {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return b.String()
	}
	switch len(h) {
	case 3, 4:
		h = expand(h)
	case 6, 8:
	default:
		return color.NRGBA{}, false
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, true
}
