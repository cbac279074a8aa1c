package props

import (
	"strings"
)

// Font is a named font stack.
type Font struct {
	Name   string
	Family []string
}

// Fonts is the palette of fonts offered by the font property.
var Fonts = []Font{
	{Name: "inherit", Family: []string{"inherit"}},
	{Name: "monospace", Family: []string{"monospace"}},
	{Name: "serif", Family: []string{"serif"}},
	{Name: "sans-serif", Family: []string{"sans-serif"}},
	{Name: "cursive", Family: []string{"cursive"}},
	{Name: "fantasy", Family: []string{"fantasy"}},
	{Name: "system-ui", Family: []string{"system-ui"}},
	{Name: "Roboto", Family: []string{`"Roboto"`, "sans-serif"}},
	{Name: "Inter", Family: []string{`"Inter"`, "sans-serif"}},
}

// FontNames returns the names of the font palette, in order.
func FontNames() []string {
	names := make([]string, len(Fonts))
	for i, f := range Fonts {
		names[i] = f.Name
	}
	return names
}

// FontByName finds a font of the palette.
func FontByName(name string) (Font, bool) {
	for _, f := range Fonts {
		if f.Name == name {
			return f, true
		}
	}
	return Font{}, false
}

// CSS returns the value of a `font-family` property selecting the font.
func (f Font) CSS() string {
	return strings.Join(f.Family, ", ")
}

// MatchFont maps a computed `font-family` value to the name of the closest
// font of the palette. A font matches if the computed value contains its
// primary family. Of several matches, the one occuring first in the font
// stack wins; at the same position the longer family wins, so that
// "sans-serif" is preferred over "serif". Without a match, "inherit" is
// returned.
func MatchFont(computed string) string {
	computed = strings.ToLower(unquote(computed))
	best, bestPos, bestLen := "inherit", len(computed)+1, 0
	for _, f := range Fonts {
		primary := strings.ToLower(unquote(f.Family[0]))
		pos := strings.Index(computed, primary)
		if pos < 0 {
			continue
		}
		if pos < bestPos || (pos == bestPos && len(primary) > bestLen) {
			best, bestPos, bestLen = f.Name, pos, len(primary)
		}
	}
	return best
}

func unquote(s string) string {
	return strings.NewReplacer(`"`, "", `'`, "").Replace(s)
}
