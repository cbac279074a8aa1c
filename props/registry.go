package props

import (
	"sort"
	"strings"
)

// Registry holds the property descriptors: a base set applicable to all
// elements, and per-tag overlays.
type Registry struct {
	base     []Descriptor
	overlays map[string][]Descriptor
}

// NewRegistry creates a registry with the default descriptors.
//
// Base set: background color, text color, font size, font family.
// Overlays: border radius, source and alt text for images, link target
// and target window for links.
func NewRegistry() *Registry {
	r := &Registry{overlays: make(map[string][]Descriptor)}
	r.Register("",
		ColorStyle("background-color", "Background Color"),
		ColorStyle("color", "Text Color"),
		NumberStyle("font-size", "Font Size", "px", 16),
		FontStyle("Font"),
	)
	r.Register("img",
		NumberStyle("border-radius", "Border Radius", "px", 0),
		Attribute("src", "Image Source"),
		Attribute("alt", "Image Alt"),
	)
	r.Register("a",
		Attribute("href", "Link Target"),
		SelectAttribute("target", "Open In", "_self", "_blank", "_parent", "_top"),
	)
	return r
}

// Register adds descriptors for a tag. An empty tag adds to the base set.
// A descriptor with the key of an already registered one replaces it.
func (r *Registry) Register(tag string, descriptors ...Descriptor) {
	tag = strings.ToLower(tag)
	if tag == "" {
		r.base = merge(r.base, descriptors)
		return
	}
	r.overlays[tag] = merge(r.overlays[tag], descriptors)
}

// For returns the descriptors applicable to elements of a tag: the base set
// in order, then the tag's overlay. Overlay descriptors with a key of the
// base set replace the base descriptor in place.
func (r *Registry) For(tag string) []Descriptor {
	return merge(r.base, r.overlays[strings.ToLower(tag)])
}

// Lookup finds the descriptor for a property key applicable to a tag.
func (r *Registry) Lookup(tag, key string) (Descriptor, bool) {
	for _, d := range r.For(tag) {
		if d.Key == key {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Tags returns the tags with overlays, sorted.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.overlays))
	for t := range r.overlays {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

func merge(base, overlay []Descriptor) []Descriptor {
	merged := make([]Descriptor, len(base), len(base)+len(overlay))
	copy(merged, base)
	for _, d := range overlay {
		replaced := false
		for i := range merged {
			if merged[i].Key == d.Key {
				merged[i] = d
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, d)
		}
	}
	return merged
}
