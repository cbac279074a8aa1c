package cssom

import (
	"errors"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/pagedit/dom/style"
	"github.com/npillmayer/pagedit/dom/style/css"
	"golang.org/x/net/html"
)

// ErrInlineSheet is returned when a stylesheet is added with origin Inline.
// Inline styles are read from `style` attributes directly.
var ErrInlineSheet = errors.New("stylesheets cannot have inline origin")

// CSSOM is the "CSS Object Model", similar to the DOM for HTML.
// Our CSSOM consists of a set of stylesheets, each relevant for the whole
// document. Use AddStyleSheet to add rules, then ComputeStyles to get the
// styles of an element.
//
// The zero value is not usable, call NewCSSOM.
type CSSOM struct {
	defaults *style.PropertyMap
	rules    []compiledRule
}

type compiledRule struct {
	selectors cascadia.SelectorGroup
	rule      Rule
	source    PropertySource
}

// NewCSSOM creates an empty CSSOM.
// Clients are allowed to supply a map of additional/custom CSS property values.
// These may override values of the default ("user-agent") style sheet,
// or introduce completely new styling properties.
func NewCSSOM(additionalProperties []style.KeyValue) *CSSOM {
	return &CSSOM{
		defaults: style.InitializeDefaultPropertyValues(additionalProperties),
	}
}

// AddStyleSheet adds the rules of a stylesheet, given its origin. Rules are
// appended in source order; rules with selectors we cannot match are
// skipped.
func (cssom *CSSOM) AddStyleSheet(sheet StyleSheet, source PropertySource) error {
	if source == Inline {
		return ErrInlineSheet
	}
	if sheet == nil || sheet.Empty() {
		return nil
	}
	for _, r := range sheet.Rules() {
		sel, err := cascadia.ParseGroup(r.Selector())
		if err != nil {
			tracer().Debugf("skipping rule with unsupported selector %q: %v", r.Selector(), err)
			continue
		}
		cssom.rules = append(cssom.rules, compiledRule{
			selectors: sel,
			rule:      r,
			source:    source,
		})
	}
	return nil
}

// RuleCount returns the number of rules taking part in the cascade.
func (cssom *CSSOM) RuleCount() int {
	return len(cssom.rules)
}

// ComputeStyles returns the computed styles for an element, i.e. a value for
// every property in style.ComputedKeys plus every other property set for
// the element. Text nodes get the styles of their parent element.
//
// Styles of ancestors are computed on the way, as inherited properties
// depend on them.
func (cssom *CSSOM) ComputeStyles(h *html.Node) *style.PropertyMap {
	for h != nil && h.Type != html.ElementNode {
		h = h.Parent
	}
	if h == nil {
		return nil
	}
	var chain []*html.Node
	for n := h; n != nil && n.Type == html.ElementNode; n = n.Parent {
		chain = append(chain, n)
	}
	var pmap *style.PropertyMap
	for i := len(chain) - 1; i >= 0; i-- {
		pmap = cssom.computeFor(chain[i], pmap)
	}
	return pmap
}

// GetPropertyValue returns the computed value of a single property.
func (cssom *CSSOM) GetPropertyValue(h *html.Node, key string) style.Property {
	p, _ := cssom.ComputeStyles(h).Property(key)
	return p
}

func (cssom *CSSOM) computeFor(n *html.Node, parent *style.PropertyMap) *style.PropertyMap {
	declared := cssom.cascade(n)
	pmap := style.NewPropertyMap()
	for key, value := range declared {
		pmap.Add(key, value)
	}
	for _, key := range style.ComputedKeys {
		pmap.Add(key, cssom.resolve(n, key, declared[key], parent))
	}
	return pmap
}

// resolve finds the computed value of a property from its cascaded value.
func (cssom *CSSOM) resolve(n *html.Node, key string, v style.Property, parent *style.PropertyMap) style.Property {
	inherit := func() (style.Property, bool) {
		if parent == nil {
			return style.NullStyle, false
		}
		return parent.Property(key)
	}
	switch {
	case v.IsInherit() || (v == "unset" && style.IsCascading(key)):
		if p, ok := inherit(); ok {
			return p
		}
		v = style.NullStyle
	case v.IsEmpty() && style.IsCascading(key):
		if p, ok := inherit(); ok {
			return p
		}
	case v.IsInitial() || v == "unset":
		v = style.NullStyle
	}
	if v.IsEmpty() {
		v = cssom.initial(n, key)
	}
	switch {
	case style.IsColorProperty(key):
		return style.NormalizeColor(v)
	case key == "font-size":
		return resolveFontSize(v, parent)
	}
	return v
}

func (cssom *CSSOM) initial(n *html.Node, key string) style.Property {
	if key == "display" {
		return style.DisplayPropertyForHTMLNode(n)
	}
	if p, ok := cssom.defaults.Property(key); ok {
		return p
	}
	return style.GetUserAgentDefaultProperty(n, key)
}

var fontSizeKeywords = map[string]style.Property{
	"xx-small": "9px",
	"x-small":  "10px",
	"small":    "13px",
	"medium":   "16px",
	"large":    "18px",
	"x-large":  "24px",
	"xx-large": "32px",
}

func resolveFontSize(v style.Property, parent *style.PropertyMap) style.Property {
	if p, ok := fontSizeKeywords[strings.ToLower(v.String())]; ok {
		return p
	}
	base := css.BaseFontSize
	if parent != nil {
		if p, ok := parent.Property("font-size"); ok {
			base = css.ParseDimen(p).InPixels(base)
		}
	}
	d := css.ParseDimen(v)
	if d.IsUnset() {
		return v
	}
	return d.ResolveFontSize(base).CSSString()
}

// --- Cascade ---------------------------------------------------------------

type declaration struct {
	key       string
	value     style.Property
	important bool
	source    PropertySource
	spec      cascadia.Specificity
	order     int
}

// outranks is true if declaration d takes precedence over other.
func (d declaration) outranks(other declaration) bool {
	if d.important != other.important {
		return d.important
	}
	if d.source != other.source {
		return d.source > other.source
	}
	if d.spec != other.spec {
		return other.spec.Less(d.spec)
	}
	return d.order > other.order
}

// cascade collects the declarations of all rules matching n, plus the
// element's inline style, and returns the winning value per property.
func (cssom *CSSOM) cascade(n *html.Node) map[string]style.Property {
	var decls []declaration
	order := 0
	add := func(key string, value style.Property, important bool, src PropertySource, spec cascadia.Specificity) {
		key = strings.ToLower(strings.TrimSpace(key))
		for _, kv := range expand(key, value) {
			decls = append(decls, declaration{
				key:       kv.Key,
				value:     kv.Value,
				important: important,
				source:    src,
				spec:      spec,
				order:     order,
			})
		}
		order++
	}
	for _, r := range cssom.rules {
		spec, ok := r.match(n)
		if !ok {
			continue
		}
		for _, key := range r.rule.Properties() {
			add(key, r.rule.Value(key), r.rule.IsImportant(key), r.source, spec)
		}
	}
	for _, kv := range style.ParseDeclarations(attr(n, "style")) {
		add(kv.Key, kv.Value, false, Inline, cascadia.Specificity{})
	}
	sort.SliceStable(decls, func(i, j int) bool {
		return decls[j].outranks(decls[i])
	})
	declared := make(map[string]style.Property, len(decls))
	for _, d := range decls {
		declared[d.key] = d.value
	}
	return declared
}

// match returns the highest specificity of the rule's selectors matching n.
func (r compiledRule) match(n *html.Node) (cascadia.Specificity, bool) {
	var spec cascadia.Specificity
	matched := false
	for _, sel := range r.selectors {
		if sel.PseudoElement() != "" || !sel.Match(n) {
			continue
		}
		if s := sel.Specificity(); !matched || spec.Less(s) {
			spec = s
		}
		matched = true
	}
	return spec, matched
}

// expand adds the individual properties of shorthands. The shorthand itself
// is kept, as it is reported by computed styles as well.
func expand(key string, value style.Property) []style.KeyValue {
	kvs := []style.KeyValue{{Key: key, Value: value}}
	switch {
	case style.IsCompoundProperty(key):
		parts, err := style.SplitCompoundProperty(key, value)
		if err != nil {
			tracer().Debugf("cannot split %s: %v", key, err)
			return kvs
		}
		kvs = append(kvs, parts...)
	case key == "background":
		// only the color part of the shorthand is of interest
		if value.Color() != nil {
			return append(kvs, style.KeyValue{Key: "background-color", Value: value})
		}
		for _, f := range strings.Fields(value.String()) {
			if style.Property(f).Color() != nil {
				kvs = append(kvs, style.KeyValue{Key: "background-color", Value: style.Property(f)})
				break
			}
		}
	}
	return kvs
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
