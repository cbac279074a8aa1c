package style

import (
	"golang.org/x/net/html"
)

// Initial values of the properties a computed style is resolved for.
// Values are given in the form a browser reports them from
// getComputedStyle, i.e. colors in functional rgb notation.
var initialValues = map[string]Property{
	"background-color": "rgba(0, 0, 0, 0)",
	"color":            "rgb(0, 0, 0)",
	"font-size":        "16px",
	"font-family":      `"Times New Roman"`,
	"font-weight":      "400",
	"font-style":       "normal",
	"text-align":       "start",
	"border-radius":    "0px",
	"position":         "static",
	"top":              "auto",
	"left":             "auto",
	"width":            "auto",
	"height":           "auto",
}

// GetUserAgentDefaultProperty returns the user-agent default property for a given key.
// Unknown keys will result in NullStyle.
func GetUserAgentDefaultProperty(node *html.Node, key string) Property {
	if key == "display" {
		return DisplayPropertyForHTMLNode(node)
	}
	if p, ok := initialValues[key]; ok {
		return p
	}
	return NullStyle
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "script", "style", "template":
		return "none"
	case "html", "aside", "body", "div", "h1", "h2", "h3",
		"h4", "h5", "h6", "ol", "section", "ul", "p", "pre",
		"header", "footer", "main", "nav", "article", "form",
		"blockquote", "figure", "hr":
		return "block"
	case "li":
		return "list-item"
	case "table":
		return "table"
	case "i", "b", "em", "span", "strong", "a", "code", "small",
		"label", "kbd", "samp", "sub", "sup", "u":
		return "inline"
	case "img", "button", "input", "select", "textarea":
		return "inline-block"
	}
	tracer().Infof("unknown HTML element %s will be set to display: inline",
		node.Data)
	return "inline"
}

// InitializeDefaultPropertyValues creates an internal data structure to
// hold all the default values for CSS properties.
// In real-world browsers these are the user-agent CSS values.
//
// Additional properties, e.g. custom properties, may be given and will
// be collected in the extension group "X".
func InitializeDefaultPropertyValues(additionalProps []KeyValue) *PropertyMap {
	pmap := NewPropertyMap()
	root := NewPropertyGroup("Root")
	for key, value := range initialValues {
		pmap.Add(key, value)
	}
	pmap.Add("display", "block")
	for _, kv := range additionalProps {
		pmap.Add(kv.Key, kv.Value)
	}
	for _, name := range pmap.GroupNames() {
		pmap.Group(name).Parent = root
	}
	return pmap
}
