package cssom

import "github.com/npillmayer/pagedit/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// computation of styles, we introduce an interface for CSS stylesheets.
// Clients of the styling engine will have to provide a concrete
// implementation of this interface (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// PropertySource denotes the origin of a style declaration.
type PropertySource uint8

// Origins of style declarations, in ascending order of precedence.
const (
	UserAgent PropertySource = iota // browser defaults
	Author                          // stylesheets of the document
	Inline                          // `style` attributes
)

func (src PropertySource) String() string {
	switch src {
	case UserAgent:
		return "user-agent"
	case Author:
		return "author"
	case Inline:
		return "inline"
	}
	return "unknown"
}
