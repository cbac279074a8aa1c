/*
Package cssom provides a small CSS object model to compute the styles of
elements of an HTML tree.

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Browsers
expose the result of styling as computed styles, and the editing engine
relies on exactly this: property readers ask for the computed value of,
e.g., `font-size` or `background-color` of a selected element.

Styles are computed from three layers:

   - a user-agent stylesheet, giving HTML elements their default look
   - author stylesheets, usually <style> elements of the owning document
   - inline `style` attributes of elements

Declarations are cascaded by importance, origin, selector specificity and
source order. Inheritable properties (fonts, text color, alignment) are
inherited from the parent element. Properties not set by any layer receive
their initial values.

Selector matching relies on
https://godoc.org/github.com/andybalholm/cascadia.
CSS handling is de-coupled by introducing interfaces StyleSheet and Rule.
A concrete implementation may be found in sub-package douceuradapter.

Computed values are normalized the way browsers report them: colors are
given in functional rgb notation, font sizes in pixels.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'pagedit.style'.
func tracer() tracing.Trace {
	return tracing.Select("pagedit.style")
}
