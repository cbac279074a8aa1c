/*
Package page implements the page record tree, the serializable model of the
page being edited.

A page is a list of records. Records are either elements, carrying a tag,
attributes, inline style declarations, an identifier and children, or text.
The tree mirrors the live surface (see package dom) and is kept in sync with
it by package reconcile.

Records are serialized to JSON with a "type" discriminator:

    {"type":"element","tag":"h1","attributes":{"class":"text-center"},
     "children":[{"type":"text","content":"Hello World!"}],"id":"title"}

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package page

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagedit.page'.
func tracer() tracing.Trace {
	return tracing.Select("pagedit.page")
}
