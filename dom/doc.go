/*
Package dom provides the live document of the page editor.

Overview

The page being edited lives as an HTML tree (see golang.org/x/net/html)
inside an owning document. The editable part of the document is an element,
the surface, usually

    <div id="webpage"> … </div>

Elements on the surface are identified by a `data-id` attribute. The surface
is the single source of truth for the page: all editing operations manipulate
it directly, and the page model is re-derived from it afterwards (see
package reconcile).

W3CNode wraps HTML nodes and provides W3C-style access to attributes,
inline styles and computed styles (see package w3cdom). Computed styles are
calculated by the surface's CSSOM, cascading a user-agent stylesheet, the
<style> elements of the owning document and inline styles.

A surface is not safe for concurrent use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'pagedit.dom'
func tracer() tracing.Trace {
	return tracing.Select("pagedit.dom")
}
