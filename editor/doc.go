/*
Package editor holds an editing session: configuration, page record tree,
live surface, property panel and the interaction state tying them
together.

A session is in one of three modes. In inspect mode clicks select elements
and show their properties in the panel. In edit mode the surface is
content-editable. In move mode elements may be dragged to absolute
positions. Every change of the live surface raises a document-changed
notification, which synchronously reconciles the page record tree before
listeners are informed.

A session is driven from a single goroutine; it is not safe for concurrent
use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package editor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagedit.editor'.
func tracer() tracing.Trace {
	return tracing.Select("pagedit.editor")
}
