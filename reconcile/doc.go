/*
Package reconcile keeps the page record tree and the live surface in step.

The live surface is the source of truth while editing. SyncFromDOM walks
the surface and reconciles the record tree with it: records are matched to
elements by their `data-id`, updated in place, created for new elements and
pruned for elements which have gone. Elements without an identifier, or
with an identifier already in use, are given a fresh one, which is written
back to the live element.

Materialize goes the other way, creating detached HTML nodes from a record
tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reconcile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagedit.sync'.
func tracer() tracing.Trace {
	return tracing.Select("pagedit.sync")
}
