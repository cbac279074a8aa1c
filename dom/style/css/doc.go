/*
Package css provides typed access to CSS length and position values.

CSS properties arrive as text. This package shields clients from the
cumbersome handling of such textual values: lengths are parsed into option
types (DimenT), positions with their offsets into PositionT. Both are
consumed with pattern matching:

    switch m := d.Match(); m {
    case m.Just(&du):
        …
    case m.FontRelative(&factor):
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagedit.style'.
func tracer() tracing.Trace {
	return tracing.Select("pagedit.style")
}
