/*
Package props implements the registry of editable properties.

A property descriptor bundles, for one style or attribute concern of an
element, how to read its current value from the live element, how to write
a new value and how to reset it to its default. Descriptors have a kind
(color, number, text, font, select), which determines the editing control
and the type of values crossing the boundary.

Values are modelled as a closed variant type and are consumed with pattern
matching:

    switch m := v.Match(); m {
    case m.Color(&hex):
        …
    case m.Number(&px):
        …
    }

The registry holds a base set of descriptors applicable to every element
and per-tag overlays, merged on top of the base set.

Reads never fail: values which cannot be interpreted degrade to the
descriptor's default.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package props

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagedit.props'.
func tracer() tracing.Trace {
	return tracing.Select("pagedit.props")
}
