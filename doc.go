/*
Package emojikw merges keyword annotations into an emoji metadata dataset.

Content

Emoji datasets, like the one maintained at https://github.com/iamcal/emoji-data,
describe every emoji character by a record of metadata. A record identifies
its character by the field "unified", the character's code-points written as
hexadecimal numbers joined by hyphens:

   { "name": "GRINNING FACE", "unified": "1F600", "sort_order": 1, … }

Keyword lists describe characters by the character itself (or by escaped
UTF-16 code units) and carry a string of search terms:

   { "e": "😀", "k": "face grin happy" }

This package brings both together. For every emoji record with a matching
keyword entry, a field "keywords" is added. Along the way the display names
of all records are normalized and records are ordered by their sort order:

   {
     "name": "Grinning Face",
     "unified": "1F600",
     "sort_order": 1,
     …
     "keywords": [ "face", "grin", "happy" ]
   }

All other fields of a record are passed through unchanged and keep their
order.

Packages

Package unified computes code-point signatures, which serve as join keys.
Package names normalizes display names. Package record holds emoji records
with their ordered fields, and package keywords performs the join and
the ordering. Convert runs the whole pipeline from input files to output
file; command emojikw makes it available from the command line.

Tracing

Packages of this module trace to tracers "emojikw.<package>" (this one to
"emojikw.run"), selected through package schuko/tracing. Clients are
responsible for configuring tracing; if they don't, no traces are written.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package emojikw

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to emojikw.run .
func tracer() tracing.Trace {
	return tracing.Select("emojikw.run")
}
