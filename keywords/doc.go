/*
Package keywords attaches keyword lists to emoji records.

Keyword datasets name a character either by the character itself or by its
escaped UTF-16 code units, and list keywords as a single space separated
string:

   { "e": "😀", "k": "face grin happy" }

BuildTable maps every entry to the code-point signature of its character
(see package unified) and collects a join table. Join then matches emoji
records by their "unified" field against this table. Matching records get a
"keywords" field with the list of terms, and every record gets its display
name normalized (see package names).

SortByOrder finally orders the records by their "sort_order" field.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package keywords

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to emojikw.keywords .
func tracer() tracing.Trace {
	return tracing.Select("emojikw.keywords")
}
