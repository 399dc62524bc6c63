/*
Package unified computes code-point signatures for emoji characters.

Emoji datasets identify a character by its "unified" form: the Unicode
code-points of the character, written as uppercase hexadecimal numbers and
joined by hyphens. The keycap sign "#️⃣" is identified as

   0023-FE0F-20E3

and "😀" (GRINNING FACE) as

   1F600

Other data sources describe the same characters in different encodings, either
as literal text or as a sequence of escaped UTF-16 code units, as in

   \uD83D\uDE00

Encode maps both forms to the same signature, which makes the signature
usable as a join key between datasets. Surrogate pairs are combined into a
single code-point; an unpaired surrogate code unit is kept as its own
value rather than being dropped.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package unified

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to emojikw.unified .
func tracer() tracing.Trace {
	return tracing.Select("emojikw.unified")
}
