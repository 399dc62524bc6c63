/*
Package names normalizes emoji display names.

Emoji datasets often carry names in upper case ("GRINNING FACE"). Capitalize
turns them into a form suitable for display ("Grinning Face"): the whole
name is lower-cased, then the first character of every space-delimited
word is upper-cased.

Case mappings are full Unicode mappings and may change the length of
a string ("ß" upper-cases to "SS"). Clients may bind a Normalizer to a
language to get language-specific mappings (Turkish dotted i, etc.), the
default is language-neutral.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package names

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	jj "github.com/cloudfoundry/jibber_jabber"
	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tracer traces to emojikw.names .
func tracer() tracing.Trace {
	return tracing.Select("emojikw.names")
}

// Normalizer capitalizes names for a given language.
// A Normalizer may be used concurrently.
type Normalizer struct {
	tag   language.Tag
	opool *pool.ObjectPool
	ctx   context.Context
}

// casers are not safe for concurrent use, therefore we pool them.
type casers struct {
	lower cases.Caser
	upper cases.Caser
}

// NewNormalizer creates a Normalizer for language tag. Use language.Und
// for language-neutral case mappings.
func NewNormalizer(tag language.Tag) *Normalizer {
	n := &Normalizer{tag: tag, ctx: context.Background()}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return newCasers(tag), nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	n.opool = pool.NewObjectPool(n.ctx, factory, config)
	return n
}

func newCasers(tag language.Tag) *casers {
	return &casers{
		lower: cases.Lower(tag),
		upper: cases.Upper(tag),
	}
}

// Language returns the language tag of n.
func (n *Normalizer) Language() language.Tag {
	return n.tag
}

// Capitalize lower-cases s, then upper-cases the first character of every
// word. Words are delimited by single spaces; runs of spaces are kept
// as they are. Capitalize returns an empty string for empty input.
func (n *Normalizer) Capitalize(s string) string {
	if s == "" {
		return ""
	}
	o, err := n.opool.BorrowObject(n.ctx)
	if err != nil {
		tracer().Errorf("cannot borrow case mappers: %v", err)
		return capitalize(s, newCasers(n.tag))
	}
	c := o.(*casers)
	defer func() {
		_ = n.opool.ReturnObject(n.ctx, c)
	}()
	return capitalize(s, c)
}

func capitalize(s string, c *casers) string {
	words := strings.Split(c.lower.String(s), " ")
	for i, w := range words {
		words[i] = upperFirst(w, c.upper)
	}
	return strings.Join(words, " ")
}

// upperFirst upper-cases the first character of w. Characters outside
// the BMP are left alone, as they are not a single character in
// a UTF-16 view of w.
func upperFirst(w string, upper cases.Caser) string {
	r, size := utf8.DecodeRuneInString(w)
	if size == 0 || r == utf8.RuneError || r > 0xffff {
		return w
	}
	return upper.String(w[:size]) + w[size:]
}

// --- Defaults --------------------------------------------------------------

var defaultNormalizer *Normalizer
var setupOnce sync.Once

// Default returns a language-neutral Normalizer.
// (Concurrency-safe).
func Default() *Normalizer {
	setupOnce.Do(func() {
		defaultNormalizer = NewNormalizer(language.Und)
	})
	return defaultNormalizer
}

// Capitalize capitalizes s using the language-neutral default Normalizer.
func Capitalize(s string) string {
	return Default().Capitalize(s)
}

// --- Locales ---------------------------------------------------------------

// LocaleFromEnvironment returns the language of the user's locale. If it
// cannot be detected, language.Und is returned.
func LocaleFromEnvironment() language.Tag {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf(err.Error())
		tracer().Infof("names: using language-neutral case mappings")
		return language.Und
	}
	tag, err := language.Parse(userLocale)
	if err != nil {
		tracer().Errorf("cannot interpret user locale %q: %v", userLocale, err)
		return language.Und
	}
	tracer().Infof("names: detected user locale %v", tag)
	return tag
}

// ParseLocale interprets a locale setting. "" and "und" select
// language-neutral case mappings, "auto" selects the user's locale (see
// LocaleFromEnvironment). Anything else has to be a BCP 47 language tag.
func ParseLocale(s string) (language.Tag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "und":
		return language.Und, nil
	case "auto":
		return LocaleFromEnvironment(), nil
	}
	return language.Parse(s)
}
