/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package stream

import (
	"strconv"
	"unicode/utf8"

	"github.com/hypermodeinc/parsec/pos"
)

// Text is the Stream instance for UTF-8 strings, read one rune at a time.
type Text struct{}

// Runes is Text typed as a Stream, so that generic parsers taking it can infer
// their input and element types.
var Runes Stream[string, rune] = Text{}

func (Text) Uncons(s string) (Split[string, rune], bool) {
	if len(s) == 0 {
		return Split[string, rune]{}, false
	}
	r, w := utf8.DecodeRuneInString(s)
	return Split[string, rune]{Head: r, Tail: s[w:], Advance: pos.OverRune(r)}, true
}

func (t Text) Drop(p Prefix[string], s string) (Stripped[string], bool) {
	// Compare rune by rune, decoding both sides the way Uncons does, and build
	// one advance per consumed rune in input order.
	lit, rest := p.Literal, s
	advances := make([]pos.Advance, 0, len(lit))
	for len(lit) > 0 {
		if len(rest) == 0 {
			return Stripped[string]{}, false
		}
		lr, lw := utf8.DecodeRuneInString(lit)
		r, w := utf8.DecodeRuneInString(rest)
		if !t.EqualElem(lr, r) {
			return Stripped[string]{}, false
		}
		advances = append(advances, pos.OverRune(r))
		lit, rest = lit[lw:], rest[w:]
	}
	return Stripped[string]{Rest: rest, Advance: pos.Concat(advances...)}, true
}

func (Text) EqualElem(a, b rune) bool {
	return a == b
}

func (Text) Show(s string) string {
	return strconv.Quote(s)
}

func (Text) ShowElem(r rune) string {
	return strconv.QuoteRune(r)
}
