/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package prim

import (
	"github.com/hypermodeinc/parsec/parsing"
	"github.com/hypermodeinc/parsec/stream"
)

// Char matches the single element c.
func Char[F, C any](str stream.Stream[F, C], c C) parsing.Parser[F, C] {
	return parsing.Label(Satisfy(str, func(d C) bool {
		return str.EqualElem(d, c)
	}), str.ShowElem(c))
}

// OneOf matches any element of set.
func OneOf[F, C any](str stream.Stream[F, C], set []C) parsing.Parser[F, C] {
	return parsing.Label(Satisfy(str, func(c C) bool {
		return member(str, set, c)
	}), "one of "+stream.ShowSet(str, set))
}

// NoneOf matches any element not in set.
func NoneOf[F, C any](str stream.Stream[F, C], set []C) parsing.Parser[F, C] {
	return parsing.Label(Satisfy(str, func(c C) bool {
		return !member(str, set, c)
	}), "none of "+stream.ShowSet(str, set))
}

func member[F, C any](str stream.Stream[F, C], set []C, c C) bool {
	for _, s := range set {
		if str.EqualElem(s, c) {
			return true
		}
	}
	return false
}

func isSpace(r rune) bool {
	return r == '\n' || r == '\r' || r == ' ' || r == '\t'
}

// WhiteSpace consumes the longest run of newlines, carriage returns, spaces and
// tabs, and returns it. It never fails.
func WhiteSpace[F any](str stream.Stream[F, rune]) parsing.Parser[F, []rune] {
	return parsing.Many(Satisfy(str, isSpace))
}

// WhiteSpaceAs is WhiteSpace with the result converted by conv.
func WhiteSpaceAs[F, R any](str stream.Stream[F, rune], conv func([]rune) R) parsing.Parser[F, R] {
	return parsing.Map(WhiteSpace(str), conv)
}

// WhiteSpaceString is WhiteSpace returning a string.
func WhiteSpaceString[F any](str stream.Stream[F, rune]) parsing.Parser[F, string] {
	return WhiteSpaceAs(str, func(rs []rune) string { return string(rs) })
}

// SkipSpaces is WhiteSpace that discards what it matched.
func SkipSpaces[F any](str stream.Stream[F, rune]) parsing.Parser[F, struct{}] {
	return parsing.SkipMany(Satisfy(str, isSpace))
}
