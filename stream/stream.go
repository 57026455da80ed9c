/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package stream abstracts over the concrete representation of parser input.
//
// A Stream instance is a stateless value that knows how to look at an input of
// type F made of elements of type C. Inputs are never mutated: Uncons and Drop
// return the remaining input as a new value and leave their argument intact, so
// a parser can hold on to an old input as a rollback point.
package stream

import "github.com/hypermodeinc/parsec/pos"

// Split is the result of taking the first element off an input.
type Split[F, C any] struct {
	Head C
	Tail F
	// Advance moves a position past Head.
	Advance pos.Advance
}

// Stripped is the result of removing a literal prefix from an input.
type Stripped[F any] struct {
	Rest F
	// Advance moves a position past every element of the prefix, in order.
	Advance pos.Advance
}

// Prefix tags an input value as a literal to be matched at the front of another
// input.
type Prefix[F any] struct {
	Literal F
}

// Stream is the capability the primitive parsers need from an input type.
type Stream[F, C any] interface {
	// Uncons splits off the first element. It returns false for empty input.
	Uncons(s F) (Split[F, C], bool)
	// Drop strips p from the front of s, comparing elements for equality. It
	// returns false, and consumes nothing, if s does not start with p.
	Drop(p Prefix[F], s F) (Stripped[F], bool)
	// EqualElem is the element equality Drop matches with.
	EqualElem(a, b C) bool
	// Show renders an input for error messages.
	Show(s F) string
	// ShowElem renders a single element for error messages.
	ShowElem(c C) string
}

// ShowSet renders a set of elements as a bracketed list.
func ShowSet[F, C any](st Stream[F, C], set []C) string {
	b := make([]byte, 0, 2+4*len(set))
	b = append(b, '[')
	for i, c := range set {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = append(b, st.ShowElem(c)...)
	}
	return string(append(b, ']'))
}
