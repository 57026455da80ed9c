/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package stream

import (
	"fmt"

	"github.com/hypermodeinc/parsec/pos"
)

// Token is an element that can be compared for equality and knows how far
// consuming it moves a position.
type Token[C any] interface {
	Equal(other C) bool
	UpdatePos(p pos.Position) pos.Position
}

// List is the Stream instance for slices of tokens. Tails share the backing
// array of the original slice; nothing is ever written through them.
type List[C Token[C]] struct{}

// Tokens returns List[C] typed as a Stream.
func Tokens[C Token[C]]() Stream[[]C, C] {
	return List[C]{}
}

func (List[C]) Uncons(s []C) (Split[[]C, C], bool) {
	if len(s) == 0 {
		return Split[[]C, C]{}, false
	}
	head := s[0]
	return Split[[]C, C]{Head: head, Tail: s[1:], Advance: head.UpdatePos}, true
}

func (List[C]) Drop(p Prefix[[]C], s []C) (Stripped[[]C], bool) {
	if len(p.Literal) > len(s) {
		return Stripped[[]C]{}, false
	}
	advances := make([]pos.Advance, 0, len(p.Literal))
	for i, c := range p.Literal {
		if !s[i].Equal(c) {
			return Stripped[[]C]{}, false
		}
		advances = append(advances, s[i].UpdatePos)
	}
	return Stripped[[]C]{Rest: s[len(p.Literal):], Advance: pos.Concat(advances...)}, true
}

func (List[C]) EqualElem(a, b C) bool {
	return a.Equal(b)
}

func (l List[C]) Show(s []C) string {
	return ShowSet[[]C, C](l, s)
}

func (List[C]) ShowElem(c C) string {
	return fmt.Sprint(c)
}
