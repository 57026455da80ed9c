/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package pos

// Advance maps a position to the position after some consumed input.
// Advances form a monoid under Then, with Identity as the unit.
type Advance func(Position) Position

// Identity leaves the position unchanged.
func Identity(p Position) Position { return p }

// Then returns the advance that applies a and then b.
func (a Advance) Then(b Advance) Advance {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(p Position) Position {
		return b(a(p))
	}
}

// Concat composes advances in order. An empty list gives Identity.
func Concat(as ...Advance) Advance {
	acc := Advance(Identity)
	for _, a := range as {
		acc = acc.Then(a)
	}
	return acc
}

// OverRune is the Advance for consuming a single rune.
func OverRune(r rune) Advance {
	return func(p Position) Position {
		return UpdateRune(p, r)
	}
}

// OverString is the Advance for consuming all of s.
func OverString(s string) Advance {
	return func(p Position) Position {
		return UpdateString(p, s)
	}
}
