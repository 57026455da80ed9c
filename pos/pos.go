/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package pos tracks line and column positions in parser input and the rules for
// advancing them past consumed input.
package pos

import "fmt"

// TabWidth is the distance between tab stops.
const TabWidth = 8

// Position is a location in the input. Both Line and Column start at 1.
type Position struct {
	Line   int
	Column int
}

// Initial is the position of the first rune of any input.
var Initial = Position{Line: 1, Column: 1}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// UpdateRune returns the position after consuming r at p.
func UpdateRune(p Position, r rune) Position {
	switch r {
	case '\n', '\r':
		return Position{Line: p.Line + 1, Column: 1}
	case '\t':
		return Position{Line: p.Line, Column: p.Column + TabWidth - (p.Column-1)%TabWidth}
	default:
		return Position{Line: p.Line, Column: p.Column + 1}
	}
}

// UpdateString folds UpdateRune over s, left to right.
func UpdateString(p Position, s string) Position {
	for _, r := range s {
		p = UpdateRune(p, r)
	}
	return p
}
