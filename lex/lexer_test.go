/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package lex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/parsec/pos"
)

func TestLexerNextBackup(t *testing.T) {
	l := NewLexer("a\nb")
	require.Equal(t, 'a', l.Next())
	require.Equal(t, pos.Position{Line: 1, Column: 2}, l.Position())
	require.Equal(t, '\n', l.Next())
	require.Equal(t, pos.Position{Line: 2, Column: 1}, l.Position())
	l.Backup()
	require.Equal(t, pos.Position{Line: 1, Column: 2}, l.Position())
	require.Equal(t, '\n', l.Peek())
	require.Equal(t, 1, l.Pos)
	l.Next()
	require.Equal(t, 'b', l.Next())
	require.Equal(t, rune(EOF), l.Next())
	l.Backup()
	require.Equal(t, 3, l.Pos)
}

func TestAcceptRun(t *testing.T) {
	l := NewLexer("123abc")
	last, n := l.AcceptRun(isDigit)
	require.Equal(t, '3', last)
	require.Equal(t, 3, n)
	require.Equal(t, 3, l.Pos)

	l.AcceptUntil(func(r rune) bool { return r == 'c' })
	require.Equal(t, 5, l.Pos)
	require.Equal(t, 'c', l.Next())
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Item
	}{
		{
			name:  "empty",
			input: "",
			want:  []Item{},
		},
		{
			name:  "assignment",
			input: "let x1 = 42;",
			want: []Item{
				{ItemName, "let", pos.Position{Line: 1, Column: 1}, pos.Position{Line: 1, Column: 4}},
				{ItemName, "x1", pos.Position{Line: 1, Column: 5}, pos.Position{Line: 1, Column: 7}},
				{ItemPunct, "=", pos.Position{Line: 1, Column: 8}, pos.Position{Line: 1, Column: 9}},
				{ItemNumber, "42", pos.Position{Line: 1, Column: 10}, pos.Position{Line: 1, Column: 12}},
				{ItemPunct, ";", pos.Position{Line: 1, Column: 12}, pos.Position{Line: 1, Column: 13}},
			},
		},
		{
			name:  "multi line with string",
			input: "say\n  \"hi \\\" there\"",
			want: []Item{
				{ItemName, "say", pos.Position{Line: 1, Column: 1}, pos.Position{Line: 1, Column: 4}},
				{ItemString, `"hi \" there"`, pos.Position{Line: 2, Column: 3}, pos.Position{Line: 2, Column: 16}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			require.NoError(t, err)
			require.Equal(t, len(tt.want), len(got))
			for i := range tt.want {
				require.Equal(t, tt.want[i], got[i])
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	items, err := Tokenize(`a "open`)
	require.EqualError(t, err, "line 1 column 3: Unterminated string")
	require.Len(t, items, 1)

	_, err = Tokenize("a \x01")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unrecognized character")

	require.Panics(t, func() { MustTokenize(`"`) })
}

func TestItem(t *testing.T) {
	a := Item{Typ: ItemName, Val: "x", Start: pos.Initial, End: pos.Position{Line: 1, Column: 2}}
	b := Item{Typ: ItemName, Val: "x", Start: pos.Position{Line: 9, Column: 9}}
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(Item{Typ: ItemPunct, Val: "x"}))
	require.Equal(t, a.End, a.UpdatePos(pos.Position{Line: 5, Column: 5}))
	require.Equal(t, `name "x"`, a.String())
	require.Equal(t, "EOF", Item{}.String())
	require.EqualError(t, a.Errorf("bad %s", "x"), "line 1 column 1: bad x")
}

func TestItemTypeNames(t *testing.T) {
	for _, typ := range []ItemType{ItemEOF, ItemError, ItemName, ItemNumber, ItemString, ItemPunct} {
		got, ok := ParseItemType(typ.String())
		require.True(t, ok)
		require.Equal(t, typ, got)
	}
	_, ok := ParseItemType("nope")
	require.False(t, ok)
	require.Equal(t, "item(42)", ItemType(42).String())
}
