/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package prim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/parsec/parsing"
	"github.com/hypermodeinc/parsec/pos"
)

func TestChar(t *testing.T) {
	r, st, err := run("ab", Char(text, 'a'))
	require.NoError(t, err)
	require.Equal(t, 'a', r)
	require.Equal(t, "b", st.Input)

	_, st, err = run("ba", Char(text, 'a'))
	require.EqualError(t, err, "Expected 'a'")
	require.Equal(t, parsing.NewState("ba"), st)

	_, _, err = run("", Char(text, 'a'))
	require.EqualError(t, err, "Expected 'a'")
}

func TestWhiteSpace(t *testing.T) {
	tests := []struct {
		input string
		ws    string
		rest  string
	}{
		{"", "", ""},
		{"abc", "", "abc"},
		{" \t\r\n x", " \t\r\n ", "x"},
		{"   ", "   ", ""},
		{"\v x", "", "\v x"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rs, st, err := run(tt.input, WhiteSpace[string](text))
			require.NoError(t, err)
			require.Equal(t, tt.ws, string(rs))
			require.Equal(t, tt.rest, st.Input)
			require.Equal(t, pos.UpdateString(pos.Initial, tt.ws), st.Pos)
			require.Equal(t, tt.ws != "", st.Consumed)

			s, st2, err := run(tt.input, WhiteSpaceString[string](text))
			require.NoError(t, err)
			require.Equal(t, tt.ws, s)
			require.Equal(t, st, st2)
		})
	}
}

func TestWhiteSpaceAs(t *testing.T) {
	n, st, err := run("  \n\tx", WhiteSpaceAs[string](text, func(rs []rune) int { return len(rs) }))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "x", st.Input)
}

func TestSkipSpaces(t *testing.T) {
	_, st, err := run("\n\n  y", SkipSpaces[string](text))
	require.NoError(t, err)
	require.Equal(t, "y", st.Input)
	require.Equal(t, pos.Position{Line: 3, Column: 3}, st.Pos)
}

func TestOneOfNoneOf(t *testing.T) {
	set := []rune("abc")

	r, _, err := run("bz", OneOf(text, set))
	require.NoError(t, err)
	require.Equal(t, 'b', r)

	_, st, err := run("zb", OneOf(text, set))
	require.EqualError(t, err, "Expected one of ['a', 'b', 'c']")
	require.Equal(t, parsing.NewState("zb"), st)

	r, _, err = run("zb", NoneOf(text, set))
	require.NoError(t, err)
	require.Equal(t, 'z', r)

	_, st, err = run("bz", NoneOf(text, set))
	require.EqualError(t, err, "Expected none of ['a', 'b', 'c']")
	require.Equal(t, parsing.NewState("bz"), st)
}

func TestOneOfNoneOfComplementary(t *testing.T) {
	sets := [][]rune{nil, []rune("a"), []rune("xyz"), []rune(" \n")}
	inputs := []string{"a", "b", "x!", " ", "\n\n", "é"}
	for _, set := range sets {
		for _, in := range inputs {
			_, _, errOne := run(in, OneOf(text, set))
			_, _, errNone := run(in, NoneOf(text, set))
			require.True(t, (errOne == nil) != (errNone == nil),
				"set %q input %q: oneOf err %v, noneOf err %v", string(set), in, errOne, errNone)
		}
	}
}
