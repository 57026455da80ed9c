/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package probe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/parsec/pos"
)

func TestRunText(t *testing.T) {
	tests := []struct {
		name   string
		c      Case
		ok     bool
		result string
		rest   string
		errMsg string
	}{
		{"string", Case{Primitive: "string", Arg: "ab", Input: "abc"}, true, "ab", "c", ""},
		{"string mismatch", Case{Primitive: "STRING", Arg: "ab", Input: "xbc"}, false, "", "xbc", `Expected "ab"`},
		{"anyChar empty", Case{Primitive: "anyChar", Input: ""}, false, "", "", "Unexpected EOF"},
		{"satisfy digit", Case{Primitive: "satisfy", Arg: "digit", Input: "5x"}, true, "5", "x", ""},
		{"satisfy rejects", Case{Primitive: "satisfy", Arg: "digit", Input: "x5"}, false, "", "x5",
			"Character 'x' did not satisfy predicate"},
		{"char", Case{Primitive: "char", Arg: "q", Input: "qq"}, true, "q", "q", ""},
		{"eof", Case{Primitive: "eof", Input: "z"}, false, "", "z", "Expected EOF"},
		{"whiteSpace", Case{Primitive: "whitespace", Input: " \t\nx"}, true, " \t\n", "x", ""},
		{"skipSpaces", Case{Primitive: "skipSpaces", Input: "  x"}, true, "", "x", ""},
		{"oneOf list", Case{Primitive: "oneOf", Arg: []interface{}{"a", "b"}, Input: "b"}, true, "b", "", ""},
		{"noneOf string", Case{Primitive: "noneOf", Arg: "ab", Input: "b"}, false, "", "b",
			"Expected none of ['a', 'b']"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := Run(tt.c)
			require.NoError(t, err)
			require.Equal(t, tt.ok, o.OK)
			require.Equal(t, tt.result, o.Result)
			require.Equal(t, tt.rest, o.Rest)
			if tt.errMsg != "" {
				require.EqualError(t, o.Err, tt.errMsg)
			} else {
				require.NoError(t, o.Err)
			}
		})
	}
}

func TestRunTokens(t *testing.T) {
	o, err := Run(Case{Primitive: "string", Arg: "let x", Input: "let x = 1", Tokens: true})
	require.NoError(t, err)
	require.True(t, o.OK)
	require.Equal(t, "let x", o.Result)
	require.Equal(t, "= 1", o.Rest)
	require.Equal(t, pos.Position{Line: 1, Column: 6}, o.Pos)

	o, err = Run(Case{Primitive: "satisfy", Arg: "number", Input: "x 1", Tokens: true})
	require.NoError(t, err)
	require.False(t, o.OK)
	require.EqualError(t, o.Err, `Character name "x" did not satisfy predicate`)
	require.Equal(t, "x 1", o.Rest)

	o, err = Run(Case{Primitive: "oneOf", Arg: "+ -", Input: "- 1", Tokens: true})
	require.NoError(t, err)
	require.Equal(t, "-", o.Result)

	_, err = Run(Case{Primitive: "whiteSpace", Input: "a", Tokens: true})
	require.Error(t, err)
}

func TestRunBadCases(t *testing.T) {
	bad := []Case{
		{Primitive: "many", Input: "a"},
		{Primitive: "string", Input: "a"},
		{Primitive: "char", Arg: "ab", Input: "a"},
		{Primitive: "satisfy", Arg: "vowel", Input: "a"},
		{Primitive: "satisfy", Arg: "vowel", Input: "a", Tokens: true},
		{Primitive: "char", Arg: "a b", Input: "a", Tokens: true},
		{Primitive: "eof", Input: "\"open", Tokens: true},
	}
	for _, c := range bad {
		_, err := Run(c)
		require.Error(t, err, "%+v", c)
	}
}
