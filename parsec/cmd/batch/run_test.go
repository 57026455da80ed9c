/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package batch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/parsec/probe"
)

func TestRunAllPass(t *testing.T) {
	cases := []probe.Case{
		{Name: "literal", Primitive: "string", Arg: "ab", Input: "abc",
			Expect: &probe.Expect{OK: true, Result: "ab"}},
		{Primitive: "eof", Input: ""},
	}
	var out bytes.Buffer
	require.NoError(t, run(cases, &out, true))
	require.Equal(t, "ok   literal\nok   2nd case\n2 cases, 2 passed, 0 failed\n", out.String())
}

func TestRunReportsFailures(t *testing.T) {
	cases := []probe.Case{
		{Name: "wrong", Primitive: "anyChar", Input: "",
			Expect: &probe.Expect{OK: true, Result: "a"}},
		{Name: "bad primitive", Primitive: "many", Input: "a"},
		{Name: "fine", Primitive: "char", Arg: "a", Input: "a",
			Expect: &probe.Expect{OK: true, Result: "a"}},
	}
	var out bytes.Buffer
	require.EqualError(t, run(cases, &out, false), "2 of 3 cases failed")
	require.Contains(t, out.String(), `FAIL wrong: expected ok=true, got error "Unexpected EOF"`)
	require.Contains(t, out.String(), "FAIL bad primitive: unknown primitive")
	require.NotContains(t, out.String(), "fine")
	require.Contains(t, out.String(), "3 cases, 1 passed, 2 failed\n")
}
