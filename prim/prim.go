/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package prim contains the primitive parsers that read input directly through
// a stream.Stream instance.
//
// Every primitive either commits a consumption or leaves the parser state as it
// found it. None of them recover from their own failures.
package prim

import (
	"github.com/hypermodeinc/parsec/parsing"
	"github.com/hypermodeinc/parsec/stream"
)

// Eof succeeds, consuming nothing, when no input remains.
func Eof[F, C any](str stream.Stream[F, C]) parsing.Parser[F, struct{}] {
	return func(st *parsing.State[F]) (struct{}, error) {
		if _, ok := str.Uncons(st.Input); ok {
			return parsing.Fail[F, struct{}]("Expected EOF")(st)
		}
		return struct{}{}, nil
	}
}

// String matches lit at the front of the input and returns it.
func String[F, C any](str stream.Stream[F, C], lit F) parsing.Parser[F, F] {
	return func(st *parsing.State[F]) (F, error) {
		r, ok := str.Drop(stream.Prefix[F]{Literal: lit}, st.Input)
		if !ok {
			return parsing.Fail[F, F]("Expected " + str.Show(lit))(st)
		}
		st.Commit(r.Rest, r.Advance)
		return lit, nil
	}
}

// AnyChar consumes and returns the first element of the input.
func AnyChar[F, C any](str stream.Stream[F, C]) parsing.Parser[F, C] {
	return func(st *parsing.State[F]) (C, error) {
		sp, ok := str.Uncons(st.Input)
		if !ok {
			return parsing.Fail[F, C]("Unexpected EOF")(st)
		}
		st.Commit(sp.Tail, sp.Advance)
		return sp.Head, nil
	}
}

// Satisfy consumes the first element if f accepts it. On rejection the state is
// rolled back and the error names the element.
func Satisfy[F, C any](str stream.Stream[F, C], f func(C) bool) parsing.Parser[F, C] {
	anyChar := AnyChar(str)
	return parsing.Try(parsing.Parser[F, C](func(st *parsing.State[F]) (C, error) {
		at := st.Pos
		c, err := anyChar(st)
		if err != nil {
			return c, err
		}
		if !f(c) {
			var zero C
			return zero, &parsing.ParseError{
				Message: "Character " + str.ShowElem(c) + " did not satisfy predicate",
				Pos:     at,
			}
		}
		return c, nil
	}))
}
