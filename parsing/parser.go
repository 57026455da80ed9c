/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package parsing holds the parser state and the combinators that thread it:
// failure, rollback, labelling and choice.
//
// A parser either succeeds, possibly having consumed input, or returns an error.
// Rollback is never implicit: Try takes a checkpoint and restores it.
package parsing

import (
	"github.com/golang/glog"

	"github.com/hypermodeinc/parsec/pos"
)

// Parser reads and replaces st and returns a value of type A.
type Parser[F, A any] func(st *State[F]) (A, error)

// Run parses input from the initial position.
func Run[F, A any](input F, p Parser[F, A]) (A, error) {
	a, _, err := RunState(input, p)
	return a, err
}

// RunState is Run that also returns the final state.
func RunState[F, A any](input F, p Parser[F, A]) (A, State[F], error) {
	st := NewState(input)
	a, err := p(&st)
	if err != nil {
		glog.V(2).Infof("Parse failed at %v: %v", st.Pos, err)
	}
	return a, st, err
}

// Pure succeeds with a without touching the state.
func Pure[F, A any](a A) Parser[F, A] {
	return func(*State[F]) (A, error) {
		return a, nil
	}
}

// Fail fails with msg at the current position without touching the state.
func Fail[F, A any](msg string) Parser[F, A] {
	return func(st *State[F]) (A, error) {
		var zero A
		return zero, &ParseError{Message: msg, Pos: st.Pos}
	}
}

// Map applies f to the result of p.
func Map[F, A, B any](p Parser[F, A], f func(A) B) Parser[F, B] {
	return func(st *State[F]) (B, error) {
		a, err := p(st)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}
}

// Try runs p and, if it fails, restores the state to what it was before p ran.
// The error is returned unchanged.
func Try[F, A any](p Parser[F, A]) Parser[F, A] {
	return func(st *State[F]) (A, error) {
		cp := st.Checkpoint()
		a, err := p(st)
		if err != nil {
			glog.V(3).Infof("Rolling back from %v to %v: %v", st.Pos, cp.Pos, err)
			st.Restore(cp)
		}
		return a, err
	}
}

// Label replaces the error of p with "Expected " + msg when p fails without
// consuming input. Failures after consumption are returned as they are.
func Label[F, A any](p Parser[F, A], msg string) Parser[F, A] {
	return Or(p, Fail[F, A]("Expected "+msg))
}

// Or runs p, and runs q only if p failed without consuming input.
func Or[F, A any](p, q Parser[F, A]) Parser[F, A] {
	return func(st *State[F]) (A, error) {
		consumed := st.Consumed
		st.Consumed = false
		a, err := p(st)
		if err == nil || st.Consumed {
			st.Consumed = st.Consumed || consumed
			return a, err
		}
		st.Consumed = consumed
		return q(st)
	}
}

// Optional runs p, and if it fails without consuming input succeeds with def.
func Optional[F, A any](p Parser[F, A], def A) Parser[F, A] {
	return Or(p, Pure[F](def))
}

// Position returns the current position without consuming input.
func Position[F any]() Parser[F, pos.Position] {
	return func(st *State[F]) (pos.Position, error) {
		return st.Pos, nil
	}
}
