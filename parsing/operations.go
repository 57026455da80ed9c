/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package parsing

import "fmt"

// Many runs p until it fails without consuming input, collecting the results.
// A failure after consuming input is returned. Many itself never fails
// otherwise, so it may succeed with an empty slice.
func Many[F, A any](p Parser[F, A]) Parser[F, []A] {
	return Repeat(p, 0, -1)
}

// Some is Many that requires at least one result.
func Some[F, A any](p Parser[F, A]) Parser[F, []A] {
	return Repeat(p, 1, -1)
}

// SkipMany is Many that discards the results.
func SkipMany[F, A any](p Parser[F, A]) Parser[F, struct{}] {
	return Map(Many(p), func([]A) struct{} { return struct{}{} })
}

// Repeat runs p at least atLeast and at most atMost times. A negative atMost
// means no upper bound.
func Repeat[F, A any](p Parser[F, A], atLeast, atMost int) Parser[F, []A] {
	return func(st *State[F]) ([]A, error) {
		var vs []A
		consumed := st.Consumed
		var progressed bool
		defer func() {
			st.Consumed = st.Consumed || progressed || consumed
		}()
		for i := 0; atMost < 0 || i < atMost; i++ {
			st.Consumed = false
			a, err := p(st)
			if err != nil {
				if st.Consumed || i < atLeast {
					return vs, err
				}
				break
			}
			if !st.Consumed {
				// p would match forever at this point.
				return vs, &ParseError{
					Message: fmt.Sprintf("repetition %d succeeded without consuming input", i),
					Pos:     st.Pos,
				}
			}
			progressed = true
			vs = append(vs, a)
		}
		return vs, nil
	}
}
