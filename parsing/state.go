/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package parsing

import "github.com/hypermodeinc/parsec/pos"

// State is the triple threaded through every parser: the remaining input, the
// position of its first element, and whether any input was consumed since the
// last choice point.
type State[F any] struct {
	Input    F
	Pos      pos.Position
	Consumed bool
}

// NewState returns the state for parsing input from the start.
func NewState[F any](input F) State[F] {
	return State[F]{Input: input, Pos: pos.Initial}
}

// Checkpoint returns a copy of the state to roll back to.
func (s *State[F]) Checkpoint() State[F] {
	return *s
}

// Restore replaces the whole state with cp.
func (s *State[F]) Restore(cp State[F]) {
	*s = cp
}

// Commit records a successful consumption: the remaining input becomes rest and
// the position moves by adv.
func (s *State[F]) Commit(rest F, adv pos.Advance) {
	*s = State[F]{Input: rest, Pos: adv(s.Pos), Consumed: true}
}
