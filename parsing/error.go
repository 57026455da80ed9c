/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package parsing

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/hypermodeinc/parsec/pos"
)

// ParseError is the failure of a parser. Error returns Message unchanged; the
// position is kept separately for callers that want to report it.
type ParseError struct {
	Message string
	Pos     pos.Position
}

func (e *ParseError) Error() string {
	return e.Message
}

// Format prints the position after the message for %+v.
func (e *ParseError) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('+'):
		fmt.Fprintf(f, "%s at %v", e.Message, e.Pos)
	case verb == 'q':
		fmt.Fprintf(f, "%q", e.Message)
	default:
		fmt.Fprint(f, e.Message)
	}
}

// AsParseError finds the ParseError in err's chain, if any.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
