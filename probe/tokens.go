/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package probe

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/hypermodeinc/parsec/lex"
	"github.com/hypermodeinc/parsec/prim"
	"github.com/hypermodeinc/parsec/stream"
)

func showItem(i lex.Item) string { return i.Val }

func showItems(items []lex.Item) string {
	vals := make([]string, 0, len(items))
	for _, i := range items {
		vals = append(vals, i.Val)
	}
	return strings.Join(vals, " ")
}

// argItem lexes the argument into exactly one token.
func argItem(c Case) (lex.Item, error) {
	s, err := argString(c)
	if err != nil {
		return lex.Item{}, err
	}
	items, err := lex.Tokenize(s)
	if err != nil {
		return lex.Item{}, err
	}
	if len(items) != 1 {
		return lex.Item{}, errors.Errorf("argument of %s must be a single token, got %d", c.Primitive, len(items))
	}
	return items[0], nil
}

func argItemSet(c Case) ([]lex.Item, error) {
	ss, err := argStrings(c)
	if err != nil {
		return nil, err
	}
	items, err := lex.Tokenize(strings.Join(ss, " "))
	return items, errors.Wrapf(err, "argument of %s", c.Primitive)
}

func runTokens(name string, c Case) (Outcome, error) {
	input, err := lex.Tokenize(c.Input)
	if err != nil {
		return Outcome{}, errors.Wrap(err, "while tokenizing input")
	}
	str := stream.Tokens[lex.Item]()
	switch name {
	case Eof:
		return execute(input, prim.Eof(str), unit, showItems), nil
	case String:
		s, err := argString(c)
		if err != nil {
			return Outcome{}, err
		}
		lit, err := lex.Tokenize(s)
		if err != nil {
			return Outcome{}, errors.Wrapf(err, "argument of %s", c.Primitive)
		}
		return execute(input, prim.String(str, lit), showItems, showItems), nil
	case AnyChar:
		return execute(input, prim.AnyChar(str), showItem, showItems), nil
	case Satisfy:
		tname, err := argString(c)
		if err != nil {
			return Outcome{}, err
		}
		typ, ok := lex.ParseItemType(tname)
		if !ok {
			return Outcome{}, errors.Errorf("unknown token type %q", tname)
		}
		f := func(i lex.Item) bool { return i.Typ == typ }
		return execute(input, prim.Satisfy(str, f), showItem, showItems), nil
	case Char:
		item, err := argItem(c)
		if err != nil {
			return Outcome{}, err
		}
		return execute(input, prim.Char(str, item), showItem, showItems), nil
	case OneOf, NoneOf:
		set, err := argItemSet(c)
		if err != nil {
			return Outcome{}, err
		}
		p := prim.OneOf(str, set)
		if name == NoneOf {
			p = prim.NoneOf(str, set)
		}
		return execute(input, p, showItem, showItems), nil
	}
	return Outcome{}, errors.Errorf("primitive %s is not supported on tokens", name)
}
