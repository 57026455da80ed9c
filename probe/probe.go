/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package probe runs a single primitive parser, chosen by name, over text or
// lexed token input and reports what it did.
package probe

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/hypermodeinc/parsec/parsing"
	"github.com/hypermodeinc/parsec/pos"
	"github.com/hypermodeinc/parsec/prim"
	"github.com/hypermodeinc/parsec/stream"
)

// Primitive names accepted in Case.Primitive. Matching ignores case.
const (
	Eof        = "eof"
	String     = "string"
	AnyChar    = "anyChar"
	Satisfy    = "satisfy"
	Char       = "char"
	WhiteSpace = "whiteSpace"
	SkipSpaces = "skipSpaces"
	OneOf      = "oneOf"
	NoneOf     = "noneOf"
)

// Primitives lists every accepted primitive name.
var Primitives = []string{Eof, String, AnyChar, Satisfy, Char, WhiteSpace, SkipSpaces, OneOf, NoneOf}

// RunePredicates are the predicates satisfy accepts over text.
var RunePredicates = map[string]func(rune) bool{
	"digit":  unicode.IsDigit,
	"letter": unicode.IsLetter,
	"space":  unicode.IsSpace,
	"upper":  unicode.IsUpper,
	"lower":  unicode.IsLower,
	"punct":  unicode.IsPunct,
	"alnum": func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	},
}

// Case names a primitive, its argument and the input to run it on.
type Case struct {
	Name      string      `yaml:"name"`
	Primitive string      `yaml:"primitive"`
	Arg       interface{} `yaml:"arg,omitempty"`
	Input     string      `yaml:"input"`
	// Tokens runs the primitive over lex.Tokenize(Input) instead of the text.
	Tokens bool    `yaml:"tokens,omitempty"`
	Expect *Expect `yaml:"expect,omitempty"`
}

// Outcome is what running a Case produced.
type Outcome struct {
	OK       bool
	Result   string
	Rest     string
	Pos      pos.Position
	Consumed bool
	Err      error
}

func canonical(name string) (string, error) {
	for _, p := range Primitives {
		if strings.EqualFold(p, name) {
			return p, nil
		}
	}
	return "", errors.Errorf("unknown primitive %q, want one of %v", name, Primitives)
}

// Run executes c. The returned error is about the case itself, such as an
// unknown primitive or a missing argument; parse failures are in Outcome.Err.
func Run(c Case) (Outcome, error) {
	name, err := canonical(c.Primitive)
	if err != nil {
		return Outcome{}, err
	}
	if c.Tokens {
		return runTokens(name, c)
	}
	return runText(name, c)
}

func execute[F, A any](input F, p parsing.Parser[F, A], show func(A) string,
	showRest func(F) string) Outcome {
	a, st, err := parsing.RunState(input, p)
	o := Outcome{Rest: showRest(st.Input), Pos: st.Pos, Consumed: st.Consumed, Err: err}
	if err == nil {
		o.OK = true
		o.Result = show(a)
	}
	return o
}

func unit(struct{}) string { return "" }

func identity(s string) string { return s }

func argString(c Case) (string, error) {
	if c.Arg == nil {
		return "", errors.Errorf("primitive %s needs an argument", c.Primitive)
	}
	s, err := cast.ToStringE(c.Arg)
	return s, errors.Wrapf(err, "argument of %s", c.Primitive)
}

// argStrings accepts either a list or a single string.
func argStrings(c Case) ([]string, error) {
	if c.Arg == nil {
		return nil, errors.Errorf("primitive %s needs an argument", c.Primitive)
	}
	if s, ok := c.Arg.(string); ok {
		return []string{s}, nil
	}
	ss, err := cast.ToStringSliceE(c.Arg)
	return ss, errors.Wrapf(err, "argument of %s", c.Primitive)
}

func argRune(c Case) (rune, error) {
	s, err := argString(c)
	if err != nil {
		return 0, err
	}
	rs := []rune(s)
	if len(rs) != 1 {
		return 0, errors.Errorf("argument of %s must be a single character, got %q", c.Primitive, s)
	}
	return rs[0], nil
}

func argRuneSet(c Case) ([]rune, error) {
	ss, err := argStrings(c)
	if err != nil {
		return nil, err
	}
	return []rune(strings.Join(ss, "")), nil
}

func runText(name string, c Case) (Outcome, error) {
	str := stream.Runes
	showRune := func(r rune) string { return string(r) }
	switch name {
	case Eof:
		return execute(c.Input, prim.Eof(str), unit, identity), nil
	case String:
		lit, err := argString(c)
		if err != nil {
			return Outcome{}, err
		}
		return execute(c.Input, prim.String(str, lit), identity, identity), nil
	case AnyChar:
		return execute(c.Input, prim.AnyChar(str), showRune, identity), nil
	case Satisfy:
		pname, err := argString(c)
		if err != nil {
			return Outcome{}, err
		}
		f, ok := RunePredicates[pname]
		if !ok {
			return Outcome{}, errors.Errorf("unknown predicate %q", pname)
		}
		return execute(c.Input, prim.Satisfy(str, f), showRune, identity), nil
	case Char:
		r, err := argRune(c)
		if err != nil {
			return Outcome{}, err
		}
		return execute(c.Input, prim.Char(str, r), showRune, identity), nil
	case WhiteSpace:
		return execute(c.Input, prim.WhiteSpaceString(str), identity, identity), nil
	case SkipSpaces:
		return execute(c.Input, prim.SkipSpaces(str), unit, identity), nil
	case OneOf, NoneOf:
		set, err := argRuneSet(c)
		if err != nil {
			return Outcome{}, err
		}
		p := prim.OneOf(str, set)
		if name == NoneOf {
			p = prim.NoneOf(str, set)
		}
		return execute(c.Input, p, showRune, identity), nil
	}
	return Outcome{}, errors.Errorf("primitive %s is not supported on text", name)
}
