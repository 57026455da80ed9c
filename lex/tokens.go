/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package lex

import (
	"unicode"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const quote = '"'

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isNameBegin(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameSuffix(r rune) bool {
	return isNameBegin(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// lexText is the initial state. Whitespace separates tokens and is dropped.
func lexText(l *Lexer) StateFn {
	for {
		switch r := l.Next(); {
		case r == EOF:
			l.Emit(ItemEOF)
			return nil
		case isSpace(r):
			l.AcceptRun(isSpace)
			l.Ignore()
		case isNameBegin(r):
			l.AcceptRun(isNameSuffix)
			l.Emit(ItemName)
		case isDigit(r):
			l.AcceptRun(isDigit)
			l.Emit(ItemNumber)
		case r == quote:
			return lexQuoted
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			l.Emit(ItemPunct)
		default:
			return l.Errorf("Unrecognized character in lexText: %#U", r)
		}
	}
}

// lexQuoted is entered after the opening quote.
func lexQuoted(l *Lexer) StateFn {
	for {
		switch l.Next() {
		case EOF:
			return l.Errorf("Unterminated string")
		case '\\':
			if l.Next() == EOF {
				return l.Errorf("Unterminated string")
			}
		case quote:
			l.Emit(ItemString)
			return lexText
		}
	}
}

// Tokenize lexes input into names, numbers, strings and punctuation. The
// returned slice has no EOF item.
func Tokenize(input string) ([]Item, error) {
	items := NewLexer(input).Run(lexText).Items()
	if n := len(items); n > 0 {
		last := items[n-1]
		switch last.Typ {
		case ItemError:
			return items[:n-1], last.Errorf("%s", last.Val)
		case ItemEOF:
			items = items[:n-1]
		}
	}
	glog.V(3).Infof("Tokenized %d items", len(items))
	return items, nil
}

// MustTokenize is Tokenize for input known to be valid.
func MustTokenize(input string) []Item {
	items, err := Tokenize(input)
	if err != nil {
		panic(errors.Wrapf(err, "while tokenizing %q", input))
	}
	return items
}
