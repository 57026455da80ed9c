/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package lex turns text into positioned tokens. A slice of tokens is itself
// parser input through stream.List.
package lex

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/hypermodeinc/parsec/pos"
	"github.com/hypermodeinc/parsec/stream"
)

const EOF = -1

// ItemType is the kind of a token.
type ItemType int

const (
	ItemEOF   ItemType = iota
	ItemError          // error
	ItemName           // identifier
	ItemNumber         // run of decimal digits
	ItemString         // double quoted string, quotes included
	ItemPunct          // single punctuation or symbol rune
)

var itemNames = map[ItemType]string{
	ItemEOF:    "eof",
	ItemError:  "error",
	ItemName:   "name",
	ItemNumber: "number",
	ItemString: "string",
	ItemPunct:  "punct",
}

func (t ItemType) String() string {
	if s, ok := itemNames[t]; ok {
		return s
	}
	return fmt.Sprintf("item(%d)", int(t))
}

// ParseItemType is the inverse of ItemType.String.
func ParseItemType(s string) (ItemType, bool) {
	for t, name := range itemNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

// Item is a token with the positions it starts at and ends before.
type Item struct {
	Typ   ItemType
	Val   string
	Start pos.Position
	End   pos.Position
}

var _ stream.Token[Item] = Item{}

// Equal compares type and value. Positions are ignored, so that a literal
// token list built by hand matches lexed input.
func (i Item) Equal(o Item) bool {
	return i.Typ == o.Typ && i.Val == o.Val
}

// UpdatePos returns the position right after the item in the source.
func (i Item) UpdatePos(pos.Position) pos.Position {
	return i.End
}

func (i Item) String() string {
	switch i.Typ {
	case ItemEOF:
		return "EOF"
	}
	return fmt.Sprintf("%v %q", i.Typ, i.Val)
}

// Errorf returns an error prefixed with the item's location.
func (i Item) Errorf(format string, args ...interface{}) error {
	return errors.Errorf("line %d column %d: "+format,
		append([]interface{}{i.Start.Line, i.Start.Column}, args...)...)
}

// StateFn represents the state of the scanner as a function that
// returns the next state.
type StateFn func(*Lexer) StateFn

type Lexer struct {
	Input string // string being scanned.
	Start int    // Start offset of this item.
	Pos   int    // current offset.
	Width int    // Width of last rune read from input.

	startPos pos.Position // position of Start.
	curPos   pos.Position // position of Pos.
	prevPos  pos.Position // position before the last Next, for Backup.
	items    []Item
}

func NewLexer(input string) *Lexer {
	l := &Lexer{}
	l.Reset(input)
	return l
}

// Reset points the lexer at input and drops all items.
func (l *Lexer) Reset(input string) {
	*l = Lexer{
		Input:    input,
		startPos: pos.Initial,
		curPos:   pos.Initial,
		prevPos:  pos.Initial,
		items:    l.items[:0],
	}
}

func (l *Lexer) Run(f StateFn) *Lexer {
	for state := f; state != nil; {
		state = state(l)
	}
	return l
}

// Items returns everything emitted so far.
func (l *Lexer) Items() []Item {
	return l.items
}

// Position is the position of the next rune to be read.
func (l *Lexer) Position() pos.Position {
	return l.curPos
}

// Errorf emits an error item and stops the lexer.
func (l *Lexer) Errorf(format string, args ...interface{}) StateFn {
	l.items = append(l.items, Item{
		Typ:   ItemError,
		Val:   fmt.Sprintf(format, args...),
		Start: l.startPos,
		End:   l.curPos,
	})
	return nil
}

// Emit emits the item with it's type information.
func (l *Lexer) Emit(t ItemType) {
	if t != ItemEOF && l.Pos < l.Start {
		// Let ItemEOF go through.
		return
	}
	l.items = append(l.items, Item{
		Typ:   t,
		Val:   l.Input[l.Start:l.Pos],
		Start: l.startPos,
		End:   l.curPos,
	})
	l.Ignore()
}

// Next reads the next rune from the Input, sets the Width and advances Pos.
func (l *Lexer) Next() (result rune) {
	l.prevPos = l.curPos
	if l.Pos >= len(l.Input) {
		l.Width = 0
		return EOF
	}
	r, w := utf8.DecodeRuneInString(l.Input[l.Pos:])
	l.Width = w
	l.Pos += l.Width
	l.curPos = pos.UpdateRune(l.curPos, r)
	return r
}

// Backup undoes the last Next. Only one step of backup is supported.
func (l *Lexer) Backup() {
	l.Pos -= l.Width
	l.curPos = l.prevPos
	l.Width = 0
}

func (l *Lexer) Peek() rune {
	r := l.Next()
	l.Backup()
	return r
}

// Ignore skips everything read since the last emitted item.
func (l *Lexer) Ignore() {
	l.Start = l.Pos
	l.startPos = l.curPos
}

// CheckRune is predicate signature for accepting valid runes on input.
type CheckRune func(r rune) bool

// AcceptRun accepts tokens based on CheckRune
// untill it returns false or EOF is reached.
// Returns last rune accepted and total no of runes accepted.
func (l *Lexer) AcceptRun(c CheckRune) (lastr rune, nAccRunes int) {
	for {
		r := l.Next()
		if r == EOF || !c(r) {
			break
		}
		nAccRunes++
		lastr = r
	}
	l.Backup()
	return lastr, nAccRunes
}

// AcceptUntil accepts tokens based on CheckRune
// till it returns true or EOF is reached.
func (l *Lexer) AcceptUntil(c CheckRune) {
	for {
		r := l.Next()
		if r == EOF || c(r) {
			break
		}
	}
	l.Backup()
}
