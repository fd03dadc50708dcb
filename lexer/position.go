// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gitlab.com/fisherprime/cclex/token"
)

// Tracker follows the cursor through a source text.
//
// The codepoint offset, byte offset & Coordinate always refer to the same point; they only move
// forward.
type Tracker struct {
	text string

	offset     int // Codepoints consumed.
	byteOffset int // Bytes consumed, used to slice text.
	coord      token.Coordinate
}

// NewTracker creates a Tracker at the start of text.
func NewTracker(text string) *Tracker { return &Tracker{text: text} }

// Reset moves the Tracker to the start of text.
func (t *Tracker) Reset(text string) { *t = Tracker{text: text} }

// Advance consumes text, which must be the source immediately following the cursor.
//
// Every newline increments the line & resets the column, any other codepoint increments the column.
func (t *Tracker) Advance(consumed string) {
	if !strings.HasPrefix(t.text[t.byteOffset:], consumed) {
		panic(fmt.Sprintf("tracker desynchronized at byte %d: %q does not follow the cursor",
			t.byteOffset, consumed))
	}

	for _, r := range consumed {
		t.offset++

		if r == '\n' {
			t.coord.Line++
			t.coord.Col = 0

			continue
		}
		t.coord.Col++
	}
	t.byteOffset += len(consumed)
}

// Coordinate obtains the cursor's line & column.
func (t *Tracker) Coordinate() token.Coordinate { return t.coord }

// Offset obtains the cursor's codepoint offset.
func (t *Tracker) Offset() int { return t.offset }

// ByteOffset obtains the cursor's byte offset.
func (t *Tracker) ByteOffset() int { return t.byteOffset }

// Rest obtains the unconsumed text.
func (t *Tracker) Rest() string { return t.text[t.byteOffset:] }

// AtEOF reports whether the whole text has been consumed.
func (t *Tracker) AtEOF() bool { return t.byteOffset >= len(t.text) }

// Peek obtains the codepoint under the cursor & its size, utf8.RuneError & 0 at the end.
func (t *Tracker) Peek() (rune, int) { return utf8.DecodeRuneInString(t.Rest()) }
