// SPDX-License-Identifier: MIT

// Package token defines the lexical categories, source coordinates & tokens of C-like source text.
package token

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type (
	// Coordinate is a zero-based source location.
	//
	// Col counts Unicode codepoints, not bytes.
	Coordinate struct {
		Line int
		Col  int
	}

	// Span delimits consumed source text, End is exclusive.
	Span struct {
		Start Coordinate
		End   Coordinate
	}

	// Token is a lexical unit of the source text.
	Token struct {
		// Text holds the verbatim match for Identifier & Constant tokens, the decoded content for
		// String & Char tokens and is empty otherwise.
		Text string

		Kind  Kind
		Start Coordinate
		End   Coordinate
	}
)

// Compare orders c & o lexicographically by (Line, Col), returning -1, 0 or +1.
func (c Coordinate) Compare(o Coordinate) int {
	if r := compare(c.Line, o.Line); r != 0 {
		return r
	}

	return compare(c.Col, o.Col)
}

// Before reports whether c precedes o.
func (c Coordinate) Before(o Coordinate) bool { return c.Compare(o) < 0 }

func (c Coordinate) String() string { return fmt.Sprintf("%d:%d", c.Line, c.Col) }

// NewSpan creates a Span; it panics when end precedes start.
func NewSpan(start, end Coordinate) Span {
	if end.Before(start) {
		panic(fmt.Sprintf("span end %v precedes start %v", end, start))
	}

	return Span{Start: start, End: end}
}

// String renders same-line spans as `line:colStart-colEnd` & cross-line spans as
// `line:col-line:col`.
func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%d:%d-%d", s.Start.Line, s.Start.Col, s.End.Col)
	}

	return s.Start.String() + "-" + s.End.String()
}

// Contains reports whether c lies within s.
func (s Span) Contains(c Coordinate) bool {
	return s.Start.Compare(c) <= 0 && c.Before(s.End)
}

// Span obtains the source extent of t.
func (t Token) Span() Span { return Span{Start: t.Start, End: t.End} }

func (t Token) String() string {
	if t.Kind.HasPayload() {
		return fmt.Sprintf("%v(%q)@%v", t.Kind, t.Text, t.Span())
	}

	return fmt.Sprintf("%v@%v", t.Kind, t.Span())
}

func compare[T constraints.Integer](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
