// SPDX-License-Identifier: MIT

// Package lexer converts C-like source text into a finite stream of tokens.
package lexer

// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go
// REF: https://github.com/db47h/lex

import (
	"context"
	"errors"
	"io"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/cclex/token"
)

type (
	// stateFn type for the next function to be executed within a single Next call.
	stateFn func(*Lexer) stateFn

	// Lexer produces tokens from a source text on demand.
	//
	// A Lexer is not safe for concurrent use; independent Lexers share only the immutable pattern
	// table.
	Lexer struct {
		logger   logrus.FieldLogger
		debug    bool
		comments bool

		patterns *patternTable
		pos      Tracker

		// done is set once the end of input has been reached.
		done bool

		// Result of the running Next call.
		tok token.Token
		err error
	}
)

const defBufferSize = 10

// Improves on performance compared to ORs.
var whitespace = [256]bool{
	' ':  true,
	'\t': true,
	'\r': true,
	'\n': true,
}

// New creates a Lexer positioned at the start of source.
func New(source string, opts ...Option) *Lexer {
	l := &Lexer{
		logger:   logrus.New(),
		patterns: patterns(),
	}
	l.pos.Reset(source)

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// SetText retargets the Lexer at source, resetting its position.
func (l *Lexer) SetText(source string) {
	l.pos.Reset(source)
	l.done = false
}

// Coordinate obtains the Lexer's current line & column.
func (l *Lexer) Coordinate() token.Coordinate { return l.pos.Coordinate() }

// Offset obtains the Lexer's current codepoint offset.
func (l *Lexer) Offset() int { return l.pos.Offset() }

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// Next produces the next token.
//
// io.EOF is returned once the input is exhausted, & on every later call. Lexical errors are of type
// *Error; the offending text is consumed so that the following call makes progress.
func (l *Lexer) Next() (token.Token, error) {
	if l.done {
		return token.Token{}, io.EOF
	}

	l.tok, l.err = token.Token{}, nil
	for state := lexWhitespace; state != nil; {
		state = state(l)
	}

	return l.tok, l.err
}

// All exposes the remaining tokens as a sequence, lexical errors included.
//
// The sequence ends at the end of input & yields nothing once exhausted.
func (l *Lexer) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := l.Next()
			if errors.Is(err, io.EOF) {
				return
			}

			if !yield(tok, err) {
				return
			}
		}
	}
}

// Collect drains the Lexer, gathering tokens & lexical errors separately.
func (l *Lexer) Collect() (toks []token.Token, errs []error) {
	for tok, err := range l.All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		toks = append(toks, tok)
	}

	return
}

// Items streams the remaining tokens over a channel, closed at the end of input or on ctx
// cancellation.
func (l *Lexer) Items(ctx context.Context) <-chan Item {
	c := make(chan Item, defBufferSize)

	go func() {
		defer close(c)

		for tok, err := range l.All() {
			select {
			case <-ctx.Done():
				return
			case c <- Item{Token: tok, Err: err}:
			}
		}
	}()

	return c
}

// lexWhitespace skips whitespace &, when enabled, comments.
func lexWhitespace(l *Lexer) stateFn {
	for !l.pos.AtEOF() {
		rest := l.pos.Rest()

		switch {
		case whitespace[rest[0]]:
			n := 1
			for n < len(rest) && whitespace[rest[n]] {
				n++
			}
			l.pos.Advance(rest[:n])
		case l.comments && strings.HasPrefix(rest, "//"):
			end := strings.IndexByte(rest, '\n')
			if end < 0 {
				end = len(rest)
			}
			l.pos.Advance(rest[:end])
		case l.comments && strings.HasPrefix(rest, "/*"):
			end := strings.Index(rest[2:], "*/")
			if end < 0 {
				return l.fail(ErrUnterminatedComment, "", rest)
			}
			l.pos.Advance(rest[:end+4])
		default:
			return lexToken
		}
	}

	l.done, l.err = true, io.EOF

	return nil
}

// lexToken dispatches on the text under the cursor.
//
// Quotes win over everything, keywords over identifiers & compound operators over their single
// character prefix.
func lexToken(l *Lexer) stateFn {
	rest := l.pos.Rest()

	if rest[0] == '"' || rest[0] == '\'' {
		return lexQuoted
	}

	if kind, n := l.patterns.matchKeyword(rest); n > 0 {
		return l.emit(kind, "", rest[:n])
	}
	if kind, n := l.patterns.matchPunct(rest); n > 0 {
		return l.emit(kind, "", rest[:n])
	}
	if kind, n := l.patterns.matchValue(rest); n > 0 {
		return l.emit(kind, rest[:n], rest[:n])
	}

	return lexUnrecognized
}

// lexQuoted search for a string or character literal.
//
// Quotes within the literal are escaped content, the state is never reentered.
func lexQuoted(l *Lexer) stateFn {
	lit := scanQuoted(l.pos.Rest())
	if lit.err != nil {
		return l.fail(lit.err, "", lit.raw)
	}

	return l.emit(lit.kind, lit.content, lit.raw)
}

// lexUnrecognized consumes the run of text no pattern matches.
//
// The run ends at whitespace, a quote or a punctuation match.
func lexUnrecognized(l *Lexer) stateFn {
	rest := l.pos.Rest()

	_, n := utf8.DecodeRuneInString(rest)
	for n < len(rest) {
		window := rest[n:]
		if whitespace[window[0]] || window[0] == '"' || window[0] == '\'' {
			break
		}
		if _, m := l.patterns.matchPunct(window); m > 0 {
			break
		}

		_, size := utf8.DecodeRuneInString(window)
		n += size
	}

	return l.fail(ErrUnrecognizedToken, rest[:n], rest[:n])
}

// emit records a token spanning consumed.
func (l *Lexer) emit(kind token.Kind, text, consumed string) stateFn {
	start := l.pos.Coordinate()
	l.pos.Advance(consumed)

	l.tok = token.Token{Kind: kind, Text: text, Start: start, End: l.pos.Coordinate()}
	if l.debug {
		l.logger.WithFields(logrus.Fields{
			"kind": kind,
			"text": text,
			"span": l.tok.Span().String(),
		}).Debug("lexed token")
	}

	return nil
}

// fail records a lexical error spanning consumed.
func (l *Lexer) fail(err error, text, consumed string) stateFn {
	start := l.pos.Coordinate()
	l.pos.Advance(consumed)

	e := &Error{Err: err, Text: text, Span: token.NewSpan(start, l.pos.Coordinate())}
	l.err = e
	if l.debug {
		l.logger.WithFields(logrus.Fields{
			"text": text,
			"span": e.Span.String(),
		}).Debugf("lexing error: %v", err)
	}

	return nil
}
