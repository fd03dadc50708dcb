// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"

	"gitlab.com/fisherprime/cclex/token"
)

// Lexing errors.
var (
	ErrUnrecognizedToken   = errors.New("unrecognized token")
	ErrUnterminatedLiteral = errors.New("unterminated literal")
	ErrInvalidCharLiteral  = errors.New("invalid character literal")
	ErrUnterminatedComment = errors.New("unterminated comment")
)

// Error is a recoverable lexical error located in the source text.
//
// Err holds one of the lexing error sentinels, use errors.Is to classify an Error.
type Error struct {
	Err  error
	Text string // Offending source text, set for ErrUnrecognizedToken.
	Span token.Span
}

func (e *Error) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("%v %q at %v", e.Err, e.Text, e.Span)
	}

	return fmt.Sprintf("%v at %v", e.Err, e.Span)
}

func (e *Error) Unwrap() error { return e.Err }
