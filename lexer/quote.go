// SPDX-License-Identifier: MIT
package lexer

// REF: https://github.com/db47h/lex/blob/master/state/state.go

import (
	"strings"
	"unicode/utf8"

	"gitlab.com/fisherprime/cclex/token"
)

// literal is the outcome of scanning a quoted literal.
type literal struct {
	err     error      // nil, ErrUnterminatedLiteral or ErrInvalidCharLiteral.
	content string     // Decoded content.
	raw     string     // Consumed source text, delimiters included.
	kind    token.Kind // token.String or token.Char.
}

// scanQuoted scans the string or character literal opened by the first codepoint of window.
//
// An unescaped newline or the end of window before the closing delimiter terminates the scan with
// ErrUnterminatedLiteral, the newline is not consumed. A backslash followed by a newline is a line
// splice & contributes nothing to the content.
func scanQuoted(window string) (lit literal) {
	quote, size := utf8.DecodeRuneInString(window)

	lit.kind = token.String
	if quote == '\'' {
		lit.kind = token.Char
	}

	var (
		buffer strings.Builder
		count  int
	)

	index := size
	for {
		if index >= len(window) {
			lit.raw, lit.err = window, ErrUnterminatedLiteral
			return
		}

		r, rSize := utf8.DecodeRuneInString(window[index:])
		switch r {
		case quote:
			index += rSize
			lit.raw, lit.content = window[:index], buffer.String()

			if lit.kind == token.Char && count != 1 {
				lit.err = ErrInvalidCharLiteral
			}

			return
		case '\n':
			lit.raw, lit.err = window[:index], ErrUnterminatedLiteral
			return
		case '\\':
			index += rSize
			if index >= len(window) {
				lit.raw, lit.err = window, ErrUnterminatedLiteral
				return
			}

			escaped, eSize := utf8.DecodeRuneInString(window[index:])
			index += eSize

			switch escaped {
			case '\n':
				continue
			case '\r':
				if index < len(window) && window[index] == '\n' {
					index++
				}
				continue
			}

			buffer.WriteRune(unescape(escaped))
			count++
		default:
			index += rSize

			buffer.WriteRune(r)
			count++
		}
	}
}

// unescape decodes the character following a backslash; unknown escapes decode to themselves.
func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	case 'a':
		return '\a'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'v':
		return '\v'
	default:
		// `"`, `'`, `\`, `?` & anything else.
		return r
	}
}
