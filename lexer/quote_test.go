// SPDX-License-Identifier: MIT
package lexer

import (
	"testing"

	"gitlab.com/fisherprime/cclex/token"
)

func TestScanQuoted(t *testing.T) {
	tests := []struct {
		name   string
		window string
		want   literal
	}{
		{
			name:   "string",
			window: `"abc" rest`,
			want:   literal{kind: token.String, content: "abc", raw: `"abc"`},
		},
		{
			name:   "empty string",
			window: `""`,
			want:   literal{kind: token.String, raw: `""`},
		},
		{
			name:   "escapes",
			window: `"\"\'\\\n\t\q\0"`,
			want:   literal{kind: token.String, content: "\"'\\\n\tq\x00", raw: `"\"\'\\\n\t\q\0"`},
		},
		{
			name:   "other quote is content",
			window: `"it's"`,
			want:   literal{kind: token.String, content: "it's", raw: `"it's"`},
		},
		{
			name:   "CRLF splice",
			window: "\"a\\\r\nb\"",
			want:   literal{kind: token.String, content: "ab", raw: "\"a\\\r\nb\""},
		},
		{
			name:   "char",
			window: `'x';`,
			want:   literal{kind: token.Char, content: "x", raw: `'x'`},
		},
		{
			name:   "escaped char quote",
			window: `'\''`,
			want:   literal{kind: token.Char, content: "'", raw: `'\''`},
		},
		{
			name:   "multibyte char",
			window: `'é'`,
			want:   literal{kind: token.Char, content: "é", raw: `'é'`},
		},
		{
			name:   "empty char",
			window: `''`,
			want:   literal{kind: token.Char, raw: `''`, err: ErrInvalidCharLiteral},
		},
		{
			name:   "long char",
			window: `'\nx'`,
			want:   literal{kind: token.Char, content: "\nx", raw: `'\nx'`, err: ErrInvalidCharLiteral},
		},
		{
			name:   "unterminated at end",
			window: `"abc`,
			want:   literal{kind: token.String, raw: `"abc`, err: ErrUnterminatedLiteral},
		},
		{
			name:   "unterminated after backslash",
			window: `"abc\`,
			want:   literal{kind: token.String, raw: `"abc\`, err: ErrUnterminatedLiteral},
		},
		{
			name:   "escaped closing quote",
			window: `"abc\"`,
			want:   literal{kind: token.String, raw: `"abc\"`, err: ErrUnterminatedLiteral},
		},
		{
			name:   "unterminated at newline",
			window: "'a\n'",
			want:   literal{kind: token.Char, raw: "'a", err: ErrUnterminatedLiteral},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scanQuoted(tt.window); got != tt.want {
				t.Errorf("scanQuoted() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
