// SPDX-License-Identifier: MIT
package cclex

// REF: https://github.com/db47h/lex/blob/master/token/file_test.go

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"gitlab.com/fisherprime/cclex/lexer"
)

// Report writes a diagnostic for err, raised while lexing src, to w.
//
// A *lexer.Error is rendered as:
//
//	name:line:colStart-colEnd: error: description "text"
//	|source line
//	|     ^^^
//
// Any other error is rendered on a single line.
func Report(w io.Writer, name, src string, err error) (wErr error) {
	var e *lexer.Error
	if !errors.As(err, &e) {
		_, wErr = fmt.Fprintf(w, "%s: error: %v\n", name, err)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s:%v: error: %v", name, e.Span, e.Err)
	if e.Text != "" {
		fmt.Fprintf(&b, " %q", e.Text)
	}
	b.WriteByte('\n')

	line := []rune(sourceLine(src, e.Span.Start.Line))
	start := min(e.Span.Start.Col, len(line))

	end := len(line)
	if e.Span.End.Line == e.Span.Start.Line {
		end = min(e.Span.End.Col, len(line))
	}

	fmt.Fprintf(&b, "|%s\n|", string(line))
	for _, r := range line[:start] {
		if r == '\t' {
			b.WriteRune('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runeWidth(r)))
	}
	b.WriteString(strings.Repeat("^", max(cellWidth(line[start:end]), 1)))
	b.WriteByte('\n')

	_, wErr = io.WriteString(w, b.String())

	return
}

// sourceLine obtains the zero-based line of src without its terminator.
func sourceLine(src string, line int) string {
	for ; line > 0; line-- {
		index := strings.IndexByte(src, '\n')
		if index < 0 {
			return ""
		}
		src = src[index+1:]
	}

	if index := strings.IndexByte(src, '\n'); index >= 0 {
		src = src[:index]
	}

	return strings.TrimSuffix(src, "\r")
}

func cellWidth(rs []rune) (w int) {
	for _, r := range rs {
		w += runeWidth(r)
	}

	return
}

// runeWidth computes the width in text cells of r, supposing a monospaced font.
func runeWidth(r rune) int {
	if !unicode.IsGraphic(r) {
		return 0
	}

	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	default:
		// EastAsianAmbiguous depends on the user locale, 1 outside of CJK ones.
		return 1
	}
}
