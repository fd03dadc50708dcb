// SPDX-License-Identifier: MIT
package lexer

import (
	"testing"

	"gitlab.com/fisherprime/cclex/token"
)

func TestPatterns_Shared(t *testing.T) {
	if patterns() != patterns() {
		t.Error("patterns() rebuilt the table")
	}
	if New("a").patterns != New("b").patterns {
		t.Error("Lexers do not share the pattern table")
	}
}

func TestPatternTable_Match(t *testing.T) {
	p := patterns()

	tests := []struct {
		name   string
		kind   token.Kind
		window string
		want   int
	}{
		{"keyword", token.KWInt, "int x", 3},
		{"keyword at end", token.KWInt, "int", 3},
		{"keyword needs boundary", token.KWInt, "int2", 0},
		{"keyword anchored", token.KWInt, " int", 0},
		{"punctuation", token.DblAmpersand, "&&&", 2},
		{"punctuation anchored", token.Semicolon, "x;", 0},
		{"quote delimiters are scanned elsewhere", token.DoubleQuote, `"`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Match(tt.kind, tt.window); got != tt.want {
				t.Errorf("patternTable.Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPatternTable_DoubledFirst(t *testing.T) {
	p := patterns()

	for single, dbl := range doubled {
		window := dbl.Spelling()

		if kind, n := p.matchPunct(window); kind != dbl || n != 2 {
			t.Errorf("matchPunct(%q) = %v, %d, want %v", window, kind, n, dbl)
		}
		if kind, n := p.matchPunct(single.Spelling() + " "); kind != single || n != 1 {
			t.Errorf("matchPunct(%q) = %v, %d, want %v", single.Spelling(), kind, n, single)
		}
	}
}

func TestPatternTable_EveryPunctuationReachable(t *testing.T) {
	p := patterns()

	for _, k := range token.Punctuation() {
		if isQuoteKind(k) {
			continue
		}

		if kind, _ := p.matchPunct(k.Spelling()); kind != k {
			t.Errorf("matchPunct(%q) = %v, want %v", k.Spelling(), kind, k)
		}
	}
	for _, k := range token.Keywords() {
		if kind, _ := p.matchKeyword(k.Spelling()); kind != k {
			t.Errorf("matchKeyword(%q) = %v, want %v", k.Spelling(), kind, k)
		}
	}
}

func TestPatternTable_MatchValue(t *testing.T) {
	p := patterns()

	tests := []struct {
		window   string
		wantKind token.Kind
		wantN    int
	}{
		{"_x9 = 1", token.Identifier, 3},
		{"42;", token.Constant, 2},
		{"42x", token.Invalid, 0},
		{"9", token.Constant, 1},
		{"#", token.Invalid, 0},
	}
	for _, tt := range tests {
		t.Run(tt.window, func(t *testing.T) {
			kind, n := p.matchValue(tt.window)
			if kind != tt.wantKind || n != tt.wantN {
				t.Errorf("matchValue() = %v, %d, want %v, %d", kind, n, tt.wantKind, tt.wantN)
			}
		})
	}
}
