// SPDX-License-Identifier: MIT
package lexer

import (
	"testing"

	"gitlab.com/fisherprime/cclex/token"
)

func TestTracker_Advance(t *testing.T) {
	type want struct {
		coord      token.Coordinate
		offset     int
		byteOffset int
	}

	tests := []struct {
		name  string
		text  string
		steps []string
		want  want
	}{
		{
			name:  "single line",
			text:  "int x;",
			steps: []string{"int", " ", "x"},
			want:  want{token.Coordinate{Line: 0, Col: 5}, 5, 5},
		},
		{
			name:  "newline resets column",
			text:  "a\n  b",
			steps: []string{"a", "\n  "},
			want:  want{token.Coordinate{Line: 1, Col: 2}, 4, 4},
		},
		{
			name:  "multi line step",
			text:  "\"x\\\n\\\nyz\"",
			steps: []string{"\"x\\\n\\\nyz\""},
			want:  want{token.Coordinate{Line: 2, Col: 3}, 9, 9},
		},
		{
			name:  "codepoints not bytes",
			text:  "世界 x",
			steps: []string{"世界", " "},
			want:  want{token.Coordinate{Line: 0, Col: 3}, 3, 7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(tt.text)
			for _, step := range tt.steps {
				tr.Advance(step)
			}

			if got := tr.Coordinate(); got != tt.want.coord {
				t.Errorf("Tracker.Coordinate() = %v, want %v", got, tt.want.coord)
			}
			if got := tr.Offset(); got != tt.want.offset {
				t.Errorf("Tracker.Offset() = %v, want %v", got, tt.want.offset)
			}
			if got := tr.ByteOffset(); got != tt.want.byteOffset {
				t.Errorf("Tracker.ByteOffset() = %v, want %v", got, tt.want.byteOffset)
			}
		})
	}
}

func TestTracker_AdvanceDesync(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		consumed string
	}{
		{"mismatched text", "abc", "abd"},
		{"beyond the end", "ab", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Tracker.Advance() did not panic")
				}
			}()

			NewTracker(tt.text).Advance(tt.consumed)
		})
	}
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker("a\nb")
	tr.Advance("a\n")

	tr.Reset("xy")
	if tr.Coordinate() != (token.Coordinate{}) || tr.Offset() != 0 || tr.Rest() != "xy" {
		t.Errorf("Tracker.Reset() left %+v", tr)
	}

	tr.Advance("xy")
	if !tr.AtEOF() {
		t.Error("Tracker.AtEOF() = false after consuming the text")
	}
	if r, n := tr.Peek(); n != 0 {
		t.Errorf("Tracker.Peek() = %q, %d at EOF", r, n)
	}
}
