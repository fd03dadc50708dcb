// SPDX-License-Identifier: MIT
package lexer

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfig_Options(t *testing.T) {
	logger := logrus.New()

	tests := []struct {
		name string
		cfg  *Config
		want func(*Lexer) bool
	}{
		{
			name: "defaults",
			cfg:  DefaultConfig(),
			want: func(l *Lexer) bool { return l.logger != nil && !l.debug && !l.comments },
		},
		{
			name: "missing logger",
			cfg:  &Config{Debug: true},
			want: func(l *Lexer) bool { return l.logger != nil && l.debug },
		},
		{
			name: "configured",
			cfg:  &Config{Logger: logger, Comments: true},
			want: func(l *Lexer) bool { return l.logger == logger && l.comments },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if l := New("", tt.cfg.Options()...); !tt.want(l) {
				t.Errorf("Config.Options() produced %+v", l)
			}
		})
	}
}
