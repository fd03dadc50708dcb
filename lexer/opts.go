// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

// Option defines the Lexer functional option type
type Option func(*Lexer)

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithComments configures comment skipping.
func WithComments(comments bool) Option { return func(l *Lexer) { l.comments = comments } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(l *Lexer) {
		if logger != nil {
			l.logger = logger
		}
	}
}
