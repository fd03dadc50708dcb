// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Lexer's operations.
	Config struct {
		Logger logrus.FieldLogger
		Debug  bool

		// Comments enables skipping `//` & `/* */` comments as whitespace.
		Comments bool
	}
)

// DefaultConfig configures the Lexer's default Config.
func DefaultConfig() *Config {
	return &Config{
		Logger: logrus.New(),
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
}

// Options converts the Config into Lexer options.
func (c *Config) Options() []Option {
	c.Validate()

	return []Option{WithLogger(c.Logger), WithDebug(c.Debug), WithComments(c.Comments)}
}
