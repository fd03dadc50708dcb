// SPDX-License-Identifier: MIT

// Package cclex tokenizes C-like translation units, in bulk, & renders lexical diagnostics.
//
// The tokenizer itself lives in the lexer package; this package runs independent lexers over many
// sources in parallel.
package cclex

import (
	"errors"
	"runtime"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/cclex/lexer"
)

type (
	// Config defines configuration options for TokenizeAll.
	Config struct {
		// Logger for lexing & pool messages.
		//
		// Preferring a public field to allow for sharing.
		Logger   logrus.FieldLogger
		Debug    bool
		Comments bool

		// PoolSize caps the number of sources tokenized concurrently.
		PoolSize int
	}
)

// Batch errors.
var (
	ErrPanicked = errors.New("recovery from panic")
	ErrPool     = errors.New("unable to create worker pool")
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// DefConfig obtains the package's default Config.
func DefConfig() *Config {
	return &Config{
		Logger:   fLogger,
		PoolSize: runtime.GOMAXPROCS(0),
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = fLogger
	}
	if c.PoolSize < 1 {
		c.PoolSize = runtime.GOMAXPROCS(0)
	}
}

func (c *Config) lexerOptions() []lexer.Option {
	lc := lexer.Config{Logger: c.Logger, Debug: c.Debug, Comments: c.Comments}

	return lc.Options()
}
