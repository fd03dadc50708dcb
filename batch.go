// SPDX-License-Identifier: MIT
package cclex

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/panjf2000/ants/v2"

	"gitlab.com/fisherprime/cclex/lexer"
	"gitlab.com/fisherprime/cclex/token"
)

type (
	// Source is a named translation unit.
	Source struct {
		Name string
		Text string
	}

	// Result holds the tokens & lexical errors of a Source, both in source order.
	Result struct {
		Name   string
		Tokens []token.Token
		Errs   []error
	}
)

// TokenizeAll tokenizes every Source with its own Lexer, up to cfg.PoolSize at a time.
//
// Lexing continues past lexical errors, which are collected per Result. Results follow the order of
// sources. A panicking Lexer is reported wrapped in ErrPanicked without affecting other sources.
func TokenizeAll(ctx context.Context, cfg *Config, sources ...Source) (results []Result, err error) {
	if cfg == nil {
		cfg = DefConfig()
	}
	cfg.Validate()

	results = make([]Result, len(sources))
	if len(sources) == 0 {
		return
	}

	pool, err := ants.NewPool(cfg.PoolSize, ants.WithLogger(cfg.Logger))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPool, err)
	}
	defer pool.Release()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	opts := cfg.lexerOptions()

	for index := range sources {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()

			res, tErr := tokenize(ctx, cfg, sources[index], opts)
			results[index] = res
			if tErr != nil {
				mu.Lock()
				errs = append(errs, tErr)
				mu.Unlock()
			}
		}); err != nil {
			wg.Done()
			wg.Wait()

			return nil, err
		}
	}
	wg.Wait()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	err = errors.Join(errs...)

	return
}

// tokenize drains a fresh Lexer over src.
func tokenize(ctx context.Context, cfg *Config, src Source, opts []lexer.Option) (res Result, err error) {
	res.Name = src.Name
	l := lexer.New(src.Text, opts...)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s %w: %v", src.Name, ErrPanicked, r)
			cfg.Logger.Debugf("lexer state: %s", spew.Sdump(l.Coordinate(), l.Offset()))
		}
	}()

	for tok, lErr := range l.All() {
		if ctx.Err() != nil {
			return
		}

		if lErr != nil {
			res.Errs = append(res.Errs, lErr)
			continue
		}
		res.Tokens = append(res.Tokens, tok)
	}

	if cfg.Debug {
		cfg.Logger.Debugf("%s: %d tokens, %d errors", src.Name, len(res.Tokens), len(res.Errs))
	}

	return
}
