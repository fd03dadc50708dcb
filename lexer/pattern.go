// SPDX-License-Identifier: MIT
package lexer

import (
	"regexp"
	"strings"
	"sync"

	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/cclex/token"
)

type (
	// Matcher recognizes a token at the start of a source window.
	Matcher interface {
		// Match returns the byte length of the prefix of window it recognizes, 0 for no match.
		Match(window string) int
	}

	literalMatcher string

	regexpMatcher struct{ re *regexp.Regexp }

	entry struct {
		kind token.Kind
		m    Matcher
	}

	// patternTable maps each fixed token.Kind to its Matcher.
	//
	// Entries are bucketed by leading byte, buckets are ordered for dispatch.
	patternTable struct {
		keywords [256][]entry
		punct    [256][]entry

		identifier Matcher
		constant   Matcher

		byKind map[token.Kind]Matcher
	}
)

// doubled maps single character operators to their repeated form.
var doubled = map[token.Kind]token.Kind{
	token.Plus:       token.DblPlus,
	token.Dash:       token.DblDash,
	token.Star:       token.DblStar,
	token.Slash:      token.DblSlash,
	token.Ampersand:  token.DblAmpersand,
	token.Pipe:       token.DblPipe,
	token.Equals:     token.DblEquals,
	token.LeftCarat:  token.DblLeftCarat,
	token.RightCarat: token.DblRightCarat,
}

var (
	table     *patternTable
	tableOnce sync.Once
)

func (m literalMatcher) Match(window string) int {
	if strings.HasPrefix(window, string(m)) {
		return len(m)
	}

	return 0
}

func (m regexpMatcher) Match(window string) int {
	if loc := m.re.FindStringIndex(window); loc != nil {
		return loc[1]
	}

	return 0
}

// patterns obtains the process-wide pattern table, building it on first use.
func patterns() *patternTable {
	tableOnce.Do(func() { table = buildPatternTable() })

	return table
}

func buildPatternTable() *patternTable {
	t := &patternTable{
		identifier: regexpMatcher{regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)},
		constant:   regexpMatcher{regexp.MustCompile(`^[0-9]+\b`)},
		byKind:     make(map[token.Kind]Matcher),
	}

	for _, k := range token.Keywords() {
		spelling := k.Spelling()
		m := regexpMatcher{regexp.MustCompile(`^` + regexp.QuoteMeta(spelling) + `\b`)}

		t.byKind[k] = m
		t.keywords[spelling[0]] = append(t.keywords[spelling[0]], entry{k, m})
	}

	for _, k := range token.Punctuation() {
		if isQuoteKind(k) {
			// Handled by the quotation scanner.
			continue
		}

		spelling := k.Spelling()
		m := literalMatcher(spelling)

		t.byKind[k] = m
		t.punct[spelling[0]] = append(t.punct[spelling[0]], entry{k, m})
	}

	// Doubled forms are tested first, then other compound forms, then the single character.
	for index := range t.punct {
		slices.SortStableFunc(t.punct[index], func(a, b entry) int { return punctRank(a.kind) - punctRank(b.kind) })
	}

	return t
}

// matchKeyword tests the keyword patterns, returning token.Invalid when none match.
func (t *patternTable) matchKeyword(window string) (token.Kind, int) {
	return matchBucket(t.keywords[window[0]], window)
}

// matchPunct tests the punctuation patterns longest form first.
func (t *patternTable) matchPunct(window string) (token.Kind, int) {
	return matchBucket(t.punct[window[0]], window)
}

// matchValue tests the identifier & constant patterns.
func (t *patternTable) matchValue(window string) (token.Kind, int) {
	if n := t.identifier.Match(window); n > 0 {
		return token.Identifier, n
	}
	if n := t.constant.Match(window); n > 0 {
		return token.Constant, n
	}

	return token.Invalid, 0
}

// Match tests a single fixed Kind's pattern against the window.
func (t *patternTable) Match(k token.Kind, window string) int {
	m, ok := t.byKind[k]
	if !ok {
		return 0
	}

	return m.Match(window)
}

func matchBucket(bucket []entry, window string) (token.Kind, int) {
	for index := range bucket {
		if n := bucket[index].m.Match(window); n > 0 {
			return bucket[index].kind, n
		}
	}

	return token.Invalid, 0
}

func punctRank(k token.Kind) int {
	switch {
	case len(k.Spelling()) == 1:
		return 2
	case isDoubled(k):
		return 0
	default:
		return 1
	}
}

func isDoubled(k token.Kind) bool {
	for _, d := range doubled {
		if d == k {
			return true
		}
	}

	return false
}

func isQuoteKind(k token.Kind) bool { return k == token.DoubleQuote || k == token.SingleQuote }
