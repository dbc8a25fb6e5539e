// internal/engine/patterns/patterns.go

// Package patterns holds the precompiled text-matching resources used by
// the coverage checkers: one combined exclusion matcher per trade, plus
// the classification code maps in both directions. A Library is built
// once at startup and is safe for unsynchronized concurrent reads; it is
// never rebuilt per call because compiling the alternations is the
// expensive step.
package patterns

import (
	"regexp"
	"sort"
	"strings"

	commonerrors "coi-compliance-engine/internal/common/errors"
	"coi-compliance-engine/internal/models"
	"coi-compliance-engine/pkg/phrasebook"
)

// MatchResult reports whether any exclusion phrase matched and which
// phrases did, for explanation purposes.
type MatchResult struct {
	Matched bool
	Phrases []string
}

// Matcher is the precompiled OR-combination of all exclusion phrases
// known for one trade.
type Matcher struct {
	trade    string
	phrases  []string
	combined *regexp.Regexp
	perOne   []*regexp.Regexp
}

// Trade returns the normalized trade this matcher covers.
func (m *Matcher) Trade() string { return m.trade }

// Phrases returns the phrase set the matcher was compiled from.
func (m *Matcher) Phrases() []string {
	return append([]string(nil), m.phrases...)
}

// Match evaluates free text against the combined matcher. The combined
// alternation gives the fast reject; phrase attribution only runs when
// it hits.
func (m *Matcher) Match(text string) MatchResult {
	if m == nil || text == "" || !m.combined.MatchString(text) {
		return MatchResult{}
	}
	var matched []string
	for i, re := range m.perOne {
		if re.MatchString(text) {
			matched = append(matched, m.phrases[i])
		}
	}
	return MatchResult{Matched: true, Phrases: matched}
}

// Library is the process-lifetime, read-only pattern store. Construct it
// once and pass it by reference into the checkers and orchestrator.
type Library struct {
	matchers     map[string]*Matcher
	codesByTrade map[string][]int
	tradesByCode map[int][]string
}

// NewLibrary compiles a Library from a validated phrase book. The code
// maps are built in both directions here so per-call lookups are single
// map reads rather than linear scans.
func NewLibrary(book *phrasebook.Book) (*Library, error) {
	if err := book.Validate(); err != nil {
		return nil, err
	}

	lib := &Library{
		matchers:     make(map[string]*Matcher, len(book.Trades)),
		codesByTrade: make(map[string][]int, len(book.Trades)),
		tradesByCode: make(map[int][]string),
	}

	for _, entry := range book.Trades {
		trade := models.NormalizeTrade(entry.Trade)

		if len(entry.ExclusionPhrases) > 0 {
			m, err := compileMatcher(trade, entry.ExclusionPhrases)
			if err != nil {
				return nil, err
			}
			lib.matchers[trade] = m
		}

		if len(entry.ClassificationCodes) > 0 {
			codes := append([]int(nil), entry.ClassificationCodes...)
			sort.Ints(codes)
			lib.codesByTrade[trade] = codes
			for _, code := range codes {
				lib.tradesByCode[code] = append(lib.tradesByCode[code], trade)
			}
		}
	}

	for _, trades := range lib.tradesByCode {
		sort.Strings(trades)
	}

	return lib, nil
}

// NewDefaultLibrary builds a Library from the compiled-in phrase book.
// The defaults are validated data, so failure here is a programming
// error and panics at startup.
func NewDefaultLibrary() *Library {
	lib, err := NewLibrary(phrasebook.Default())
	if err != nil {
		panic(err)
	}
	return lib
}

// ExclusionMatcher returns the precompiled matcher for a trade, or nil
// when no exclusion phrases are known for it.
func (l *Library) ExclusionMatcher(trade string) *Matcher {
	return l.matchers[models.NormalizeTrade(trade)]
}

// CodesForTrade returns the classification codes that evidence coverage
// for a trade. Nil means the library has no code data for it.
func (l *Library) CodesForTrade(trade string) []int {
	codes := l.codesByTrade[models.NormalizeTrade(trade)]
	return append([]int(nil), codes...)
}

// TradesForClassificationCode returns the trades a code covers.
func (l *Library) TradesForClassificationCode(code int) []string {
	trades := l.tradesByCode[code]
	return append([]string(nil), trades...)
}

// CodeCoversTrade reports whether a single classification code evidences
// coverage for a trade.
func (l *Library) CodeCoversTrade(code int, trade string) bool {
	want := models.NormalizeTrade(trade)
	for _, t := range l.tradesByCode[code] {
		if t == want {
			return true
		}
	}
	return false
}

// compileMatcher joins the phrase set into one case-insensitive
// alternation. Phrases are literal: metacharacters are quoted and runs
// of whitespace match any whitespace.
func compileMatcher(trade string, phrases []string) (*Matcher, error) {
	cleaned := make([]string, 0, len(phrases))
	alts := make([]string, 0, len(phrases))
	perOne := make([]*regexp.Regexp, 0, len(phrases))

	for _, phrase := range phrases {
		p := strings.TrimSpace(phrase)
		if p == "" {
			return nil, commonerrors.NewEmptyPhraseError(trade)
		}
		expr := phraseExpr(p)
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return nil, commonerrors.NewPatternCompileError(trade, err)
		}
		cleaned = append(cleaned, p)
		alts = append(alts, expr)
		perOne = append(perOne, re)
	}

	combined, err := regexp.Compile("(?i)(?:" + strings.Join(alts, "|") + ")")
	if err != nil {
		return nil, commonerrors.NewPatternCompileError(trade, err)
	}

	return &Matcher{
		trade:    trade,
		phrases:  cleaned,
		combined: combined,
		perOne:   perOne,
	}, nil
}

func phraseExpr(phrase string) string {
	words := strings.Fields(phrase)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	expr := strings.Join(words, `\s+`)
	// Word boundaries only anchor against word characters; a phrase
	// ending in punctuation anchors itself.
	if isWordChar(phrase[0]) {
		expr = `\b` + expr
	}
	if isWordChar(phrase[len(phrase)-1]) {
		expr += `\b`
	}
	return expr
}

func isWordChar(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
