// Package skills finds taxonomy skills in document text using whole-word matching.
package skills

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spigell/cv-extractor/internal/taxonomy"
)

type skillPattern struct {
	name string
	re   *regexp.Regexp
}

// Matcher tests text against every skill of a taxonomy. Patterns are compiled once,
// so a Matcher is immutable and safe for concurrent use.
type Matcher struct {
	patterns []skillPattern
}

// NewMatcher compiles a whole-word pattern for every skill in the flattened taxonomy.
func NewMatcher(t *taxonomy.Taxonomy) *Matcher {
	flat := t.Flat()
	m := &Matcher{patterns: make([]skillPattern, 0, len(flat))}

	for _, name := range flat {
		if strings.TrimSpace(name) == "" {
			continue
		}
		m.patterns = append(m.patterns, skillPattern{name: name, re: wordPattern(name)})
	}

	return m
}

// Match returns the skills present in text as a sorted list without duplicates.
// Matching is case-insensitive and never matches inside a longer token.
func (m *Matcher) Match(text string) []string {
	found := make(map[string]struct{})
	lower := strings.ToLower(text)

	for _, p := range m.patterns {
		if p.re.MatchString(lower) {
			found[p.name] = struct{}{}
		}
	}

	result := make([]string, 0, len(found))
	for name := range found {
		result = append(result, name)
	}
	sort.Strings(result)

	return result
}

// Len returns the number of compiled skill patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// ContainsWord reports whether word occurs in text as a whole word, ignoring case.
func ContainsWord(text, word string) bool {
	if strings.TrimSpace(word) == "" {
		return false
	}
	return wordPattern(word).MatchString(strings.ToLower(text))
}

// wordClass holds the characters of a Unicode word: letters, digits and underscore.
const wordClass = `\p{L}\p{N}_`

// wordPattern matches word with a word boundary on each side. RE2's \b only knows
// ASCII, so the boundary is spelled out: next to a word character of the skill the
// neighbour must be a non-word character or the text edge, next to a non-word
// character it must be a word character.
func wordPattern(word string) *regexp.Regexp {
	lower := strings.ToLower(word)
	first, _ := utf8.DecodeRuneInString(lower)
	last, _ := utf8.DecodeLastRuneInString(lower)

	before, after := `[`+wordClass+`]`, `[`+wordClass+`]`
	if isWordRune(first) {
		before = `(?:^|[^` + wordClass + `])`
	}
	if isWordRune(last) {
		after = `(?:$|[^` + wordClass + `])`
	}

	return regexp.MustCompile(before + regexp.QuoteMeta(lower) + after)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
