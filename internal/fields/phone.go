package fields

import (
	"fmt"
	"regexp"
)

// phoneStrategy is one entry of the ordered phone fallback chain.
type phoneStrategy struct {
	name string
	re   *regexp.Regexp
}

// phoneStrategies are tried in order; the first pattern with any match wins and
// the remaining ones are never evaluated.
var phoneStrategies = []phoneStrategy{
	{name: "international", re: regexp.MustCompile(`\+?1?\s*\(?(\d{3})\)?[\s.-]?(\d{3})[\s.-]?(\d{4})`)},
	{name: "bare", re: regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)},
	{name: "area-code", re: regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}`)},
}

// Phone returns the first phone number found by the first matching strategy.
// Matches carrying three digit groups are formatted as "(AAA) BBB-CCCC",
// other matches are returned as written.
func Phone(text string) *string {
	for _, s := range phoneStrategies {
		if phone, ok := s.apply(text); ok {
			return &phone
		}
	}
	return nil
}

func (s phoneStrategy) apply(text string) (string, bool) {
	groups := s.re.FindStringSubmatch(text)
	if groups == nil {
		return "", false
	}
	if len(groups) == 4 {
		return fmt.Sprintf("(%s) %s-%s", groups[1], groups[2], groups[3]), true
	}
	return groups[0], true
}
