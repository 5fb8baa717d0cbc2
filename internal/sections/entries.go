package sections

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Entry is one segmented item of a section, kept verbatim.
type Entry struct {
	Raw string `json:"raw" yaml:"raw"`
}

// Segmenter splits a section into entries. A line matching Boundary starts a new
// entry; segments not longer than MinLength are dropped and at most MaxEntries of
// the survivors are kept in their original order.
type Segmenter struct {
	Name       string
	Boundary   *regexp.Regexp
	MinLength  int
	MaxEntries int
}

var (
	// Experience entries start at "Word 2020"-like lines or at a bare year.
	Experience = Segmenter{
		Name:       "experience",
		Boundary:   regexp.MustCompile(`^(?:[A-Z][a-z]+ \d{4}|\d{4})`),
		MinLength:  20,
		MaxEntries: 5,
	}
	// Education entries start at any line beginning with an uppercase letter.
	Education = Segmenter{
		Name:       "education",
		Boundary:   regexp.MustCompile(`^[A-Z]`),
		MinLength:  10,
		MaxEntries: 3,
	}
	// Projects entries start at any line beginning with an uppercase letter.
	Projects = Segmenter{
		Name:       "projects",
		Boundary:   regexp.MustCompile(`^[A-Z]`),
		MinLength:  20,
		MaxEntries: 5,
	}
)

// Segment splits the section text into entries.
func (s Segmenter) Segment(text string) []Entry {
	entries := make([]Entry, 0, s.MaxEntries)
	if text == "" {
		return entries
	}

	for _, segment := range s.split(text) {
		if len(entries) == s.MaxEntries {
			break
		}
		segment = strings.TrimSpace(segment)
		if utf8.RuneCountInString(segment) <= s.MinLength {
			continue
		}
		entries = append(entries, Entry{Raw: segment})
	}

	return entries
}

// split cuts text before every line, other than the first, that matches the boundary.
func (s Segmenter) split(text string) []string {
	lines := strings.Split(text, "\n")

	var (
		segments []string
		current  []string
	)
	for i, line := range lines {
		if i > 0 && s.Boundary.MatchString(line) {
			segments = append(segments, strings.Join(current, "\n"))
			current = nil
		}
		current = append(current, line)
	}

	return append(segments, strings.Join(current, "\n"))
}
