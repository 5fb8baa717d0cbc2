// Package sections isolates labelled résumé sections and splits them into entries.
package sections

import (
	"strings"
)

// Headers is the fixed list of recognised section headers. Inside a section, a line
// containing one of them ends the section unless it also contains a target keyword.
var Headers = []string{
	"experience", "education", "skills", "projects", "certifications",
	"awards", "publications", "references", "summary", "objective",
}

// Keyword sets used to locate the sections the parser extracts.
var (
	ExperienceKeywords = []string{"experience", "work history", "employment"}
	EducationKeywords  = []string{"education", "academic"}
	ProjectsKeywords   = []string{"projects", "portfolio"}
	SummaryKeywords    = []string{"summary", "objective", "about"}
)

type scanState int

const (
	stateOutside scanState = iota
	stateInside
	stateStopped
)

func (s scanState) String() string {
	switch s {
	case stateOutside:
		return "outside"
	case stateInside:
		return "inside"
	case stateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// scanner walks the lines of a document for one target keyword set.
type scanner struct {
	keywords []string
	state    scanState
	lines    []string
}

// entersSection reports whether the normalised line is a header of the target section.
func (s *scanner) entersSection(line string) bool {
	return containsAny(line, s.keywords)
}

// leavesSection reports whether the normalised line is a header of another section.
func (s *scanner) leavesSection(line string) bool {
	return containsAny(line, Headers) && !containsAny(line, s.keywords)
}

func (s *scanner) step(raw string) {
	line := strings.ToLower(strings.TrimSpace(raw))

	switch {
	case s.entersSection(line):
		s.state = stateInside
	case s.state == stateInside && s.leavesSection(line):
		s.state = stateStopped
	case s.state == stateInside:
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			s.lines = append(s.lines, trimmed)
		}
	}
}

// Lines returns the trimmed, non-empty lines of the section introduced by one of the
// keywords, or nil when the section was never found. Matching is case-insensitive
// substring matching on whole lines.
func Lines(text string, keywords []string) []string {
	if text == "" {
		return nil
	}

	s := &scanner{keywords: keywords, state: stateOutside}
	for _, raw := range strings.Split(text, "\n") {
		s.step(raw)
		if s.state == stateStopped {
			break
		}
	}

	return s.lines
}

// Extract returns the section content joined by newlines; ok is false when no
// line was collected.
func Extract(text string, keywords []string) (string, bool) {
	lines := Lines(text, keywords)
	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}

func containsAny(line string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(line, needle) {
			return true
		}
	}
	return false
}
