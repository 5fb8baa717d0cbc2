// Package fields holds the stateless extractors for contact fields. Every extractor
// reports a missing field as a nil or empty value and never fails.
package fields

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// Email returns the first email address in document order.
func Email(text string) *string {
	match := emailRe.FindString(text)
	if match == "" {
		return nil
	}
	return &match
}

// LocalPart returns the part of an email address before '@'.
func LocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
