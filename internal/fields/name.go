package fields

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	nameScanLines  = 5
	nameMaxLength  = 50
	nameMinWords   = 2
	nameMaxWords   = 4
	emailSeparator = "._-"
)

// Name is a candidate's first and last name; either part may be absent.
type Name struct {
	First *string
	Last  *string
}

// nameStrategy resolves a name from the document text and the extracted email.
type nameStrategy func(text string, email *string) (Name, bool)

// nameStrategies are evaluated in order; the first successful one wins.
var nameStrategies = []nameStrategy{
	nameFromHeading,
	nameFromEmail,
}

// ExtractName looks for a capitalised 2-4 word line among the first lines of the
// document and falls back to splitting the email local part.
func ExtractName(text string, email *string) Name {
	for _, strategy := range nameStrategies {
		if name, ok := strategy(text, email); ok {
			return name
		}
	}
	return Name{}
}

func nameFromHeading(text string, _ *string) (Name, bool) {
	if text == "" {
		return Name{}, false
	}

	lines := strings.Split(text, "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || utf8.RuneCountInString(line) > nameMaxLength {
			continue
		}

		words := strings.Fields(line)
		if len(words) < nameMinWords || len(words) > nameMaxWords {
			continue
		}
		if !allCapitalised(words) {
			continue
		}

		first, last := words[0], words[len(words)-1]
		return Name{First: &first, Last: &last}, true
	}

	return Name{}, false
}

func nameFromEmail(_ string, email *string) (Name, bool) {
	if email == nil || *email == "" {
		return Name{}, false
	}

	local := LocalPart(*email)
	for _, sep := range emailSeparator {
		if !strings.ContainsRune(local, sep) {
			continue
		}
		parts := strings.Split(local, string(sep))
		if len(parts) < 2 {
			continue
		}
		return Name{First: optional(capitalize(parts[0])), Last: optional(capitalize(parts[1]))}, true
	}

	return Name{}, false
}

func allCapitalised(words []string) bool {
	for _, word := range words {
		r, _ := utf8.DecodeRuneInString(word)
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
