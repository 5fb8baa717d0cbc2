package fields

import (
	"regexp"
	"strings"
)

// MaxLinks caps the number of collected links.
const MaxLinks = 5

var (
	linkedInRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\p{L}\p{N}_-]+`)
	gitHubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\p{L}\p{N}_-]+`)
	genericRe  = regexp.MustCompile(`https?://(?:www\.)?[\w\-.]+\.\w{2,}(?:/[\w\-./?%&=]*)?`)

	excludedDomains = []string{"linkedin.com", "github.com", "google.com", "facebook.com"}
)

// Links collects LinkedIn profiles, then GitHub profiles, then any other http(s) URL
// outside the excluded domains. The result keeps first-appearance order within that
// concatenation, holds no duplicates and never exceeds MaxLinks entries.
func Links(text string) []string {
	links := make([]string, 0, MaxLinks)
	seen := make(map[string]bool)

	add := func(url string) {
		if seen[url] {
			return
		}
		seen[url] = true
		links = append(links, url)
	}

	for _, url := range linkedInRe.FindAllString(text, -1) {
		add(url)
	}
	for _, url := range gitHubRe.FindAllString(text, -1) {
		add(url)
	}
	for _, url := range genericRe.FindAllString(text, -1) {
		if isExcluded(url) {
			continue
		}
		add(url)
	}

	if len(links) > MaxLinks {
		links = links[:MaxLinks]
	}

	return links
}

func isExcluded(url string) bool {
	lower := strings.ToLower(url)
	for _, domain := range excludedDomains {
		if strings.Contains(lower, domain) {
			return true
		}
	}
	return false
}
