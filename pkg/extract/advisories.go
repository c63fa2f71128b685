package extract

import (
	"regexp"
	"strings"
)

var (
	warningDeclPattern = regexp.MustCompile(`(?i)WARNING\s*[:\-]?\s*`)
	warningTermPattern = regexp.MustCompile(`(?i)CAUTION|NOTE|WARNING|\n\n`)

	cautionDeclPattern = regexp.MustCompile(`(?i)CAUTION\s*[:\-]?\s*`)
	cautionTermPattern = regexp.MustCompile(`(?i)WARNING|NOTE|CAUTION|\n\n`)
)

// minAdvisoryLen filters out truncated fragments; genuine TSM advisories
// are always full sentences.
const minAdvisoryLen = 10

// ExtractWarnings returns all WARNING advisories in document order, each
// collapsed to a single line. A block may legitimately declare several, so
// advisories are not deduplicated.
func ExtractWarnings(text string) []string {
	return collectAdvisories(text, warningDeclPattern, warningTermPattern)
}

// ExtractCautions returns all CAUTION advisories in document order, each
// collapsed to a single line.
func ExtractCautions(text string) []string {
	return collectAdvisories(text, cautionDeclPattern, cautionTermPattern)
}

func collectAdvisories(text string, decl, term *regexp.Regexp) []string {
	advisories := []string{}
	for _, span := range scanSpans(text, decl, term) {
		advisory := strings.ReplaceAll(strings.TrimSpace(span), "\n", " ")
		if len(advisory) > minAdvisoryLen {
			advisories = append(advisories, advisory)
		}
	}
	return advisories
}
