package extract

import (
	"regexp"
	"strings"
)

var (
	// ataPattern matches the ATA chapter code in headers like
	// "TASK 24-00-00" or "ATA 21". SUBTASK headers carry it too.
	ataPattern = regexp.MustCompile(`(?:ATA|TASK)\s+(\d{2})[-–\s]`)

	// computerPattern matches the affected computer/system declaration,
	// e.g. "COMPUTER: ACSC1" or "AFFECTED COMPUTER: FWC 1".
	computerPattern = regexp.MustCompile(`(?i)(?:COMPUTER|AFFECTED COMPUTER|SYSTEM)[:\s]+([A-Z0-9/\-]+(?:\s+[A-Z0-9/\-]+)?)`)

	noteDeclPattern = regexp.MustCompile(`(?i)NOTE\s*[:\-]?\s*`)
	noteTermPattern = regexp.MustCompile(`(?i)WARNING|CAUTION|CIRCUIT|SUBTASK`)
)

// DefaultATA is the chapter code used when none can be recognized.
const DefaultATA = "00"

// ExtractATA returns the two-digit ATA chapter code, or DefaultATA.
func ExtractATA(text string) string {
	if m := ataPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return DefaultATA
}

// ExtractComputer returns the affected computer or system name, or "".
func ExtractComputer(text string) string {
	if m := computerPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtractNotes returns the block's NOTE text with line breaks collapsed,
// or "" when the block has none.
func ExtractNotes(text string) string {
	span, ok := spanAfter(text, noteDeclPattern, noteTermPattern)
	if !ok {
		return ""
	}
	return strings.ReplaceAll(strings.TrimSpace(span), "\n", " ")
}
