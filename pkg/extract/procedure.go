package extract

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	procDeclPattern = regexp.MustCompile(`(?i)(?:RESET PROCEDURE|PROCEDURE)[:\s]*`)
	procTermPattern = regexp.MustCompile(`(?i)CIRCUIT BREAKER|WARNING|CAUTION|NOTE|SUBTASK`)

	// stepNumberPattern matches existing enumeration prefixes like
	// "1. " or "3) " which are stripped before renumbering.
	stepNumberPattern = regexp.MustCompile(`^\d+[.)]\s*`)
)

// minStepLen drops stray fragments left over from table and figure text.
const minStepLen = 5

// ExtractProcedure returns the reset procedure as renumbered step lines.
// Lines shorter than minStepLen are dropped and any existing enumeration is
// replaced with a fresh 1..n numbering. When no usable step lines remain,
// the raw captured span is returned; when no procedure is declared at all,
// the result is "".
func ExtractProcedure(text string) string {
	span, ok := spanAfter(text, procDeclPattern, procTermPattern)
	if !ok {
		return ""
	}
	raw := strings.TrimSpace(span)

	var steps []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < minStepLen {
			continue
		}
		steps = append(steps, stepNumberPattern.ReplaceAllString(line, ""))
	}

	if len(steps) == 0 {
		return raw
	}

	numbered := make([]string, len(steps))
	for i, step := range steps {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, step)
	}
	return strings.Join(numbered, "\n")
}
