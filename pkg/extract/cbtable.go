package extract

import (
	"regexp"
	"strings"
)

// CBRow is one circuit breaker reference extracted from a block's table.
type CBRow struct {
	Panel       string `json:"panel"`
	Designation string `json:"designation"`
	FIN         string `json:"fin"`
	Location    string `json:"location"`
	FSN         string `json:"fsn"`
}

var (
	// cbFullRowPattern matches complete table rows like
	// "49VU  AIR COND/ACSC1/SPLY  1CA1  D01  101-150"
	// with an optional trailing FSN range.
	cbFullRowPattern = regexp.MustCompile(`(?i)(\d{2,3}VU)\s+([\w/\- ]+?)\s+(\w{2,6})\s+([A-Z]\d{2})\s*([\d\-,\s]*)`)

	// cbPartialRowPattern matches degraded rows where only the FIN code
	// and a location survive text extraction, e.g. "1CA1 at D01".
	cbPartialRowPattern = regexp.MustCompile(`(?i)\b(\d\w{1,5})\b\s+(?:AT\s+)?([A-Z]\d{2})\b`)
)

// maxCBRows caps the table: more matches than this means the patterns ran
// into surrounding prose, not a real breaker table.
const maxCBRows = 10

// ExtractCBTable extracts circuit breaker rows from block text. The full
// row pattern is tried first; the partial pattern is consulted only when
// the full pattern matches nothing; the two row shapes are never merged.
// Rows are unique by FIN (first occurrence wins) and capped at maxCBRows.
// Rows without their own FSN range inherit defaultFSN.
func ExtractCBTable(text, defaultFSN string) []CBRow {
	var rows []CBRow

	for _, m := range cbFullRowPattern.FindAllStringSubmatch(text, -1) {
		fsn := strings.TrimSpace(m[5])
		if fsn == "" {
			fsn = defaultFSN
		}
		rows = append(rows, CBRow{
			Panel:       strings.TrimSpace(m[1]),
			Designation: strings.TrimSpace(m[2]),
			FIN:         strings.TrimSpace(m[3]),
			Location:    strings.TrimSpace(m[4]),
			FSN:         fsn,
		})
	}

	if len(rows) == 0 {
		for _, m := range cbPartialRowPattern.FindAllStringSubmatch(text, -1) {
			rows = append(rows, CBRow{
				FIN:      strings.TrimSpace(m[1]),
				Location: strings.TrimSpace(m[2]),
				FSN:      defaultFSN,
			})
		}
	}

	return dedupeByFIN(rows)
}

func dedupeByFIN(rows []CBRow) []CBRow {
	seen := make(map[string]struct{}, len(rows))
	unique := []CBRow{}
	for _, row := range rows {
		if _, ok := seen[row.FIN]; ok {
			continue
		}
		seen[row.FIN] = struct{}{}
		unique = append(unique, row)
		if len(unique) == maxCBRows {
			break
		}
	}
	return unique
}
