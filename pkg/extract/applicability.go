package extract

import (
	"regexp"
	"strings"
)

// Aircraft variant names used in FSN applicability resolution.
const (
	AircraftCEO = "CEO"
	AircraftNEO = "NEO"
)

var (
	// fsnDeclPattern matches FSN applicability declarations like
	// "** ON A/C FSN 051-070" or "** ON A/C FSN 051-070 AND 101-125".
	fsnDeclPattern = regexp.MustCompile(`(?i)\*\*\s*ON\s+A/C\s+FSN\s+([\d\s,\-–]+(?:TO|AND|OR|,|[\d\s])*)`)

	// CEO serials occupy the 051-100 band, NEO the 101-150 band. The two
	// bands never overlap in this aircraft family's numbering.
	ceoRangePattern  = regexp.MustCompile(`0[5-9]\d-\d+`)
	neoRangePattern  = regexp.MustCompile(`1\d\d-\d+`)
	ceoSerialPattern = regexp.MustCompile(`05[1-9]|0[6-9]\d|100`)
	neoSerialPattern = regexp.MustCompile(`10[1-9]|1[1-4]\d|150`)
)

// ExtractFSN returns the FSN applicability marker declared in the block
// text, or "ALL" when the block declares none.
func ExtractFSN(text string) string {
	if m := fsnDeclPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "ALL"
}

// ResolveAircraft maps an FSN marker string to the applicable aircraft
// variants. An empty or "ALL" marker applies to both variants, as does any
// marker in which no serial band can be recognized: applicability fails
// open, never empty.
func ResolveAircraft(marker string) []string {
	if marker == "" || strings.Contains(strings.ToUpper(marker), "ALL") {
		return []string{AircraftCEO, AircraftNEO}
	}

	hasCEO := ceoRangePattern.MatchString(marker) || ceoSerialPattern.MatchString(marker)
	hasNEO := neoRangePattern.MatchString(marker) || neoSerialPattern.MatchString(marker)

	var aircraft []string
	if hasCEO {
		aircraft = append(aircraft, AircraftCEO)
	}
	if hasNEO {
		aircraft = append(aircraft, AircraftNEO)
	}
	if len(aircraft) == 0 {
		return []string{AircraftCEO, AircraftNEO}
	}
	return aircraft
}
