package extract

import "regexp"

// spanAfter returns the text between the end of the first decl match and the
// nearest following term match, or the end of text when no terminator
// follows. The second return reports whether decl matched at all.
//
// The source text has no reliable markup, so field extents are recovered
// positionally: find the declaration, then cut at the first terminator
// keyword that opens the next field.
func spanAfter(text string, decl, term *regexp.Regexp) (string, bool) {
	loc := decl.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	rest := text[loc[1]:]
	if t := term.FindStringIndex(rest); t != nil {
		rest = rest[:t[0]]
	}
	return rest, true
}

// scanSpans repeatedly applies spanAfter across the text, returning every
// declaration's span in document order. Scanning resumes at each span's
// terminator, so consecutive declarations delimit each other.
func scanSpans(text string, decl, term *regexp.Regexp) []string {
	var spans []string
	pos := 0
	for pos < len(text) {
		loc := decl.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[1]
		rest := text[start:]
		end := len(rest)
		if t := term.FindStringIndex(rest); t != nil {
			end = t[0]
		}
		spans = append(spans, rest[:end])
		pos = start + end
		if end == 0 {
			pos++
		}
	}
	return spans
}
