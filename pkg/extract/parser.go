// Package extract parses SUBTASK blocks into structured reset records.
//
// Every extractor in this package is a pure function of one block's text
// and tolerates a non-match by returning its documented default. The source
// document interleaves headers, tables, and free text with no reliable
// structure, so extraction is best-effort by design: the output is meant to
// be reviewed, not trusted.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/coolbeans/tsmreset/pkg/segment"
)

var idSanitizePattern = regexp.MustCompile(`[^a-z0-9]+`)

// maxIDLength bounds the slug before the page suffix is appended.
const maxIDLength = 60

// ParseBlock assembles one Record from one SUBTASK block. Individual field
// extractors never fail; ParseBlock itself fails only when the block is
// degenerate enough that no stable identifier can be derived, which callers
// treat as skip-this-block.
func ParseBlock(block segment.Block) (*Record, error) {
	text := block.Body
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty block body at page %d", block.Page)
	}

	fsn := ExtractFSN(text)
	messages := ExtractECAMMessages(text, block.Header)
	if len(messages) == 0 {
		return nil, fmt.Errorf("no message identifier recoverable from block at page %d", block.Page)
	}

	id, err := deriveID(messages[0], block.Page)
	if err != nil {
		return nil, err
	}

	return &Record{
		ID:             id,
		Aircraft:       ResolveAircraft(fsn),
		ECAMMessages:   messages,
		ATA:            ExtractATA(text),
		Computer:       ExtractComputer(text),
		ResetProcedure: ExtractProcedure(text),
		Notes:          ExtractNotes(text),
		Warnings:       ExtractWarnings(text),
		Cautions:       ExtractCautions(text),
		CBTable:        ExtractCBTable(text, fsn),
		SourcePage:     block.Page,
		FSNRaw:         fsn,
	}, nil
}

// deriveID builds the stable record identifier: the first message slugged
// to lower-case hyphenated form, truncated, with a page suffix so identical
// message text recurring on different pages stays distinct.
func deriveID(message string, page int) (string, error) {
	slug := idSanitizePattern.ReplaceAllString(strings.ToLower(message), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "", fmt.Errorf("message %q yields an empty identifier", message)
	}
	if len(slug) > maxIDLength {
		slug = slug[:maxIDLength]
	}
	return fmt.Sprintf("%s-p%d", slug, page), nil
}
