// Package segment splits extracted page text into SUBTASK blocks.
//
// Each SUBTASK header in the TSM opens one reset procedure section. A block
// spans from its header to the start of the next header (or document end),
// so blocks are contiguous, non-overlapping, and together cover everything
// from the first header onward. Text before the first header is dropped.
package segment

import (
	"regexp"
	"sort"
	"strings"

	"github.com/coolbeans/tsmreset/pkg/source"
)

// Block is one SUBTASK section of the document.
type Block struct {
	// Header is the matched SUBTASK header text.
	Header string

	// Body is the full block text, from the header to the next header.
	Body string

	// Page is the page number active at the header position, 0 if unknown.
	Page int
}

// Segmenter finds SUBTASK block boundaries in concatenated page text.
type Segmenter struct {
	headerPattern *regexp.Regexp
}

// NewSegmenter creates a Segmenter with the TSM SUBTASK header pattern.
func NewSegmenter() *Segmenter {
	return &Segmenter{
		// Matches headers like "SUBTASK 24-00-810 - PACK FAULT RESET".
		headerPattern: regexp.MustCompile(`(?i)SUBTASK\s+[\d-]+\s*[-–]\s*[\w\s]+`),
	}
}

// pageMark records where a page begins in the concatenated text.
type pageMark struct {
	offset int
	page   int
}

// Split segments the pages into ordered blocks.
func (s *Segmenter) Split(pages []source.Page) []Block {
	text, marks := concatenate(pages)

	headerSpans := s.headerPattern.FindAllStringIndex(text, -1)
	if len(headerSpans) == 0 {
		return nil
	}

	blocks := make([]Block, 0, len(headerSpans))
	for i, span := range headerSpans {
		start := span[0]
		end := len(text)
		if i+1 < len(headerSpans) {
			end = headerSpans[i+1][0]
		}

		blocks = append(blocks, Block{
			Header: strings.TrimSpace(text[span[0]:span[1]]),
			Body:   text[start:end],
			Page:   pageAt(marks, start),
		})
	}

	return blocks
}

// concatenate joins page texts with newlines, recording each page's start
// offset so provenance can be recovered by position.
func concatenate(pages []source.Page) (string, []pageMark) {
	var builder strings.Builder
	marks := make([]pageMark, 0, len(pages))

	for i, page := range pages {
		if i > 0 {
			builder.WriteString("\n")
		}
		marks = append(marks, pageMark{offset: builder.Len(), page: page.Number})
		builder.WriteString(page.Text)
	}

	return builder.String(), marks
}

// pageAt returns the page active at the given offset, 0 when no page
// starts at or before it.
func pageAt(marks []pageMark, offset int) int {
	idx := sort.Search(len(marks), func(i int) bool {
		return marks[i].offset > offset
	})
	if idx == 0 {
		return 0
	}
	return marks[idx-1].page
}
