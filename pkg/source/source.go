// Package source loads per-page text from a TSM source document.
package source

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// Page holds the extracted text of one document page.
// Pages are 1-indexed and returned in reading order.
type Page struct {
	Number int    `json:"page"`
	Text   string `json:"text"`
}

// ExtractPages extracts plain text from every page of a PDF document.
// A missing or unreadable document is a fatal setup error for the run.
func ExtractPages(path string) ([]Page, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	total := reader.NumPage()
	pages := make([]Page, 0, total)

	for num := 1; num <= total; num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			pages = append(pages, Page{Number: num})
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A page that cannot be decoded still keeps its slot so
			// provenance stays aligned with the printed page numbers.
			pages = append(pages, Page{Number: num})
			continue
		}

		pages = append(pages, Page{Number: num, Text: sanitizeText(text)})
	}

	return pages, nil
}

// LoadTextFile reads a plain-text document and wraps it as a single page.
func LoadTextFile(path string) ([]Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source %s: %w", path, err)
	}
	return PagesFromText(string(data)), nil
}

// PagesFromText wraps raw text as a one-page document.
func PagesFromText(text string) []Page {
	return []Page{{Number: 1, Text: sanitizeText(text)}}
}

// sanitizeText removes NUL bytes, invalid UTF-8, and control characters
// (other than newlines and tabs) that PDF text streams sometimes carry.
func sanitizeText(text string) string {
	text = strings.ToValidUTF8(text, "")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || r == '\r' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
}
