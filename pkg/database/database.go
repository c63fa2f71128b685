// Package database persists the extracted reset records as the review
// tool's database.json artifact and merges fresh extractions against a
// prior artifact by record id.
package database

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/coolbeans/tsmreset/pkg/extract"
)

// Version is the artifact schema version.
const Version = "1.0"

// Document is the persisted output artifact. Reloading and re-merging a
// document must reproduce identical messages when no new blocks appear.
type Document struct {
	Version     string           `json:"version"`
	LastUpdated string           `json:"lastUpdated"`
	Source      string           `json:"source"`
	Messages    []extract.Record `json:"messages"`
}

// New wraps records into a Document stamped with the current date.
func New(source string, messages []extract.Record) *Document {
	if messages == nil {
		messages = []extract.Record{}
	}
	return &Document{
		Version:     Version,
		LastUpdated: time.Now().UTC().Format("2006-01-02"),
		Source:      source,
		Messages:    messages,
	}
}

// Load reads a Document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read database %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse database %s: %w", path, err)
	}
	return &doc, nil
}

// Save writes the Document as indented JSON.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal database: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// MergeMessages keeps every existing record untouched and appends only the
// fresh records whose id is not already present. Conflicts resolve
// deterministically: the existing record wins, the fresh one is discarded.
// Returns the merged list and the number of appended records.
func MergeMessages(existing, fresh []extract.Record) ([]extract.Record, int) {
	seen := make(map[string]struct{}, len(existing))
	for _, rec := range existing {
		seen[rec.ID] = struct{}{}
	}

	merged := make([]extract.Record, len(existing), len(existing)+len(fresh))
	copy(merged, existing)

	added := 0
	for _, rec := range fresh {
		if _, ok := seen[rec.ID]; ok {
			continue
		}
		seen[rec.ID] = struct{}{}
		merged = append(merged, rec)
		added++
	}
	return merged, added
}
